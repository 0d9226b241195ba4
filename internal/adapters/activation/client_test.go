package activation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

const testDapp = "https://dapp.example"

func TestRequestCodeParsesRequisitionInfo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/dapp/code", r.URL.Path)
		assert.Equal(t, testDapp, r.URL.Query().Get("dapp"))
		_, _ = w.Write([]byte(`{"code":"ABC123","expire":1700000300}`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}
	info, err := client.RequestCode(context.Background(), testDapp)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", info.Code)
	assert.Equal(t, int64(1700000300), info.Expire)
}

func TestRequestCodeMapsFailuresToFetchError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "malformed body", status: http.StatusOK, body: `not-json`},
		{name: "missing code", status: http.StatusOK, body: `{"expire":10}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			client := Client{BaseURL: server.URL, HTTPClient: server.Client()}
			_, err := client.RequestCode(context.Background(), testDapp)
			require.ErrorIs(t, err, domain.ErrActivationFetch)
		})
	}
}

func TestRequestCodeRejectsNonHTTPBase(t *testing.T) {
	t.Parallel()

	client := Client{BaseURL: "ftp://example.com"}
	_, err := client.RequestCode(context.Background(), testDapp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}

func TestPollActivationReturnsDataAfterPending(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dapp/code/check", r.URL.Path)
		assert.Equal(t, testDapp, r.URL.Query().Get("dapp"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ABC123", body["code"])

		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(`{"account":"user1.wam","keys":["PUB_K1_x"],"token":"tok-1"}`))
	}))
	t.Cleanup(server.Close)

	now := time.Unix(1700000000, 0)
	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), Clock: fixedClock{now: now}}
	data, err := client.PollActivation(context.Background(), testDapp, domain.RequisitionInfo{Code: "ABC123", Expire: now.Unix() + 60}, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountName("user1.wam"), data.Account)
	assert.Equal(t, "tok-1", data.Token)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestPollActivationStopsOnExpiry(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	now := time.Unix(1700000000, 0)
	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), Clock: fixedClock{now: now}}
	_, err := client.PollActivation(context.Background(), testDapp, domain.RequisitionInfo{Code: "ABC123", Expire: now.Unix() - 1}, time.Millisecond)
	require.ErrorIs(t, err, domain.ErrActivationExpired)
	assert.Zero(t, attempts.Load())
}

func TestPollActivationMapsInvalidCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	t.Cleanup(server.Close)

	now := time.Unix(1700000000, 0)
	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), Clock: fixedClock{now: now}}
	_, err := client.PollActivation(context.Background(), testDapp, domain.RequisitionInfo{Code: "BAD", Expire: now.Unix() + 60}, time.Millisecond)
	require.ErrorIs(t, err, domain.ErrInvalidActivationCode)
}

func TestPollActivationFailsOnServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	now := time.Unix(1700000000, 0)
	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), Clock: fixedClock{now: now}}
	_, err := client.PollActivation(context.Background(), testDapp, domain.RequisitionInfo{Code: "ABC123", Expire: now.Unix() + 60}, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestPollActivationHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := Client{BaseURL: "http://127.0.0.1:1"}
	_, err := client.PollActivation(ctx, testDapp, domain.RequisitionInfo{Code: "ABC123", Expire: time.Now().Unix() + 60}, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}
