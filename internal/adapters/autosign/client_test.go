package autosign

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginDecodesAccountAndSendsBearerToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/accounts/auto-accept/login", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("returnTemp"))
		assert.Equal(t, "Bearer activation-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"verified":true,"userAccount":"user1.wam","pubKeys":["PUB_K1_a"],"whitelistedContracts":[{"contract":"game.wax"}]}`))
	}))
	defer server.Close()

	client := &Client{
		BaseURL:    server.URL + "/v1/accounts/auto-accept/",
		ReturnTemp: true,
		Token:      func(context.Context) (string, error) { return "activation-token", nil },
	}

	result, err := client.Login(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, domain.AccountName("user1.wam"), result.UserAccount)
	assert.Equal(t, domain.Whitelist{{Contract: "game.wax"}}, result.WhitelistedContracts)
}

func TestLoginWithoutStoredTokenSendsNoCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"verified":true}`))
	}))
	defer server.Close()

	client := &Client{
		BaseURL: server.URL,
		Token:   func(context.Context) (string, error) { return "", domain.ErrSecretNotFound },
	}

	_, err := client.Login(context.Background())
	require.NoError(t, err)
}

func TestLoginMapsFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantExcept bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, wantStatus: http.StatusUnauthorized},
		{name: "except envelope on 200", status: http.StatusOK, body: `{"processed":{"except":{"code":3050003}}}`, wantStatus: http.StatusOK, wantExcept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := (&Client{BaseURL: server.URL + "/"}).Login(context.Background())
			require.ErrorIs(t, err, domain.ErrEndpoint)

			var endpointErr *domain.EndpointError
			require.ErrorAs(t, err, &endpointErr)
			assert.Equal(t, "login", endpointErr.Op)
			assert.Equal(t, tt.wantStatus, endpointErr.StatusCode)
			assert.Equal(t, tt.wantExcept, len(endpointErr.Except) > 0)
		})
	}
}

func TestSignPostsSerializedTransaction(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signing", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"transaction":[1,2,3],"freeBandwidth":true,"feeFallback":true,"chainId":"abc","waxjsVersion":"1.0.0"}`, string(body))

		_, _ = w.Write([]byte(`{"type":"TX_SIGNED","verified":true,"signatures":["SIG_K1_a"],"serializedTransaction":[1,2,3,4]}`))
	}))
	defer server.Close()

	result, err := (&Client{BaseURL: server.URL}).Sign(context.Background(), domain.SigningRequest{
		Type:          domain.MessageTypeTransaction,
		Transaction:   domain.SerializedBytes{1, 2, 3},
		FreeBandwidth: true,
		FeeFallback:   true,
		ChainID:       "abc",
		StartTime:     12345,
		Version:       "1.0.0",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"SIG_K1_a"}, result.Signatures)
	assert.Equal(t, domain.SerializedBytes{1, 2, 3, 4}, result.SerializedTransaction)
}

func TestSignFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: domain.ErrEndpoint,
		},
		{
			name: "unexpected response type",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"type":"SOMETHING_ELSE"}`))
			},
			wantErr: domain.ErrUnexpectedResponse,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantErr: domain.ErrEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := (&Client{BaseURL: server.URL}).Sign(context.Background(), domain.SigningRequest{})
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsRetryable(err))
		})
	}
}

func TestSignIsBoundedByTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := &Client{BaseURL: server.URL, Timeout: 20 * time.Millisecond}
	_, err := client.Sign(context.Background(), domain.SigningRequest{})
	require.ErrorIs(t, err, domain.ErrEndpoint)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTokenSourceFailureIsReported(t *testing.T) {
	t.Parallel()

	client := &Client{
		BaseURL: "http://127.0.0.1:1",
		Token:   func(context.Context) (string, error) { return "", errors.New("pass locked") },
	}
	_, err := client.Login(context.Background())
	require.ErrorContains(t, err, "pass locked")
}

func TestEndpointRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := (&Client{}).Sign(context.Background(), domain.SigningRequest{})
	require.ErrorContains(t, err, "auto-signing url is required")
}
