package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	endpoint := &EndpointError{Op: "signing", StatusCode: 500, Status: "500 Internal Server Error"}

	tests := []struct {
		name      string
		err       error
		refusal   bool
		retryable bool
	}{
		{name: "nil", err: nil},
		{name: "login declined", err: ErrLoginDeclined, refusal: true},
		{name: "wrapped signing declined", err: fmt.Errorf("sign: %w", ErrSigningDeclined), refusal: true},
		{name: "verification denied", err: ErrVerificationDenied, refusal: true},
		{name: "timeout", err: ErrTimeout, retryable: true},
		{name: "endpoint", err: endpoint, retryable: true},
		{name: "channel open", err: ErrChannelOpen, retryable: true},
		{name: "tamper", err: &TamperError{Reason: TamperModifiedActions}},
		{name: "tamper joined with timeout", err: errors.Join(ErrTimeout, &TamperError{Reason: TamperExtraUserAction})},
		{name: "no account", err: ErrNoAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.refusal, IsUserRefusal(tt.err))
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestEndpointErrorMessage(t *testing.T) {
	statusErr := &EndpointError{Op: "login", StatusCode: 401, Status: "401 Unauthorized"}
	assert.ErrorIs(t, statusErr, ErrEndpoint)
	assert.Equal(t, "login endpoint error: status 401 Unauthorized", statusErr.Error())

	exceptErr := &EndpointError{Op: "signing", StatusCode: 200, Except: []byte(`{"code":1}`)}
	assert.Equal(t, `signing endpoint error: except {"code":1}`, exceptErr.Error())

	cause := errors.New("connection refused")
	transportErr := &EndpointError{Op: "login", Err: cause}
	assert.ErrorIs(t, transportErr, ErrEndpoint)
	assert.ErrorIs(t, transportErr, cause)
	assert.Equal(t, "login endpoint error: connection refused", transportErr.Error())
}

func TestTamperErrorListsActions(t *testing.T) {
	err := &TamperError{
		Reason:    TamperModifiedActions,
		Original:  []Action{transfer(testUser, "user2.wam", "1.00000000 WAX", "")},
		Augmented: []Action{noopMarker()},
	}

	assert.ErrorIs(t, err, ErrTamper)
	assert.Contains(t, err.Error(), "original: [eosio.token::transfer]")
	assert.Contains(t, err.Error(), "augmented: [boost.wax::noop]")
}
