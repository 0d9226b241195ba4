package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrChannelOpen           = errors.New("unable to open wallet surface")
	ErrTimeout               = errors.New("timed out waiting for wallet response")
	ErrLoginDeclined         = errors.New("user declined to share their user account")
	ErrSigningDeclined       = errors.New("user declined to sign the transaction")
	ErrNoAccount             = errors.New("user does not have a blockchain account")
	ErrEndpoint              = errors.New("wallet endpoint error")
	ErrTamper                = errors.New("signed transaction was tampered with")
	ErrKeyLookup             = errors.New("unable to retrieve the proof key for account verification")
	ErrNotAuthenticated      = errors.New("no active wallet session")
	ErrVerificationDenied    = errors.New("user denied verification")
	ErrUnexpectedResponse    = errors.New("unexpected response from wallet")
	ErrActivationFetch       = errors.New("unable to fetch activation code")
	ErrActivationExpired     = errors.New("activation code expired")
	ErrInvalidActivationCode = errors.New("invalid activation code")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrSecretNotFound        = errors.New("secret not found")
)

// EndpointError is a transport failure, a non-2xx status or an except
// envelope returned by one of the silent wallet endpoints.
type EndpointError struct {
	Op         string
	StatusCode int
	Status     string
	Except     json.RawMessage
	Err        error
}

func (e *EndpointError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s endpoint error: %v", e.Op, e.Err)
	}
	if len(e.Except) > 0 {
		return fmt.Sprintf("%s endpoint error: except %s", e.Op, string(e.Except))
	}
	if e.Status != "" {
		return fmt.Sprintf("%s endpoint error: status %s", e.Op, e.Status)
	}
	return fmt.Sprintf("%s endpoint error: status %d", e.Op, e.StatusCode)
}

func (e *EndpointError) Is(target error) bool {
	return target == ErrEndpoint
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// IsUserRefusal reports whether err is an explicit refusal by the user, for
// which retrying without user involvement is pointless.
func IsUserRefusal(err error) bool {
	return errors.Is(err, ErrLoginDeclined) ||
		errors.Is(err, ErrSigningDeclined) ||
		errors.Is(err, ErrVerificationDenied)
}

// IsRetryable reports whether a retry of the same call may succeed.
func IsRetryable(err error) bool {
	if err == nil || IsUserRefusal(err) || errors.Is(err, ErrTamper) {
		return false
	}
	return errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrEndpoint) ||
		errors.Is(err, ErrChannelOpen) ||
		errors.Is(err, ErrKeyLookup)
}
