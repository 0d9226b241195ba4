package ports

import (
	"context"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
)

// AutoSignEndpoint is the silent, credential-backed wallet API.
type AutoSignEndpoint interface {
	Login(ctx context.Context) (domain.LoginResult, error)
	Sign(ctx context.Context, req domain.SigningRequest) (domain.SigningResult, error)
}

type ChainReader interface {
	ActivePermissionKey(ctx context.Context, account domain.AccountName) (string, error)
}

type SignatureVerifier interface {
	Verify(signature string, message []byte, publicKey string) (bool, error)
}

// TransactionCodec converts between transactions and their serialized form.
type TransactionCodec interface {
	Encode(tx domain.Transaction) ([]byte, error)
	Decode(serialized []byte) (domain.Transaction, error)
}

type MetricsRecorder interface {
	RecordDuration(ctx context.Context, name string, elapsed time.Duration)
}

type ActivationAPI interface {
	RequestCode(ctx context.Context, dapp string) (domain.RequisitionInfo, error)
	PollActivation(ctx context.Context, dapp string, info domain.RequisitionInfo, interval time.Duration) (domain.ActivatedData, error)
}
