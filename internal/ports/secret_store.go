package ports

import (
	"context"
	"path"

	"github.com/bnema/cloudwallet-cli/internal/domain"
)

type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// ActivationTokenKey is where the dapp activation token of a profile lives.
func ActivationTokenKey(profile domain.ProfileID) string {
	return path.Join("cloudwallet", string(profile), "activation_token")
}
