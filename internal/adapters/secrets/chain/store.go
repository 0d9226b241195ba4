package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/cloudwallet-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/cloudwallet-cli/internal/adapters/secrets/pass"
	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	"go.uber.org/zap"
)

// Store reads and writes through a primary backend and falls back to a
// second one when the primary is unavailable or has no entry.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   *zap.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, logger *zap.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{primary: primary, fallback: fallback, logger: logger}, nil
}

func NewPassFirstWithFileFallback(fileRoot string, logger *zap.Logger) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot), logger)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return err
	}

	s.logger.Debug("primary secret backend put failed, using fallback", zap.String("key", key), zap.Error(err))
	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextError(err) {
		return "", err
	}

	s.logger.Debug("primary secret backend get failed, using fallback", zap.String("key", key), zap.Error(err))
	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	switch {
	case fallbackErr == nil:
		return fallbackValue, nil
	case errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound):
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	default:
		return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
	}
}

// Delete removes the key from both backends so a stale copy cannot resurface
// through the fallback.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if err != nil && isContextError(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err != nil && fallbackErr != nil:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	case err != nil:
		s.logger.Debug("primary secret backend delete failed", zap.String("key", key), zap.Error(err))
		return nil
	default:
		s.logger.Debug("fallback secret backend delete failed", zap.String("key", key), zap.Error(fallbackErr))
		return nil
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
