package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	"go.uber.org/zap"
)

// ActivationService links this client to a wallet account with a short
// activation code and keeps the resulting token in the secret store.
type ActivationService struct {
	api      ports.ActivationAPI
	secrets  ports.SecretStore
	interval time.Duration
	logger   *zap.Logger
}

func NewActivationService(api ports.ActivationAPI, secrets ports.SecretStore, interval time.Duration, logger *zap.Logger) *ActivationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivationService{api: api, secrets: secrets, interval: interval, logger: logger}
}

// Activate requests a code, hands it to present and waits until the user
// approves it. The activation token is stored for profile.
func (s *ActivationService) Activate(ctx context.Context, profile domain.Profile, present func(domain.RequisitionInfo) error) (domain.User, error) {
	dapp := profile.DappOrigin
	if dapp == "" {
		return domain.User{}, fmt.Errorf("profile %q has no dapp origin", profile.ID)
	}

	info, err := s.api.RequestCode(ctx, dapp)
	if err != nil {
		return domain.User{}, err
	}
	if present != nil {
		if err := present(info); err != nil {
			return domain.User{}, fmt.Errorf("present activation code: %w", err)
		}
	}

	data, err := s.api.PollActivation(ctx, dapp, info, s.interval)
	if err != nil {
		return domain.User{}, err
	}

	if data.Token != "" {
		if err := s.secrets.Put(ctx, ports.ActivationTokenKey(profile.ID), data.Token); err != nil {
			return domain.User{}, fmt.Errorf("store activation token: %w", err)
		}
	}

	s.logger.Info("dapp activated", zap.String("profile", string(profile.ID)), zap.String("account", string(data.Account)))
	return data.User(), nil
}

func (s *ActivationService) Deactivate(ctx context.Context, profile domain.ProfileID) error {
	if err := s.secrets.Delete(ctx, ports.ActivationTokenKey(profile)); err != nil {
		return fmt.Errorf("delete activation token: %w", err)
	}
	return nil
}

// TokenSource returns the stored token of profile. A missing token is not
// an error: requests are then sent without credentials.
func (s *ActivationService) TokenSource(profile domain.ProfileID) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		token, err := s.secrets.Get(ctx, ports.ActivationTokenKey(profile))
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", nil
		}
		return token, err
	}
}
