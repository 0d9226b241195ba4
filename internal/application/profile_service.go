package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
)

type ProfileService struct {
	repo ports.ProfileRepository
}

func NewProfileService(repo ports.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Resolve returns the profile named by override, or the active profile when
// override is empty.
func (s *ProfileService) Resolve(ctx context.Context, override domain.ProfileID) (domain.Profile, error) {
	id := domain.ProfileID(strings.TrimSpace(string(override)))
	if id == "" {
		active, err := s.repo.Active(ctx)
		if err != nil {
			return domain.Profile{}, fmt.Errorf("get active profile: %w", err)
		}
		id = active
	}

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile %q: %w", id, err)
	}
	return profile, nil
}

func (s *ProfileService) Add(ctx context.Context, cmd AddProfileCommand) (domain.Profile, error) {
	profile := cmd.Profile
	if cmd.From != "" {
		base, err := s.repo.GetByID(ctx, cmd.From)
		if err != nil {
			return domain.Profile{}, fmt.Errorf("get base profile %q: %w", cmd.From, err)
		}
		profile = mergeProfile(base, cmd.Profile)
	}

	if !cmd.Overwrite {
		_, err := s.repo.GetByID(ctx, profile.ID)
		switch {
		case err == nil:
			return domain.Profile{}, fmt.Errorf("profile %q already exists", profile.ID)
		case !errors.Is(err, domain.ErrProfileNotFound):
			return domain.Profile{}, fmt.Errorf("get profile %q: %w", profile.ID, err)
		}
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) Use(ctx context.Context, id domain.ProfileID) error {
	if err := s.repo.SetActive(ctx, id); err != nil {
		return fmt.Errorf("set active profile: %w", err)
	}
	return nil
}

func (s *ProfileService) List(ctx context.Context) ([]ProfileStatus, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	active, err := s.repo.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active profile: %w", err)
	}

	statuses := make([]ProfileStatus, 0, len(profiles))
	for _, profile := range profiles {
		statuses = append(statuses, ProfileStatus{Profile: profile, Active: profile.ID == active})
	}
	return statuses, nil
}

// mergeProfile overlays the non-empty fields of override on base.
func mergeProfile(base, override domain.Profile) domain.Profile {
	merged := base
	merged.ID = override.ID
	setIfNotEmpty(&merged.Name, override.Name)
	setIfNotEmpty(&merged.ChainID, override.ChainID)
	setIfNotEmpty(&merged.SigningURL, override.SigningURL)
	setIfNotEmpty(&merged.AutoSigningURL, override.AutoSigningURL)
	setIfNotEmpty(&merged.RPCURL, override.RPCURL)
	setIfNotEmpty(&merged.MetricURL, override.MetricURL)
	setIfNotEmpty(&merged.ActivationURL, override.ActivationURL)
	setIfNotEmpty(&merged.DappOrigin, override.DappOrigin)
	merged.ReturnTempAccount = base.ReturnTempAccount || override.ReturnTempAccount
	return merged
}

func setIfNotEmpty(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}
