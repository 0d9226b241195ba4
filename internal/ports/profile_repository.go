package ports

import (
	"context"

	"github.com/bnema/cloudwallet-cli/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
	Active(ctx context.Context) (domain.ProfileID, error)
	SetActive(ctx context.Context, id domain.ProfileID) error
}
