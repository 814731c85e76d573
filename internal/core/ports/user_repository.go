package ports

import (
	"context"

	"github.com/pulsewire/social-api/internal/core/domain"
)

// UserRepository is the persistence contract the auth core depends on.
// No other user mutation is required by this service.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Create(ctx context.Context, user *domain.Identity) (*domain.Identity, error)
}
