package ports

import (
	"context"

	"github.com/pulsewire/social-api/internal/core/domain"
)

// AuthService implements signup, login and profile lookup.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (string, *domain.Identity, error)
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
	Profile(ctx context.Context, id string) (*domain.Identity, error)
}

// LoginThrottle limits repeated failed logins per account. Implementations
// must fail open: an unavailable backend never locks users out.
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
