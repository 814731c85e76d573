package ports

import (
	"context"
	"time"

	"github.com/pulsewire/social-api/internal/core/domain"
)

// PostRepository defines persistence for posts and their embedded comments.
// Comment updates are last-write-wins: the repository applies a single
// targeted update and does not attempt optimistic concurrency control.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	Delete(ctx context.Context, id string) error

	AddComment(ctx context.Context, postID string, comment *domain.Comment) error
	UpdateComment(ctx context.Context, postID, commentID, text string, at time.Time) error
	DeleteComment(ctx context.Context, postID, commentID string) error
}
