package ports

import (
	"context"
	"time"

	"github.com/pulsewire/social-api/internal/core/domain"
)

// AuthorView is the public projection of a post or comment author.
type AuthorView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommentView is a comment with its author resolved.
type CommentView struct {
	ID        string     `json:"id"`
	Author    AuthorView `json:"author"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PostView is a post with author and comment authors resolved.
type PostView struct {
	ID        string        `json:"id"`
	Author    AuthorView    `json:"author"`
	Content   string        `json:"content"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PostService defines use-case operations for posts.
type PostService interface {
	CreatePost(ctx context.Context, authorID, content string) (*PostView, error)
	ListPosts(ctx context.Context) ([]PostView, error)
	// DeletePost enforces the admin-only rule before deleting.
	DeletePost(ctx context.Context, actor domain.AuthIdentity, postID string) error
}

// CommentService defines use-case operations for comments on posts.
type CommentService interface {
	Add(ctx context.Context, actorID, postID, text string) (*PostView, error)
	ListByPost(ctx context.Context, postID string) ([]CommentView, error)
	// Update and Delete enforce strict ownership before mutating.
	Update(ctx context.Context, actorID, postID, commentID, text string) (*PostView, error)
	Delete(ctx context.Context, actorID, postID, commentID string) error
}
