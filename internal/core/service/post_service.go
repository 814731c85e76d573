package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsewire/social-api/internal/core/domain"
	"github.com/pulsewire/social-api/internal/core/ports"
)

// PostService implements post creation, listing and admin-only deletion.
type PostService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, log: log}
}

// CreatePost stores a new post owned by authorID.
func (s *PostService) CreatePost(ctx context.Context, authorID, content string) (*ports.PostView, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrContentRequired
	}

	now := time.Now().UTC()
	created, err := s.posts.Create(ctx, &domain.Post{
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("author_id", authorID).Msg("post created")
	return newAuthorResolver(s.users).postView(ctx, created)
}

// ListPosts returns all posts, newest first, with authors resolved.
func (s *PostService) ListPosts(ctx context.Context) ([]ports.PostView, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resolver := newAuthorResolver(s.users)
	views := make([]ports.PostView, 0, len(posts))
	for i := range posts {
		v, err := resolver.postView(ctx, &posts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// DeletePost removes a post. The rule is admin-only: the post's owner cannot
// delete it without the admin flag.
func (s *PostService) DeletePost(ctx context.Context, actor domain.AuthIdentity, postID string) error {
	if !domain.CanDeletePost(actor) {
		return domain.ErrAdminOnly
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.log.Info().Str("post_id", postID).Str("actor_id", actor.ID).Msg("post deleted")
	return nil
}
