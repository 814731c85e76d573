package service

import (
	"context"
	"errors"

	"github.com/pulsewire/social-api/internal/core/domain"
	"github.com/pulsewire/social-api/internal/core/ports"
)

// authorResolver memoizes user lookups while building views, so a post with
// many comments by the same author costs one store read per distinct author.
type authorResolver struct {
	users ports.UserRepository
	seen  map[string]ports.AuthorView
}

func newAuthorResolver(users ports.UserRepository) *authorResolver {
	return &authorResolver{users: users, seen: make(map[string]ports.AuthorView)}
}

// resolve returns the public author projection for id. A deleted author
// degrades to an id-only view rather than failing the whole listing.
func (r *authorResolver) resolve(ctx context.Context, id string) (ports.AuthorView, error) {
	if v, ok := r.seen[id]; ok {
		return v, nil
	}

	u, err := r.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			v := ports.AuthorView{ID: id}
			r.seen[id] = v
			return v, nil
		}
		return ports.AuthorView{}, err
	}

	v := ports.AuthorView{ID: u.ID, Name: u.Name, Email: u.Email}
	r.seen[id] = v
	return v, nil
}

func (r *authorResolver) postView(ctx context.Context, p *domain.Post) (*ports.PostView, error) {
	author, err := r.resolve(ctx, p.AuthorID)
	if err != nil {
		return nil, err
	}

	comments := make([]ports.CommentView, 0, len(p.Comments))
	for i := range p.Comments {
		cv, err := r.commentView(ctx, &p.Comments[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, *cv)
	}

	return &ports.PostView{
		ID:        p.ID,
		Author:    author,
		Content:   p.Content,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func (r *authorResolver) commentView(ctx context.Context, c *domain.Comment) (*ports.CommentView, error) {
	author, err := r.resolve(ctx, c.AuthorID)
	if err != nil {
		return nil, err
	}
	return &ports.CommentView{
		ID:        c.ID,
		Author:    author,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}
