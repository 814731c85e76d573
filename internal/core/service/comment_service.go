package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsewire/social-api/internal/core/domain"
	"github.com/pulsewire/social-api/internal/core/ports"
)

// CommentService implements comment operations on posts. Edit and delete are
// strictly ownership-based: there is no admin override in this path.
type CommentService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewCommentService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) *CommentService {
	return &CommentService{posts: posts, users: users, log: log}
}

// Add appends a comment by actorID to the post and returns the updated post.
func (s *CommentService) Add(ctx context.Context, actorID, postID, text string) (*ports.PostView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrCommentTextRequired
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		AuthorID:  actorID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", postID).Str("comment_id", comment.ID).Msg("comment added")
	return s.reload(ctx, postID)
}

// ListByPost returns the comments of a single post with authors resolved.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]ports.CommentView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	resolver := newAuthorResolver(s.users)
	views := make([]ports.CommentView, 0, len(post.Comments))
	for i := range post.Comments {
		v, err := resolver.commentView(ctx, &post.Comments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Update replaces a comment's text. Only the comment's author may update it.
// Concurrent edits of the same comment are last-write-wins.
func (s *CommentService) Update(ctx context.Context, actorID, postID, commentID, text string) (*ports.PostView, error) {
	comment, err := s.findComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyComment(comment.AuthorID, actorID) {
		return nil, domain.ErrNotAuthorized
	}

	if err := s.posts.UpdateComment(ctx, postID, commentID, text, time.Now().UTC()); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", postID).Str("comment_id", commentID).Msg("comment updated")
	return s.reload(ctx, postID)
}

// Delete removes a comment. Only the comment's author may delete it.
func (s *CommentService) Delete(ctx context.Context, actorID, postID, commentID string) error {
	comment, err := s.findComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if !domain.CanModifyComment(comment.AuthorID, actorID) {
		return domain.ErrNotAuthorized
	}

	if err := s.posts.DeleteComment(ctx, postID, commentID); err != nil {
		return err
	}

	s.log.Info().Str("post_id", postID).Str("comment_id", commentID).Msg("comment deleted")
	return nil
}

// findComment loads the post and locates the embedded comment. The ownership
// check always happens against this freshly fetched record.
func (s *CommentService) findComment(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) reload(ctx context.Context, postID string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return newAuthorResolver(s.users).postView(ctx, post)
}
