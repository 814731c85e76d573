package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pulsewire/social-api/internal/core/domain"
)

type commentFixture struct {
	users    *stubUserRepo
	posts    *stubPostRepo
	svc      *CommentService
	aliceID  string
	bobID    string
	postID   string
}

// newCommentFixture seeds two users and one post by Alice.
func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	users := newStubUserRepo()
	posts := newStubPostRepo()

	f := &commentFixture{
		users: users,
		posts: posts,
		svc:   NewCommentService(posts, users, zerolog.Nop()),
	}
	f.aliceID = seedUser(t, users, "Alice", "alice@example.com", false)
	f.bobID = seedUser(t, users, "Bob", "bob@example.com", false)

	post, err := posts.Create(context.Background(), &domain.Post{AuthorID: f.aliceID, Content: "a post"})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	f.postID = post.ID
	return f
}

func (f *commentFixture) addComment(t *testing.T, authorID, text string) string {
	t.Helper()
	view, err := f.svc.Add(context.Background(), authorID, f.postID, text)
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	return view.Comments[len(view.Comments)-1].ID
}

func TestCommentService_Add(t *testing.T) {
	f := newCommentFixture(t)

	view, err := f.svc.Add(context.Background(), f.bobID, f.postID, "nice post")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(view.Comments) != 1 {
		t.Fatalf("expected one comment, got %d", len(view.Comments))
	}
	if view.Comments[0].Author.Name != "Bob" || view.Comments[0].Text != "nice post" {
		t.Fatalf("unexpected comment: %+v", view.Comments[0])
	}
}

func TestCommentService_Add_BlankText(t *testing.T) {
	f := newCommentFixture(t)

	if _, err := f.svc.Add(context.Background(), f.bobID, f.postID, "  "); !errors.Is(err, domain.ErrCommentTextRequired) {
		t.Fatalf("expected ErrCommentTextRequired, got %v", err)
	}
}

func TestCommentService_Add_PostMissing(t *testing.T) {
	f := newCommentFixture(t)

	if _, err := f.svc.Add(context.Background(), f.bobID, "missing", "hello"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Update_OwnerSucceeds(t *testing.T) {
	f := newCommentFixture(t)
	commentID := f.addComment(t, f.aliceID, "original")

	view, err := f.svc.Update(context.Background(), f.aliceID, f.postID, commentID, "edited")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if view.Comments[0].Text != "edited" {
		t.Fatalf("expected edited text, got %q", view.Comments[0].Text)
	}
}

// Bob cannot edit Alice's comment; being an admin would not help either.
func TestCommentService_Update_NonOwnerDenied(t *testing.T) {
	f := newCommentFixture(t)
	commentID := f.addComment(t, f.aliceID, "original")

	if _, err := f.svc.Update(context.Background(), f.bobID, f.postID, commentID, "hijacked"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	post, err := f.posts.FindByID(context.Background(), f.postID)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if post.Comments[0].Text != "original" {
		t.Fatalf("comment must be unchanged after denied update, got %q", post.Comments[0].Text)
	}
}

func TestCommentService_Update_CommentMissing(t *testing.T) {
	f := newCommentFixture(t)

	if _, err := f.svc.Update(context.Background(), f.aliceID, f.postID, "missing", "x"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

// staleCommentRepo serves reads that still contain a comment the store has
// already dropped, modelling a comment removed between the ownership read and
// the write.
type staleCommentRepo struct {
	*stubPostRepo
	stale domain.Comment
}

func (r *staleCommentRepo) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	post, err := r.stubPostRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.FindComment(r.stale.ID) == nil {
		post.Comments = append(post.Comments, r.stale)
	}
	return post, nil
}

// A comment that disappears after the ownership read must surface as
// not-found, never as a silent no-op.
func TestCommentService_Update_CommentVanishedAfterRead(t *testing.T) {
	f := newCommentFixture(t)
	commentID := f.addComment(t, f.aliceID, "going away")

	post, err := f.posts.FindByID(context.Background(), f.postID)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	stale := *post.FindComment(commentID)
	if err := f.posts.DeleteComment(context.Background(), f.postID, commentID); err != nil {
		t.Fatalf("drop comment: %v", err)
	}

	svc := NewCommentService(&staleCommentRepo{stubPostRepo: f.posts, stale: stale}, f.users, zerolog.Nop())
	if _, err := svc.Update(context.Background(), f.aliceID, f.postID, commentID, "too late"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCommentService_Delete_OwnerSucceeds(t *testing.T) {
	f := newCommentFixture(t)
	commentID := f.addComment(t, f.aliceID, "to delete")

	if err := f.svc.Delete(context.Background(), f.aliceID, f.postID, commentID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	comments, err := f.svc.ListByPost(context.Background(), f.postID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected no comments after delete, got %d", len(comments))
	}
}

func TestCommentService_Delete_NonOwnerDenied(t *testing.T) {
	f := newCommentFixture(t)
	commentID := f.addComment(t, f.aliceID, "keep me")

	if err := f.svc.Delete(context.Background(), f.bobID, f.postID, commentID); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestCommentService_ListByPost(t *testing.T) {
	f := newCommentFixture(t)
	f.addComment(t, f.aliceID, "first")
	f.addComment(t, f.bobID, "second")

	comments, err := f.svc.ListByPost(context.Background(), f.postID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected two comments, got %d", len(comments))
	}
	if comments[0].Author.Name != "Alice" || comments[1].Author.Name != "Bob" {
		t.Fatalf("authors not resolved: %+v", comments)
	}
}
