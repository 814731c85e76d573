package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pulsewire/social-api/internal/api/handler"
	"github.com/pulsewire/social-api/internal/api/middleware"
	"github.com/pulsewire/social-api/internal/core/domain"
	"github.com/pulsewire/social-api/internal/core/ports"
)

// memCommentService keeps one post's comments in memory with real ownership
// checks, so the handler scenarios match end-to-end behavior.
type memCommentService struct {
	postID   string
	comments []ports.CommentView
	nextID   int
}

func newMemCommentService(postID string) *memCommentService {
	return &memCommentService{postID: postID}
}

func (s *memCommentService) view() *ports.PostView {
	return &ports.PostView{ID: s.postID, Comments: append([]ports.CommentView(nil), s.comments...)}
}

func (s *memCommentService) find(commentID string) *ports.CommentView {
	for i := range s.comments {
		if s.comments[i].ID == commentID {
			return &s.comments[i]
		}
	}
	return nil
}

func (s *memCommentService) Add(_ context.Context, actorID, postID, text string) (*ports.PostView, error) {
	if postID != s.postID {
		return nil, domain.ErrPostNotFound
	}
	s.nextID++
	s.comments = append(s.comments, ports.CommentView{
		ID:     fmt.Sprintf("comment_%d", s.nextID),
		Author: ports.AuthorView{ID: actorID},
		Text:   text,
	})
	return s.view(), nil
}

func (s *memCommentService) ListByPost(_ context.Context, postID string) ([]ports.CommentView, error) {
	if postID != s.postID {
		return nil, domain.ErrPostNotFound
	}
	return append([]ports.CommentView(nil), s.comments...), nil
}

func (s *memCommentService) Update(_ context.Context, actorID, postID, commentID, text string) (*ports.PostView, error) {
	if postID != s.postID {
		return nil, domain.ErrPostNotFound
	}
	c := s.find(commentID)
	if c == nil {
		return nil, domain.ErrCommentNotFound
	}
	if !domain.CanModifyComment(c.Author.ID, actorID) {
		return nil, domain.ErrNotAuthorized
	}
	c.Text = text
	return s.view(), nil
}

func (s *memCommentService) Delete(_ context.Context, actorID, postID, commentID string) error {
	if postID != s.postID {
		return domain.ErrPostNotFound
	}
	c := s.find(commentID)
	if c == nil {
		return domain.ErrCommentNotFound
	}
	if !domain.CanModifyComment(c.Author.ID, actorID) {
		return domain.ErrNotAuthorized
	}
	for i := range s.comments {
		if s.comments[i].ID == commentID {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			break
		}
	}
	return nil
}

func updateComment(t *testing.T, e *echo.Echo, h *handler.CommentHandler, actor domain.AuthIdentity, postID, commentID, text string) (int, map[string]any) {
	t.Helper()
	rec, c := doJSON(e, http.MethodPut, "/api/comments/"+postID+"/"+commentID,
		fmt.Sprintf(`{"text":%q}`, text))
	c.SetParamNames("postId", "commentId")
	c.SetParamValues(postID, commentID)
	c.Set(middleware.IdentityKey, actor)
	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, decodeBody(t, rec)
}

// User A's comment: user B gets 403 "Not authorized", user A gets 200 with
// the updated text.
func TestCommentHandler_Update_OwnershipScenario(t *testing.T) {
	e := newEcho()
	svc := newMemCommentService("post_1")
	h := handler.NewCommentHandler(svc)

	userA := domain.AuthIdentity{ID: "user_a"}
	userB := domain.AuthIdentity{ID: "user_b"}

	view, err := svc.Add(context.Background(), userA.ID, "post_1", "original")
	if err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	commentID := view.Comments[0].ID

	code, body := updateComment(t, e, h, userB, "post_1", commentID, "hijacked")
	if code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", code)
	}
	if body["error"] != "Not authorized" {
		t.Fatalf("unexpected body: %+v", body)
	}

	code, body = updateComment(t, e, h, userA, "post_1", commentID, "edited")
	if code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", code)
	}
	comments, ok := body["comments"].([]any)
	if !ok || len(comments) != 1 {
		t.Fatalf("expected one comment in response: %+v", body)
	}
	if comments[0].(map[string]any)["text"] != "edited" {
		t.Fatalf("expected edited text: %+v", comments[0])
	}
}

func TestCommentHandler_Add(t *testing.T) {
	e := newEcho()
	svc := newMemCommentService("post_1")
	h := handler.NewCommentHandler(svc)

	rec, c := doJSON(e, http.MethodPost, "/api/comments/post_1", `{"text":"hello"}`)
	c.SetParamNames("postId")
	c.SetParamValues("post_1")
	c.Set(middleware.IdentityKey, domain.AuthIdentity{ID: "user_b"})
	if err := h.Add(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCommentHandler_Add_PostMissing(t *testing.T) {
	e := newEcho()
	h := handler.NewCommentHandler(newMemCommentService("post_1"))

	rec, c := doJSON(e, http.MethodPost, "/api/comments/other", `{"text":"hello"}`)
	c.SetParamNames("postId")
	c.SetParamValues("other")
	c.Set(middleware.IdentityKey, domain.AuthIdentity{ID: "user_b"})
	if err := h.Add(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Post not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCommentHandler_Delete_OwnershipScenario(t *testing.T) {
	e := newEcho()
	svc := newMemCommentService("post_1")
	h := handler.NewCommentHandler(svc)

	view, err := svc.Add(context.Background(), "user_a", "post_1", "mine")
	if err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	commentID := view.Comments[0].ID

	del := func(actor domain.AuthIdentity) (int, map[string]any) {
		rec, c := doJSON(e, http.MethodDelete, "/api/comments/post_1/"+commentID, "")
		c.SetParamNames("postId", "commentId")
		c.SetParamValues("post_1", commentID)
		c.Set(middleware.IdentityKey, actor)
		if err := h.Delete(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code, decodeBody(t, rec)
	}

	code, body := del(domain.AuthIdentity{ID: "user_b"})
	if code != http.StatusForbidden || body["error"] != "Not authorized" {
		t.Fatalf("expected 403 Not authorized, got %d %+v", code, body)
	}

	code, body = del(domain.AuthIdentity{ID: "user_a"})
	if code != http.StatusOK || body["message"] != "Comment deleted" {
		t.Fatalf("expected 200 Comment deleted, got %d %+v", code, body)
	}
}

func TestCommentHandler_List(t *testing.T) {
	e := newEcho()
	svc := newMemCommentService("post_1")
	h := handler.NewCommentHandler(svc)

	if _, err := svc.Add(context.Background(), "user_a", "post_1", "first"); err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	rec, c := doJSON(e, http.MethodGet, "/api/comments/post_1", "")
	c.SetParamNames("postId")
	c.SetParamValues("post_1")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
