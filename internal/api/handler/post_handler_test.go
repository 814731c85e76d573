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

// memPostService is a tiny in-memory ports.PostService so handler tests can
// observe state across calls (delete then list).
type memPostService struct {
	posts  map[string]*ports.PostView
	nextID int
}

func newMemPostService() *memPostService {
	return &memPostService{posts: make(map[string]*ports.PostView)}
}

func (s *memPostService) CreatePost(_ context.Context, authorID, content string) (*ports.PostView, error) {
	s.nextID++
	view := &ports.PostView{
		ID:       fmt.Sprintf("post_%d", s.nextID),
		Author:   ports.AuthorView{ID: authorID},
		Content:  content,
		Comments: []ports.CommentView{},
	}
	s.posts[view.ID] = view
	return view, nil
}

func (s *memPostService) ListPosts(_ context.Context) ([]ports.PostView, error) {
	out := make([]ports.PostView, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (s *memPostService) DeletePost(_ context.Context, actor domain.AuthIdentity, postID string) error {
	if !domain.CanDeletePost(actor) {
		return domain.ErrAdminOnly
	}
	if _, ok := s.posts[postID]; !ok {
		return domain.ErrPostNotFound
	}
	delete(s.posts, postID)
	return nil
}

func deletePost(t *testing.T, e *echo.Echo, h *handler.PostHandler, actor domain.AuthIdentity, postID string) (int, map[string]any) {
	t.Helper()
	rec, c := doJSON(e, http.MethodDelete, "/api/posts/"+postID, "")
	c.SetParamNames("postId")
	c.SetParamValues(postID)
	c.Set(middleware.IdentityKey, actor)
	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, decodeBody(t, rec)
}

func TestPostHandler_Create(t *testing.T) {
	e := newEcho()
	svc := newMemPostService()
	h := handler.NewPostHandler(svc)

	rec, c := doJSON(e, http.MethodPost, "/api/posts", `{"content":"hello"}`)
	c.Set(middleware.IdentityKey, domain.AuthIdentity{ID: "user_a"})
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody(t, rec)
	if resp["content"] != "hello" {
		t.Fatalf("unexpected post: %+v", resp)
	}
}

func TestPostHandler_Create_MissingContent(t *testing.T) {
	e := newEcho()
	h := handler.NewPostHandler(newMemPostService())

	rec, c := doJSON(e, http.MethodPost, "/api/posts", `{}`)
	c.Set(middleware.IdentityKey, domain.AuthIdentity{ID: "user_a"})
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// A non-admin cannot delete a post they own; an admin can delete any post,
// after which the post is gone.
func TestPostHandler_Delete_AdminOnlyFlow(t *testing.T) {
	e := newEcho()
	svc := newMemPostService()
	h := handler.NewPostHandler(svc)

	owner := domain.AuthIdentity{ID: "user_a", IsAdmin: false}
	admin := domain.AuthIdentity{ID: "root", IsAdmin: true}

	post, err := svc.CreatePost(context.Background(), owner.ID, "owned by user_a")
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}

	code, body := deletePost(t, e, h, owner, post.ID)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin owner, got %d", code)
	}
	if body["error"] != "Forbidden: Admins only" {
		t.Fatalf("unexpected body: %+v", body)
	}

	code, body = deletePost(t, e, h, admin, post.ID)
	if code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", code)
	}
	if body["message"] != "Post deleted" {
		t.Fatalf("unexpected body: %+v", body)
	}

	// The post is really gone: deleting again reports not-found.
	code, body = deletePost(t, e, h, admin, post.ID)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", code)
	}
	if body["error"] != "Post not found" {
		t.Fatalf("unexpected body: %+v", body)
	}

	posts, err := svc.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty listing after delete, got %d", len(posts))
	}
}

func TestPostHandler_List(t *testing.T) {
	e := newEcho()
	svc := newMemPostService()
	h := handler.NewPostHandler(svc)

	if _, err := svc.CreatePost(context.Background(), "user_a", "first"); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	rec, c := doJSON(e, http.MethodGet, "/api/posts", "")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
