package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewire/social-api/internal/api/metrics"
	"github.com/pulsewire/social-api/internal/core/domain"
	"github.com/pulsewire/social-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Content string `json:"content" validate:"required"`
}

// messageResponse is the envelope for plain confirmation messages.
type messageResponse struct {
	Message string `json:"message"`
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  ports.PostView
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.CreatePost(c.Request().Context(), actor.ID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// List handles GET /api/posts. Listing is public: no token required.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  ports.PostView
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Delete handles DELETE /api/posts/:postId. Admin-only, regardless of who
// owns the post.
//
// @Summary      Delete a post (admin only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  messageResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/posts/{postId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), actor, c.Param("postId")); err != nil {
		if errors.Is(err, domain.ErrAdminOnly) {
			metrics.AuthzDenialsTotal.WithLabelValues("post_delete").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted"})
}
