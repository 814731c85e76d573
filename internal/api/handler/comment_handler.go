package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewire/social-api/internal/api/metrics"
	"github.com/pulsewire/social-api/internal/core/domain"
	"github.com/pulsewire/social-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

// Add handles POST /api/comments/:postId (and the legacy
// POST /api/posts/:postId/comment alias). Returns the updated post.
//
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string          true  "Post id"
// @Param        body    body      commentRequest  true  "Comment text"
// @Success      201     {object}  ports.PostView
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/comments/{postId} [post]
func (h *CommentHandler) Add(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Add(c.Request().Context(), actor.ID, c.Param("postId"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// List handles GET /api/comments/:postId. Public, like post listing.
//
// @Summary      List comments of a post
// @Tags         comments
// @Produce      json
// @Param        postId  path     string  true  "Post id"
// @Success      200     {array}  ports.CommentView
// @Failure      404     {object} errorResponse
// @Router       /api/comments/{postId} [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Update handles PUT /api/comments/:postId/:commentId. Only the comment's
// author may edit it; admins get no override here.
//
// @Summary      Update own comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string          true  "Post id"
// @Param        commentId  path      string          true  "Comment id"
// @Param        body       body      commentRequest  true  "New text"
// @Success      200        {object}  ports.PostView
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/comments/{postId}/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), actor.ID, c.Param("postId"), c.Param("commentId"), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthzDenialsTotal.WithLabelValues("comment_modify").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/comments/:postId/:commentId.
//
// @Summary      Delete own comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string  true  "Post id"
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  messageResponse
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/comments/{postId}/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor.ID, c.Param("postId"), c.Param("commentId")); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthzDenialsTotal.WithLabelValues("comment_modify").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Comment deleted"})
}
