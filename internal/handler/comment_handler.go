package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skolmaten/internal/policy"
	"skolmaten/internal/service"
)

// CommentHandler serves the per-day comment threads.
type CommentHandler struct {
	comments service.CommentService
	guard    *policy.Guard
}

// NewCommentHandler creates a handler layer.
func NewCommentHandler(comments service.CommentService, guard *policy.Guard) *CommentHandler {
	return &CommentHandler{comments: comments, guard: guard}
}

// CommentRequest carries the text of a new comment.
type CommentRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

// DeleteCommentResponse tells whether the comment was marked or removed.
type DeleteCommentResponse struct {
	ID      int64 `json:"id"`
	Removed bool  `json:"removed"`
}

// ListAll godoc
// @Summary Every comment on every day
// @Tags comments
// @Produce json
// @Success 200 {array} model.CommentView
// @Router /comments [get]
func (h *CommentHandler) ListAll(c echo.Context) error {
	comments, err := h.comments.ListAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// ListForDay godoc
// @Summary The comment thread of one day
// @Tags comments
// @Produce json
// @Param year path int true "Year"
// @Param week path int true "ISO week"
// @Param weekday path int true "1 = Monday .. 5 = Friday"
// @Success 200 {array} model.CommentView
// @Failure 400 {object} errors.ErrorResponse
// @Router /comments/{year}/{week}/{weekday} [get]
func (h *CommentHandler) ListForDay(c echo.Context) error {
	year, week, weekday, err := dayParams(c)
	if err != nil {
		return err
	}
	comments, err := h.comments.ListForDay(c.Request().Context(), year, week, weekday)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Add godoc
// @Summary Comment on a day
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param week path int true "ISO week"
// @Param weekday path int true "1 = Monday .. 5 = Friday"
// @Param request body CommentRequest true "Comment"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /comments/{year}/{week}/{weekday} [post]
func (h *CommentHandler) Add(c echo.Context) error {
	year, week, weekday, err := dayParams(c)
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	comment, err := h.guard.AddComment(c.Request().Context(), CurrentIdentity(c), year, week, weekday, req.Comment)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// Delete godoc
// @Summary Delete a comment
// @Description A live comment is replaced by a deleted marker; deleting it again removes it.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} DeleteCommentResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	removed, err := h.guard.DeleteComment(c.Request().Context(), CurrentIdentity(c), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DeleteCommentResponse{ID: id, Removed: removed})
}
