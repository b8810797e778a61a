package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"stockfolio/internal/errors"
	"stockfolio/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest represents a create or update payload.
type CommentRequest struct {
	Title   string `json:"title" validate:"required,min=5,max=280"`
	Content string `json:"content" validate:"required,min=5,max=280"`
}

// List returns every comment with its author.
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.commentService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCommentResponses(comments))
}

// Get returns a single comment.
func (h *CommentHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCommentResponse(comment))
}

// Create attaches a comment to a stock on behalf of the caller.
func (h *CommentHandler) Create(c echo.Context) error {
	stockID, err := strconv.ParseUint(c.Param("stockId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid stock id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Request().Context(), uint(stockID), username, req.Title, req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, newCommentResponse(comment))
}

// Update overwrites the title and content of the caller's comment.
func (h *CommentHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.Update(c.Request().Context(), id, username, req.Title, req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, newCommentResponse(comment))
}

// Delete removes the caller's comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), id, username); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusOK)
}
