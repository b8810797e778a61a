package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrStockNotFound is returned when a stock is not found.
	ErrStockNotFound = errors.New("stock not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrUserNotFound is returned when a user cannot be resolved.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateHolding is returned when a stock is already in the portfolio.
	ErrDuplicateHolding = errors.New("cannot add stock to portfolio twice")
	// ErrNotInPortfolio is returned when a symbol is not held by the user.
	ErrNotInPortfolio = errors.New("stock not in your portfolio")
	// ErrNotCommentAuthor is returned when a caller mutates someone else's comment.
	ErrNotCommentAuthor = errors.New("not the comment author")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrStockNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "STOCK_NOT_FOUND")
	case ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrDuplicateHolding:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_HOLDING")
	case ErrNotInPortfolio:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_IN_PORTFOLIO")
	case ErrNotCommentAuthor:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_COMMENT_AUTHOR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
