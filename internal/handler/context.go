package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockfolio/internal/auth"
)

// currentUsername extracts the username claim placed in the context by the
// JWT middleware.
func currentUsername(c echo.Context) (string, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims.Username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims.Username, nil
}
