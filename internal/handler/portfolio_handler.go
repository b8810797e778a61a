package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockfolio/internal/errors"
	"stockfolio/internal/service"
)

// PortfolioHandler handles portfolio endpoints. All routes require auth.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// List returns the caller's held stocks.
func (h *PortfolioHandler) List(c echo.Context) error {
	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	stocks, err := h.portfolioService.ListStocks(c.Request().Context(), username)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, newStockResponses(stocks))
}

// Add puts the stock with the given symbol into the caller's portfolio.
// An unknown symbol is a client error here, not a 404.
func (h *PortfolioHandler) Add(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "symbol is required")
	}

	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	if err := h.portfolioService.Add(c.Request().Context(), username, symbol); err != nil {
		switch err {
		case errors.ErrStockNotFound:
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "STOCK_NOT_FOUND",
			})
		case errors.ErrDuplicateHolding:
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "DUPLICATE_HOLDING",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusCreated)
}

// Remove deletes the holding for the given symbol.
func (h *PortfolioHandler) Remove(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "symbol is required")
	}

	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	if err := h.portfolioService.Remove(c.Request().Context(), username, symbol); err != nil {
		if err == errors.ErrNotInPortfolio {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "NOT_IN_PORTFOLIO",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusOK)
}
