package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stockfolio/internal/errors"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
	"stockfolio/internal/service"
)

// StockHandler handles stock endpoints.
type StockHandler struct {
	stockService service.StockService
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// ListStocksRequest carries the list query parameters.
type ListStocksRequest struct {
	Symbol       string `query:"symbol"`
	CompanyName  string `query:"companyName"`
	SortBy       string `query:"sortBy"`
	IsDescending bool   `query:"isDescending"`
	PageNumber   int    `query:"pageNumber"`
	PageSize     int    `query:"pageSize"`
}

// StockRequest represents a create or update payload.
type StockRequest struct {
	Symbol      string  `json:"symbol" validate:"required"`
	CompanyName string  `json:"companyName" validate:"required"`
	Purchase    float64 `json:"purchase" validate:"gte=0"`
	LastDiv     float64 `json:"lastDiv" validate:"gte=0"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `json:"marketCap" validate:"gte=0"`
}

func (req *StockRequest) toModel() *model.Stock {
	return &model.Stock{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    decimal.NewFromFloat(req.Purchase),
		LastDiv:     decimal.NewFromFloat(req.LastDiv),
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	}
}

// List returns stocks matching the filter, sorted and paginated.
func (h *StockHandler) List(c echo.Context) error {
	var req ListStocksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	stocks, err := h.stockService.List(c.Request().Context(), repository.StockQuery{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		SortBy:      req.SortBy,
		Descending:  req.IsDescending,
		PageNumber:  req.PageNumber,
		PageSize:    req.PageSize,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, newStockResponses(stocks))
}

// Get returns a single stock with its comments.
func (h *StockHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	stock, err := h.stockService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, newStockResponse(stock))
}

// Create inserts a stock and returns it with the assigned id.
func (h *StockHandler) Create(c echo.Context) error {
	var req StockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stock, err := h.stockService.Create(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, newStockResponse(stock))
}

// Update overwrites all mutable fields of a stock.
func (h *StockHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req StockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stock, err := h.stockService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, newStockResponse(stock))
}

// Delete removes a stock and its dependent comments and portfolio rows.
func (h *StockHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.stockService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
