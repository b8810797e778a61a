package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the API rejects the bearer token.
// Callers should discard stored credentials and re-authenticate.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response with a decoded error body.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// AuthUser is the identity returned by register and login.
type AuthUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Stock mirrors the API stock shape.
type Stock struct {
	ID          uint      `json:"id"`
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"companyName"`
	Purchase    float64   `json:"purchase"`
	LastDiv     float64   `json:"lastDiv"`
	Industry    string    `json:"industry"`
	MarketCap   int64     `json:"marketCap"`
	Comments    []Comment `json:"comments,omitempty"`
}

// Comment mirrors the API comment shape.
type Comment struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
	CreatedBy string    `json:"createdBy"`
	StockID   uint      `json:"stockId"`
}

// StockQuery carries the list query parameters.
type StockQuery struct {
	Symbol       string
	CompanyName  string
	SortBy       string
	IsDescending bool
	PageNumber   int
	PageSize     int
}

// CreateStockPayload is the stock creation body.
type CreateStockPayload struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Purchase    float64 `json:"purchase"`
	LastDiv     float64 `json:"lastDiv"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `json:"marketCap"`
}

// Client is a typed HTTP client for the stockfolio API. A token, once set,
// is attached to every request as a bearer credential.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token used for authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates an account and returns the issued identity.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthUser, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var out AuthUser
	if err := c.do(ctx, http.MethodPost, "/api/account/register", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns the issued identity.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthUser, error) {
	body := map[string]string{"username": username, "password": password}
	var out AuthUser
	if err := c.do(ctx, http.MethodPost, "/api/account/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStocks returns stocks matching the query.
func (c *Client) ListStocks(ctx context.Context, query StockQuery) ([]Stock, error) {
	params := url.Values{}
	if query.Symbol != "" {
		params.Set("symbol", query.Symbol)
	}
	if query.CompanyName != "" {
		params.Set("companyName", query.CompanyName)
	}
	if query.SortBy != "" {
		params.Set("sortBy", query.SortBy)
		params.Set("isDescending", strconv.FormatBool(query.IsDescending))
	}
	if query.PageNumber > 0 {
		params.Set("pageNumber", strconv.Itoa(query.PageNumber))
	}
	if query.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(query.PageSize))
	}

	var out []Stock
	if err := c.do(ctx, http.MethodGet, "/api/stock", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStock returns a single stock with its comments.
func (c *Client) GetStock(ctx context.Context, id uint) (*Stock, error) {
	var out Stock
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/stock/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStock inserts a stock and returns it with the assigned id.
func (c *Client) CreateStock(ctx context.Context, payload CreateStockPayload) (*Stock, error) {
	var out Stock
	if err := c.do(ctx, http.MethodPost, "/api/stock", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Portfolio returns the caller's held stocks.
func (c *Client) Portfolio(ctx context.Context) ([]Stock, error) {
	var out []Stock
	if err := c.do(ctx, http.MethodGet, "/api/portfolio", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToPortfolio adds the stock with the given symbol to the caller's portfolio.
func (c *Client) AddToPortfolio(ctx context.Context, symbol string) error {
	params := url.Values{"symbol": {symbol}}
	return c.do(ctx, http.MethodPost, "/api/portfolio", params, nil, nil)
}

// RemoveFromPortfolio removes the holding for the given symbol.
func (c *Client) RemoveFromPortfolio(ctx context.Context, symbol string) error {
	params := url.Values{"symbol": {symbol}}
	return c.do(ctx, http.MethodDelete, "/api/portfolio", params, nil, nil)
}

// Comments returns every comment.
func (c *Client) Comments(ctx context.Context) ([]Comment, error) {
	var out []Comment
	if err := c.do(ctx, http.MethodGet, "/api/comment", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment attaches a comment to a stock.
func (c *Client) CreateComment(ctx context.Context, stockID uint, title, content string) (*Comment, error) {
	body := map[string]string{"title": title, "content": content}
	var out Comment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/comment/%d", stockID), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes the caller's comment.
func (c *Client) DeleteComment(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/comment/%d", id), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if data, err := io.ReadAll(resp.Body); err == nil {
			apiErr.Message, apiErr.Code = decodeErrorBody(data)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeErrorBody unwraps the server's {"message": ...} envelope, where the
// inner value is either a plain string or an {error, code} object.
func decodeErrorBody(data []byte) (message, code string) {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Message) == 0 {
		return strings.TrimSpace(string(data)), ""
	}

	var structured struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(envelope.Message, &structured); err == nil && structured.Error != "" {
		return structured.Error, structured.Code
	}

	var plain string
	if err := json.Unmarshal(envelope.Message, &plain); err == nil {
		return plain, ""
	}
	return strings.TrimSpace(string(envelope.Message)), ""
}
