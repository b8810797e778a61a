package handler

import (
	"time"

	"stockfolio/internal/model"
)

// StockResponse is the API shape of a stock.
type StockResponse struct {
	ID          uint              `json:"id"`
	Symbol      string            `json:"symbol"`
	CompanyName string            `json:"companyName"`
	Purchase    float64           `json:"purchase"`
	LastDiv     float64           `json:"lastDiv"`
	Industry    string            `json:"industry"`
	MarketCap   int64             `json:"marketCap"`
	Comments    []CommentResponse `json:"comments,omitempty"`
}

// CommentResponse is the API shape of a comment.
type CommentResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
	CreatedBy string    `json:"createdBy"`
	StockID   uint      `json:"stockId"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func newStockResponse(stock *model.Stock) StockResponse {
	resp := StockResponse{
		ID:          stock.ID,
		Symbol:      stock.Symbol,
		CompanyName: stock.CompanyName,
		Purchase:    stock.Purchase.InexactFloat64(),
		LastDiv:     stock.LastDiv.InexactFloat64(),
		Industry:    stock.Industry,
		MarketCap:   stock.MarketCap,
	}
	for i := range stock.Comments {
		resp.Comments = append(resp.Comments, newCommentResponse(&stock.Comments[i]))
	}
	return resp
}

func newStockResponses(stocks []model.Stock) []StockResponse {
	resps := make([]StockResponse, 0, len(stocks))
	for i := range stocks {
		resps = append(resps, newStockResponse(&stocks[i]))
	}
	return resps
}

func newCommentResponse(comment *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Title:     comment.Title,
		Content:   comment.Content,
		CreatedOn: comment.CreatedOn,
		CreatedBy: comment.User.Username,
		StockID:   comment.StockID,
	}
}

func newCommentResponses(comments []model.Comment) []CommentResponse {
	resps := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		resps = append(resps, newCommentResponse(&comments[i]))
	}
	return resps
}
