package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock represents a listed security tracked by the application.
type Stock struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Symbol      string          `json:"symbol" gorm:"size:20;not null;index"`
	CompanyName string          `json:"companyName" gorm:"size:255;not null"`
	Purchase    decimal.Decimal `json:"purchase" gorm:"type:decimal(18,2);not null"`
	LastDiv     decimal.Decimal `json:"lastDiv" gorm:"type:decimal(18,2);not null"`
	Industry    string          `json:"industry" gorm:"size:255"`
	MarketCap   int64           `json:"marketCap"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`

	// Relations
	Comments   []Comment   `json:"comments,omitempty" gorm:"foreignKey:StockID"`
	Portfolios []Portfolio `json:"-" gorm:"foreignKey:StockID"`
}
