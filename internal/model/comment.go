package model

import "time"

// Comment is a user-authored note attached to a stock.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:280;not null"`
	Content   string    `json:"content" gorm:"size:280;not null"`
	CreatedOn time.Time `json:"createdOn" gorm:"autoCreateTime"`
	StockID   uint      `json:"stockId" gorm:"not null;index"`
	UserID    uint      `json:"-" gorm:"not null;index"`

	// Relations
	Stock Stock `json:"-" gorm:"foreignKey:StockID"`
	User  User  `json:"-" gorm:"foreignKey:UserID"`
}
