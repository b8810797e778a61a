package model

import "time"

// Portfolio is the join record associating a user with one held stock.
// The composite key makes holding the same stock twice structurally impossible.
type Portfolio struct {
	UserID    uint      `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	StockID   uint      `json:"stockId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"-"`

	// Relations
	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Stock Stock `json:"-" gorm:"foreignKey:StockID"`
}
