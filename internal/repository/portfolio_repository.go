package repository

import (
	"context"

	"gorm.io/gorm"

	"stockfolio/internal/model"
)

// PortfolioRepository defines portfolio persistence operations.
// Duplicate checks are a caller-level precondition; the composite primary key
// is the structural backstop.
type PortfolioRepository interface {
	ListStocks(ctx context.Context, userID uint) ([]model.Stock, error)
	Create(ctx context.Context, entry *model.Portfolio) error
	Delete(ctx context.Context, userID uint, symbol string) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository builds a GORM-backed portfolio repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// ListStocks returns the stocks the user holds, joined through portfolio rows.
func (r *portfolioRepository) ListStocks(ctx context.Context, userID uint) ([]model.Stock, error) {
	var stocks []model.Stock
	if err := r.db.WithContext(ctx).
		Joins("JOIN portfolios ON portfolios.stock_id = stocks.id").
		Where("portfolios.user_id = ?", userID).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *portfolioRepository) Create(ctx context.Context, entry *model.Portfolio) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Delete removes the row matching the user and the stock whose symbol equals
// the argument case-insensitively.
func (r *portfolioRepository) Delete(ctx context.Context, userID uint, symbol string) error {
	subquery := r.db.Model(&model.Stock{}).Select("id").
		Where("LOWER(symbol) = LOWER(?)", symbol)
	return r.db.WithContext(ctx).
		Where("user_id = ? AND stock_id IN (?)", userID, subquery).
		Delete(&model.Portfolio{}).Error
}
