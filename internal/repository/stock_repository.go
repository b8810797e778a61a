package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"stockfolio/internal/model"
)

// StockQuery carries filter, sort and pagination options for stock listings.
type StockQuery struct {
	Symbol      string
	CompanyName string
	SortBy      string
	Descending  bool
	PageNumber  int
	PageSize    int
}

// StockRepository defines stock persistence operations.
type StockRepository interface {
	List(ctx context.Context, query StockQuery) ([]model.Stock, error)
	FindByID(ctx context.Context, id uint) (*model.Stock, error)
	FindBySymbol(ctx context.Context, symbol string) (*model.Stock, error)
	Create(ctx context.Context, stock *model.Stock) error
	Update(ctx context.Context, stock *model.Stock) error
	Delete(ctx context.Context, id uint) (*model.Stock, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository builds a GORM-backed stock repository.
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

// List applies substring filters, optional single-key sort and pagination.
// Both filters are AND-ed when present. Unrecognized sort keys leave the
// order unspecified.
func (r *stockRepository) List(ctx context.Context, query StockQuery) ([]model.Stock, error) {
	tx := r.db.WithContext(ctx).Model(&model.Stock{}).Preload("Comments")

	if query.Symbol != "" {
		tx = tx.Where("symbol LIKE ?", "%"+query.Symbol+"%")
	}
	if query.CompanyName != "" {
		tx = tx.Where("company_name LIKE ?", "%"+query.CompanyName+"%")
	}

	if query.SortBy != "" {
		var column string
		switch {
		case strings.EqualFold(query.SortBy, "symbol"):
			column = "symbol"
		case strings.EqualFold(query.SortBy, "companyName"):
			column = "company_name"
		}
		if column != "" {
			if query.Descending {
				column += " DESC"
			}
			tx = tx.Order(column)
		}
	}

	offset := (query.PageNumber - 1) * query.PageSize

	var stocks []model.Stock
	if err := tx.Offset(offset).Limit(query.PageSize).Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByID returns the stock with its comments eagerly loaded.
func (r *stockRepository) FindByID(ctx context.Context, id uint) (*model.Stock, error) {
	var stock model.Stock
	if err := r.db.WithContext(ctx).Preload("Comments").First(&stock, id).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// FindBySymbol matches the symbol case-insensitively.
func (r *stockRepository) FindBySymbol(ctx context.Context, symbol string) (*model.Stock, error) {
	var stock model.Stock
	if err := r.db.WithContext(ctx).
		Where("LOWER(symbol) = LOWER(?)", symbol).
		First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *stockRepository) Create(ctx context.Context, stock *model.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *stockRepository) Update(ctx context.Context, stock *model.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// Delete removes the stock together with its comments and portfolio rows in
// one transaction, returning the removed entity.
func (r *stockRepository) Delete(ctx context.Context, id uint) (*model.Stock, error) {
	var stock model.Stock
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stock, id).Error; err != nil {
			return err
		}
		if err := tx.Where("stock_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stock_id = ?", id).Delete(&model.Portfolio{}).Error; err != nil {
			return err
		}
		return tx.Delete(&stock).Error
	})
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *stockRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Stock{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
