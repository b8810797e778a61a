package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stockfolio/internal/cache"
	"stockfolio/internal/errors"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
)

// StockService handles stock operations.
type StockService interface {
	List(ctx context.Context, query repository.StockQuery) ([]model.Stock, error)
	Get(ctx context.Context, id uint) (*model.Stock, error)
	Create(ctx context.Context, stock *model.Stock) (*model.Stock, error)
	Update(ctx context.Context, id uint, fields *model.Stock) (*model.Stock, error)
	Delete(ctx context.Context, id uint) error
}

type stockService struct {
	repo  repository.StockRepository
	cache *cache.StockCache
}

// NewStockService creates a new stock service.
func NewStockService(repo repository.StockRepository, cache *cache.StockCache) StockService {
	return &stockService{
		repo:  repo,
		cache: cache,
	}
}

func (s *stockService) List(ctx context.Context, query repository.StockQuery) ([]model.Stock, error) {
	if query.PageNumber < 1 {
		query.PageNumber = 1
	}
	if query.PageSize < 1 {
		query.PageSize = 20
	}
	return s.repo.List(ctx, query)
}

// Get retrieves a stock by ID with caching.
func (s *stockService) Get(ctx context.Context, id uint) (*model.Stock, error) {
	if cached := s.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}

	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStockNotFound
		}
		return nil, err
	}

	s.cache.Set(ctx, stock)
	return stock, nil
}

func (s *stockService) Create(ctx context.Context, stock *model.Stock) (*model.Stock, error) {
	if err := s.repo.Create(ctx, stock); err != nil {
		return nil, fmt.Errorf("create stock: %w", err)
	}
	return stock, nil
}

// Update overwrites all mutable fields of an existing stock.
func (s *stockService) Update(ctx context.Context, id uint, fields *model.Stock) (*model.Stock, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStockNotFound
		}
		return nil, err
	}

	existing.Symbol = fields.Symbol
	existing.CompanyName = fields.CompanyName
	existing.Purchase = fields.Purchase
	existing.LastDiv = fields.LastDiv
	existing.Industry = fields.Industry
	existing.MarketCap = fields.MarketCap

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}

	s.cache.Invalidate(ctx, id)
	return existing, nil
}

// Delete removes the stock and its dependent rows.
func (s *stockService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrStockNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
