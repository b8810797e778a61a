package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"stockfolio/internal/errors"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
)

func TestStockService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockStockRepository)
		repo.On("FindByID", mock.Anything, uint(3)).Return(&model.Stock{ID: 3, Symbol: "AAPL"}, nil)

		service := NewStockService(repo, nil)
		stock, err := service.Get(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, "AAPL", stock.Symbol)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockStockRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewStockService(repo, nil)
		stock, err := service.Get(context.Background(), 99)

		assert.Equal(t, errors.ErrStockNotFound, err)
		assert.Nil(t, stock)
	})
}

func TestStockService_List_DefaultsPagination(t *testing.T) {
	repo := new(MockStockRepository)
	repo.On("List", mock.Anything, repository.StockQuery{PageNumber: 1, PageSize: 20}).
		Return([]model.Stock{}, nil)

	service := NewStockService(repo, nil)
	_, err := service.List(context.Background(), repository.StockQuery{})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestStockService_Update(t *testing.T) {
	t.Run("overwrites all mutable fields", func(t *testing.T) {
		existing := &model.Stock{
			ID:          3,
			Symbol:      "AAPL",
			CompanyName: "Apple",
			Purchase:    decimal.NewFromInt(100),
			MarketCap:   1000,
		}

		repo := new(MockStockRepository)
		repo.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Stock")).Return(nil)

		service := NewStockService(repo, nil)
		updated, err := service.Update(context.Background(), 3, &model.Stock{
			Symbol:      "AAPL",
			CompanyName: "Apple Inc.",
			Purchase:    decimal.NewFromInt(150),
			LastDiv:     decimal.NewFromFloat(0.5),
			Industry:    "Tech",
			MarketCap:   2000000,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Apple Inc.", updated.CompanyName)
		assert.True(t, updated.Purchase.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, int64(2000000), updated.MarketCap)
		repo.AssertExpectations(t)
	})

	t.Run("missing stock", func(t *testing.T) {
		repo := new(MockStockRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewStockService(repo, nil)
		_, err := service.Update(context.Background(), 99, &model.Stock{Symbol: "X"})

		assert.Equal(t, errors.ErrStockNotFound, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestStockService_Delete(t *testing.T) {
	t.Run("missing stock", func(t *testing.T) {
		repo := new(MockStockRepository)
		repo.On("Delete", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewStockService(repo, nil)
		err := service.Delete(context.Background(), 99)

		assert.Equal(t, errors.ErrStockNotFound, err)
	})

	t.Run("success", func(t *testing.T) {
		repo := new(MockStockRepository)
		repo.On("Delete", mock.Anything, uint(3)).Return(&model.Stock{ID: 3}, nil)

		service := NewStockService(repo, nil)
		err := service.Delete(context.Background(), 3)

		assert.NoError(t, err)
	})
}
