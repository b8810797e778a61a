package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"stockfolio/internal/errors"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
)

// PortfolioService handles portfolio operations for the authenticated user.
type PortfolioService interface {
	ListStocks(ctx context.Context, username string) ([]model.Stock, error)
	Add(ctx context.Context, username, symbol string) error
	Remove(ctx context.Context, username, symbol string) error
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	stockRepo     repository.StockRepository
	userRepo      repository.UserRepository
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(
	portfolioRepo repository.PortfolioRepository,
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		stockRepo:     stockRepo,
		userRepo:      userRepo,
	}
}

func (s *portfolioService) resolveUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return user, nil
}

// ListStocks returns the stocks the user currently holds.
func (s *portfolioService) ListStocks(ctx context.Context, username string) ([]model.Stock, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.portfolioRepo.ListStocks(ctx, user.ID)
}

// Add puts the stock with the given symbol into the user's portfolio.
// The stock must exist and must not already be held.
func (s *portfolioService) Add(ctx context.Context, username, symbol string) error {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	stock, err := s.stockRepo.FindBySymbol(ctx, symbol)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrStockNotFound
		}
		return fmt.Errorf("find stock: %w", err)
	}

	held, err := s.portfolioRepo.ListStocks(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}
	for _, h := range held {
		if strings.EqualFold(h.Symbol, symbol) {
			return errors.ErrDuplicateHolding
		}
	}

	entry := &model.Portfolio{
		UserID:  user.ID,
		StockID: stock.ID,
	}
	if err := s.portfolioRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("create portfolio entry: %w", err)
	}
	return nil
}

// Remove deletes the holding for the given symbol. The portfolio must contain
// exactly one matching row, otherwise the symbol is reported as not held.
func (s *portfolioService) Remove(ctx context.Context, username, symbol string) error {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	held, err := s.portfolioRepo.ListStocks(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	matches := 0
	for _, h := range held {
		if strings.EqualFold(h.Symbol, symbol) {
			matches++
		}
	}
	if matches != 1 {
		return errors.ErrNotInPortfolio
	}

	return s.portfolioRepo.Delete(ctx, user.ID, symbol)
}
