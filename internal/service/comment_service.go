package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stockfolio/internal/errors"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
)

// CommentService handles comment operations. Mutations are restricted to the
// comment's author.
type CommentService interface {
	List(ctx context.Context) ([]model.Comment, error)
	Get(ctx context.Context, id uint) (*model.Comment, error)
	Create(ctx context.Context, stockID uint, username, title, content string) (*model.Comment, error)
	Update(ctx context.Context, id uint, username, title, content string) (*model.Comment, error)
	Delete(ctx context.Context, id uint, username string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	stockRepo   repository.StockRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(
	commentRepo repository.CommentRepository,
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		stockRepo:   stockRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) List(ctx context.Context) ([]model.Comment, error) {
	return s.commentRepo.List(ctx)
}

func (s *commentService) Get(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

// Create validates the referenced stock and resolves the author before insert.
func (s *commentService) Create(ctx context.Context, stockID uint, username, title, content string) (*model.Comment, error) {
	exists, err := s.stockRepo.Exists(ctx, stockID)
	if err != nil {
		return nil, fmt.Errorf("check stock: %w", err)
	}
	if !exists {
		return nil, errors.ErrStockNotFound
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	// Reference the author by id only: saving the loaded user association
	// would upsert the user and its roles on every insert.
	comment := &model.Comment{
		Title:   title,
		Content: content,
		StockID: stockID,
		UserID:  user.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	comment.User = *user
	return comment, nil
}

// Update overwrites title and content. Only the author may update.
func (s *commentService) Update(ctx context.Context, id uint, username, title, content string) (*model.Comment, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.User.Username != username {
		return nil, errors.ErrNotCommentAuthor
	}

	existing.Title = title
	existing.Content = content
	if err := s.commentRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return existing, nil
}

// Delete removes the comment. Only the author may delete.
func (s *commentService) Delete(ctx context.Context, id uint, username string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.User.Username != username {
		return errors.ErrNotCommentAuthor
	}

	if _, err := s.commentRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCommentNotFound
		}
		return err
	}
	return nil
}
