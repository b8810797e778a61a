package service

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stockfolio/internal/auth"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 12
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	// Unknown username and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already taken")
	// ErrWeakPassword is returned when the password fails the complexity rules.
	ErrWeakPassword = errors.New("password must be at least 12 characters with upper, lower, digit and special characters")
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register validates the password, rejects taken identities, stores the user
// with the default role and issues a signed token.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if !passwordMeetsComplexity(password) {
		return nil, "", ErrWeakPassword
	}

	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, "", ErrUsernameTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check username: %w", err)
	}

	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	if err := s.userRepo.AssignRole(ctx, user, model.RoleUser); err != nil {
		return nil, "", fmt.Errorf("assign default role: %w", err)
	}

	token, err := s.jwtService.Generate(user.Username, user.Email, []string{model.RoleUser})
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a signed token with the user's roles.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.Username, user.Email, user.RoleNames())
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// passwordMeetsComplexity enforces the registration password rules:
// at least 12 characters containing upper, lower, digit and special.
func passwordMeetsComplexity(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}
