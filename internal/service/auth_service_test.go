package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stockfolio/internal/auth"
	"stockfolio/internal/model"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", "test-issuer", "test-audience")
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "Str0ngPassw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				m.On("AssignRole", mock.Anything, mock.AnythingOfType("*model.User"), model.RoleUser).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "password too short",
			username:      "bob",
			email:         "bob@example.com",
			password:      "Sh0rt!",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrWeakPassword,
		},
		{
			name:          "password missing character classes",
			username:      "bob",
			email:         "bob@example.com",
			password:      "alllowercasepassword",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrWeakPassword,
		},
		{
			name:     "username already taken",
			username: "taken",
			email:    "new@example.com",
			password: "Str0ngPassw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "taken").Return(&model.User{Username: "taken"}, nil)
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "email already taken",
			username: "new",
			email:    "taken@example.com",
			password: "Str0ngPassw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "new").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, newTestJWTService())
			user, token, err := service.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEmpty(t, token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_NoUserRowOnWeakPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, newTestJWTService())

	_, _, err := service.Register(context.Background(), "eve", "eve@example.com", "weak")

	assert.Equal(t, ErrWeakPassword, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Str0ngPassw0rd!"), 10)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "Str0ngPassw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					Email:        "alice@example.com",
					PasswordHash: string(hashedPassword),
					Roles:        []model.Role{{ID: 2, Name: model.RoleUser}},
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "Str0ngPassw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "WrongPassw0rd!!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					Email:        "alice@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, newTestJWTService())
			user, token, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.NotEmpty(t, token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown username and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_NoUserEnumeration(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Str0ngPassw0rd!"), 10)

	unknownRepo := new(MockUserRepository)
	unknownRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	wrongRepo := new(MockUserRepository)
	wrongRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		Username:     "alice",
		PasswordHash: string(hashedPassword),
	}, nil)

	jwtService := newTestJWTService()
	_, _, errUnknown := NewAuthService(unknownRepo, jwtService).Login(context.Background(), "ghost", "whatever")
	_, _, errWrong := NewAuthService(wrongRepo, jwtService).Login(context.Background(), "alice", "badpassword")

	assert.Equal(t, ErrInvalidCredentials, errUnknown)
	assert.Equal(t, ErrInvalidCredentials, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}
