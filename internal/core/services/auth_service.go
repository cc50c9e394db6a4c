package services

import (
	"context"
	"errors"

	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/adapters/persistence/repositories"
	"jobhub-backend/internal/config"
	"jobhub-backend/internal/core/domain"
	"jobhub-backend/internal/pkg/jwt"
	"jobhub-backend/internal/pkg/logger"
	"jobhub-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles registration, credential verification and the
// token lifecycle. Tokens are stateless: nothing is persisted and a
// rotated-out refresh token stays valid until its expiry. That is a
// known weakness (no reuse detection), kept deliberately.
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// TokenPair represents an access and refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a user and its role extension atomically.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if !models.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}
	if !password.CheckStrength(input.Password) {
		return nil, domain.ErrWeakPassword
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashed,
		Role:      input.Role,
		Status:    models.StatusActive,
		Extension: models.NewExtension(input.Role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	logger.Get().Info().
		Uint("user_id", user.ID).
		Str("role", user.Role).
		Msg("user registered")

	return user, nil
}

// Login verifies credentials and mints a token pair. A missing user, a
// non-active account and a wrong password all collapse into the same
// ErrAuthFailure so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrAuthFailure
		}
		return nil, nil, err
	}

	if !user.IsActive() {
		return nil, nil, domain.ErrAuthFailure
	}

	if !password.Verify(rawPassword, user.Password) {
		return nil, nil, domain.ErrAuthFailure
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	logger.Get().Info().Uint("user_id", user.ID).Msg("user logged in")

	return user, pair, nil
}

// Refresh rotates the token pair: a valid, non-expired refresh token
// yields a new access token and a new refresh token for the same
// subject.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error) {
	claims, err := jwt.Validate(refreshToken, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, nil, domain.ErrTokenExpired
		}
		return nil, nil, domain.ErrTokenInvalid
	}
	if claims.TokenType != jwt.TypeRefresh {
		return nil, nil, domain.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrAuthFailure
		}
		return nil, nil, err
	}
	if !user.IsActive() {
		return nil, nil, domain.ErrAuthFailure
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	logger.Get().Debug().Uint("user_id", user.ID).Msg("token pair rotated")

	return user, pair, nil
}

// ValidateToken verifies a raw token against the signing secret.
func (s *AuthService) ValidateToken(raw string) (*jwt.Claims, error) {
	return jwt.Validate(raw, s.cfg.JWT.Secret)
}

// GetUserByID resolves a user with its extension attached.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issuePair(userID uint) (*TokenPair, error) {
	access, err := jwt.GenerateAccessToken(userID, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefreshToken(userID, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
