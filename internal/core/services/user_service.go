package services

import (
	"context"
	"errors"

	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/adapters/persistence/repositories"
	"jobhub-backend/internal/core/authz"
	"jobhub-backend/internal/core/domain"
	"jobhub-backend/internal/pkg/logger"
	"jobhub-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles user views, sparse updates and the account
// lifecycle transitions.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput is the sparse self-update payload. A password
// field routes through the strength policy and the hasher.
type UpdateProfileInput struct {
	Name     *string `json:"name" validate:"omitempty,max=128"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
}

// ListUsersOutput is the paginated listing payload.
type ListUsersOutput struct {
	Users []*models.User `json:"users"`
	Total int64          `json:"total"`
}

// GetProfile returns the caller's own record as the self-view DTO.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.ProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToProfile(), nil
}

// ViewUser applies the view policy and redaction: admins get the full
// record, others get the redacted form, denials surface as not-found so
// admin accounts stay invisible.
func (s *UserService) ViewUser(ctx context.Context, principal *models.User, targetID uint) (interface{}, error) {
	target, err := s.getUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !authz.CanViewUser(principal, target) {
		return nil, domain.ErrUserNotFound
	}

	if principal.HasRole(models.RoleAdmin) {
		return target, nil
	}
	if principal.ID == target.ID {
		return target.ToProfile(), nil
	}
	return target.ToRedacted(), nil
}

// ListUsers lists users, optionally filtered by role. Admin only.
func (s *UserService) ListUsers(ctx context.Context, principal *models.User, role string, offset, limit int) (*ListUsersOutput, error) {
	if !authz.CanListUsers(principal) {
		return nil, domain.ErrForbidden
	}
	if role != "" && !models.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	users, total, err := s.userRepo.List(ctx, role, offset, limit)
	if err != nil {
		return nil, err
	}
	return &ListUsersOutput{Users: users, Total: total}, nil
}

// UpdateProfile applies a sparse self-update.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.ProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		if !password.CheckStrength(*input.Password) {
			return nil, domain.ErrWeakPassword
		}
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	return user.ToProfile(), nil
}

// Archive moves a user to INACTIVE. Admin only.
func (s *UserService) Archive(ctx context.Context, principal *models.User, targetID uint) error {
	return s.setStatus(ctx, principal, targetID, models.StatusInactive)
}

// Remove moves a user to REMOVED. Admin only.
func (s *UserService) Remove(ctx context.Context, principal *models.User, targetID uint) error {
	return s.setStatus(ctx, principal, targetID, models.StatusRemoved)
}

// Restore moves a user back to ACTIVE. Admin only. The role was never
// touched by archive/remove, so restoring is just the status flip.
func (s *UserService) Restore(ctx context.Context, principal *models.User, targetID uint) error {
	return s.setStatus(ctx, principal, targetID, models.StatusActive)
}

func (s *UserService) setStatus(ctx context.Context, principal *models.User, targetID uint, status string) error {
	if principal == nil || !principal.HasRole(models.RoleAdmin) {
		return domain.ErrForbidden
	}

	user, err := s.getUser(ctx, targetID)
	if err != nil {
		return err
	}

	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	logger.Get().Info().
		Uint("user_id", user.ID).
		Str("status", status).
		Msg("account status changed")

	return nil
}

func (s *UserService) getUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
