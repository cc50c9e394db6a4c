package repositories

import (
	"context"

	"jobhub-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository on GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create persists the user together with its role extension. The email
// unique constraint surfaces duplicates as gorm.ErrDuplicatedKey; there
// is no check-then-insert race.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

// GetByID gets a user by ID with its extension attached.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	if err := r.hydrateExtension(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail gets a user by email with its extension attached.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	if err := r.hydrateExtension(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// hydrateExtension loads the variant record with the relations that
// match the user's role discriminator.
func (r *userRepository) hydrateExtension(ctx context.Context, user *models.User) error {
	q := r.db.WithContext(ctx)
	switch user.Role {
	case models.RoleClient:
		q = q.Preload("PostedJobs")
	case models.RoleContractor:
		q = q.Preload("AssignedJobs")
	case models.RoleAdmin:
		q = q.Preload("Roster")
	}

	var ext models.Extension
	if err := q.Where("user_id = ?", user.ID).First(&ext).Error; err != nil {
		return err
	}
	user.Extension = &ext
	return nil
}

// Update updates a user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// List lists users with pagination, optionally filtered by role.
func (r *userRepository) List(ctx context.Context, role string, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	q := r.db.WithContext(ctx).Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Preload("Extension").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
