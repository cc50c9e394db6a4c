package repositories

import (
	"context"

	"jobhub-backend/internal/adapters/persistence/models"
)

// UserRepository defines user persistence. Getters hydrate the
// role extension eagerly; there is no lazy loading.
type UserRepository interface {
	// Create persists the user and its role extension in one transaction.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, role string, offset, limit int) ([]*models.User, int64, error)
}

// JobRepository defines job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	GetByPosterID(ctx context.Context, extensionID uint) ([]*models.Job, error)
	GetByContractorID(ctx context.Context, extensionID uint) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	// Assign links a contractor extension and moves the job to ASSIGNED
	// in a single transaction.
	Assign(ctx context.Context, jobID, contractorExtensionID uint) error
}
