package repositories

import (
	"context"

	"jobhub-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// jobRepository implements JobRepository on GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create creates a new job
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID gets a job by ID
func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByPosterID lists the jobs posted by a client extension.
func (r *jobRepository) GetByPosterID(ctx context.Context, extensionID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).Where("poster_id = ?", extensionID).Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByContractorID lists the jobs assigned to a contractor extension.
func (r *jobRepository) GetByContractorID(ctx context.Context, extensionID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).Where("contractor_id = ?", extensionID).Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update updates a job
func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Assign links the contractor and moves the job to ASSIGNED atomically.
func (r *jobRepository) Assign(ctx context.Context, jobID, contractorExtensionID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Job{}).
			Where("id = ?", jobID).
			Updates(map[string]interface{}{
				"contractor_id": contractorExtensionID,
				"status":        models.JobAssigned,
			}).Error
	})
}
