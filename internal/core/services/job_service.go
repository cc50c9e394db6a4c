package services

import (
	"context"
	"errors"

	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/adapters/persistence/repositories"
	"jobhub-backend/internal/core/authz"
	"jobhub-backend/internal/core/domain"
	"jobhub-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

// JobService handles the job-posting lifecycle.
type JobService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// PostJobInput represents a new job posting.
type PostJobInput struct {
	Title       string  `json:"title" validate:"required,max=256"`
	Description string  `json:"description" validate:"required,max=512"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Status      string  `json:"status"`
}

// UpdateJobInput is the sparse job update payload.
type UpdateJobInput struct {
	JobID       uint     `json:"job_id" validate:"required"`
	Title       *string  `json:"title" validate:"omitempty,max=256"`
	Description *string  `json:"description" validate:"omitempty,max=512"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Status      *string  `json:"status"`
}

// PostJob creates a job owned by the principal's client extension.
func (s *JobService) PostJob(ctx context.Context, principal *models.User, input *PostJobInput) (*models.Job, error) {
	if principal == nil || !principal.HasRole(models.RoleClient) || principal.Extension == nil {
		return nil, domain.ErrNotAClient
	}
	if !models.ValidCategory(input.Category) {
		return nil, domain.ErrInvalidInput
	}

	status := input.Status
	if status == "" {
		status = models.JobUnassigned
	}
	if status != models.JobUnassigned {
		return nil, domain.ErrInvalidInput
	}

	job := &models.Job{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Amount:      input.Amount,
		Status:      status,
		PosterID:    principal.Extension.ID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.Get().Info().
		Uint("job_id", job.ID).
		Uint("poster_id", job.PosterID).
		Msg("job posted")

	return job, nil
}

// GetJobs lists the principal's jobs: posted jobs for clients, assigned
// jobs for contractors, nothing for other roles.
func (s *JobService) GetJobs(ctx context.Context, principal *models.User) ([]*models.Job, error) {
	if principal == nil || principal.Extension == nil {
		return nil, domain.ErrUserNotFound
	}

	switch principal.Role {
	case models.RoleClient:
		return s.jobRepo.GetByPosterID(ctx, principal.Extension.ID)
	case models.RoleContractor:
		return s.jobRepo.GetByContractorID(ctx, principal.Extension.ID)
	default:
		return []*models.Job{}, nil
	}
}

// GetJob fetches a job by id.
func (s *JobService) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// UpdateJob applies a sparse update. Ownership denials surface as
// not-found, matching the user-facing behavior of the job views.
// Status changes are validated against the workflow table.
func (s *JobService) UpdateJob(ctx context.Context, principal *models.User, input *UpdateJobInput) (*models.Job, error) {
	job, err := s.GetJob(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	if !authz.CanMutateJob(principal, job) {
		return nil, domain.ErrJobNotFound
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			return nil, domain.ErrInvalidInput
		}
		job.Category = *input.Category
	}
	if input.Amount != nil {
		job.Amount = *input.Amount
	}
	if input.Status != nil && *input.Status != job.Status {
		if !authz.ValidateTransition(job.Status, *input.Status) {
			return nil, domain.ErrInvalidTransition
		}
		job.Status = *input.Status
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// AssignContractor links a contractor to an unassigned job and moves it
// to ASSIGNED, both in one transaction. Poster or admin only.
func (s *JobService) AssignContractor(ctx context.Context, principal *models.User, jobID, contractorUserID uint) (*models.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !authz.CanMutateJob(principal, job) {
		return nil, domain.ErrForbidden
	}
	if !authz.ValidateTransition(job.Status, models.JobAssigned) {
		return nil, domain.ErrInvalidTransition
	}

	contractor, err := s.userRepo.GetByID(ctx, contractorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if !contractor.HasRole(models.RoleContractor) || contractor.Extension == nil {
		return nil, domain.ErrNotAContractor
	}
	if !contractor.IsActive() {
		return nil, domain.ErrUserNotFound
	}

	if err := s.jobRepo.Assign(ctx, job.ID, contractor.Extension.ID); err != nil {
		return nil, err
	}

	logger.Get().Info().
		Uint("job_id", job.ID).
		Uint("contractor_id", contractor.ID).
		Msg("contractor assigned")

	return s.GetJob(ctx, job.ID)
}
