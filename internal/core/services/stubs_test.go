package services

import (
	"context"

	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/config"

	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "service-test-secret"},
	}
}

// stubUserRepo is an in-memory UserRepository with the same error
// contract as the GORM implementation.
type stubUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*models.User)}
}

func cloneUser(u *models.User) *models.User {
	clone := *u
	if u.Extension != nil {
		ext := *u.Extension
		clone.Extension = &ext
	}
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	if user.Extension != nil {
		user.Extension.ID = r.nextID * 100
		user.Extension.UserID = user.ID
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneUser(user), nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, existing := range r.users {
		if existing.ID != user.ID && existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, role string, offset, limit int) ([]*models.User, int64, error) {
	var matched []*models.User
	for id := uint(1); id <= r.nextID; id++ {
		user, ok := r.users[id]
		if !ok {
			continue
		}
		if role == "" || user.Role == role {
			matched = append(matched, cloneUser(user))
		}
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*models.User{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// faultyUserRepo fails every read with a fixed error, standing in for
// an unreachable database.
type faultyUserRepo struct {
	*stubUserRepo
	err error
}

func (r *faultyUserRepo) GetByID(context.Context, uint) (*models.User, error) {
	return nil, r.err
}

func (r *faultyUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, r.err
}

// stubJobRepo is an in-memory JobRepository.
type stubJobRepo struct {
	jobs   map[uint]*models.Job
	nextID uint
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[uint]*models.Job)}
}

func cloneJob(j *models.Job) *models.Job {
	clone := *j
	if j.ContractorID != nil {
		id := *j.ContractorID
		clone.ContractorID = &id
	}
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *models.Job) error {
	r.nextID++
	job.ID = r.nextID
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *stubJobRepo) GetByID(_ context.Context, id uint) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneJob(job), nil
}

func (r *stubJobRepo) GetByPosterID(_ context.Context, extensionID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	for id := uint(1); id <= r.nextID; id++ {
		job, ok := r.jobs[id]
		if !ok {
			continue
		}
		if job.PosterID == extensionID {
			jobs = append(jobs, cloneJob(job))
		}
	}
	return jobs, nil
}

func (r *stubJobRepo) GetByContractorID(_ context.Context, extensionID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	for id := uint(1); id <= r.nextID; id++ {
		job, ok := r.jobs[id]
		if !ok {
			continue
		}
		if job.ContractorID != nil && *job.ContractorID == extensionID {
			jobs = append(jobs, cloneJob(job))
		}
	}
	return jobs, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *stubJobRepo) Assign(_ context.Context, jobID, contractorExtensionID uint) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	id := contractorExtensionID
	job.ContractorID = &id
	job.Status = models.JobAssigned
	return nil
}
