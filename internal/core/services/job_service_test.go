package services

import (
	"context"
	"testing"

	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJob(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	alice := seedUser(t, userRepo, "Alice", "alice@x.com", models.RoleClient)

	job, err := svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	require.NoError(t, err)
	assert.NotZero(t, job.ID)
	assert.Equal(t, models.JobUnassigned, job.Status)
	assert.Equal(t, alice.Extension.ID, job.PosterID)
}

func TestPostJobClientOnly(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	bob := seedUser(t, userRepo, "Bob", "bob@x.com", models.RoleContractor)

	_, err := svc.PostJob(context.Background(), bob, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	assert.ErrorIs(t, err, domain.ErrNotAClient)
}

func TestPostJobRejectsBadInput(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	alice := seedUser(t, userRepo, "Alice", "alice@x.com", models.RoleClient)

	_, err := svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    "JUGGLING",
		Amount:      120,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// A new posting cannot start anywhere but unassigned.
	_, err = svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
		Status:      models.JobCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetJobsByRole(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	alice := seedUser(t, userRepo, "Alice", "alice@x.com", models.RoleClient)
	bob := seedUser(t, userRepo, "Bob", "bob@x.com", models.RoleContractor)
	officer := seedUser(t, userRepo, "Olga", "olga@x.com", models.RoleOfficer)

	job, err := svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	require.NoError(t, err)

	posted, err := svc.GetJobs(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, posted, 1)
	assert.Equal(t, job.ID, posted[0].ID)

	assigned, err := svc.GetJobs(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, assigned)

	none, err := svc.GetJobs(context.Background(), officer)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateJobOwnership(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	alice := seedUser(t, userRepo, "Alice", "alice@x.com", models.RoleClient)
	carol := seedUser(t, userRepo, "Carol", "carol@x.com", models.RoleClient)

	job, err := svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.UpdateJob(context.Background(), carol, &UpdateJobInput{JobID: job.ID, Title: &title})
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	title = "Fix PC urgently"
	updated, err := svc.UpdateJob(context.Background(), alice, &UpdateJobInput{JobID: job.ID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Fix PC urgently", updated.Title)
}

func TestUpdateJobTransitions(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	alice := seedUser(t, userRepo, "Alice", "alice@x.com", models.RoleClient)

	job, err := svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	require.NoError(t, err)

	completed := models.JobCompleted
	_, err = svc.UpdateJob(context.Background(), alice, &UpdateJobInput{JobID: job.ID, Status: &completed})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	cancelled := models.JobCancelled
	updated, err := svc.UpdateJob(context.Background(), alice, &UpdateJobInput{JobID: job.ID, Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, models.JobCancelled, updated.Status)
	assert.True(t, updated.Terminal())

	// Terminal states stay terminal.
	inProgress := models.JobInProgress
	_, err = svc.UpdateJob(context.Background(), alice, &UpdateJobInput{JobID: job.ID, Status: &inProgress})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAssignContractor(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	alice := seedUser(t, userRepo, "Alice", "alice@x.com", models.RoleClient)
	bob := seedUser(t, userRepo, "Bob", "bob@x.com", models.RoleContractor)

	job, err := svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	require.NoError(t, err)

	assigned, err := svc.AssignContractor(context.Background(), alice, job.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobAssigned, assigned.Status)
	require.NotNil(t, assigned.ContractorID)
	assert.Equal(t, bob.Extension.ID, *assigned.ContractorID)

	// The contractor now sees it among their assigned jobs.
	mine, err := svc.GetJobs(context.Background(), bob)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, job.ID, mine[0].ID)

	// Already assigned: not a legal target for another assignment.
	_, err = svc.AssignContractor(context.Background(), alice, job.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAssignContractorGuards(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	svc := NewJobService(jobRepo, userRepo)

	alice := seedUser(t, userRepo, "Alice", "alice@x.com", models.RoleClient)
	carol := seedUser(t, userRepo, "Carol", "carol@x.com", models.RoleClient)
	bob := seedUser(t, userRepo, "Bob", "bob@x.com", models.RoleContractor)

	job, err := svc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	require.NoError(t, err)

	_, err = svc.AssignContractor(context.Background(), carol, job.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.AssignContractor(context.Background(), alice, job.ID, carol.ID)
	assert.ErrorIs(t, err, domain.ErrNotAContractor)

	userRepo.users[bob.ID].Status = models.StatusInactive
	_, err = svc.AssignContractor(context.Background(), alice, job.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// TestClientPostingFlow walks the happy path end to end at the service
// layer: register, log in, post a job, read it back.
func TestClientPostingFlow(t *testing.T) {
	userRepo := newStubUserRepo()
	jobRepo := newStubJobRepo()
	authSvc := NewAuthService(userRepo, testConfig())
	jobSvc := NewJobService(jobRepo, userRepo)

	_, err := authSvc.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "Passw0rd!",
		Role:     models.RoleClient,
	})
	require.NoError(t, err)

	alice, _, err := authSvc.Login(context.Background(), "alice@x.com", "Passw0rd!")
	require.NoError(t, err)

	_, err = jobSvc.PostJob(context.Background(), alice, &PostJobInput{
		Title:       "Fix PC",
		Description: "Desktop will not boot",
		Category:    models.CategoryIT,
		Amount:      120,
	})
	require.NoError(t, err)

	jobs, err := jobSvc.GetJobs(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Fix PC", jobs[0].Title)
	assert.Equal(t, models.JobUnassigned, jobs[0].Status)
}
