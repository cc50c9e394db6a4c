// Package authz holds the pure access-control decisions. Functions here
// take resolved records and return booleans; they never touch storage.
package authz

import (
	"jobhub-backend/internal/adapters/persistence/models"
)

// CanViewUser decides whether principal may view target. A principal
// always sees itself; an admin sees any non-removed user; a non-admin
// never sees admin records.
func CanViewUser(principal, target *models.User) bool {
	if principal == nil || target == nil {
		return false
	}
	if principal.ID == target.ID {
		return true
	}
	if principal.HasRole(models.RoleAdmin) {
		return target.Status != models.StatusRemoved
	}
	return !target.HasRole(models.RoleAdmin)
}

// CanListUsers decides whether principal may enumerate users.
func CanListUsers(principal *models.User) bool {
	return principal != nil && principal.HasRole(models.RoleAdmin)
}

// CanMutateUser decides whether principal may modify target. Only
// self-mutation is exposed; cross-user deletion is deliberately
// unimplemented elsewhere.
func CanMutateUser(principal, target *models.User) bool {
	if principal == nil || target == nil {
		return false
	}
	return principal.ID == target.ID
}

// CanMutateJob decides whether principal may modify job: the job's
// poster or any admin.
func CanMutateJob(principal *models.User, job *models.Job) bool {
	if principal == nil || job == nil {
		return false
	}
	if principal.HasRole(models.RoleAdmin) {
		return true
	}
	return principal.Extension != nil && principal.Extension.ID == job.PosterID
}

// transitions is the job workflow table. COMPLETED and CANCELLED are
// terminal.
var transitions = map[string][]string{
	models.JobUnassigned: {models.JobAssigned, models.JobCancelled},
	models.JobAssigned:   {models.JobInProgress, models.JobCancelled},
	models.JobInProgress: {models.JobPending, models.JobCompleted, models.JobCancelled},
	models.JobPending:    {models.JobInProgress, models.JobCompleted, models.JobCancelled},
	models.JobCompleted:  {},
	models.JobCancelled:  {},
}

// ValidateTransition reports whether a job may move from current to next.
func ValidateTransition(current, next string) bool {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
