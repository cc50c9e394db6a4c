package handlers

import (
	"errors"
	"strings"

	"jobhub-backend/internal/adapters/http/middleware"
	"jobhub-backend/internal/core/domain"
	"jobhub-backend/internal/core/services"
	"jobhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// JobHandler handles the /bookings endpoints.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// AssignRequest represents contractor assignment request body
type AssignRequest struct {
	JobID        uint `json:"job_id" validate:"required"`
	ContractorID uint `json:"contractor_id" validate:"required"`
}

// RetrieveJobs handles GET /bookings/retrieve_jobs: the caller's posted
// or assigned jobs depending on role.
func (h *JobHandler) RetrieveJobs(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	jobs, err := h.jobService.GetJobs(c.Context(), principal)
	if err != nil {
		return response.InternalServerError(c, "failed to retrieve jobs")
	}
	return response.Success(c, jobs)
}

// RetrieveJob handles GET /bookings/retrieve_job/:id.
func (h *JobHandler) RetrieveJob(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return response.BadRequest(c, "job id must be a positive integer")
	}

	job, err := h.jobService.GetJob(c.Context(), uint(jobID))
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return response.NotFound(c, "job doesn't exist; please check again later")
		}
		return response.InternalServerError(c, "failed to retrieve job")
	}

	return response.Success(c, job)
}

// PostJob handles POST /bookings/post_job. Clients only.
func (h *JobHandler) PostJob(c *fiber.Ctx) error {
	var req services.PostJobInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	req.Category = strings.ToUpper(strings.TrimSpace(req.Category))
	if err := validateStruct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	principal := middleware.Principal(c)
	job, err := h.jobService.PostJob(c.Context(), principal, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAClient):
			return response.Forbidden(c, "only clients can post jobs")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "invalid category or status")
		default:
			return response.InternalServerError(c, "failed to post job")
		}
	}

	return response.Success(c, job)
}

// UpdateJob handles PUT /bookings/update_job. Poster or admin; status
// changes are validated against the workflow.
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	var req services.UpdateJobInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	principal := middleware.Principal(c)
	job, err := h.jobService.UpdateJob(c.Context(), principal, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			return response.NotFound(c, "job doesn't exist; please check again later")
		case errors.Is(err, domain.ErrInvalidTransition):
			return response.BadRequest(c, "invalid job status transition")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "invalid category")
		default:
			return response.InternalServerError(c, "failed to update job")
		}
	}

	return response.Success(c, job)
}

// AssignContractor handles POST /bookings/assign_contractor.
func (h *JobHandler) AssignContractor(c *fiber.Ctx) error {
	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	principal := middleware.Principal(c)
	job, err := h.jobService.AssignContractor(c.Context(), principal, req.JobID, req.ContractorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			return response.NotFound(c, "job doesn't exist; please check again later")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "contractor not found")
		case errors.Is(err, domain.ErrNotAContractor):
			return response.BadRequest(c, "assignee is not a contractor")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "only the poster or an admin can assign this job")
		case errors.Is(err, domain.ErrInvalidTransition):
			return response.BadRequest(c, "job cannot be assigned in its current status")
		default:
			return response.InternalServerError(c, "failed to assign contractor")
		}
	}

	return response.Success(c, job)
}

// RemoveJob handles DELETE /bookings/remove_job. Deliberately
// unimplemented.
func (h *JobHandler) RemoveJob(c *fiber.Ctx) error {
	return response.NotImplemented(c, "job removal is not implemented")
}
