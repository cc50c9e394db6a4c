package handlers

import (
	"jobhub-backend/internal/core/services"
	"jobhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmailHandler handles the /emailManager endpoints.
type EmailHandler struct {
	emailService *services.EmailService
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService *services.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// Submit handles POST /emailManager/submit: validates the contact form,
// renders the template and forwards it to the mail provider.
func (h *EmailHandler) Submit(c *fiber.Ctx) error {
	var form services.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validateStruct(&form); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.emailService.Submit(c.Context(), &form); err != nil {
		return response.Error(c, fiber.StatusBadGateway, "failed to deliver message")
	}

	return response.Success(c, fiber.Map{"message": "submission received"})
}
