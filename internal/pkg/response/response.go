package response

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Envelope wraps every success body as {"data": <payload>}.
type Envelope struct {
	Data interface{} `json:"data"`
}

// ErrorBody is the structured error payload: {"status": "...", "message": "..."}.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success sends a 200 response with the payload wrapped in the data envelope.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Data: data})
}

// Created sends a 201 response with the payload wrapped in the data envelope.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Data: data})
}

// Error sends an error response with the structured payload.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Status:  strconv.Itoa(statusCode),
		Message: message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// NotImplemented sends a 501 not implemented response
func NotImplemented(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotImplemented, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
