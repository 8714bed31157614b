package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
)

func GetUserID(c *fiber.Ctx) int64 {
	userID, _ := c.Locals("user_id").(int64)
	return userID
}

// serviceError maps the service layer's sentinel errors onto HTTP statuses;
// anything unrecognized is treated as an internal failure with a generic
// message so storage errors never leak to clients.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrUnsupportedPlatform):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrDuplicateUsername), errors.Is(err, service.ErrDuplicateEmail):
		status = fiber.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrForbidden):
		status = fiber.StatusForbidden
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}
