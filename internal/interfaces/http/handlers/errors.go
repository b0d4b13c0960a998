package handlers

import (
	"errors"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, entities.ErrUnverified):
		return fiber.StatusForbidden
	case errors.Is(err, entities.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, entities.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entities.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, entities.ErrUpstreamUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// fail renders a domain error as a JSON error response. Unexpected errors
// are masked with a generic retryable message so internals never leak.
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "something went wrong, please try again"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
