package server

import (
	"errors"

	"liberty/internal/models"

	"github.com/gofiber/fiber/v2"
)

// asAppError reports whether err is (or wraps) an *AppError, storing it in
// target when it does.
func asAppError(err error, target **models.AppError) bool {
	return errors.As(err, target)
}

// statusForAppError maps an application error code onto an HTTP status.
func statusForAppError(appErr *models.AppError) int {
	switch appErr.Code {
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	case "FORBIDDEN":
		return fiber.StatusForbidden
	case "CONFLICT":
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondWithAppError writes err using its mapped status, falling back to 500
// for errors that carry no application code.
func respondWithAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if asAppError(err, &appErr) {
		return models.RespondWithError(c, statusForAppError(appErr), appErr)
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// parseIDParam extracts a positive integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}
