package server

import (
	"time"

	"liberty/internal/models"
	"liberty/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyAccount handles GET /user
func (s *Server) GetMyAccount(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyAccount handles PUT /user
func (s *Server) UpdateMyAccount(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Username    *string `json:"username"`
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		DateOfBirth *string `json:"date_of_birth"`
		Gender      *string `json:"gender"`
		Private     *bool   `json:"private"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondWithAppError(c, err)
	}

	if req.Username != nil {
		if err := validation.ValidateUsername(*req.Username); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			user.DateOfBirth = nil
		} else {
			parsed, perr := time.Parse("2006-01-02", *req.DateOfBirth)
			if perr != nil {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("date_of_birth must be formatted YYYY-MM-DD"))
			}
			user.DateOfBirth = &parsed
		}
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Private != nil {
		user.Private = *req.Private
	}

	// Update invalidates the cached account entry.
	if err := s.userRepo.Update(ctx, user); err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(user)
}
