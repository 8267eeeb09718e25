package server

import (
	"liberty/internal/models"
	"liberty/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateGroup handles POST /groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Name      string `json:"name"`
		GroupType string `json:"groupType"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	name, err := validation.ValidateGroupName(req.Name)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	groupType := models.GroupType(req.GroupType)
	if !models.ValidGroupType(groupType) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("groupType must be PUBLIC or PRIVATE"))
	}

	group := &models.Group{
		Name:            name,
		GroupType:       groupType,
		CreatedByUserID: userID,
	}
	if err := s.groupRepo.CreateWithOwner(ctx, group); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(group)
}

// GetGroup handles GET /groups/:id
func (s *Server) GetGroup(c *fiber.Ctx) error {
	ctx := c.Context()

	groupID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(group)
}

// GetGroups handles GET /groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	groups, err := s.groupRepo.ListForUser(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Always an array, never null.
	if groups == nil {
		groups = []models.Group{}
	}

	return c.JSON(groups)
}
