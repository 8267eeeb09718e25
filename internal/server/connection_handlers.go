package server

import (
	"liberty/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RequestConnection handles POST /connections/:userId
func (s *Server) RequestConnection(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if targetID == userID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot send a connection request to yourself"))
	}

	// Target must exist
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return respondWithAppError(c, err)
	}

	existing, err := s.connectionRepo.GetBetweenUsers(ctx, userID, targetID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Connection already exists or is pending"))
	}

	conn := &models.Connection{
		RequesterID: userID,
		AddresseeID: targetID,
		Status:      models.ConnectionStatusPending,
	}
	if err := s.connectionRepo.Create(ctx, conn); err != nil {
		// Two requests racing on the same pair: the unique index wins.
		return respondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(conn)
}

// GetConnections handles GET /connections
func (s *Server) GetConnections(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	conns, err := s.connectionRepo.ListAccepted(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if conns == nil {
		conns = []models.Connection{}
	}

	return c.JSON(conns)
}

// GetPendingConnectionRequests handles GET /connections/requests
func (s *Server) GetPendingConnectionRequests(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	conns, err := s.connectionRepo.ListPendingIncoming(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if conns == nil {
		conns = []models.Connection{}
	}

	return c.JSON(conns)
}

// AcceptConnectionRequest handles POST /connections/requests/:requestId/accept
func (s *Server) AcceptConnectionRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	requestID, err := parseIDParam(c, "requestId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	conn, err := s.connectionRepo.GetByID(ctx, requestID)
	if err != nil {
		return respondWithAppError(c, err)
	}

	// Only the addressee may accept, and only while pending.
	if conn.AddresseeID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only the recipient can accept this request"))
	}
	if conn.Status != models.ConnectionStatusPending {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Connection request is not pending"))
	}

	if err := s.connectionRepo.Accept(ctx, conn); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(conn)
}

// RemoveConnection handles DELETE /connections/:userId
func (s *Server) RemoveConnection(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.connectionRepo.DeleteBetweenUsers(ctx, userID, targetID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// FollowUser handles POST /users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if targetID == userID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot follow yourself"))
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return respondWithAppError(c, err)
	}

	if err := s.connectionRepo.Follow(ctx, userID, targetID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowUser handles DELETE /users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.connectionRepo.Unfollow(ctx, userID, targetID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
