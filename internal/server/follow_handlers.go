package server

import (
	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SetFollow applies a follow or unfollow action on the target user (protected).
// Both actions are idempotent.
func (s *Server) SetFollow(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Action string `json:"action"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	if err := s.followService.SetFollow(ctx, userID, targetID, req.Action); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": req.Action == "follow",
	})
}

// CheckFollowing reports whether the caller follows the target user
// (protected). The check is directional.
func (s *Server) CheckFollowing(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	following, err := s.followService.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"is_following": following,
	})
}
