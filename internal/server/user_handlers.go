package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUser returns a user's public profile (public)
func (s *Server) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// GetUserCounts returns follower and following counts for a user (public).
// Counts are computed from the follow edge set at request time.
func (s *Server) GetUserCounts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	counts, err := s.userService.GetUserCounts(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(counts)
}
