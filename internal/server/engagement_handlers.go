package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleLike flips the caller's like on a post and returns the authoritative
// state (protected).
//
// The response is the reconciliation payload: clients that applied an
// optimistic flip replace their local state with `liked` and `like_count`
// verbatim rather than incrementing.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ToggleLike(ctx, userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"liked":      result.Active,
		"like_count": result.Count,
	})
}

// ToggleShare flips the caller's share on a post (protected).
func (s *Server) ToggleShare(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ToggleShare(ctx, userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"shared":      result.Active,
		"share_count": result.Count,
	})
}

// GetLikeState reports whether the caller has liked the post together with the
// post's like count (protected). Clients read this once to seed the local
// toggle state they later flip optimistically.
func (s *Server) GetLikeState(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.LikeState(ctx, userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"liked":      result.Active,
		"like_count": result.Count,
	})
}

// GetShareState reports the caller's share flag and the post's share count
// (protected).
func (s *Server) GetShareState(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ShareState(ctx, userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"shared":      result.Active,
		"share_count": result.Count,
	})
}
