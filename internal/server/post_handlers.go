package server

import (
	"github.com/DylanDHubert/hotmess/internal/models"
	"github.com/DylanDHubert/hotmess/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost creates a post (protected)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost returns a single post with engagement counts and the caller's
// liked/shared flags (public with optional auth; the flags reflect the bearer
// token when one is presented and are false for anonymous viewers)
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, postID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// GetPosts returns the post feed, newest first (public)
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	p := parsePagination(c, 20)
	posts, err := s.postService.ListPosts(ctx, p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// GetUserPosts returns a user's posts, newest first (public)
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)
	posts, err := s.postService.GetUserPosts(ctx, userID, p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}
