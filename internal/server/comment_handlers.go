package server

import (
	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment appends a comment to a post (protected)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	created, err := s.commentService.AddComment(ctx, userID, postID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetComments returns all comments for a post, newest first (public)
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(ctx, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}
