package server

import (
	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetOrCreateConversation resolves the caller's conversation with another
// user, creating it on first contact (protected).
func (s *Server) GetOrCreateConversation(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	conv, err := s.chatService.GetOrCreateConversation(ctx, userID, otherID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(conv)
}

// GetConversations lists the caller's conversations, most recently active
// first (protected).
func (s *Server) GetConversations(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	conversations, err := s.chatService.GetConversations(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(conversations)
}

// GetMessages returns a conversation transcript in creation order and marks
// the caller's unread messages as read (protected).
func (s *Server) GetMessages(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	convID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 50)
	messages, err := s.chatService.GetMessages(ctx, userID, convID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(messages)
}

// SendMessage appends a message to a conversation (protected).
func (s *Server) SendMessage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	convID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	msg, err := s.chatService.SendMessage(ctx, userID, convID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}
