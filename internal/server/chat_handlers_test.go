package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatTestApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	app.Post("/conversations/with/:userId", s.GetOrCreateConversation)
	app.Get("/conversations/:id/messages", s.GetMessages)
	app.Post("/conversations/:id/messages", s.SendMessage)
	return app
}

func TestGetOrCreateConversationEndpoint(t *testing.T) {
	chatRepo := &stubChatRepo{
		createConvFn: func(_ context.Context, conv *models.Conversation) error {
			conv.ID = 8
			return nil
		},
		getConversationFn: func(_ context.Context, id uint) (*models.Conversation, error) {
			return &models.Conversation{ID: id, UserAID: 2, UserBID: 5}, nil
		},
	}
	app := chatTestApp(testServer(nil, nil, chatRepo, nil, nil, nil), 5)

	req := httptest.NewRequest(http.MethodPost, "/conversations/with/2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var conv models.Conversation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&conv))
	assert.Equal(t, uint(8), conv.ID)
}

func TestGetOrCreateConversationEndpointSelf(t *testing.T) {
	app := chatTestApp(testServer(nil, nil, nil, nil, nil, nil), 5)

	req := httptest.NewRequest(http.MethodPost, "/conversations/with/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMessagesEndpointForbiddenForOutsider(t *testing.T) {
	chatRepo := &stubChatRepo{
		getConversationFn: func(_ context.Context, id uint) (*models.Conversation, error) {
			return &models.Conversation{ID: id, UserAID: 1, UserBID: 2}, nil
		},
	}
	app := chatTestApp(testServer(nil, nil, chatRepo, nil, nil, nil), 99)

	req := httptest.NewRequest(http.MethodGet, "/conversations/3/messages", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetMessagesEndpointMarksViewerMessages(t *testing.T) {
	var markedConv, markedViewer uint
	chatRepo := &stubChatRepo{
		getConversationFn: func(_ context.Context, id uint) (*models.Conversation, error) {
			return &models.Conversation{ID: id, UserAID: 2, UserBID: 5}, nil
		},
		getMessagesFn: func(_ context.Context, convID uint, _, _ int) ([]*models.Message, error) {
			return []*models.Message{
				{ID: 1, ConversationID: convID, SenderID: 2, ReceiverID: 5, Content: "hi"},
			}, nil
		},
		markDeliveredFn: func(_ context.Context, convID, viewerID uint) (int64, error) {
			markedConv, markedViewer = convID, viewerID
			return 1, nil
		},
	}
	app := chatTestApp(testServer(nil, nil, chatRepo, nil, nil, nil), 5)

	req := httptest.NewRequest(http.MethodGet, "/conversations/3/messages", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(3), markedConv)
	assert.Equal(t, uint(5), markedViewer)

	var messages []models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Content)
}

func TestSendMessageEndpoint(t *testing.T) {
	chatRepo := &stubChatRepo{
		getConversationFn: func(_ context.Context, id uint) (*models.Conversation, error) {
			return &models.Conversation{ID: id, UserAID: 2, UserBID: 5}, nil
		},
		createMessageFn: func(_ context.Context, msg *models.Message) error {
			msg.ID = 77
			return nil
		},
	}
	app := chatTestApp(testServer(nil, nil, chatRepo, nil, nil, nil), 5)

	resp := postJSON(t, app, "/conversations/3/messages", map[string]string{"content": "hello there"})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var msg models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, uint(77), msg.ID)
	assert.Equal(t, uint(5), msg.SenderID)
	assert.Equal(t, uint(2), msg.ReceiverID)
	assert.False(t, msg.IsRead)
}

func TestSendMessageEndpointNonParticipant(t *testing.T) {
	chatRepo := &stubChatRepo{
		getConversationFn: func(_ context.Context, id uint) (*models.Conversation, error) {
			return &models.Conversation{ID: id, UserAID: 1, UserBID: 2}, nil
		},
	}
	app := chatTestApp(testServer(nil, nil, chatRepo, nil, nil, nil), 99)

	resp := postJSON(t, app, "/conversations/3/messages", map[string]string{"content": "hello"})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
