package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/DylanDHubert/hotmess/internal/cache"
	"github.com/DylanDHubert/hotmess/internal/middleware"
	"github.com/DylanDHubert/hotmess/internal/models"
	"github.com/DylanDHubert/hotmess/internal/observability"
	"github.com/DylanDHubert/hotmess/internal/repository"
)

const maxMessageLen = 10000

// ChatService coordinates two-party conversations and their messages.
type ChatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo, userRepo: userRepo}
}

// GetOrCreateConversation resolves the single conversation between the viewer
// and the other user, creating it on first contact. Creation races are
// resolved by re-reading: the unique pair index guarantees at most one row, so
// the loser of the race adopts the winner's conversation.
func (s *ChatService) GetOrCreateConversation(ctx context.Context, userID, otherID uint) (*models.Conversation, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if userID == otherID {
		return nil, models.NewInvalidOperationError("Cannot start a conversation with yourself")
	}

	exists, err := s.userRepo.Exists(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", otherID)
	}

	conv, err := s.chatRepo.FindConversationByPair(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return s.withUnread(ctx, conv, userID)
	}

	conv = &models.Conversation{UserAID: userID, UserBID: otherID}
	if createErr := s.chatRepo.CreateConversation(ctx, conv); createErr != nil {
		if !models.IsConflict(createErr) {
			return nil, createErr
		}
		observability.ConflictRetries.WithLabelValues("conversation_create").Inc()
		middleware.Logger.InfoContext(ctx, "conversation create lost race, adopting existing",
			"other_user_id", otherID)
		conv, err = s.chatRepo.FindConversationByPair(ctx, userID, otherID)
		if err != nil {
			return nil, err
		}
		if conv == nil {
			return nil, models.NewInternalError(createErr)
		}
		return s.withUnread(ctx, conv, userID)
	}

	return s.chatRepo.GetConversation(ctx, conv.ID)
}

// GetConversations lists the viewer's conversations, most recently active
// first, each carrying its last message and the viewer's unread count.
func (s *ChatService) GetConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	return s.chatRepo.GetUserConversations(ctx, userID)
}

// SendMessage appends a message from the viewer to the other participant.
// Messages always start unread; only the receiver's fetch moves them to read.
func (s *ChatService) SendMessage(ctx context.Context, userID, convID uint, content string) (*models.Message, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Message content is required")
	}
	if utf8.RuneCountInString(content) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 10000 characters)")
	}

	conv, err := s.chatRepo.GetConversation(ctx, convID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, models.NewInvalidOperationError("Sender is not a participant of this conversation")
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       userID,
		ReceiverID:     conv.OtherParticipant(userID),
		Content:        content,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	cache.InvalidateConversation(ctx, conv.ID)
	return msg, nil
}

// GetMessages returns the conversation transcript in creation order for a
// participant, then marks every message addressed to the viewer as read. The
// fetch itself is what delivers: a viewer opening the thread has seen
// everything in it, so the returned payload still shows the pre-fetch read
// flags while subsequent reads observe them as read.
func (s *ChatService) GetMessages(ctx context.Context, userID, convID uint, limit, offset int) ([]*models.Message, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	conv, err := s.chatRepo.GetConversation(ctx, convID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, models.NewForbiddenError("Not a participant of this conversation")
	}

	messages, err := s.chatRepo.GetMessages(ctx, conv.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	delivered, err := s.chatRepo.MarkDelivered(ctx, conv.ID, userID)
	if err != nil {
		return nil, err
	}
	if delivered > 0 {
		observability.MessagesDelivered.Add(float64(delivered))
		cache.InvalidateConversation(ctx, conv.ID)
	}

	return messages, nil
}

// withUnread decorates a conversation with the viewer's unread count.
func (s *ChatService) withUnread(ctx context.Context, conv *models.Conversation, userID uint) (*models.Conversation, error) {
	unread, err := s.chatRepo.UnreadCount(ctx, conv.ID, userID)
	if err != nil {
		return nil, err
	}
	conv.UnreadCount = unread
	return conv, nil
}
