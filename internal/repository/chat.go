// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DylanDHubert/hotmess/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for conversation and message operations.
type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *models.Conversation) error
	GetConversation(ctx context.Context, id uint) (*models.Conversation, error)
	FindConversationByPair(ctx context.Context, userA, userB uint) (*models.Conversation, error)
	GetUserConversations(ctx context.Context, userID uint) ([]*models.Conversation, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
	GetMessages(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error)
	MarkDelivered(ctx context.Context, convID, viewerID uint) (int64, error)
	UnreadCount(ctx context.Context, convID, viewerID uint) (int64, error)
}

// chatRepository implements ChatRepository
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// CreateConversation inserts the conversation. The unique index on the
// normalized participant pair turns a concurrent first-contact race into a
// Conflict, which the service resolves by re-reading.
func (r *chatRepository) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("conversation already created by a racing request", err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Preload("UserA").
		Preload("UserB").
		First(&conv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Conversation", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &conv, nil
}

// FindConversationByPair resolves the conversation for the unordered pair,
// returning nil when none exists.
func (r *chatRepository) FindConversationByPair(ctx context.Context, userA, userB uint) (*models.Conversation, error) {
	if userA > userB {
		userA, userB = userB, userA
	}
	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Preload("UserA").
		Preload("UserB").
		Where("user_a_id = ? AND user_b_id = ?", userA, userB).
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conv, nil
}

func (r *chatRepository) GetUserConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	err := readDB(r.db).WithContext(ctx).
		Preload("UserA").
		Preload("UserB").
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(conversations) == 0 {
		return conversations, nil
	}

	ids := make([]uint, len(conversations))
	for i, conv := range conversations {
		ids[i] = conv.ID
	}

	// Latest message per conversation in a single query. Message IDs are
	// monotonic within a conversation, so MAX(id) is the newest row.
	var lastMessages []models.Message
	err = readDB(r.db).WithContext(ctx).
		Where("id IN (?)", readDB(r.db).Model(&models.Message{}).
			Select("MAX(id)").
			Where("conversation_id IN ?", ids).
			Group("conversation_id")).
		Find(&lastMessages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	// Viewer's unread counts, grouped in a single query.
	type unreadRow struct {
		ConversationID uint
		Count          int64
	}
	var unreadRows []unreadRow
	err = readDB(r.db).WithContext(ctx).
		Model(&models.Message{}).
		Select("conversation_id, COUNT(*) AS count").
		Where("conversation_id IN ? AND receiver_id = ? AND is_read = ?", ids, userID, false).
		Group("conversation_id").
		Scan(&unreadRows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	lastByConv := make(map[uint]*models.Message, len(lastMessages))
	for i := range lastMessages {
		lastByConv[lastMessages[i].ConversationID] = &lastMessages[i]
	}
	unreadByConv := make(map[uint]int64, len(unreadRows))
	for _, row := range unreadRows {
		unreadByConv[row.ConversationID] = row.Count
	}
	for _, conv := range conversations {
		conv.LastMessage = lastByConv[conv.ID]
		conv.UnreadCount = unreadByConv[conv.ID]
	}

	return conversations, nil
}

// CreateMessage appends the message and bumps the conversation's updated_at
// in the same transaction so conversation ordering stays consistent.
func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("updated_at", time.Now().UTC()).Error
	})
	if txErr != nil {
		return models.NewInternalError(txErr)
	}
	return nil
}

// GetMessages returns the canonical chat transcript in creation order.
func (r *chatRepository) GetMessages(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := readDB(r.db).WithContext(ctx).
		Where("conversation_id = ?", convID).
		Preload("Sender").
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// MarkDelivered transitions every unread message addressed to the viewer to
// read, as a single batch. The transition is one-way: already-read rows are
// excluded by the predicate, so read_at is never overwritten.
func (r *chatRepository) MarkDelivered(ctx context.Context, convID, viewerID uint) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", convID, viewerID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *chatRepository) UnreadCount(ctx context.Context, convID, viewerID uint) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", convID, viewerID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
