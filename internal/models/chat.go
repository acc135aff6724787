// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is a direct-message channel between exactly two users.
// The unordered participant pair is unique: BeforeCreate normalizes the pair
// so the database unique index enforces "one conversation per pair" even when
// both sides open the conversation concurrently.
type Conversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PublicID  string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"public_id"`
	UserAID   uint      `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user_a_id"`
	UserBID   uint      `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user_b_id"`
	UserA     User      `gorm:"foreignKey:UserAID" json:"user_a,omitempty"`
	UserB     User      `gorm:"foreignKey:UserBID" json:"user_b,omitempty"`
	Messages  []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// UnreadCount is the viewer's unread message count (computed)
	UnreadCount int64 `gorm:"-" json:"unread_count"`
	// LastMessage is the most recent message, populated for list views (computed)
	LastMessage *Message `gorm:"-" json:"last_message,omitempty"`
}

// BeforeCreate normalizes UserAID < UserBID for consistent pair ordering and
// assigns the public identifier.
func (c *Conversation) BeforeCreate(_ *gorm.DB) error {
	if c.UserAID > c.UserBID {
		c.UserAID, c.UserBID = c.UserBID, c.UserAID
	}
	if c.PublicID == "" {
		c.PublicID = uuid.NewString()
	}
	return nil
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID uint) uint {
	if c.UserAID == userID {
		return c.UserBID
	}
	return c.UserAID
}

// Message is a single direct message. Messages are append-only; the read flag
// transitions false -> true exactly once, when the receiver views the
// conversation, and is never reset.
type Message struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	ConversationID uint          `gorm:"not null;index" json:"conversation_id"`
	Conversation   *Conversation `gorm:"foreignKey:ConversationID" json:"conversation,omitempty"`
	SenderID       uint          `gorm:"not null;index" json:"sender_id"`
	Sender         *User         `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID     uint          `gorm:"not null;index" json:"receiver_id"`
	Content        string        `gorm:"type:text;not null" json:"content"`
	IsRead         bool          `gorm:"default:false" json:"read"`
	ReadAt         *time.Time    `json:"read_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}
