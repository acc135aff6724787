package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique; existence of the row
// is the sole source of truth for "is liked".
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// Share represents a user's share of a post. Same lifecycle shape as Like
// with an independent counter.
type Share struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_share_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_share_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// ToggleResult is the authoritative state returned by a like/share toggle.
// Count is recomputed from the edge set inside the same transaction as the
// mutation, never adjusted from a client-supplied delta.
type ToggleResult struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}
