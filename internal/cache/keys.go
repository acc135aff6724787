package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix         = "post:%d"
	UserKeyPrefix         = "user:%d"
	ConversationKeyPrefix = "conversation:%d"
)

const (
	PostTTL         = 30 * time.Minute
	UserTTL         = 5 * time.Minute
	ConversationTTL = 2 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ConversationKey(convID uint) string {
	return fmt.Sprintf(ConversationKeyPrefix, convID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateConversation(ctx context.Context, convID uint) {
	Invalidate(ctx, ConversationKey(convID))
}
