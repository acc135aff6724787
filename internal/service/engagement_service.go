package service

import (
	"context"

	"github.com/DylanDHubert/hotmess/internal/middleware"
	"github.com/DylanDHubert/hotmess/internal/models"
	"github.com/DylanDHubert/hotmess/internal/observability"
	"github.com/DylanDHubert/hotmess/internal/repository"
)

// toggleRetryBudget bounds how often a toggle is re-resolved after losing a
// race with a concurrent toggle on the same (user, post) edge.
const toggleRetryBudget = 3

// EngagementService coordinates like and share toggles.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
}

func NewEngagementService(engagementRepo repository.EngagementRepository) *EngagementService {
	return &EngagementService{engagementRepo: engagementRepo}
}

// ToggleLike flips the viewer's like on the post and returns the resulting
// state together with the authoritative count.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	return s.toggle(ctx, "like", userID, postID, s.engagementRepo.ToggleLike)
}

// ToggleShare flips the viewer's share on the post.
func (s *EngagementService) ToggleShare(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	return s.toggle(ctx, "share", userID, postID, s.engagementRepo.ToggleShare)
}

func (s *EngagementService) toggle(
	ctx context.Context,
	action string,
	userID, postID uint,
	fn func(context.Context, uint, uint) (*models.ToggleResult, error),
) (*models.ToggleResult, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	var result *models.ToggleResult
	var err error
	for attempt := 1; attempt <= toggleRetryBudget; attempt++ {
		result, err = fn(ctx, userID, postID)
		if err == nil {
			break
		}
		if !models.IsConflict(err) {
			return nil, err
		}
		// Lost a race against another toggle on the same edge. Re-resolve
		// against fresh state rather than surfacing the conflict.
		observability.ConflictRetries.WithLabelValues(action).Inc()
		middleware.Logger.WarnContext(ctx, "engagement toggle conflict, retrying",
			"action", action, "post_id", postID, "attempt", attempt)
	}
	if err != nil {
		return nil, err
	}

	state := "removed"
	if result.Active {
		state = "created"
	}
	observability.EngagementToggles.WithLabelValues(action, state).Inc()
	return result, nil
}

// LikeState reports the viewer's like flag and the post's like count.
func (s *EngagementService) LikeState(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	liked, err := s.engagementRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.engagementRepo.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &models.ToggleResult{Active: liked, Count: count}, nil
}

// ShareState reports the viewer's share flag and the post's share count.
func (s *EngagementService) ShareState(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	shared, err := s.engagementRepo.IsShared(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.engagementRepo.ShareCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &models.ToggleResult{Active: shared, Count: count}, nil
}
