package service

import (
	"context"

	"github.com/DylanDHubert/hotmess/internal/models"
	"github.com/DylanDHubert/hotmess/internal/repository"
)

// FollowService coordinates the directed follow graph.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// SetFollow applies the requested edge state. Both directions are idempotent:
// following an already-followed user or unfollowing a stranger succeeds
// without changing anything.
func (s *FollowService) SetFollow(ctx context.Context, followerID, targetID uint, action string) error {
	if followerID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	if followerID == targetID {
		return models.NewInvalidOperationError("Cannot follow yourself")
	}

	exists, err := s.userRepo.Exists(ctx, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("User", targetID)
	}

	switch action {
	case "follow":
		return s.followRepo.Follow(ctx, followerID, targetID)
	case "unfollow":
		return s.followRepo.Unfollow(ctx, followerID, targetID)
	default:
		return models.NewValidationError("Action must be 'follow' or 'unfollow'")
	}
}

// IsFollowing reports whether follower currently follows target. The edge is
// directed, so the reverse relationship is never consulted.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	if followerID == 0 {
		return false, models.NewUnauthorizedError("Authentication required")
	}
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}

// Counts returns follower and following cardinalities for display.
func (s *FollowService) Counts(ctx context.Context, userID uint) (*models.UserCounts, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}
	return s.followRepo.Counts(ctx, userID)
}

func (s *FollowService) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.GetFollowers(ctx, userID)
}

func (s *FollowService) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.GetFollowing(ctx, userID)
}
