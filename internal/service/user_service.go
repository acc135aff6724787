package service

import (
	"context"

	"github.com/DylanDHubert/hotmess/internal/models"
	"github.com/DylanDHubert/hotmess/internal/repository"
)

// UserService exposes user lookups for display alongside engagement data.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserCounts returns follower/following cardinalities computed from the
// edge set, never from stored counters.
func (s *UserService) GetUserCounts(ctx context.Context, id uint) (*models.UserCounts, error) {
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", id)
	}
	return s.followRepo.Counts(ctx, id)
}
