// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"github.com/DylanDHubert/hotmess/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow edge operations.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID uint) error
	Unfollow(ctx context.Context, followerID, followeeID uint) error
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	Counts(ctx context.Context, userID uint) (*models.UserCounts, error)
	GetFollowers(ctx context.Context, userID uint) ([]models.User, error)
	GetFollowing(ctx context.Context, userID uint) ([]models.User, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow creates the directed edge. An existing edge is a no-op success: the
// OnConflict clause absorbs duplicate inserts, including racing ones.
func (r *followRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	edge := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error; err != nil {
		if isUniqueViolation(err) {
			// Edge already created by a racing request.
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow removes the edge. Absence of the edge is success.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Counts returns display cardinalities computed from the edge set.
func (r *followRepository) Counts(ctx context.Context, userID uint) (*models.UserCounts, error) {
	var counts models.UserCounts
	db := readDB(r.db).WithContext(ctx)

	if err := db.Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Count(&counts.Followers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&counts.Following).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &counts, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := readDB(r.db).WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.follower_id").
		Where("f.followee_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := readDB(r.db).WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.followee_id").
		Where("f.follower_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
