// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"github.com/DylanDHubert/hotmess/internal/cache"
	"github.com/DylanDHubert/hotmess/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository defines the interface for like and share edge operations.
// Toggles are atomic: the presence check, the insert-or-delete, and the count
// recomputation all run inside one transaction guarded by the (user_id,
// post_id) unique index.
type EngagementRepository interface {
	ToggleLike(ctx context.Context, userID, postID uint) (*models.ToggleResult, error)
	ToggleShare(ctx context.Context, userID, postID uint) (*models.ToggleResult, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	IsShared(ctx context.Context, userID, postID uint) (bool, error)
	LikeCount(ctx context.Context, postID uint) (int64, error)
	ShareCount(ctx context.Context, postID uint) (int64, error)
}

// engagementRepository implements EngagementRepository
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) ToggleLike(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	return r.toggle(ctx, "likes", userID, postID)
}

func (r *engagementRepository) ToggleShare(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	return r.toggle(ctx, "shares", userID, postID)
}

// toggle flips the edge for (userID, postID) in the named edge table.
//
// The insert uses ON CONFLICT DO NOTHING so two racing "create" toggles cannot
// both insert: the loser sees zero rows affected and falls through to the
// delete branch. A delete that then affects zero rows means another request
// removed the edge first; that surfaces as a Conflict for the service to
// retry against fresh state.
func (r *engagementRepository) toggle(ctx context.Context, table string, userID, postID uint) (*models.ToggleResult, error) {
	var result models.ToggleResult

	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postCount int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&postCount).Error; err != nil {
			return models.NewInternalError(err)
		}
		if postCount == 0 {
			return models.NewNotFoundError("Post", postID)
		}

		insert := tx.Exec(
			"INSERT INTO "+table+" (user_id, post_id, created_at) VALUES (?, ?, ?) ON CONFLICT (user_id, post_id) DO NOTHING",
			userID, postID, time.Now().UTC(),
		)
		if insert.Error != nil {
			if isUniqueViolation(insert.Error) {
				return models.NewConflictError("edge already created by a racing request", insert.Error)
			}
			return models.NewInternalError(insert.Error)
		}

		if insert.RowsAffected == 1 {
			result.Active = true
		} else {
			del := tx.Exec("DELETE FROM "+table+" WHERE user_id = ? AND post_id = ?", userID, postID)
			if del.Error != nil {
				return models.NewInternalError(del.Error)
			}
			if del.RowsAffected == 0 {
				// The edge vanished between the insert attempt and the
				// delete: a concurrent toggle won. Re-resolve from scratch.
				return models.NewConflictError("concurrent toggle removed the edge", nil)
			}
			result.Active = false
		}

		// Count is recomputed from the edge set within the same transaction,
		// never trusted from a client-supplied delta.
		if err := tx.Table(table).Where("post_id = ?", postID).Count(&result.Count).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	cache.InvalidatePost(ctx, postID)
	return &result, nil
}

func (r *engagementRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return r.edgeExists(ctx, &models.Like{}, userID, postID)
}

func (r *engagementRepository) IsShared(ctx context.Context, userID, postID uint) (bool, error) {
	return r.edgeExists(ctx, &models.Share{}, userID, postID)
}

func (r *engagementRepository) edgeExists(ctx context.Context, model interface{}, userID, postID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(model).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return r.edgeCount(ctx, &models.Like{}, postID)
}

func (r *engagementRepository) ShareCount(ctx context.Context, postID uint) (int64, error) {
	return r.edgeCount(ctx, &models.Share{}, postID)
}

func (r *engagementRepository) edgeCount(ctx context.Context, model interface{}, postID uint) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(model).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
