// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"github.com/DylanDHubert/hotmess/internal/cache"
	"github.com/DylanDHubert/hotmess/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails attaches the engagement views: counters computed from the
// edge-set cardinalities and liked/shared flags for the requesting user.
// These are SELECT aliases mapped onto the Post model's read-only columns.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	return db.Model(&models.Post{}).Select(`posts.*,
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = posts.id) AS likes_count,
		(SELECT COUNT(*) FROM shares s WHERE s.post_id = posts.id) AS shares_count,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = posts.id) AS comments_count,
		EXISTS(SELECT 1 FROM likes l2 WHERE l2.post_id = posts.id AND l2.user_id = ?) AS liked,
		EXISTS(SELECT 1 FROM shares s2 WHERE s2.post_id = posts.id AND s2.user_id = ?) AS shared`,
		currentUserID, currentUserID)
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post

	var err error
	if currentUserID == 0 {
		// Anonymous reads share one cache entry; per-viewer flags are all false.
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
			return r.applyPostDetails(readDB(r.db).WithContext(ctx), 0).
				Preload("User").
				First(&post, id).Error
		})
	} else {
		err = r.applyPostDetails(readDB(r.db).WithContext(ctx), currentUserID).
			Preload("User").
			First(&post, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(readDB(r.db).WithContext(ctx), currentUserID).
		Preload("User").
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(readDB(r.db).WithContext(ctx), currentUserID).
		Preload("User").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
