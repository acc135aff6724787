package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listFn        func(context.Context, int, int, uint) ([]*models.Post, error)
	existsFn      func(context.Context, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:     func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listFn:        func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		existsFn:      func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Content: "   "})
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestCreatePostTrimsAndReloads(t *testing.T) {
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, post *models.Post) error {
		assert.Equal(t, "hello", post.Content)
		post.ID = 42
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id, currentUserID uint) (*models.Post, error) {
		assert.Equal(t, uint(42), id)
		assert.Equal(t, uint(1), currentUserID)
		return &models.Post{Content: "hello"}, nil
	}
	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Content: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Content)
}

func TestGetPostPassesViewer(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id, currentUserID uint) (*models.Post, error) {
		assert.Equal(t, uint(42), id)
		assert.Equal(t, uint(7), currentUserID)
		return &models.Post{Liked: true, LikesCount: 3}, nil
	}
	svc := NewPostService(repo)

	post, err := svc.GetPost(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.True(t, post.Liked)
	assert.Equal(t, 3, post.LikesCount)
}
