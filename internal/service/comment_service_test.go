package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn:  func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func TestAddCommentTrimsContent(t *testing.T) {
	repo := noopCommentRepo()
	repo.createFn = func(_ context.Context, comment *models.Comment) error {
		assert.Equal(t, "nice post", comment.Content)
		comment.ID = 11
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		assert.Equal(t, uint(11), id)
		return &models.Comment{Content: "nice post", User: models.User{Username: "ana"}}, nil
	}
	svc := NewCommentService(repo, noopPostRepo())

	comment, err := svc.AddComment(context.Background(), 7, 42, "  nice post  ")
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)
	assert.Equal(t, "ana", comment.User.Username)
}

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.AddComment(context.Background(), 7, 42, content)
		require.Error(t, err)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}

func TestAddCommentRejectsOversizedContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	_, err := svc.AddComment(context.Background(), 7, 42, strings.Repeat("a", maxCommentLen+1))
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestAddCommentLimitCountsCharactersNotBytes(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	// Two bytes per rune: well over the limit in bytes, exactly at it in
	// characters, so it must be accepted.
	_, err := svc.AddComment(context.Background(), 7, 42, strings.Repeat("ü", maxCommentLen))
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), 7, 42, strings.Repeat("ü", maxCommentLen+1))
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestAddCommentUnknownPost(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewCommentService(noopCommentRepo(), postRepo)

	_, err := svc.AddComment(context.Background(), 7, 42, "hello")
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestListCommentsUnknownPost(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewCommentService(noopCommentRepo(), postRepo)

	_, err := svc.ListComments(context.Background(), 42)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
