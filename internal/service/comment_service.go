package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/DylanDHubert/hotmess/internal/cache"
	"github.com/DylanDHubert/hotmess/internal/models"
	"github.com/DylanDHubert/hotmess/internal/repository"
)

const maxCommentLen = 10000

// CommentService coordinates the append-only comment log.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// AddComment appends a comment to the post. Comments are immutable once
// created; there is no edit or delete path.
func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comment := &models.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, postID)

	// Reload with the author attached so the response carries the display
	// identity without a second client round trip.
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the post's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
