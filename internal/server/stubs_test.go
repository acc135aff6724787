package server

import (
	"context"

	"github.com/DylanDHubert/hotmess/internal/models"
	"github.com/DylanDHubert/hotmess/internal/service"
)

// Function-field stubs for the repository interfaces, so handler tests can
// exercise the full handler -> service path without a database.

type stubEngagementRepo struct {
	toggleLikeFn  func(context.Context, uint, uint) (*models.ToggleResult, error)
	toggleShareFn func(context.Context, uint, uint) (*models.ToggleResult, error)
	isLikedFn     func(context.Context, uint, uint) (bool, error)
	isSharedFn    func(context.Context, uint, uint) (bool, error)
	likeCountFn   func(context.Context, uint) (int64, error)
	shareCountFn  func(context.Context, uint) (int64, error)
}

func (s *stubEngagementRepo) ToggleLike(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	return s.toggleLikeFn(ctx, userID, postID)
}
func (s *stubEngagementRepo) ToggleShare(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	return s.toggleShareFn(ctx, userID, postID)
}
func (s *stubEngagementRepo) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	if s.isLikedFn != nil {
		return s.isLikedFn(ctx, userID, postID)
	}
	return false, nil
}
func (s *stubEngagementRepo) IsShared(ctx context.Context, userID, postID uint) (bool, error) {
	if s.isSharedFn != nil {
		return s.isSharedFn(ctx, userID, postID)
	}
	return false, nil
}
func (s *stubEngagementRepo) LikeCount(ctx context.Context, postID uint) (int64, error) {
	if s.likeCountFn != nil {
		return s.likeCountFn(ctx, postID)
	}
	return 0, nil
}
func (s *stubEngagementRepo) ShareCount(ctx context.Context, postID uint) (int64, error) {
	if s.shareCountFn != nil {
		return s.shareCountFn(ctx, postID)
	}
	return 0, nil
}

type stubUserRepo struct {
	existsFn  func(context.Context, uint) (bool, error)
	getByIDFn func(context.Context, uint) (*models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}
func (s *stubUserRepo) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Create(context.Context, *models.User) error { return nil }
func (s *stubUserRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, id)
	}
	return true, nil
}

type stubFollowRepo struct {
	followFn      func(context.Context, uint, uint) error
	unfollowFn    func(context.Context, uint, uint) error
	isFollowingFn func(context.Context, uint, uint) (bool, error)
}

func (s *stubFollowRepo) Follow(ctx context.Context, followerID, followeeID uint) error {
	if s.followFn != nil {
		return s.followFn(ctx, followerID, followeeID)
	}
	return nil
}
func (s *stubFollowRepo) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	if s.unfollowFn != nil {
		return s.unfollowFn(ctx, followerID, followeeID)
	}
	return nil
}
func (s *stubFollowRepo) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	if s.isFollowingFn != nil {
		return s.isFollowingFn(ctx, followerID, followeeID)
	}
	return false, nil
}
func (s *stubFollowRepo) Counts(context.Context, uint) (*models.UserCounts, error) {
	return &models.UserCounts{}, nil
}
func (s *stubFollowRepo) GetFollowers(context.Context, uint) ([]models.User, error) {
	return nil, nil
}
func (s *stubFollowRepo) GetFollowing(context.Context, uint) ([]models.User, error) {
	return nil, nil
}

type stubChatRepo struct {
	getConversationFn func(context.Context, uint) (*models.Conversation, error)
	findByPairFn      func(context.Context, uint, uint) (*models.Conversation, error)
	createConvFn      func(context.Context, *models.Conversation) error
	createMessageFn   func(context.Context, *models.Message) error
	getMessagesFn     func(context.Context, uint, int, int) ([]*models.Message, error)
	markDeliveredFn   func(context.Context, uint, uint) (int64, error)
}

func (s *stubChatRepo) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	if s.createConvFn != nil {
		return s.createConvFn(ctx, conv)
	}
	return nil
}
func (s *stubChatRepo) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	if s.getConversationFn != nil {
		return s.getConversationFn(ctx, id)
	}
	return &models.Conversation{ID: id, UserAID: 1, UserBID: 2}, nil
}
func (s *stubChatRepo) FindConversationByPair(ctx context.Context, a, b uint) (*models.Conversation, error) {
	if s.findByPairFn != nil {
		return s.findByPairFn(ctx, a, b)
	}
	return nil, nil
}
func (s *stubChatRepo) GetUserConversations(context.Context, uint) ([]*models.Conversation, error) {
	return nil, nil
}
func (s *stubChatRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	if s.createMessageFn != nil {
		return s.createMessageFn(ctx, msg)
	}
	return nil
}
func (s *stubChatRepo) GetMessages(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
	if s.getMessagesFn != nil {
		return s.getMessagesFn(ctx, convID, limit, offset)
	}
	return nil, nil
}
func (s *stubChatRepo) MarkDelivered(ctx context.Context, convID, viewerID uint) (int64, error) {
	if s.markDeliveredFn != nil {
		return s.markDeliveredFn(ctx, convID, viewerID)
	}
	return 0, nil
}
func (s *stubChatRepo) UnreadCount(context.Context, uint, uint) (int64, error) { return 0, nil }

type stubPostRepo struct {
	existsFn  func(context.Context, uint) (bool, error)
	getByIDFn func(context.Context, uint, uint) (*models.Post, error)
}

func (s *stubPostRepo) Create(context.Context, *models.Post) error { return nil }
func (s *stubPostRepo) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id, currentUserID)
	}
	return &models.Post{ID: id}, nil
}
func (s *stubPostRepo) GetByUserID(context.Context, uint, int, int, uint) ([]*models.Post, error) {
	return nil, nil
}
func (s *stubPostRepo) List(context.Context, int, int, uint) ([]*models.Post, error) {
	return nil, nil
}
func (s *stubPostRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, id)
	}
	return true, nil
}

type stubCommentRepo struct {
	createFn func(context.Context, *models.Comment) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if s.createFn != nil {
		return s.createFn(ctx, comment)
	}
	comment.ID = 1
	return nil
}
func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return &models.Comment{ID: id}, nil
}
func (s *stubCommentRepo) ListByPost(context.Context, uint) ([]*models.Comment, error) {
	return nil, nil
}
func (s *stubCommentRepo) CountByPost(context.Context, uint) (int64, error) { return 0, nil }

// testServer wires a Server over the given stubs, defaulting any nil stub to
// a permissive one.
func testServer(
	engagementRepo *stubEngagementRepo,
	followRepo *stubFollowRepo,
	chatRepo *stubChatRepo,
	userRepo *stubUserRepo,
	postRepo *stubPostRepo,
	commentRepo *stubCommentRepo,
) *Server {
	if engagementRepo == nil {
		engagementRepo = &stubEngagementRepo{
			toggleLikeFn: func(context.Context, uint, uint) (*models.ToggleResult, error) {
				return &models.ToggleResult{}, nil
			},
			toggleShareFn: func(context.Context, uint, uint) (*models.ToggleResult, error) {
				return &models.ToggleResult{}, nil
			},
		}
	}
	if followRepo == nil {
		followRepo = &stubFollowRepo{}
	}
	if chatRepo == nil {
		chatRepo = &stubChatRepo{}
	}
	if userRepo == nil {
		userRepo = &stubUserRepo{}
	}
	if postRepo == nil {
		postRepo = &stubPostRepo{}
	}
	if commentRepo == nil {
		commentRepo = &stubCommentRepo{}
	}

	s := &Server{}
	s.engagementService = service.NewEngagementService(engagementRepo)
	s.followService = service.NewFollowService(followRepo, userRepo)
	s.chatService = service.NewChatService(chatRepo, userRepo)
	s.userService = service.NewUserService(userRepo, followRepo)
	s.postService = service.NewPostService(postRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	return s
}
