package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engagementTestApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(7))
		return c.Next()
	})
	app.Post("/posts/:id/like", s.ToggleLike)
	app.Get("/posts/:id/like", s.GetLikeState)
	app.Post("/posts/:id/share", s.ToggleShare)
	app.Get("/posts/:id/share", s.GetShareState)
	return app
}

func TestToggleLikeEndpointReturnsAuthoritativePayload(t *testing.T) {
	repo := &stubEngagementRepo{
		toggleLikeFn: func(_ context.Context, userID, postID uint) (*models.ToggleResult, error) {
			assert.Equal(t, uint(7), userID)
			assert.Equal(t, uint(42), postID)
			return &models.ToggleResult{Active: true, Count: 12}, nil
		},
	}
	app := engagementTestApp(testServer(repo, nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/posts/42/like", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"like_count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Liked)
	assert.Equal(t, int64(12), body.LikeCount)
}

func TestToggleShareEndpointPayloadShape(t *testing.T) {
	repo := &stubEngagementRepo{
		toggleShareFn: func(_ context.Context, _, _ uint) (*models.ToggleResult, error) {
			return &models.ToggleResult{Active: false, Count: 3}, nil
		},
	}
	app := engagementTestApp(testServer(repo, nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/posts/42/share", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["shared"])
	assert.Equal(t, float64(3), body["share_count"])
}

func TestToggleLikeEndpointUnknownPost(t *testing.T) {
	repo := &stubEngagementRepo{
		toggleLikeFn: func(_ context.Context, _, _ uint) (*models.ToggleResult, error) {
			return nil, models.NewNotFoundError("Post", 42)
		},
	}
	app := engagementTestApp(testServer(repo, nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/posts/42/like", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestToggleLikeEndpointInvalidID(t *testing.T) {
	app := engagementTestApp(testServer(nil, nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/posts/abc/like", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLikeStateEndpoint(t *testing.T) {
	repo := &stubEngagementRepo{
		isLikedFn: func(_ context.Context, userID, postID uint) (bool, error) {
			assert.Equal(t, uint(7), userID)
			assert.Equal(t, uint(42), postID)
			return true, nil
		},
		likeCountFn: func(_ context.Context, postID uint) (int64, error) {
			assert.Equal(t, uint(42), postID)
			return 4, nil
		},
	}
	app := engagementTestApp(testServer(repo, nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/posts/42/like", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"like_count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Liked)
	assert.Equal(t, int64(4), body.LikeCount)
}

func TestGetShareStateEndpoint(t *testing.T) {
	repo := &stubEngagementRepo{
		isSharedFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		shareCountFn: func(_ context.Context, _ uint) (int64, error) {
			return 9, nil
		},
	}
	app := engagementTestApp(testServer(repo, nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/posts/42/share", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["shared"])
	assert.Equal(t, float64(9), body["share_count"])
}

func TestToggleLikeEndpointConflictExhaustion(t *testing.T) {
	repo := &stubEngagementRepo{
		toggleLikeFn: func(_ context.Context, _, _ uint) (*models.ToggleResult, error) {
			return nil, models.NewConflictError("concurrent toggle removed the edge", nil)
		},
	}
	app := engagementTestApp(testServer(repo, nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/posts/42/like", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
