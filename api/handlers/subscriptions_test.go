package handlers

import (
	"context"
	"testing"

	"feedreader-api/core/domain"
	coreerrors "feedreader-api/core/errors"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionHandler_Subscribe_Success(t *testing.T) {
	mockService := &mockSubscriptionService{
		subscribeFunc: func(ctx context.Context, userID, feedURL string) (*domain.Feed, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "https://example.com/feed.xml", feedURL)
			return &domain.Feed{
				ID:     "feed-1",
				UserID: userID,
				URL:    feedURL,
				Title:  "Test Blog",
			}, nil
		},
	}

	handler := NewSubscriptionHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/subscriptions",
		"X-User-ID: user-1",
		map[string]interface{}{"url": "https://example.com/feed.xml"})

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "feed-1")
}

func TestSubscriptionHandler_Subscribe_MissingUserHeader(t *testing.T) {
	handler := NewSubscriptionHandler(&mockSubscriptionService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/subscriptions",
		map[string]interface{}{"url": "https://example.com/feed.xml"})

	assert.Equal(t, 422, resp.Code)
}

func TestSubscriptionHandler_Subscribe_Duplicate(t *testing.T) {
	mockService := &mockSubscriptionService{
		subscribeFunc: func(ctx context.Context, userID, feedURL string) (*domain.Feed, error) {
			return nil, &coreerrors.ValidationError{Field: "url", Message: "already subscribed to this feed"}
		},
	}

	handler := NewSubscriptionHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/subscriptions",
		"X-User-ID: user-1",
		map[string]interface{}{"url": "https://example.com/feed.xml"})

	assert.Equal(t, 400, resp.Code)
	assert.Contains(t, resp.Body.String(), "already subscribed")
}

func TestSubscriptionHandler_ListSubscriptions(t *testing.T) {
	mockService := &mockSubscriptionService{
		listFeedsFunc: func(ctx context.Context, userID string) ([]domain.Feed, error) {
			return []domain.Feed{
				{ID: "feed-1", Title: "Blog A"},
				{ID: "feed-2", Title: "Blog B"},
			}, nil
		},
	}

	handler := NewSubscriptionHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/subscriptions", "X-User-ID: user-1")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "Blog A")
	assert.Contains(t, resp.Body.String(), "Blog B")
}

func TestSubscriptionHandler_Refresh_ReportsNewArticles(t *testing.T) {
	mockService := &mockSubscriptionService{
		refreshFunc: func(ctx context.Context, userID, feedID string) (int, error) {
			assert.Equal(t, "feed-1", feedID)
			return 4, nil
		},
	}

	handler := NewSubscriptionHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/subscriptions/feed-1/refresh", "X-User-ID: user-1")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), `"newArticles":4`)
}

func TestSubscriptionHandler_Refresh_UnknownFeed(t *testing.T) {
	mockService := &mockSubscriptionService{
		refreshFunc: func(ctx context.Context, userID, feedID string) (int, error) {
			return 0, &coreerrors.NotFoundError{Resource: "feed", ID: feedID}
		},
	}

	handler := NewSubscriptionHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/subscriptions/nope/refresh", "X-User-ID: user-1")

	assert.Equal(t, 404, resp.Code)
}

func TestSubscriptionHandler_Unsubscribe(t *testing.T) {
	var deleted string
	mockService := &mockSubscriptionService{
		unsubscribeFunc: func(ctx context.Context, userID, feedID string) error {
			deleted = feedID
			return nil
		},
	}

	handler := NewSubscriptionHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Delete("/subscriptions/feed-1", "X-User-ID: user-1")

	assert.Equal(t, 204, resp.Code)
	assert.Equal(t, "feed-1", deleted)
}
