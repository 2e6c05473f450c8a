// ABOUTME: Subscription handlers for the Huma API
// ABOUTME: Exposes subscribe, list, refresh and unsubscribe operations

package handlers

import (
	"context"
	"net/http"

	"feedreader-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// SubscriptionService defines the subscription operations used by the
// HTTP layer
type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, feedURL string) (*domain.Feed, error)
	ListFeeds(ctx context.Context, userID string) ([]domain.Feed, error)
	Refresh(ctx context.Context, userID, feedID string) (int, error)
	Unsubscribe(ctx context.Context, userID, feedID string) error
}

// SubscriptionHandler handles subscription-related HTTP requests
type SubscriptionHandler struct {
	service SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(service SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// RegisterRoutes registers all subscription routes
func (h *SubscriptionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "subscribe",
		Method:      http.MethodPost,
		Path:        "/subscriptions",
		Summary:     "Subscribe to a feed",
		Description: "Parses the feed at the given URL and stores it with its current articles",
		Tags:        []string{"Subscriptions"},
	}, h.Subscribe)

	huma.Register(api, huma.Operation{
		OperationID: "listSubscriptions",
		Method:      http.MethodGet,
		Path:        "/subscriptions",
		Summary:     "List subscriptions",
		Tags:        []string{"Subscriptions"},
	}, h.ListSubscriptions)

	huma.Register(api, huma.Operation{
		OperationID: "refreshSubscription",
		Method:      http.MethodPost,
		Path:        "/subscriptions/{id}/refresh",
		Summary:     "Refresh a subscription",
		Description: "Re-parses the feed and stores articles not seen before",
		Tags:        []string{"Subscriptions"},
	}, h.RefreshSubscription)

	huma.Register(api, huma.Operation{
		OperationID: "unsubscribe",
		Method:      http.MethodDelete,
		Path:        "/subscriptions/{id}",
		Summary:     "Unsubscribe from a feed",
		Tags:        []string{"Subscriptions"},
	}, h.Unsubscribe)
}

// SubscribeInput defines the input for the Subscribe operation
type SubscribeInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	Body   struct {
		URL string `json:"url" required:"true" format:"uri" doc:"Feed URL to subscribe to"`
	}
}

// SubscribeOutput defines the output for the Subscribe operation
type SubscribeOutput struct {
	Body domain.Feed
}

// Subscribe handles the POST /subscriptions endpoint
func (h *SubscriptionHandler) Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
	feed, err := h.service.Subscribe(ctx, input.UserID, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SubscribeOutput{Body: *feed}, nil
}

// ListSubscriptionsInput defines the input for listing subscriptions
type ListSubscriptionsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
}

// ListSubscriptionsOutput defines the output for listing subscriptions
type ListSubscriptionsOutput struct {
	Body struct {
		Feeds []domain.Feed `json:"feeds" doc:"Active subscriptions, newest first"`
	}
}

// ListSubscriptions handles the GET /subscriptions endpoint
func (h *SubscriptionHandler) ListSubscriptions(ctx context.Context, input *ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	feeds, err := h.service.ListFeeds(ctx, input.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &ListSubscriptionsOutput{}
	output.Body.Feeds = feeds
	return output, nil
}

// RefreshSubscriptionInput defines the input for refreshing a subscription
type RefreshSubscriptionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	ID     string `path:"id" doc:"Subscription ID"`
}

// RefreshSubscriptionOutput defines the output for refreshing a subscription
type RefreshSubscriptionOutput struct {
	Body struct {
		NewArticles int `json:"newArticles" doc:"Number of articles stored by this refresh"`
	}
}

// RefreshSubscription handles the POST /subscriptions/{id}/refresh endpoint
func (h *SubscriptionHandler) RefreshSubscription(ctx context.Context, input *RefreshSubscriptionInput) (*RefreshSubscriptionOutput, error) {
	added, err := h.service.Refresh(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &RefreshSubscriptionOutput{}
	output.Body.NewArticles = added
	return output, nil
}

// UnsubscribeInput defines the input for the Unsubscribe operation
type UnsubscribeInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	ID     string `path:"id" doc:"Subscription ID"`
}

// UnsubscribeOutput defines the output for the Unsubscribe operation
type UnsubscribeOutput struct {
	Status int
}

// Unsubscribe handles the DELETE /subscriptions/{id} endpoint
func (h *SubscriptionHandler) Unsubscribe(ctx context.Context, input *UnsubscribeInput) (*UnsubscribeOutput, error) {
	if err := h.service.Unsubscribe(ctx, input.UserID, input.ID); err != nil {
		return nil, toHumaError(err)
	}

	return &UnsubscribeOutput{Status: http.StatusNoContent}, nil
}
