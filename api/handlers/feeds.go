// ABOUTME: Feed preview handler for the Huma API
// ABOUTME: Parses a feed URL without creating a subscription

package handlers

import (
	"context"
	"net/http"

	"feedreader-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// FeedParser defines the slice of the ingestion service used by the
// preview endpoint
type FeedParser interface {
	ParseFeed(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// FeedHandler handles feed parsing HTTP requests
type FeedHandler struct {
	parser FeedParser
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(parser FeedParser) *FeedHandler {
	return &FeedHandler{parser: parser}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "previewFeed",
		Method:      http.MethodPost,
		Path:        "/feeds/preview",
		Summary:     "Preview an RSS/Atom feed",
		Description: "Fetches and parses a feed URL, returning its metadata and articles without subscribing",
		Tags:        []string{"Feeds"},
	}, h.PreviewFeed)
}

// PreviewFeedInput defines the input for the PreviewFeed operation
type PreviewFeedInput struct {
	Body struct {
		URL string `json:"url" required:"true" format:"uri" doc:"Feed URL to parse"`
	}
}

// PreviewFeedOutput defines the output for the PreviewFeed operation
type PreviewFeedOutput struct {
	Body domain.ParsedFeed
}

// PreviewFeed handles the POST /feeds/preview endpoint
func (h *FeedHandler) PreviewFeed(ctx context.Context, input *PreviewFeedInput) (*PreviewFeedOutput, error) {
	feed, err := h.parser.ParseFeed(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PreviewFeedOutput{Body: *feed}, nil
}
