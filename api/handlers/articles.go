// ABOUTME: Article handlers for the Huma API
// ABOUTME: Paginated article listing plus read and read-later flags

package handlers

import (
	"context"
	"net/http"

	"feedreader-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// ArticleService defines the article operations used by the HTTP layer
type ArticleService interface {
	ListArticles(ctx context.Context, userID, feedID string, page, perPage int) ([]domain.Article, error)
	MarkRead(ctx context.Context, userID, articleID string, read bool) error
	MarkReadLater(ctx context.Context, userID, articleID string, readLater bool) error
}

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	service ArticleService
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(service ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// RegisterRoutes registers all article routes
func (h *ArticleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/subscriptions/{id}/articles",
		Summary:     "List a subscription's articles",
		Description: "Returns one page of the feed's articles, newest first",
		Tags:        []string{"Articles"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID: "markArticleRead",
		Method:      http.MethodPut,
		Path:        "/articles/{id}/read",
		Summary:     "Set an article's read flag",
		Tags:        []string{"Articles"},
	}, h.MarkRead)

	huma.Register(api, huma.Operation{
		OperationID: "markArticleReadLater",
		Method:      http.MethodPut,
		Path:        "/articles/{id}/read-later",
		Summary:     "Set an article's read-later flag",
		Tags:        []string{"Articles"},
	}, h.MarkReadLater)
}

// ListArticlesInput defines the input for the ListArticles operation
type ListArticlesInput struct {
	UserID  string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	ID      string `path:"id" doc:"Subscription ID"`
	Page    int    `query:"page,omitempty" minimum:"1" default:"1" doc:"Page number"`
	PerPage int    `query:"per_page,omitempty" minimum:"1" maximum:"100" default:"50" doc:"Articles per page"`
}

// ListArticlesOutput defines the output for the ListArticles operation
type ListArticlesOutput struct {
	Body struct {
		Articles []domain.Article `json:"articles" doc:"One page of articles, newest first"`
	}
}

// ListArticles handles the GET /subscriptions/{id}/articles endpoint
func (h *ArticleHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	articles, err := h.service.ListArticles(ctx, input.UserID, input.ID, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &ListArticlesOutput{}
	output.Body.Articles = articles
	return output, nil
}

// MarkReadInput defines the input for the MarkRead operation
type MarkReadInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	ID     string `path:"id" doc:"Article ID"`
	Body   struct {
		Read bool `json:"read" doc:"New read state"`
	}
}

// MarkReadOutput defines the output for the flag operations
type MarkReadOutput struct {
	Status int
}

// MarkRead handles the PUT /articles/{id}/read endpoint
func (h *ArticleHandler) MarkRead(ctx context.Context, input *MarkReadInput) (*MarkReadOutput, error) {
	if err := h.service.MarkRead(ctx, input.UserID, input.ID, input.Body.Read); err != nil {
		return nil, toHumaError(err)
	}

	return &MarkReadOutput{Status: http.StatusNoContent}, nil
}

// MarkReadLaterInput defines the input for the MarkReadLater operation
type MarkReadLaterInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	ID     string `path:"id" doc:"Article ID"`
	Body   struct {
		ReadLater bool `json:"readLater" doc:"New read-later state"`
	}
}

// MarkReadLater handles the PUT /articles/{id}/read-later endpoint
func (h *ArticleHandler) MarkReadLater(ctx context.Context, input *MarkReadLaterInput) (*MarkReadOutput, error) {
	if err := h.service.MarkReadLater(ctx, input.UserID, input.ID, input.Body.ReadLater); err != nil {
		return nil, toHumaError(err)
	}

	return &MarkReadOutput{Status: http.StatusNoContent}, nil
}
