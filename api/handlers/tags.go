// ABOUTME: Tag handlers for the Huma API
// ABOUTME: User-scoped tag management and article tag assignment

package handlers

import (
	"context"
	"net/http"

	"feedreader-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// TagService defines the tag operations used by the HTTP layer
type TagService interface {
	CreateTag(ctx context.Context, userID, name string) (*domain.Tag, error)
	ListTags(ctx context.Context, userID string) ([]domain.Tag, error)
	AssignTag(ctx context.Context, userID, articleID, tagID string) error
	UnassignTag(ctx context.Context, userID, articleID, tagID string) error
	DeleteTag(ctx context.Context, userID, tagID string) error
}

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	service TagService
}

// NewTagHandler creates a new tag handler
func NewTagHandler(service TagService) *TagHandler {
	return &TagHandler{service: service}
}

// RegisterRoutes registers all tag routes
func (h *TagHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createTag",
		Method:      http.MethodPost,
		Path:        "/tags",
		Summary:     "Create a tag",
		Tags:        []string{"Tags"},
	}, h.CreateTag)

	huma.Register(api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/tags",
		Summary:     "List tags",
		Tags:        []string{"Tags"},
	}, h.ListTags)

	huma.Register(api, huma.Operation{
		OperationID: "deleteTag",
		Method:      http.MethodDelete,
		Path:        "/tags/{id}",
		Summary:     "Delete a tag and its assignments",
		Tags:        []string{"Tags"},
	}, h.DeleteTag)

	huma.Register(api, huma.Operation{
		OperationID: "assignTag",
		Method:      http.MethodPut,
		Path:        "/articles/{articleId}/tags/{tagId}",
		Summary:     "Attach a tag to an article",
		Tags:        []string{"Tags"},
	}, h.AssignTag)

	huma.Register(api, huma.Operation{
		OperationID: "unassignTag",
		Method:      http.MethodDelete,
		Path:        "/articles/{articleId}/tags/{tagId}",
		Summary:     "Detach a tag from an article",
		Tags:        []string{"Tags"},
	}, h.UnassignTag)
}

// CreateTagInput defines the input for the CreateTag operation
type CreateTagInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	Body   struct {
		Name string `json:"name" required:"true" minLength:"1" doc:"Tag name, unique per user"`
	}
}

// CreateTagOutput defines the output for the CreateTag operation
type CreateTagOutput struct {
	Body domain.Tag
}

// CreateTag handles the POST /tags endpoint
func (h *TagHandler) CreateTag(ctx context.Context, input *CreateTagInput) (*CreateTagOutput, error) {
	tag, err := h.service.CreateTag(ctx, input.UserID, input.Body.Name)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateTagOutput{Body: *tag}, nil
}

// ListTagsInput defines the input for the ListTags operation
type ListTagsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
}

// ListTagsOutput defines the output for the ListTags operation
type ListTagsOutput struct {
	Body struct {
		Tags []domain.Tag `json:"tags" doc:"Tags owned by the user, sorted by name"`
	}
}

// ListTags handles the GET /tags endpoint
func (h *TagHandler) ListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error) {
	tags, err := h.service.ListTags(ctx, input.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &ListTagsOutput{}
	output.Body.Tags = tags
	return output, nil
}

// TagAssignmentInput defines the input for assigning or unassigning a tag
type TagAssignmentInput struct {
	UserID    string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	ArticleID string `path:"articleId" doc:"Article ID"`
	TagID     string `path:"tagId" doc:"Tag ID"`
}

// TagAssignmentOutput defines the output for tag assignment operations
type TagAssignmentOutput struct {
	Status int
}

// AssignTag handles the PUT /articles/{articleId}/tags/{tagId} endpoint
func (h *TagHandler) AssignTag(ctx context.Context, input *TagAssignmentInput) (*TagAssignmentOutput, error) {
	if err := h.service.AssignTag(ctx, input.UserID, input.ArticleID, input.TagID); err != nil {
		return nil, toHumaError(err)
	}

	return &TagAssignmentOutput{Status: http.StatusNoContent}, nil
}

// UnassignTag handles the DELETE /articles/{articleId}/tags/{tagId} endpoint
func (h *TagHandler) UnassignTag(ctx context.Context, input *TagAssignmentInput) (*TagAssignmentOutput, error) {
	if err := h.service.UnassignTag(ctx, input.UserID, input.ArticleID, input.TagID); err != nil {
		return nil, toHumaError(err)
	}

	return &TagAssignmentOutput{Status: http.StatusNoContent}, nil
}

// DeleteTagInput defines the input for the DeleteTag operation
type DeleteTagInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Requesting user"`
	ID     string `path:"id" doc:"Tag ID"`
}

// DeleteTag handles the DELETE /tags/{id} endpoint
func (h *TagHandler) DeleteTag(ctx context.Context, input *DeleteTagInput) (*TagAssignmentOutput, error) {
	if err := h.service.DeleteTag(ctx, input.UserID, input.ID); err != nil {
		return nil, toHumaError(err)
	}

	return &TagAssignmentOutput{Status: http.StatusNoContent}, nil
}
