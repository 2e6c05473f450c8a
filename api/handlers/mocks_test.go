package handlers

import (
	"context"

	"feedreader-api/core/domain"
)

// mockParser is a mock implementation of FeedParser
type mockParser struct {
	parseFeedFunc func(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

func (m *mockParser) ParseFeed(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	if m.parseFeedFunc != nil {
		return m.parseFeedFunc(ctx, url)
	}
	return &domain.ParsedFeed{}, nil
}

// mockSubscriptionService is a mock implementation of SubscriptionService
type mockSubscriptionService struct {
	subscribeFunc   func(ctx context.Context, userID, feedURL string) (*domain.Feed, error)
	listFeedsFunc   func(ctx context.Context, userID string) ([]domain.Feed, error)
	refreshFunc     func(ctx context.Context, userID, feedID string) (int, error)
	unsubscribeFunc func(ctx context.Context, userID, feedID string) error
}

func (m *mockSubscriptionService) Subscribe(ctx context.Context, userID, feedURL string) (*domain.Feed, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, userID, feedURL)
	}
	return &domain.Feed{}, nil
}

func (m *mockSubscriptionService) ListFeeds(ctx context.Context, userID string) ([]domain.Feed, error) {
	if m.listFeedsFunc != nil {
		return m.listFeedsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionService) Refresh(ctx context.Context, userID, feedID string) (int, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, userID, feedID)
	}
	return 0, nil
}

func (m *mockSubscriptionService) Unsubscribe(ctx context.Context, userID, feedID string) error {
	if m.unsubscribeFunc != nil {
		return m.unsubscribeFunc(ctx, userID, feedID)
	}
	return nil
}

// mockArticleService is a mock implementation of ArticleService
type mockArticleService struct {
	listArticlesFunc  func(ctx context.Context, userID, feedID string, page, perPage int) ([]domain.Article, error)
	markReadFunc      func(ctx context.Context, userID, articleID string, read bool) error
	markReadLaterFunc func(ctx context.Context, userID, articleID string, readLater bool) error
}

func (m *mockArticleService) ListArticles(ctx context.Context, userID, feedID string, page, perPage int) ([]domain.Article, error) {
	if m.listArticlesFunc != nil {
		return m.listArticlesFunc(ctx, userID, feedID, page, perPage)
	}
	return nil, nil
}

func (m *mockArticleService) MarkRead(ctx context.Context, userID, articleID string, read bool) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, userID, articleID, read)
	}
	return nil
}

func (m *mockArticleService) MarkReadLater(ctx context.Context, userID, articleID string, readLater bool) error {
	if m.markReadLaterFunc != nil {
		return m.markReadLaterFunc(ctx, userID, articleID, readLater)
	}
	return nil
}

// mockTagService is a mock implementation of TagService
type mockTagService struct {
	createTagFunc   func(ctx context.Context, userID, name string) (*domain.Tag, error)
	listTagsFunc    func(ctx context.Context, userID string) ([]domain.Tag, error)
	assignTagFunc   func(ctx context.Context, userID, articleID, tagID string) error
	unassignTagFunc func(ctx context.Context, userID, articleID, tagID string) error
	deleteTagFunc   func(ctx context.Context, userID, tagID string) error
}

func (m *mockTagService) CreateTag(ctx context.Context, userID, name string) (*domain.Tag, error) {
	if m.createTagFunc != nil {
		return m.createTagFunc(ctx, userID, name)
	}
	return &domain.Tag{}, nil
}

func (m *mockTagService) ListTags(ctx context.Context, userID string) ([]domain.Tag, error) {
	if m.listTagsFunc != nil {
		return m.listTagsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTagService) AssignTag(ctx context.Context, userID, articleID, tagID string) error {
	if m.assignTagFunc != nil {
		return m.assignTagFunc(ctx, userID, articleID, tagID)
	}
	return nil
}

func (m *mockTagService) UnassignTag(ctx context.Context, userID, articleID, tagID string) error {
	if m.unassignTagFunc != nil {
		return m.unassignTagFunc(ctx, userID, articleID, tagID)
	}
	return nil
}

func (m *mockTagService) DeleteTag(ctx context.Context, userID, tagID string) error {
	if m.deleteTagFunc != nil {
		return m.deleteTagFunc(ctx, userID, tagID)
	}
	return nil
}
