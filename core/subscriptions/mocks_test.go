package subscriptions

import (
	"context"
	"time"

	"feedreader-api/core/domain"
	coreerrors "feedreader-api/core/errors"
)

// mockParser is a mock implementation of the FeedParser interface
type mockParser struct {
	parseFunc func(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

func (m *mockParser) ParseFeed(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	if m.parseFunc != nil {
		return m.parseFunc(ctx, url)
	}
	return nil, nil
}

// mockFeedStorage is an in-memory FeedStorage backed by func fields with
// sane defaults for the common paths.
type mockFeedStorage struct {
	saveFunc       func(ctx context.Context, feed *domain.Feed) error
	getByIDFunc    func(ctx context.Context, userID, id string) (*domain.Feed, error)
	getByURLFunc   func(ctx context.Context, userID, url string) (*domain.Feed, error)
	listFunc       func(ctx context.Context, userID string) ([]domain.Feed, error)
	touchFunc      func(ctx context.Context, id string) error
	softDeleteFunc func(ctx context.Context, userID, id string) error
}

func (m *mockFeedStorage) Save(ctx context.Context, feed *domain.Feed) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, feed)
	}
	return nil
}

func (m *mockFeedStorage) GetByID(ctx context.Context, userID, id string) (*domain.Feed, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, id)
	}
	return nil, &coreerrors.NotFoundError{Resource: "feed", ID: id}
}

func (m *mockFeedStorage) GetByURL(ctx context.Context, userID, url string) (*domain.Feed, error) {
	if m.getByURLFunc != nil {
		return m.getByURLFunc(ctx, userID, url)
	}
	return nil, &coreerrors.NotFoundError{Resource: "feed", ID: url}
}

func (m *mockFeedStorage) ListByUser(ctx context.Context, userID string) ([]domain.Feed, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockFeedStorage) TouchRefreshed(ctx context.Context, id string) error {
	if m.touchFunc != nil {
		return m.touchFunc(ctx, id)
	}
	return nil
}

func (m *mockFeedStorage) SoftDelete(ctx context.Context, userID, id string) error {
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(ctx, userID, id)
	}
	return nil
}

// mockArticleStorage is a mock implementation of the ArticleStorage interface
type mockArticleStorage struct {
	saved             []domain.Article
	saveAllFunc       func(ctx context.Context, articles []domain.Article) error
	existingLinksFunc func(ctx context.Context, feedID string, links []string) (map[string]bool, error)
	listByFeedFunc    func(ctx context.Context, feedID string) ([]domain.Article, error)
	getByIDFunc       func(ctx context.Context, userID, id string) (*domain.Article, error)
	setReadFunc       func(ctx context.Context, userID, id string, read bool) error
	setReadLaterFunc  func(ctx context.Context, userID, id string, readLater bool) error
}

func (m *mockArticleStorage) SaveAll(ctx context.Context, articles []domain.Article) error {
	m.saved = append(m.saved, articles...)
	if m.saveAllFunc != nil {
		return m.saveAllFunc(ctx, articles)
	}
	return nil
}

func (m *mockArticleStorage) ExistingLinks(ctx context.Context, feedID string, links []string) (map[string]bool, error) {
	if m.existingLinksFunc != nil {
		return m.existingLinksFunc(ctx, feedID, links)
	}
	return map[string]bool{}, nil
}

func (m *mockArticleStorage) ListByFeed(ctx context.Context, feedID string) ([]domain.Article, error) {
	if m.listByFeedFunc != nil {
		return m.listByFeedFunc(ctx, feedID)
	}
	return nil, nil
}

func (m *mockArticleStorage) GetByID(ctx context.Context, userID, id string) (*domain.Article, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, id)
	}
	return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
}

func (m *mockArticleStorage) SetRead(ctx context.Context, userID, id string, read bool) error {
	if m.setReadFunc != nil {
		return m.setReadFunc(ctx, userID, id, read)
	}
	return nil
}

func (m *mockArticleStorage) SetReadLater(ctx context.Context, userID, id string, readLater bool) error {
	if m.setReadLaterFunc != nil {
		return m.setReadLaterFunc(ctx, userID, id, readLater)
	}
	return nil
}

// mockTagStorage is a mock implementation of the TagStorage interface
type mockTagStorage struct {
	saveFunc     func(ctx context.Context, tag *domain.Tag) error
	listFunc     func(ctx context.Context, userID string) ([]domain.Tag, error)
	assignFunc   func(ctx context.Context, userID, articleID, tagID string) error
	unassignFunc func(ctx context.Context, userID, articleID, tagID string) error
	deleteFunc   func(ctx context.Context, userID, tagID string) error
}

func (m *mockTagStorage) Save(ctx context.Context, tag *domain.Tag) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, tag)
	}
	return nil
}

func (m *mockTagStorage) ListByUser(ctx context.Context, userID string) ([]domain.Tag, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTagStorage) Assign(ctx context.Context, userID, articleID, tagID string) error {
	if m.assignFunc != nil {
		return m.assignFunc(ctx, userID, articleID, tagID)
	}
	return nil
}

func (m *mockTagStorage) Unassign(ctx context.Context, userID, articleID, tagID string) error {
	if m.unassignFunc != nil {
		return m.unassignFunc(ctx, userID, articleID, tagID)
	}
	return nil
}

func (m *mockTagStorage) Delete(ctx context.Context, userID, tagID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, tagID)
	}
	return nil
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc           func(ctx context.Context, key string) ([]byte, error)
	setFunc           func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc        func(ctx context.Context, key string) error
	deletePatternFunc func(ctx context.Context, pattern string) error
	deletedPatterns   []string
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

func (m *mockCache) DeletePattern(ctx context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	if m.deletePatternFunc != nil {
		return m.deletePatternFunc(ctx, pattern)
	}
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
