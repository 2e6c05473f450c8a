// ABOUTME: Subscription service owning persistence and cache policy around the ingestion core
// ABOUTME: Applies the hard parse deadline, link deduplication and cache invalidation

package subscriptions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"feedreader-api/core/domain"
	coreerrors "feedreader-api/core/errors"
	"feedreader-api/core/ingest"
	"feedreader-api/core/interfaces"

	"github.com/google/uuid"
)

// defaultParseTimeout is the hard wall-clock budget for one ParseFeed
// call, fetch included. Expiry surfaces as ingest.ErrTimeout.
const defaultParseTimeout = 15 * time.Second

// articleCacheTTL bounds staleness of cached article lists between
// explicit invalidations.
const articleCacheTTL = 5 * time.Minute

// FeedParser is the slice of the ingestion core this service consumes.
type FeedParser interface {
	ParseFeed(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Storage groups the persistence collaborators.
type Storage struct {
	Feeds    interfaces.FeedStorage
	Articles interfaces.ArticleStorage
	Tags     interfaces.TagStorage
}

// Service implements subscription management on top of the ingestion
// core. The parser itself stays pure; retry, timeout, deduplication and
// cache policy all live here.
type Service struct {
	deps    interfaces.Dependencies
	parser  FeedParser
	storage Storage
	timeout time.Duration
}

// NewService creates a subscription service.
func NewService(deps interfaces.Dependencies, parser FeedParser, storage Storage) *Service {
	return &Service{
		deps:    deps,
		parser:  parser,
		storage: storage,
		timeout: defaultParseTimeout,
	}
}

// parseWithTimeout races the parse against the hard deadline. The
// parser is safe to abandon: it mutates no caller-visible state.
func (s *Service) parseWithTimeout(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		feed *domain.ParsedFeed
		err  error
	}

	done := make(chan result, 1)
	go func() {
		feed, err := s.parser.ParseFeed(ctx, feedURL)
		done <- result{feed: feed, err: err}
	}()

	select {
	case r := <-done:
		// When the deadline and the result land together the parser's
		// error is a ctx-cancellation artifact; the timeout wins.
		if r.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ingest.ErrTimeout
		}
		return r.feed, r.err
	case <-ctx.Done():
		return nil, ingest.ErrTimeout
	}
}

// ParseFeed previews the feed at feedURL under the same hard deadline
// that subscriptions get. Nothing is persisted.
func (s *Service) ParseFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	return s.parseWithTimeout(ctx, feedURL)
}

// Subscribe parses the feed at feedURL and persists it with its current
// articles for the user.
func (s *Service) Subscribe(ctx context.Context, userID, feedURL string) (*domain.Feed, error) {
	if userID == "" {
		return nil, &coreerrors.ValidationError{Field: "userId", Message: "user id is required"}
	}

	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be an absolute URL"}
	}

	if existing, err := s.storage.Feeds.GetByURL(ctx, userID, feedURL); err == nil && existing != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "already subscribed to this feed"}
	}

	parsedFeed, err := s.parseWithTimeout(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	feed := &domain.Feed{
		ID:          uuid.New().String(),
		UserID:      userID,
		URL:         feedURL,
		Title:       parsedFeed.Title,
		Description: parsedFeed.Description,
		ImageURL:    parsedFeed.ImageURL,
		CreatedAt:   now,
		RefreshedAt: now,
	}

	if err := s.storage.Feeds.Save(ctx, feed); err != nil {
		return nil, err
	}

	if _, err := s.ingestArticles(ctx, feed, parsedFeed); err != nil {
		return nil, err
	}

	s.logInfo("Subscribed to feed", map[string]interface{}{
		"feed_id":  feed.ID,
		"url":      feedURL,
		"articles": len(parsedFeed.Articles),
	})

	return feed, nil
}

// Refresh re-parses an existing subscription and stores articles not
// seen before. Returns the number of newly stored articles.
func (s *Service) Refresh(ctx context.Context, userID, feedID string) (int, error) {
	feed, err := s.storage.Feeds.GetByID(ctx, userID, feedID)
	if err != nil {
		return 0, err
	}

	parsedFeed, err := s.parseWithTimeout(ctx, feed.URL)
	if err != nil {
		return 0, err
	}

	added, err := s.ingestArticles(ctx, feed, parsedFeed)
	if err != nil {
		return 0, err
	}

	if err := s.storage.Feeds.TouchRefreshed(ctx, feed.ID); err != nil {
		return added, err
	}

	return added, nil
}

// ingestArticles stores the parsed articles that are not already present
// for the feed (deduplicated by link) and invalidates the article cache.
func (s *Service) ingestArticles(ctx context.Context, feed *domain.Feed, parsedFeed *domain.ParsedFeed) (int, error) {
	links := make([]string, 0, len(parsedFeed.Articles))
	for _, a := range parsedFeed.Articles {
		links = append(links, a.Link)
	}

	existing, err := s.storage.Articles.ExistingLinks(ctx, feed.ID, links)
	if err != nil {
		return 0, err
	}

	fresh := make([]domain.Article, 0, len(parsedFeed.Articles))
	for _, parsed := range parsedFeed.Articles {
		if existing[parsed.Link] {
			continue
		}
		article := domain.FromParsed(feed.ID, parsed)
		article.ID = uuid.New().String()
		fresh = append(fresh, article)
	}

	if len(fresh) > 0 {
		if err := s.storage.Articles.SaveAll(ctx, fresh); err != nil {
			return 0, err
		}
	}

	s.invalidateArticles(ctx, feed.ID)

	return len(fresh), nil
}

// ListFeeds returns the user's active subscriptions.
func (s *Service) ListFeeds(ctx context.Context, userID string) ([]domain.Feed, error) {
	return s.storage.Feeds.ListByUser(ctx, userID)
}

// Unsubscribe soft-deletes a subscription owned by the user.
func (s *Service) Unsubscribe(ctx context.Context, userID, feedID string) error {
	if err := s.storage.Feeds.SoftDelete(ctx, userID, feedID); err != nil {
		return err
	}
	s.invalidateArticles(ctx, feedID)
	return nil
}

// ListArticles returns one page of a feed's articles, newest first,
// served from cache when possible.
func (s *Service) ListArticles(ctx context.Context, userID, feedID string, page, perPage int) ([]domain.Article, error) {
	// Ownership check before touching the cache.
	if _, err := s.storage.Feeds.GetByID(ctx, userID, feedID); err != nil {
		return nil, err
	}

	articles, err := s.allArticles(ctx, feedID)
	if err != nil {
		return nil, err
	}

	return PaginateArticles(articles, page, perPage), nil
}

func (s *Service) allArticles(ctx context.Context, feedID string) ([]domain.Article, error) {
	key := articleCacheKey(feedID)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, key); err == nil && data != nil {
			var cached []domain.Article
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	articles, err := s.storage.Articles.ListByFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(articles); err == nil {
			_ = s.deps.Cache.Set(ctx, key, data, articleCacheTTL)
		}
	}

	return articles, nil
}

// MarkRead sets the read flag on an article owned by the user.
func (s *Service) MarkRead(ctx context.Context, userID, articleID string, read bool) error {
	article, err := s.storage.Articles.GetByID(ctx, userID, articleID)
	if err != nil {
		return err
	}
	if err := s.storage.Articles.SetRead(ctx, userID, articleID, read); err != nil {
		return err
	}
	s.invalidateArticles(ctx, article.FeedID)
	return nil
}

// MarkReadLater sets the read-later flag on an article owned by the user.
func (s *Service) MarkReadLater(ctx context.Context, userID, articleID string, readLater bool) error {
	article, err := s.storage.Articles.GetByID(ctx, userID, articleID)
	if err != nil {
		return err
	}
	if err := s.storage.Articles.SetReadLater(ctx, userID, articleID, readLater); err != nil {
		return err
	}
	s.invalidateArticles(ctx, article.FeedID)
	return nil
}

// CreateTag creates a new tag for the user.
func (s *Service) CreateTag(ctx context.Context, userID, name string) (*domain.Tag, error) {
	if name == "" {
		return nil, &coreerrors.ValidationError{Field: "name", Message: "tag name is required"}
	}
	tag := &domain.Tag{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   name,
	}
	if err := s.storage.Tags.Save(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// ListTags returns all tags owned by the user.
func (s *Service) ListTags(ctx context.Context, userID string) ([]domain.Tag, error) {
	return s.storage.Tags.ListByUser(ctx, userID)
}

// AssignTag attaches a tag to an article.
func (s *Service) AssignTag(ctx context.Context, userID, articleID, tagID string) error {
	article, err := s.storage.Articles.GetByID(ctx, userID, articleID)
	if err != nil {
		return err
	}
	if err := s.storage.Tags.Assign(ctx, userID, articleID, tagID); err != nil {
		return err
	}
	s.invalidateArticles(ctx, article.FeedID)
	return nil
}

// UnassignTag detaches a tag from an article.
func (s *Service) UnassignTag(ctx context.Context, userID, articleID, tagID string) error {
	article, err := s.storage.Articles.GetByID(ctx, userID, articleID)
	if err != nil {
		return err
	}
	if err := s.storage.Tags.Unassign(ctx, userID, articleID, tagID); err != nil {
		return err
	}
	s.invalidateArticles(ctx, article.FeedID)
	return nil
}

// DeleteTag removes a tag and its assignments.
func (s *Service) DeleteTag(ctx context.Context, userID, tagID string) error {
	return s.storage.Tags.Delete(ctx, userID, tagID)
}

func (s *Service) invalidateArticles(ctx context.Context, feedID string) {
	if s.deps.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("articles:%s:*", feedID)
	if err := s.deps.Cache.DeletePattern(ctx, pattern); err != nil && !errors.Is(err, context.Canceled) {
		s.logWarn("Cache invalidation failed", map[string]interface{}{
			"pattern": pattern,
			"error":   err.Error(),
		})
	}
}

func articleCacheKey(feedID string) string {
	return fmt.Sprintf("articles:%s:all", feedID)
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
