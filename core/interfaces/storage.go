// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for feed, article and tag persistence

package interfaces

import (
	"context"

	"feedreader-api/core/domain"
)

// FeedStorage defines the interface for subscription persistence.
// Implementations enforce ownership: operations taking a userID must only
// touch rows owned by that user and report missing rows as not-found.
type FeedStorage interface {
	// Save persists a new feed subscription
	Save(ctx context.Context, feed *domain.Feed) error

	// GetByID retrieves a feed owned by the user, excluding soft-deleted rows
	GetByID(ctx context.Context, userID, id string) (*domain.Feed, error)

	// GetByURL retrieves a feed by its source URL, excluding soft-deleted rows
	GetByURL(ctx context.Context, userID, url string) (*domain.Feed, error)

	// ListByUser returns all active subscriptions for a user
	ListByUser(ctx context.Context, userID string) ([]domain.Feed, error)

	// TouchRefreshed records a successful ingestion time
	TouchRefreshed(ctx context.Context, id string) error

	// SoftDelete marks a subscription as deleted without removing rows
	SoftDelete(ctx context.Context, userID, id string) error
}

// ArticleStorage defines the interface for article persistence.
type ArticleStorage interface {
	// SaveAll persists a batch of newly ingested articles
	SaveAll(ctx context.Context, articles []domain.Article) error

	// ExistingLinks reports which of the given links are already stored
	// for the feed. Used by the caller to deduplicate ingested articles.
	ExistingLinks(ctx context.Context, feedID string, links []string) (map[string]bool, error)

	// ListByFeed returns all articles for a feed, newest first
	ListByFeed(ctx context.Context, feedID string) ([]domain.Article, error)

	// GetByID retrieves an article owned (via its feed) by the user
	GetByID(ctx context.Context, userID, id string) (*domain.Article, error)

	// SetRead updates the read flag on an article owned by the user
	SetRead(ctx context.Context, userID, id string, read bool) error

	// SetReadLater updates the read-later flag on an article owned by the user
	SetReadLater(ctx context.Context, userID, id string, readLater bool) error
}

// TagStorage defines the interface for tag persistence.
type TagStorage interface {
	// Save persists a new tag
	Save(ctx context.Context, tag *domain.Tag) error

	// ListByUser returns all tags owned by a user
	ListByUser(ctx context.Context, userID string) ([]domain.Tag, error)

	// Assign attaches a tag to an article; both must be owned by the user
	Assign(ctx context.Context, userID, articleID, tagID string) error

	// Unassign detaches a tag from an article
	Unassign(ctx context.Context, userID, articleID, tagID string) error

	// Delete removes a tag and its assignments
	Delete(ctx context.Context, userID, tagID string) error
}
