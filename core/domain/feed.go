// ABOUTME: Stored feed domain model for persisted subscriptions
// ABOUTME: Provides validation logic to ensure feed data integrity

package domain

import (
	"errors"
	"net/url"
	"time"
)

// Feed is a persisted subscription to an RSS or Atom source.
type Feed struct {
	// ID is the unique identifier for the feed
	ID string `json:"id"`

	// UserID is the owner of the subscription
	UserID string `json:"userId"`

	// URL is the feed's source URL (the actual RSS/Atom URL)
	URL string `json:"url"`

	// Title is the human-readable title of the feed
	Title string `json:"title"`

	// Description provides a brief description of the feed's content
	Description string `json:"description"`

	// ImageURL is the channel-level icon, "" when absent
	ImageURL string `json:"imageUrl,omitempty"`

	// CreatedAt is when the subscription was created
	CreatedAt time.Time `json:"createdAt"`

	// RefreshedAt is when articles were last ingested for this feed
	RefreshedAt time.Time `json:"refreshedAt"`

	// DeletedAt marks a soft-deleted subscription
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Validate checks if the feed has valid required fields
func (f *Feed) Validate() error {
	if f.Title == "" {
		return errors.New("feed title cannot be empty")
	}

	if f.URL == "" {
		return errors.New("feed URL cannot be empty")
	}

	parsed, err := url.Parse(f.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("feed URL is not valid format")
	}

	return nil
}
