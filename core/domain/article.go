// ABOUTME: Stored article domain model for ingested feed items
// ABOUTME: Carries reader state flags and tag assignments

package domain

import "time"

// Article is a persisted item ingested from a feed. The parser emits
// ParsedArticle values; the subscription service turns the new ones
// (deduplicated by Link) into Articles.
type Article struct {
	// ID is the unique identifier for the article
	ID string `json:"id"`

	// FeedID references the owning subscription
	FeedID string `json:"feedId"`

	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`

	// PubDate is the raw date string carried over from the parse
	PubDate string `json:"pubDate"`

	ImageURL string `json:"imageUrl,omitempty"`
	Source   string `json:"source"`

	// Reader state
	IsRead      bool `json:"isRead"`
	IsReadLater bool `json:"isReadLater"`

	// Tags assigned by the owner
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is when the article was ingested
	CreatedAt time.Time `json:"createdAt"`
}

// FromParsed builds a stored Article from a parser result.
func FromParsed(feedID string, p ParsedArticle) Article {
	return Article{
		FeedID:      feedID,
		Title:       p.Title,
		Link:        p.Link,
		Description: p.Description,
		Content:     p.Content,
		PubDate:     p.PubDate,
		ImageURL:    p.ImageURL,
		Source:      p.Source,
		IsRead:      p.IsRead,
		IsReadLater: p.IsReadLater,
		CreatedAt:   time.Now(),
	}
}

// Tag is a user-owned label that can be assigned to articles.
type Tag struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}
