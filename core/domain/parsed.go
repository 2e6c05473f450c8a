// ABOUTME: Parsed feed models produced by the ingestion parser
// ABOUTME: Ephemeral normalized output, owned by the caller after parse

package domain

// ParsedFeed is the normalized result of parsing one RSS or Atom document.
// It is produced once per parse call and never cached or mutated by the
// parser afterwards.
type ParsedFeed struct {
	// Title is the channel/feed title. Always non-empty on success.
	Title string `json:"title"`

	// Description is the channel/feed description, "" when absent.
	Description string `json:"description"`

	// ImageURL is the channel-level icon, "" when absent.
	ImageURL string `json:"imageUrl,omitempty"`

	// Articles holds the normalized items in document order.
	// Always non-empty on success.
	Articles []ParsedArticle `json:"articles"`
}

// ParsedArticle is one normalized item/entry. Every article in a
// successful ParsedFeed has a non-empty Title and Link.
type ParsedArticle struct {
	Title string `json:"title"`
	Link  string `json:"link"`

	// Description is the raw summary/description text, truncated to 300
	// characters with a trailing ellipsis when longer. Not sanitized here;
	// the render-time sanitizer owns that.
	Description string `json:"description"`

	// Content is the full-content field (content:encoded or atom content),
	// "" when the dialect does not provide one.
	Content string `json:"content,omitempty"`

	// PubDate is preserved as-is from the source (RFC 822 for RSS,
	// ISO 8601 for Atom). When the source omits it the parser substitutes
	// the wall-clock time at parse time.
	PubDate string `json:"pubDate"`

	// ImageURL is resolved via the image priority chain, "" when no
	// strategy matched.
	ImageURL string `json:"imageUrl,omitempty"`

	// Source is the parent feed's title.
	Source string `json:"source"`

	// Reader-state flags, persisted and mutated by the caller.
	IsRead      bool `json:"isRead"`
	IsReadLater bool `json:"isReadLater"`
}

// IsValid reports whether the article carries the required fields.
func (a *ParsedArticle) IsValid() bool {
	return a.Title != "" && a.Link != ""
}
