// ABOUTME: User-facing error values for the feed ingestion pipeline
// ABOUTME: Message strings are part of the API contract and surfaced verbatim

package ingest

import (
	"errors"
	"fmt"
)

// These messages are shown to end users verbatim and asserted literally
// by clients. Do not reword them.
var (
	// ErrNotAFeed is returned when the document is not a recognizable
	// RSS 2.0 or Atom feed, or when parsing fails for any other reason.
	ErrNotAFeed = errors.New("Invalid feed: This URL does not contain a valid RSS or Atom feed")

	// ErrNoArticles is returned when the channel/feed carries zero
	// item/entry elements.
	ErrNoArticles = errors.New("Invalid feed: No articles found")

	// ErrMissingTitle is returned when the channel/feed title is absent.
	ErrMissingTitle = errors.New("Failed to parse feed")

	// ErrNoValidArticles is returned when items/entries exist but every
	// one of them lacks a title or link.
	ErrNoValidArticles = errors.New("Invalid feed: No valid articles found")

	// ErrUnableToFetch is returned when both the direct and the proxy
	// fetch attempts failed at the transport level.
	ErrUnableToFetch = errors.New("Unable to fetch the feed. Please check the URL and try again.")

	// ErrTimeout is returned by the caller-side deadline wrapper, never
	// by the parser itself.
	ErrTimeout = errors.New("Feed parsing timed out")
)

// ProxyStatusError is returned when the proxy fallback responded with a
// non-success HTTP status. The status line is carried verbatim.
type ProxyStatusError struct {
	StatusCode int
	Status     string // e.g. "404 Not Found"
}

// Error implements the error interface
func (e *ProxyStatusError) Error() string {
	return fmt.Sprintf("Proxy fetch failed with status %s", e.Status)
}

// IsProxyStatus checks if an error is a ProxyStatusError
func IsProxyStatus(err error) bool {
	var proxyErr *ProxyStatusError
	return errors.As(err, &proxyErr)
}
