// ABOUTME: Ingestion service composing the fetcher and the parser
// ABOUTME: Maps fetch-level failures onto the user-facing error taxonomy

package ingest

import (
	"context"
	"errors"

	"feedreader-api/core/domain"
	"feedreader-api/core/interfaces"
)

// Service is the entry point of the ingestion core: fetch a feed URL,
// parse the document, return a normalized ParsedFeed. Each call is
// independent; the service holds no mutable state and is safe for
// concurrent use.
type Service struct {
	deps    interfaces.Dependencies
	fetcher *Fetcher
}

// NewService creates an ingestion service from the dependency container.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps:    deps,
		fetcher: NewFetcher(deps.HTTPClient),
	}
}

// ParseFeed fetches and parses the feed at feedURL. On failure the
// returned error is one of the classified values from errors.go; a
// non-success proxy status passes through with its status line intact.
func (s *Service) ParseFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	xmlText, err := s.fetcher.FetchFeedXML(ctx, feedURL)
	if err != nil {
		var proxyErr *ProxyStatusError
		if errors.As(err, &proxyErr) {
			return nil, proxyErr
		}
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Feed fetch failed", map[string]interface{}{
				"url":   feedURL,
				"error": err.Error(),
			})
		}
		return nil, ErrUnableToFetch
	}

	feed, err := Parse(xmlText)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Feed rejected by parser", map[string]interface{}{
				"url":   feedURL,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	return feed, nil
}
