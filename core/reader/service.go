// ABOUTME: Service layer implementation for reader view extraction
// ABOUTME: Handles article content extraction using go-readability

package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/interfaces"

	readability "github.com/go-shiori/go-readability"
)

const extractTimeout = 30 * time.Second

type Service struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

func NewService(cache interfaces.Cache, logger interfaces.Logger) *Service {
	return &Service{
		cache:  cache,
		logger: logger,
	}
}

// ExtractReaderViews extracts clean article content from multiple URLs
func (s *Service) ExtractReaderViews(ctx context.Context, urls []string) []domain.ReaderView {
	results := make([]domain.ReaderView, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(index int, url string) {
			defer wg.Done()

			// Check cache first
			if s.cache != nil {
				cacheKey := fmt.Sprintf("reader:%s", url)
				if data, err := s.cache.Get(ctx, cacheKey); err == nil && data != nil {
					var cachedView domain.ReaderView
					if err := json.Unmarshal(data, &cachedView); err == nil {
						results[index] = cachedView
						return
					}
				}
			}

			view := s.extractSingleView(url)
			results[index] = view

			// Cache successful results
			if s.cache != nil && view.Status == "ok" {
				cacheKey := fmt.Sprintf("reader:%s", url)
				if data, err := json.Marshal(view); err == nil {
					_ = s.cache.Set(ctx, cacheKey, data, 1*time.Hour)
				}
			}
		}(i, url)
	}

	wg.Wait()
	return results
}

func (s *Service) extractSingleView(url string) domain.ReaderView {
	result := domain.ReaderView{
		URL:    url,
		Status: "ok",
	}

	article, err := readability.FromURL(url, extractTimeout)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to parse reader view", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
		}
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	result.Title = article.Title
	result.Content = article.Content
	result.TextContent = article.TextContent
	result.SiteName = article.SiteName
	result.Image = article.Image
	result.Favicon = article.Favicon

	return result
}
