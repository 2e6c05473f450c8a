// ABOUTME: Pagination utilities for stored articles
// ABOUTME: Provides functions to paginate article lists for API responses

package subscriptions

import "feedreader-api/core/domain"

// PaginateArticles returns a paginated slice of articles
func PaginateArticles(articles []domain.Article, page, perPage int) []domain.Article {
	// Handle invalid page
	if page < 1 {
		page = 1
	}

	// Handle invalid perPage
	if perPage < 1 {
		perPage = 10
	}

	// Calculate start and end indices
	start := (page - 1) * perPage
	end := start + perPage

	// Check if start is beyond articles
	if start >= len(articles) {
		return []domain.Article{}
	}

	// Adjust end if it's beyond articles
	if end > len(articles) {
		end = len(articles)
	}

	// Return the paginated slice
	return articles[start:end]
}
