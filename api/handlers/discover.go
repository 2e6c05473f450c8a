// ABOUTME: Discover handler for finding RSS feed URLs from regular website URLs
// ABOUTME: Candidates from HTML link tags are validated before being returned

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"feedreader-api/core/interfaces"
	"github.com/PuerkitoBio/goquery"
	"github.com/danielgtaylor/huma/v2"
	"github.com/mmcdole/gofeed"
)

// DiscoverHandler handles RSS feed discovery
type DiscoverHandler struct {
	httpClient interfaces.HTTPClient
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(httpClient interfaces.HTTPClient) *DiscoverHandler {
	return &DiscoverHandler{
		httpClient: httpClient,
	}
}

// RegisterRoutes registers discover routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverFeeds",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover RSS feeds from websites",
		Description: "Attempts to discover RSS/Atom feed URLs from provided website URLs",
		Tags:        []string{"Discovery"},
	}, h.DiscoverFeeds)
}

// DiscoverFeedsInput defines the input for feed discovery
type DiscoverFeedsInput struct {
	Body struct {
		URLs []string `json:"urls" minItems:"1" maxItems:"20" doc:"List of website URLs to discover feeds from"`
	}
}

// FeedDiscoveryResult represents a single discovery result
type FeedDiscoveryResult struct {
	URL      string `json:"url" doc:"Original URL that was checked"`
	Status   string `json:"status" doc:"Discovery status: 'ok' or 'error'"`
	FeedLink string `json:"feedLink,omitempty" doc:"Discovered RSS feed URL"`
	Error    string `json:"error,omitempty" doc:"Error message if discovery failed"`
}

// DiscoverFeedsOutput defines the output for feed discovery
type DiscoverFeedsOutput struct {
	Body struct {
		Feeds []FeedDiscoveryResult `json:"feeds" doc:"Discovery results for each URL"`
	}
}

// DiscoverFeeds handles the POST /discover endpoint
func (h *DiscoverHandler) DiscoverFeeds(ctx context.Context, input *DiscoverFeedsInput) (*DiscoverFeedsOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	// Process URLs concurrently
	var wg sync.WaitGroup
	results := make([]FeedDiscoveryResult, len(input.Body.URLs))

	for i, u := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, siteURL string) {
			defer wg.Done()

			feedURL, err := h.discoverFeedURL(ctx, siteURL)
			if err != nil {
				results[idx] = FeedDiscoveryResult{
					URL:    siteURL,
					Status: "error",
					Error:  err.Error(),
				}
			} else {
				results[idx] = FeedDiscoveryResult{
					URL:      siteURL,
					Status:   "ok",
					FeedLink: feedURL,
				}
			}
		}(i, u)
	}

	wg.Wait()

	output := &DiscoverFeedsOutput{}
	output.Body.Feeds = results
	return output, nil
}

// discoverFeedURL attempts to discover RSS feed URL from a website
func (h *DiscoverHandler) discoverFeedURL(ctx context.Context, siteURL string) (string, error) {
	// Well-known hosts publish feeds at predictable paths
	if strings.HasPrefix(siteURL, "https://github.com") {
		return h.generateGitHubFeedURL(siteURL), nil
	}

	if strings.HasPrefix(siteURL, "https://www.reddit.com") || strings.HasPrefix(siteURL, "https://reddit.com") {
		return h.generateRedditFeedURL(siteURL), nil
	}

	resp, err := h.httpClient.Get(ctx, siteURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", errors.New("failed to fetch page")
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", err
	}

	// Collect candidate feed links in document order
	var candidates []string
	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Each(func(i int, s *goquery.Selection) {
		if href, exists := s.Attr("href"); exists {
			candidates = append(candidates, href)
		}
	})

	if len(candidates) == 0 {
		return "", errors.New("no RSS feed found")
	}

	// Return the first candidate that actually parses as a feed
	for _, candidate := range candidates {
		feedURL, err := h.ensureAbsoluteURL(siteURL, candidate)
		if err != nil {
			continue
		}
		if h.isParseableFeed(ctx, feedURL) {
			return feedURL, nil
		}
	}

	return "", errors.New("no valid RSS feed found")
}

// isParseableFeed fetches a candidate URL and confirms it parses as a feed
func (h *DiscoverHandler) isParseableFeed(ctx context.Context, feedURL string) bool {
	resp, err := h.httpClient.Get(ctx, feedURL)
	if err != nil {
		return false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return false
	}

	_, err = gofeed.NewParser().Parse(resp.Body())
	return err == nil
}

// generateGitHubFeedURL generates RSS feed URL for GitHub repositories
func (h *DiscoverHandler) generateGitHubFeedURL(githubURL string) string {
	// GitHub provides Atom feeds for repository commits
	return strings.TrimRight(githubURL, "/") + "/commits/master.atom"
}

// generateRedditFeedURL generates RSS feed URL for Reddit
func (h *DiscoverHandler) generateRedditFeedURL(redditURL string) string {
	// Reddit provides RSS feeds by appending .rss
	return strings.TrimRight(redditURL, "/") + "/.rss"
}

// ensureAbsoluteURL converts relative URLs to absolute ones
func (h *DiscoverHandler) ensureAbsoluteURL(baseURL, relativeOrAbsoluteURL string) (string, error) {
	u, err := url.Parse(relativeOrAbsoluteURL)
	if err != nil {
		return "", err
	}

	if u.IsAbs() {
		return relativeOrAbsoluteURL, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(u).String(), nil
}
