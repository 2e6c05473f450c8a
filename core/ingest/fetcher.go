// ABOUTME: Feed document fetcher with a direct-then-proxy fallback path
// ABOUTME: Tolerates origins that reject or block direct requests

package ingest

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"feedreader-api/core/interfaces"
)

const (
	userAgent    = "FeedReaderAPI/1.0"
	acceptHeader = "application/rss+xml, application/xml;q=0.9, */*;q=0.8"

	// proxyBaseURL is the public read-through proxy used when a direct
	// fetch is blocked or fails. The original URL is appended url-encoded.
	proxyBaseURL = "https://api.allorigins.win/raw?url="
)

// fetchOutcome classifies the result of the direct attempt so the
// fallback decision is explicit rather than exception-driven.
type fetchOutcome int

const (
	fetchOK fetchOutcome = iota
	fetchNeedsFallback
)

// Fetcher retrieves raw feed document text for a URL. It performs at
// most two sequential attempts (direct, then proxy) and never retries
// beyond that. Timeout enforcement belongs to the caller.
type Fetcher struct {
	client interfaces.HTTPClient
}

// NewFetcher creates a fetcher on top of the given HTTP client.
func NewFetcher(client interfaces.HTTPClient) *Fetcher {
	return &Fetcher{client: client}
}

// FetchFeedXML returns the raw document body for feedURL. A transport
// error or non-2xx status on the direct attempt triggers exactly one
// fallback through the proxy. Proxy transport errors propagate as-is;
// a non-2xx proxy status yields a ProxyStatusError.
func (f *Fetcher) FetchFeedXML(ctx context.Context, feedURL string) (string, error) {
	body, outcome := f.direct(ctx, feedURL)
	if outcome == fetchOK {
		return body, nil
	}
	return f.viaProxy(ctx, feedURL)
}

// direct issues the first-chance request with the identifying headers.
// Non-2xx is treated the same as a transport failure for fallback purposes.
func (f *Fetcher) direct(ctx context.Context, feedURL string) (string, fetchOutcome) {
	resp, err := f.client.GetWithHeaders(ctx, feedURL, map[string]string{
		"User-Agent": userAgent,
		"Accept":     acceptHeader,
	})
	if err != nil {
		return "", fetchNeedsFallback
	}
	defer resp.Body().Close()

	if !isSuccess(resp.StatusCode()) {
		return "", fetchNeedsFallback
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", fetchNeedsFallback
	}

	return string(body), fetchOK
}

// viaProxy issues the second-chance request through the read-through
// proxy, with no special headers.
func (f *Fetcher) viaProxy(ctx context.Context, feedURL string) (string, error) {
	resp, err := f.client.Get(ctx, proxyBaseURL+url.QueryEscape(feedURL))
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if !isSuccess(resp.StatusCode()) {
		return "", &ProxyStatusError{
			StatusCode: resp.StatusCode(),
			Status:     statusLine(resp),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// statusLine reconstructs "404 Not Found" style text when the response
// implementation only tracks the numeric code.
func statusLine(resp interfaces.Response) string {
	if s := resp.Status(); s != "" {
		return s
	}
	code := resp.StatusCode()
	text := http.StatusText(code)
	if text == "" {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code) + " " + text
}
