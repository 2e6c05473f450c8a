// Package core contains the business logic for the feed reader.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ParsedFeed, Feed, Article, Tag, ReaderView)
// - ingest: Feed fetching, parsing and normalization
// - subscriptions: Subscription management, article storage and cache policy
// - reader: Clean article content extraction
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "feedreader-api/core/ingest"
//	    "feedreader-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	ingestService := ingest.NewService(deps)
//
//	// Parse a feed
//	feed, err := ingestService.ParseFeed(ctx, "https://example.com/feed.rss")
package core
