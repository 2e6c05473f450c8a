// Package api provides the HTTP API layer for the feed reader.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags, including
// the X-User-ID header every user-scoped operation requires.
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Per-client rate limiting on mutating endpoints
// - CORS handling
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 422,
//	    "title": "Unprocessable Entity",
//	    "detail": "Invalid feed: No articles found"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status
// codes; ingestion error messages are surfaced to clients verbatim.
package api
