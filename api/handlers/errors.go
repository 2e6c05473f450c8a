// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain and ingestion errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"feedreader-api/core/errors"
	"feedreader-api/core/ingest"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Ingestion error messages are part of the client contract, so they are
// surfaced verbatim as the error detail.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case stderrors.Is(err, ingest.ErrNotAFeed),
		stderrors.Is(err, ingest.ErrNoArticles),
		stderrors.Is(err, ingest.ErrMissingTitle),
		stderrors.Is(err, ingest.ErrNoValidArticles):
		return huma.Error422UnprocessableEntity(err.Error())

	case stderrors.Is(err, ingest.ErrUnableToFetch), ingest.IsProxyStatus(err):
		return huma.Error502BadGateway(err.Error())

	case stderrors.Is(err, ingest.ErrTimeout):
		return huma.Error504GatewayTimeout(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		// External API errors might be retryable
		if apiErr, ok := err.(*errors.ExternalAPIError); ok {
			switch {
			case apiErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("External service error", err)
			case apiErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by external service")
			case apiErr.StatusCode >= 400:
				return huma.Error400BadRequest("External service request error", err)
			default:
				return huma.Error500InternalServerError("Unexpected external service response", err)
			}
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
