// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, persistence and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with timeout support
// - logger/logrus: Structured JSON logger backed by logrus
// - storage/sqlite: SQLite persistence for feeds, articles and tags
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client performs one attempt per call; the feed fetcher layers
// its own proxy fallback on top:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "user_id": "123",
//	    "action":  "parse_feed",
//	})
package infrastructure
