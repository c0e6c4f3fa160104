package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/innovatube/video-api/internal/api/metrics"
	"github.com/innovatube/video-api/internal/core/domain"
	"github.com/innovatube/video-api/internal/core/ports"
)

const defaultSearchTTL = 5 * time.Minute

// cacheClient is the subset of redis.Client commands the cache needs.
// *redis.Client satisfies it.
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SearchCache wraps a VideoSearchProvider with a Redis read-through cache.
// Keys are normalized query strings: search:<lowercased query>.
// Cache failures are soft: logged and bypassed, never returned to the caller,
// so a degraded Redis only costs provider quota, not availability.
type SearchCache struct {
	client cacheClient
	next   ports.VideoSearchProvider
	ttl    time.Duration
	log    zerolog.Logger
}

// NewSearchCache creates a SearchCache in front of next. If ttl <= 0, a
// default of five minutes is used.
func NewSearchCache(client cacheClient, next ports.VideoSearchProvider, ttl time.Duration, log zerolog.Logger) *SearchCache {
	if ttl <= 0 {
		ttl = defaultSearchTTL
	}
	return &SearchCache{client: client, next: next, ttl: ttl, log: log}
}

func (c *SearchCache) Search(ctx context.Context, query string) ([]domain.Video, error) {
	key := c.key(query)

	if payload, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var videos []domain.Video
		if err := json.Unmarshal(payload, &videos); err == nil {
			metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
			return videos, nil
		}
		c.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	} else if err != redis.Nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed, querying provider")
	}

	videos, err := c.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	metrics.SearchCacheTotal.WithLabelValues("miss").Inc()

	if payload, err := json.Marshal(videos); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}

	return videos, nil
}

func (c *SearchCache) key(query string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query))
}
