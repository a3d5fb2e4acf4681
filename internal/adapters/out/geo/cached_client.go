package geo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "dispatch:geo:"

type cacheStore interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
}

// CachedClient memoizes resolved addresses in Redis. Cache failures are logged
// and the lookup falls through to the wrapped client.
type CachedClient struct {
	next   ports.GeoClient
	cache  cacheStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedClient wraps next. Entries expire after ttl.
func NewCachedClient(next ports.GeoClient, cache cacheStore, ttl time.Duration, logger *slog.Logger) *CachedClient {
	return &CachedClient{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "geo_cache"),
	}
}

// GetLocation serves the address from the cache, falling back to the wrapped
// client on a miss. Addresses differing only in case or whitespace share an entry.
// Errors from the wrapped client are not cached.
func (c *CachedClient) GetLocation(ctx context.Context, street string) (kernel.Location, error) {
	key := cacheKey(street)

	raw, err := c.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		loc, decodeErr := decodeLocation(raw)
		if decodeErr == nil {
			return loc, nil
		}
		c.logger.WarnContext(ctx, "dropping malformed cache entry", "key", key, "error", decodeErr)
	case !errors.Is(err, goredis.Nil):
		c.logger.WarnContext(ctx, "geo cache read failed", "error", err)
	}

	loc, err := c.next.GetLocation(ctx, street)
	if err != nil {
		return kernel.Location{}, err
	}

	if err := c.cache.Set(ctx, key, encodeLocation(loc), c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "geo cache write failed", "error", err)
	}
	return loc, nil
}

func cacheKey(street string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(street), " "))
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func encodeLocation(loc kernel.Location) string {
	return fmt.Sprintf("%d,%d", loc.X(), loc.Y())
}

func decodeLocation(s string) (kernel.Location, error) {
	var x, y int8
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return kernel.Location{}, fmt.Errorf("decode %q: %w", s, err)
	}
	return kernel.NewLocation(kernel.Coordinate(x), kernel.Coordinate(y))
}
