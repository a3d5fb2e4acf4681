package redis

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "dispatch:lock:"

// Deletes the key only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker implements ports.Locker with SET NX PX and a token-checked release.
type Locker struct {
	client goredis.UniversalClient
}

// NewLocker uses client for both acquisition and release.
func NewLocker(client goredis.UniversalClient) *Locker {
	return &Locker{client: client}
}

// TryLock sets the key under a random token for ttl. The release function
// deletes the key only while it still holds that token, so an expired lock
// taken over by another instance is left alone.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	fullKey := lockKeyPrefix + key
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", ports.ErrLockIsHeld, key)
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}

	return release, nil
}
