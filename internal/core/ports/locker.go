package ports

import (
	"context"
	"errors"
	"time"
)

// ErrLockIsHeld is returned by TryLock when another holder owns the key.
var ErrLockIsHeld = errors.New("lock is held by another owner")

// Locker provides mutual exclusion that can span several service instances.
type Locker interface {
	// TryLock acquires key for at most ttl without waiting. The returned
	// function releases the lock if it is still owned by the caller.
	TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error)
}
