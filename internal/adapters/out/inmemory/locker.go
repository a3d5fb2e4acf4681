// Package inmemory provides single-process stand-ins for the Redis adapters,
// used when no Redis address is configured.
package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/ports"
)

type lease struct {
	token   uint64
	expires time.Time
}

// Locker is a process-local ports.Locker with the same expiry semantics as the Redis one.
type Locker struct {
	mu     sync.Mutex
	leases map[string]lease
	next   uint64
	now    func() time.Time
}

// NewLocker returns a locker with no leases.
func NewLocker() *Locker {
	return &Locker{
		leases: make(map[string]lease),
		now:    time.Now,
	}
}

// TryLock grants key for ttl unless an unexpired lease exists. Releasing a
// lease that was already taken over by a later holder does nothing.
func (l *Locker) TryLock(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if cur, ok := l.leases[key]; ok && now.Before(cur.expires) {
		return nil, fmt.Errorf("%w: %s", ports.ErrLockIsHeld, key)
	}

	l.next++
	token := l.next
	l.leases[key] = lease{token: token, expires: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if cur, ok := l.leases[key]; ok && cur.token == token {
			delete(l.leases, key)
		}
		return nil
	}

	return release, nil
}
