// Package cache holds short-lived one-shot values. Its only consumer is the
// OAuth login flow, which parks a CSRF state token between the redirect to
// the provider and the callback.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	expiresAt time.Time
}

// StateCache stores opaque state tokens with a TTL. A token can be taken at
// most once; taking it again, or after expiry, fails.
type StateCache struct {
	mu     sync.Mutex
	ttl    time.Duration
	states map[string]entry
}

// now is a small indirection to allow test stubbing.
var now = time.Now

func NewStateCache(ttl time.Duration) *StateCache {
	return &StateCache{
		ttl:    ttl,
		states: make(map[string]entry),
	}
}

// Put registers a state token. Expired leftovers are swept opportunistically
// so the map cannot grow without bound under abandoned logins.
func (c *StateCache) Put(state string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	nowTs := now()
	for s, e := range c.states {
		if nowTs.After(e.expiresAt) {
			delete(c.states, s)
		}
	}
	c.states[state] = entry{expiresAt: nowTs.Add(c.ttl)}
}

// Take consumes a state token, reporting whether it was present and live.
func (c *StateCache) Take(state string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.states[state]
	if !ok {
		return false
	}
	delete(c.states, state)
	return !now().After(e.expiresAt)
}

// Len returns the number of pending tokens, expired ones included.
func (c *StateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.states)
}
