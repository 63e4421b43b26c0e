// Package listcache is a request-keyed cache for listing endpoints. Entries
// are keyed by (operation, parameters) and carry tags; a mutation invalidates
// the tags it touches instead of flushing everything. This replaces the
// ambient query cache the web client used with an explicit abstraction.
package listcache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	tags      []string
	expiresAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Key builds a deterministic cache key from an operation name and its
// parameters.
func Key(operation string, params ...string) string {
	return operation + "?" + strings.Join(params, "&")
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores a value under the key and associates it with the given tags.
func (c *Cache) Set(key string, value any, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		tags:      tags,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops every entry carrying at least one of the given tags.
func (c *Cache) Invalidate(tags ...string) {
	if len(tags) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if hasAny(e.tags, tags) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of live entries, expired ones included until their
// next lookup.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func hasAny(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
