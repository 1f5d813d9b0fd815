// Package cache holds a single-entry, time-to-live gated value: the most
// recently loaded snapshot plus the time it was loaded.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot is one cached value together with where and when it was loaded.
type Snapshot[T any] struct {
	Value     T
	FetchedAt time.Time
	Source    string
}

// TTL is a single-entry cache. The entry is replaced wholesale by Set and is
// served by Fresh only while now-FetchedAt is below the configured timeout.
type TTL[T any] struct {
	timeout time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	entry *Snapshot[T]

	group singleflight.Group
}

// NewTTL creates an empty cache. A nil clock defaults to time.Now.
func NewTTL[T any](timeout time.Duration, now func() time.Time) *TTL[T] {
	if now == nil {
		now = time.Now
	}
	return &TTL[T]{timeout: timeout, now: now}
}

// Fresh returns the entry if one exists and has not outlived the timeout.
func (c *TTL[T]) Fresh() (Snapshot[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil {
		return Snapshot[T]{}, false
	}
	if c.now().Sub(c.entry.FetchedAt) >= c.timeout {
		return Snapshot[T]{}, false
	}
	return *c.entry, true
}

// Peek returns the entry regardless of its age.
func (c *TTL[T]) Peek() (Snapshot[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil {
		return Snapshot[T]{}, false
	}
	return *c.entry, true
}

// Set replaces the entry, stamping it with the current time.
func (c *TTL[T]) Set(v T, source string) Snapshot[T] {
	snap := Snapshot[T]{Value: v, FetchedAt: c.now(), Source: source}
	c.mu.Lock()
	c.entry = &snap
	c.mu.Unlock()
	return snap
}

// Invalidate drops the entry.
func (c *TTL[T]) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}

// Load runs fn, sharing a single in-flight call among concurrent callers.
func (c *TTL[T]) Load(fn func() (Snapshot[T], error)) (Snapshot[T], error) {
	v, err, _ := c.group.Do("load", func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return Snapshot[T]{}, err
	}
	return v.(Snapshot[T]), nil
}
