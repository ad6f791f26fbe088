// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache remembers the most recent identifier list returned for an
// author, so a follow-up question can reuse it without re-querying PubMed.
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity is the number of author entries kept when no capacity is
// configured.
const DefaultCapacity = 64

// Results maps a normalized author name to the ordered PMID list from the
// most recent search for that name. Capacity is fixed: when a new author
// would exceed it, the least recently used entry is evicted. Safe for
// concurrent use.
type Results struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

type entry struct {
	key string
	ids []string
}

// NewResults returns an empty cache holding at most capacity authors.
// A capacity of zero or less falls back to DefaultCapacity.
func NewResults(capacity int) *Results {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Results{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Remember stores ids under key, fully replacing any prior entry for that
// key. The slice is copied so later mutation by the caller cannot change
// the cached value.
func (c *Results) Remember(key string, ids []string) {
	stored := make([]string, len(ids))
	copy(stored, ids)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*entry).ids = stored
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&entry{key: key, ids: stored})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}
}

// Recall returns a copy of the stored identifier list for key, or nil when
// the key has never been remembered. A hit marks the entry as recently used.
func (c *Results) Recall(key string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.order.MoveToFront(el)

	ids := el.Value.(*entry).ids
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Len returns the number of cached authors.
func (c *Results) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
