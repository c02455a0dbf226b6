// Package memory provides process-local stores for dishes and orders. Records are
// kept in insertion order in a slice; lookups scan it linearly and removal is by
// index. Stored records are cloned on the way in and out, so callers never share
// state with the store.
package memory

import (
	"slices"
	"sync"
)

// record is what a Collection can hold.
type record[T any] interface {
	ID() string
	Clone() T
}

// Collection is an ordered, mutex-guarded list of records.
type Collection[T record[T]] struct {
	mu    sync.RWMutex
	items []T
}

// All returns clones of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Clone())
	}
	return out
}

// Append stores a clone of item at the end. It reports false when the id is
// already taken.
func (c *Collection[T]) Append(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(item.ID()) >= 0 {
		return false
	}
	c.items = append(c.items, item.Clone())
	return true
}

// Find returns a clone of the record with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i].Clone(), true
}

// Replace swaps the stored record sharing item's id for a clone of item.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(item.ID())
	if i < 0 {
		return false
	}
	c.items[i] = item.Clone()
	return true
}

// Remove deletes the record with the given id.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.ID() == id
	})
}
