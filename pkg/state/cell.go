// Package state provides the guarded state cell and lifecycle scope used by
// the screen controllers. A Cell holds one immutable snapshot; every mutation
// replaces the whole snapshot through a single synchronized entrypoint, so
// readers never observe a partially updated value.
package state

import "sync"

// Cell is an observable container for a single state snapshot.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[int]chan T
	next  int
}

// NewCell creates a cell holding the given initial snapshot.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

// Get returns the current snapshot.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the snapshot and notifies subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.notifyLocked(v)
	c.mu.Unlock()
}

// Update applies fn to the current snapshot and publishes the result.
// fn runs under the cell lock and must not call back into the cell.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	c.value = fn(c.value)
	c.notifyLocked(c.value)
	c.mu.Unlock()
}

// Subscribe registers a notification channel carrying the latest snapshot.
// The channel has a buffer of one and is never blocked on: if the subscriber
// lags, stale snapshots are dropped and only the most recent one is kept.
// The returned id is passed to Unsubscribe.
func (c *Cell[T]) Subscribe() (<-chan T, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan T, 1)
	id := c.next
	c.next++
	c.subs[id] = ch
	return ch, id
}

// Unsubscribe removes and closes the channel registered under id.
func (c *Cell[T]) Unsubscribe(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ch, ok := c.subs[id]; ok {
		delete(c.subs, id)
		close(ch)
	}
}

// notifyLocked delivers v to every subscriber, latest-wins.
func (c *Cell[T]) notifyLocked(v T) {
	for _, ch := range c.subs {
		select {
		case ch <- v:
		default:
			// Drop the stale snapshot and replace it with the new one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}
