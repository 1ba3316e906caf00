package state

import (
	"context"
	"sync"
)

// Scope binds background tasks to an owner's lifetime. Tasks launched with Go
// receive a context that is cancelled when the scope closes; a task that
// completes after Close must check the context before applying its result, so
// late completions never mutate a discarded state holder.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScope creates a scope derived from the background context.
func NewScope() *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{ctx: ctx, cancel: cancel}
}

// Go launches fn on a new goroutine. After Close, fn is not started at all.
func (s *Scope) Go(fn func(ctx context.Context)) {
	if s.ctx.Err() != nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Context returns the scope's context.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Closed reports whether the scope has been closed.
func (s *Scope) Closed() bool {
	return s.ctx.Err() != nil
}

// Close cancels every outstanding task and waits for them to return.
func (s *Scope) Close() {
	s.cancel()
	s.wg.Wait()
}
