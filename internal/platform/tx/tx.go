// Package tx serializes multi-store operations such as a session switch, which
// reads the outgoing buffer, writes a vault slot and moves the active pointer.
package tx

import (
	"context"
	"sync"
)

// Manager runs fn as one unit with respect to every other Within call on the
// same manager. Nested calls that pass the ctx they were given do not block.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Serial allows one unit at a time per process.
type Serial struct {
	mu sync.Mutex
}

type heldKey struct{ m *Serial }

func NewSerial() *Serial {
	return &Serial{}
}

func (s *Serial) Within(ctx context.Context, fn func(context.Context) error) error {
	if ctx.Value(heldKey{s}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, heldKey{s}, struct{}{}))
}

// Do is Within for functions that also return a value.
func Do[T any](ctx context.Context, m Manager, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := m.Within(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

// OrNoop returns m, or a NoopManager when m is nil.
func OrNoop(m Manager) Manager {
	if m == nil {
		return NoopManager{}
	}
	return m
}
