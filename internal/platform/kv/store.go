// Package kv is the string-keyed persistent store every other adapter sits on.
//
// Set and Remove return only once the backend has acknowledged the write, so a
// caller that deletes and then immediately reads back observes the deletion.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"
)

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	// Keys lists stored keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// ReadJSON decodes the value under key. Missing keys, backend failures and
// corrupt payloads all report false; failures are logged, never returned.
func ReadJSON[T any](ctx context.Context, s Store, log hclog.Logger, key string) (T, bool) {
	out, ok, err := LookupJSON[T](ctx, s, log, key)
	if err != nil {
		log.Error("read failed", "key", key, "error", err)
		return out, false
	}
	return out, ok
}

// LookupJSON is ReadJSON for callers that must not mistake an unreachable
// backend for a missing key. Backend failures are returned; a corrupt
// payload is logged and reported as absent.
func LookupJSON[T any](ctx context.Context, s Store, log hclog.Logger, key string) (T, bool, error) {
	var out T
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return out, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return out, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn("discarding corrupt value", "key", key, "error", err)
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}

func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
