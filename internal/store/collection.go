package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection is a typed JSON view over one collection of a Backend.
type Collection[T any] struct {
	name    string
	backend Backend
}

// NewCollection binds name on b.
func NewCollection[T any](b Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: b}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Get decodes the document stored under key.  Missing documents yield
// ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, key string) (*T, error) {
	raw, err := c.backend.Get(ctx, c.name, key)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", c.name, key, err)
	}
	return &v, nil
}

// Put encodes v and stores it under key.
func (c *Collection[T]) Put(ctx context.Context, key string, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, key, err)
	}
	return c.backend.Put(ctx, c.name, key, raw)
}

// Delete removes key and reports whether it existed.
func (c *Collection[T]) Delete(ctx context.Context, key string) (bool, error) {
	return c.backend.Delete(ctx, c.name, key)
}

// List decodes every document under prefix in key order.
func (c *Collection[T]) List(ctx context.Context, prefix string) ([]T, error) {
	raws, err := c.backend.List(ctx, c.name, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Truncate removes every document of the collection.
func (c *Collection[T]) Truncate(ctx context.Context) error {
	return c.backend.Truncate(ctx, c.name)
}
