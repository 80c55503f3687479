// Package store provides the document storage interface every repository
// is built on, together with its in-memory, MySQL and bbolt
// implementations.  Documents are opaque JSON blobs addressed by a
// collection name and a composite key such as "tenant:id".
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("store: document not found")

// Backend is the single storage interface the services depend on.  The
// process picks exactly one implementation at startup.
type Backend interface {
	// Get returns the document stored under key or ErrNotFound.
	Get(ctx context.Context, collection, key string) ([]byte, error)
	// Put inserts or replaces the document stored under key.
	Put(ctx context.Context, collection, key string, doc []byte) error
	// Delete removes the document and reports whether it existed.
	Delete(ctx context.Context, collection, key string) (bool, error)
	// List returns every document whose key starts with prefix, in key order.
	List(ctx context.Context, collection, prefix string) ([][]byte, error)
	// Truncate removes every document of the collection.
	Truncate(ctx context.Context, collection string) error
	// Close releases the underlying resources.
	Close() error
}

// Key joins key parts with ':'.  Tenant ids are restricted to URL-safe
// characters so the separator never appears inside a tenant id.
func Key(parts ...string) string { return strings.Join(parts, ":") }

// Prefix is Key followed by a trailing separator, suitable for List.
func Prefix(parts ...string) string { return Key(parts...) + ":" }
