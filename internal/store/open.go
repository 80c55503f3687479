package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/abubasith456/React-white-label/internal/config"
	"github.com/abubasith456/React-white-label/internal/database"
)

// FromConfig opens the backend selected by cfg: DATABASE_URL when set,
// else MySQL from the DB_* variables when DB_HOST is set, else memory.
func FromConfig(ctx context.Context, cfg config.Config) (Backend, error) {
	if cfg.DatabaseURL == "" && cfg.DBHost != "" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		return OpenDB(ctx, db)
	}
	return Open(ctx, cfg.DatabaseURL)
}

// Open picks a backend from a connection string:
//
//	""                     in-memory
//	mysql://u:p@host/db    MySQL documents table (created when missing)
//	bolt:///var/lib/x.db   bbolt file
func Open(ctx context.Context, raw string) (Backend, error) {
	if raw == "" {
		return NewMemory(), nil
	}
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return nil, fmt.Errorf("invalid storage url %q", raw)
	}
	switch scheme {
	case "mysql":
		db, err := database.OpenURL(raw)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		return OpenDB(ctx, db)
	case "bolt", "file":
		path := rest
		if u, err := url.Parse(raw); err == nil && u.Path != "" {
			path = u.Host + u.Path
		}
		return OpenBolt(path)
	}
	return nil, fmt.Errorf("unsupported storage scheme %q", scheme)
}

// OpenDB wraps an open MySQL pool, creating the documents table when
// missing.  The pool is closed on failure.
func OpenDB(ctx context.Context, db *sql.DB) (*MySQL, error) {
	s := NewMySQL(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate mysql: %w", err)
	}
	return s, nil
}

// Describe names the kind of b for logs and the health check.
func Describe(b Backend) string {
	switch b.(type) {
	case *Memory:
		return "memory"
	case *MySQL:
		return "mysql"
	case *Bolt:
		return "bolt"
	}
	return fmt.Sprintf("%T", b)
}
