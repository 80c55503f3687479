package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bolt is a Backend persisted in a single bbolt file.  Each collection
// is a top-level bucket and keys are stored as-is, so a cursor seek
// gives an ordered prefix scan.
type Bolt struct {
	path string
	db   *bolt.DB
}

// OpenBolt creates the file (and its directory) when missing and opens it.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("unable to create directory %s: %w", path, err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("unable to open boltdb file: %w", err)
	}
	return &Bolt{path: path, db: db}, nil
}

// Path returns the file backing the store.
func (s *Bolt) Path() string { return s.path }

func (s *Bolt) Get(_ context.Context, collection, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// values are only valid for the life of the transaction
		out = clone(v)
		return nil
	})
	return out, err
}

func (s *Bolt) Put(_ context.Context, collection, key string, doc []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), doc)
	})
}

func (s *Bolt) Delete(_ context.Context, collection, key string) (bool, error) {
	existed := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		existed = b.Get([]byte(key)) != nil
		return b.Delete([]byte(key))
	})
	return existed, err
}

func (s *Bolt) List(_ context.Context, collection, prefix string) ([][]byte, error) {
	out := [][]byte{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		p := []byte(prefix)
		c := b.Cursor()
		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			out = append(out, clone(v))
		}
		return nil
	})
	return out, err
}

func (s *Bolt) Truncate(_ context.Context, collection string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(collection))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

// Close the connection to the bolt database.
func (s *Bolt) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
