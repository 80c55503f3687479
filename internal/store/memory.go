package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/btree"
)

type entry struct {
	key string
	doc []byte
}

func lessEntry(a, b entry) bool { return a.key < b.key }

// Memory is a Backend holding every collection in an ordered btree in
// process memory.  Nothing survives a restart.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]*btree.BTreeG[entry]
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{collections: map[string]*btree.BTreeG[entry]{}}
}

func (m *Memory) tree(collection string, create bool) *btree.BTreeG[entry] {
	t, ok := m.collections[collection]
	if !ok && create {
		t = btree.NewG(32, lessEntry)
		m.collections[collection] = t
	}
	return t
}

func (m *Memory) Get(_ context.Context, collection, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t := m.tree(collection, false)
	if t == nil {
		return nil, ErrNotFound
	}
	e, ok := t.Get(entry{key: key})
	if !ok {
		return nil, ErrNotFound
	}
	return clone(e.doc), nil
}

func (m *Memory) Put(_ context.Context, collection, key string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree(collection, true).ReplaceOrInsert(entry{key: key, doc: clone(doc)})
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.tree(collection, false)
	if t == nil {
		return false, nil
	}
	_, existed := t.Delete(entry{key: key})
	return existed, nil
}

func (m *Memory) List(_ context.Context, collection, prefix string) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := [][]byte{}
	t := m.tree(collection, false)
	if t == nil {
		return out, nil
	}
	t.AscendGreaterOrEqual(entry{key: prefix}, func(e entry) bool {
		if !strings.HasPrefix(e.key, prefix) {
			return false
		}
		out = append(out, clone(e.doc))
		return true
	})
	return out, nil
}

func (m *Memory) Truncate(_ context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections, collection)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// clone copies b so callers can never alias stored documents.
func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
