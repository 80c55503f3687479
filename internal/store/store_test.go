package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abubasith456/React-white-label/internal/config"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	b, err := OpenBolt(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return map[string]Backend{
		"memory": NewMemory(),
		"bolt":   b,
	}
}

func TestBackend_GetPutDelete(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := b.Get(ctx, "products", "demo:p1")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, b.Put(ctx, "products", "demo:p1", []byte(`{"id":"p1"}`)))
			got, err := b.Get(ctx, "products", "demo:p1")
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"p1"}`, string(got))

			require.NoError(t, b.Put(ctx, "products", "demo:p1", []byte(`{"id":"p1","v":2}`)))
			got, err = b.Get(ctx, "products", "demo:p1")
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"p1","v":2}`, string(got))

			existed, err := b.Delete(ctx, "products", "demo:p1")
			require.NoError(t, err)
			assert.True(t, existed)

			existed, err = b.Delete(ctx, "products", "demo:p1")
			require.NoError(t, err)
			assert.False(t, existed)

			existed, err = b.Delete(ctx, "never-created", "x")
			require.NoError(t, err)
			assert.False(t, existed)
		})
	}
}

func TestBackend_ListByPrefix(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			docs, err := b.List(ctx, "orders", Prefix("demo"))
			require.NoError(t, err)
			assert.Empty(t, docs)

			require.NoError(t, b.Put(ctx, "orders", Key("demo", "b"), []byte(`"b"`)))
			require.NoError(t, b.Put(ctx, "orders", Key("demo", "a"), []byte(`"a"`)))
			require.NoError(t, b.Put(ctx, "orders", Key("demo2", "c"), []byte(`"c"`)))
			require.NoError(t, b.Put(ctx, "orders", Key("dem", "d"), []byte(`"d"`)))

			docs, err = b.List(ctx, "orders", Prefix("demo"))
			require.NoError(t, err)
			require.Len(t, docs, 2)
			assert.Equal(t, `"a"`, string(docs[0]))
			assert.Equal(t, `"b"`, string(docs[1]))
		})
	}
}

func TestBackend_Truncate(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, b.Put(ctx, "users", "demo:u1", []byte(`{}`)))
			require.NoError(t, b.Put(ctx, "carts", "demo:u1", []byte(`{}`)))

			require.NoError(t, b.Truncate(ctx, "users"))
			require.NoError(t, b.Truncate(ctx, "missing"))

			_, err := b.Get(ctx, "users", "demo:u1")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = b.Get(ctx, "carts", "demo:u1")
			assert.NoError(t, err)
		})
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	doc := []byte(`"x"`)
	require.NoError(t, m.Put(ctx, "c", "k", doc))
	doc[1] = 'y'

	got, err := m.Get(ctx, "c", "k")
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(got))
}

type widget struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

func TestCollection(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[widget](NewMemory(), "widgets")

	require.NoError(t, c.Put(ctx, Key("t", "1"), &widget{ID: "1", Size: 3}))
	require.NoError(t, c.Put(ctx, Key("t", "2"), &widget{ID: "2", Size: 5}))

	w, err := c.Get(ctx, Key("t", "1"))
	require.NoError(t, err)
	assert.Equal(t, 3, w.Size)

	all, err := c.List(ctx, Prefix("t"))
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: "1", Size: 3}, {ID: "2", Size: 5}}, all)

	_, err = c.Get(ctx, Key("t", "3"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	b, err := Open(ctx, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, b)

	path := filepath.Join(t.TempDir(), "sub", "shop.db")
	b, err = Open(ctx, "bolt://"+path)
	require.NoError(t, err)
	defer b.Close()
	require.IsType(t, &Bolt{}, b)
	assert.Equal(t, path, b.(*Bolt).Path())

	_, err = Open(ctx, "postgres://x")
	assert.Error(t, err)
	_, err = Open(ctx, "nonsense")
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	ctx := context.Background()

	b, err := FromConfig(ctx, config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "memory", Describe(b))

	path := filepath.Join(t.TempDir(), "cfg.db")
	b, err = FromConfig(ctx, config.Config{DatabaseURL: "bolt://" + path})
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, "bolt", Describe(b))
}
