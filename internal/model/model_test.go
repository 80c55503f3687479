package model

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesAreGofmted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, f)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-formatted", f)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderCreated, OrderPacked, OrderShipped, OrderDelivered} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("cancelled"))
	assert.False(t, ValidOrderStatus(""))
}

func TestOrderItemSubtotal(t *testing.T) {
	assert.InDelta(t, 59.98, OrderItem{Price: 29.99, Quantity: 2}.Subtotal(), 1e-9)
}
