package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/store"
)

func TestUserRepo_EmailUniquePerTenant(t *testing.T) {
	ctx := context.Background()
	r := New(store.NewMemory())

	require.NoError(t, r.Users.Create(ctx, &model.User{ID: "u1", TenantID: "demo", Email: " Alice@Example.com "}))
	err := r.Users.Create(ctx, &model.User{ID: "u2", TenantID: "demo", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)

	// same email in another tenant is fine
	require.NoError(t, r.Users.Create(ctx, &model.User{ID: "u3", TenantID: "other", Email: "alice@example.com"}))

	u, err := r.Users.GetByEmail(ctx, "demo", "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = r.Users.GetByEmail(ctx, "demo", "bob@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartRepo_MissingCartIsEmpty(t *testing.T) {
	ctx := context.Background()
	r := New(store.NewMemory())

	items, err := r.Carts.Items(ctx, "demo", "u1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	require.NoError(t, r.Carts.SetItems(ctx, "demo", "u1", []model.CartItem{{ProductID: "p1", Quantity: 2}}))
	items, err = r.Carts.Items(ctx, "demo", "u1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, r.Carts.Clear(ctx, "demo", "u1"))
	items, err = r.Carts.Items(ctx, "demo", "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddressRepo_ScopedByUser(t *testing.T) {
	ctx := context.Background()
	r := New(store.NewMemory())

	require.NoError(t, r.Addresses.Save(ctx, &model.Address{ID: "a1", TenantID: "demo", UserID: "u1", Line1: "1 Main"}))

	_, err := r.Addresses.GetByID(ctx, "demo", "u2", "a1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Addresses.Delete(ctx, "demo", "u2", "a1"), ErrNotFound)

	list, err := r.Addresses.ListByUser(ctx, "demo", "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, r.Addresses.Delete(ctx, "demo", "u1", "a1"))
	assert.ErrorIs(t, r.Addresses.Delete(ctx, "demo", "u1", "a1"), ErrNotFound)
}

func TestOrderRepo_NewestFirst(t *testing.T) {
	ctx := context.Background()
	r := New(store.NewMemory())
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.Orders.Save(ctx, &model.Order{ID: "o1", TenantID: "demo", UserID: "u1", CreatedAt: base}))
	require.NoError(t, r.Orders.Save(ctx, &model.Order{ID: "o2", TenantID: "demo", UserID: "u2", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, r.Orders.Save(ctx, &model.Order{ID: "o3", TenantID: "demo", UserID: "u1", CreatedAt: base.Add(2 * time.Minute)}))

	all, err := r.Orders.ListByTenant(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"o3", "o2", "o1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	mine, err := r.Orders.ListByUser(ctx, "demo", "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "o3", mine[0].ID)
	assert.Equal(t, "o1", mine[1].ID)
}
