package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/store"
	"github.com/abubasith456/React-white-label/internal/utils"
)

const doc = `{
  "tenants": {
    "demo": {
      "name": "Demo Shop",
      "adminEmails": ["Admin@Demo.test", "admin@demo.test"],
      "users": [{"id": "u1", "name": "Ann", "email": "ANN@demo.test", "password": "pw"}],
      "categories": [{"id": "c1", "name": "Home"}],
      "products": [{"id": "p1", "name": "Lamp", "price": 29.99, "categoryId": "c1"}]
    }
  }
}`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"demo"}, d.IDs())
	assert.Equal(t, "demo", d.Tenants["demo"].ID)

	_, err = Parse([]byte(`{"tenants":{"a b":{}}}`))
	assert.Error(t, err)
	_, err = Parse([]byte(`{"tenants":{"a":{"id":"b"}}}`))
	assert.Error(t, err)
	_, err = Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestLoadFile_RepoConfig(t *testing.T) {
	d, err := LoadFile(filepath.Join("..", "..", "config", "tenants.json"))
	require.NoError(t, err)
	assert.Contains(t, d.IDs(), "demo")
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(store.NewMemory())
	d, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, Load(ctx, repos, d, utils.PlainPasswords{}))

	tn, err := repos.Tenants.GetByID(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@demo.test"}, tn.AdminEmails)

	u, err := repos.Users.GetByEmail(ctx, "demo", "ann@demo.test")
	require.NoError(t, err)
	assert.Equal(t, "pw", u.Password)

	products, err := repos.Products.ListByTenant(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "demo", products[0].TenantID)
}

func TestReset_ClearsCatalogButKeepsOrders(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(store.NewMemory())
	require.NoError(t, repos.Products.Save(ctx, &model.Product{ID: "stale", TenantID: "demo"}))
	require.NoError(t, repos.Orders.Save(ctx, &model.Order{ID: "o1", TenantID: "demo"}))

	d, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, Reset(ctx, repos, d, utils.PlainPasswords{}))

	_, err = repos.Products.GetByID(ctx, "demo", "stale")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Orders.GetByID(ctx, "demo", "o1")
	assert.NoError(t, err)
}

func TestCreateTenant(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(store.NewMemory())

	tn, err := CreateTenant(ctx, repos, TenantOptions{ID: "shop1", WithSample: true})
	require.NoError(t, err)
	assert.Equal(t, DefaultName, tn.Name)
	assert.Equal(t, []string{"admin@shop1.test"}, tn.AdminEmails)
	assert.Equal(t, DefaultPrimary, tn.Branding.Primary)
	assert.Equal(t, DefaultTagline, tn.Strings["tagline"])
	assert.Equal(t, DefaultName, tn.Strings["appTitle"])

	products, err := repos.Products.ListByTenant(ctx, "shop1")
	require.NoError(t, err)
	assert.Len(t, products, 2)
	cats, err := repos.Categories.ListByTenant(ctx, "shop1")
	require.NoError(t, err)
	assert.Len(t, cats, 2)

	_, err = CreateTenant(ctx, repos, TenantOptions{ID: "shop1"})
	assert.ErrorIs(t, err, ErrTenantExists)

	tn, err = CreateTenant(ctx, repos, TenantOptions{ID: "shop1", Name: "Shop One", Update: true, Admins: []string{"boss@shop1.test"}, Accent: "1 2 3", WithSample: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@shop1.test", "boss@shop1.test"}, tn.AdminEmails)
	assert.Equal(t, "1 2 3", tn.Branding.Accent)
	assert.Equal(t, DefaultPrimary, tn.Branding.Primary)
	// appTitle was already set, so the old value wins
	assert.Equal(t, DefaultName, tn.Strings["appTitle"])

	products, err = repos.Products.ListByTenant(ctx, "shop1")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = CreateTenant(ctx, repos, TenantOptions{ID: "bad id"})
	assert.ErrorIs(t, err, ErrInvalidTenantID)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
