package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/config"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/store"
)

func execute(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(context.Background(), cfg, zap.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func boltConfig(t *testing.T) config.Config {
	return config.Config{
		DatabaseURL:   "bolt://" + filepath.Join(t.TempDir(), "tenants.db"),
		TenantsConfig: "../../config/tenants.json",
		PasswordMode:  "plain",
	}
}

func openRepos(t *testing.T, cfg config.Config) *repository.Repos {
	t.Helper()
	b, err := store.FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return repository.New(b)
}

func TestCreateAndUpdate(t *testing.T) {
	cfg := boltConfig(t)

	out, err := execute(t, cfg, "create", "--id", "shop-1", "--name", "Shop One", "--with-sample")
	require.NoError(t, err)
	assert.Contains(t, out, "/api/shop-1")

	_, err = execute(t, cfg, "create", "--id", "shop-1")
	require.Error(t, err)

	_, err = execute(t, cfg, "create", "--id", "shop-1", "--update", "--admin", "Boss@Shop.test", "--accent", "1 2 3")
	require.NoError(t, err)

	_, err = execute(t, cfg, "create", "--id", "bad id")
	require.Error(t, err)

	repos := openRepos(t, cfg)
	ctx := context.Background()
	tenant, err := repos.Tenants.GetByID(ctx, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "Shop One", tenant.Name)
	assert.Equal(t, "1 2 3", tenant.Branding.Accent)
	assert.Equal(t, []string{"admin@shop-1.test", "boss@shop.test"}, tenant.AdminEmails)

	products, err := repos.Products.ListByTenant(ctx, "shop-1")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestSeed(t *testing.T) {
	cfg := boltConfig(t)

	_, err := execute(t, cfg, "seed")
	require.Error(t, err, "seed must be confirmed")

	out, err := execute(t, cfg, "seed", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded")

	repos := openRepos(t, cfg)
	_, err = repos.Tenants.GetByID(context.Background(), "demo")
	require.NoError(t, err)

	_, err = execute(t, config.Config{}, "seed", "--yes")
	require.Error(t, err)
}
