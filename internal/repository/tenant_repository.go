package repository

import (
	"context"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/store"
)

type TenantRepo struct{ c *store.Collection[model.Tenant] }

func NewTenantRepo(b store.Backend) *TenantRepo {
	return &TenantRepo{c: store.NewCollection[model.Tenant](b, TenantsCollection)}
}

// GetByID fetches a tenant by id.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*model.Tenant, error) {
	return r.c.Get(ctx, id)
}

// Save inserts or replaces the tenant document.
func (r *TenantRepo) Save(ctx context.Context, t *model.Tenant) error {
	return r.c.Put(ctx, t.ID, t)
}

// List returns every tenant ordered by id.
func (r *TenantRepo) List(ctx context.Context) ([]model.Tenant, error) {
	return r.c.List(ctx, "")
}

// Truncate removes every tenant.
func (r *TenantRepo) Truncate(ctx context.Context) error { return r.c.Truncate(ctx) }
