package repository

import (
	"context"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/store"
)

// CategoryRepo stores categories under "tenant:id".
type CategoryRepo struct{ c *store.Collection[model.Category] }

func NewCategoryRepo(b store.Backend) *CategoryRepo {
	return &CategoryRepo{c: store.NewCollection[model.Category](b, CategoriesCollection)}
}

func (r *CategoryRepo) ListByTenant(ctx context.Context, tenantID string) ([]model.Category, error) {
	return r.c.List(ctx, store.Prefix(tenantID))
}

func (r *CategoryRepo) Save(ctx context.Context, cat *model.Category) error {
	return r.c.Put(ctx, store.Key(cat.TenantID, cat.ID), cat)
}

// Delete removes the category; a missing id is not an error.
func (r *CategoryRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.c.Delete(ctx, store.Key(tenantID, id))
	return err
}

func (r *CategoryRepo) Truncate(ctx context.Context) error { return r.c.Truncate(ctx) }

// ProductRepo stores products under "tenant:id".
type ProductRepo struct{ c *store.Collection[model.Product] }

func NewProductRepo(b store.Backend) *ProductRepo {
	return &ProductRepo{c: store.NewCollection[model.Product](b, ProductsCollection)}
}

func (r *ProductRepo) ListByTenant(ctx context.Context, tenantID string) ([]model.Product, error) {
	return r.c.List(ctx, store.Prefix(tenantID))
}

func (r *ProductRepo) GetByID(ctx context.Context, tenantID, id string) (*model.Product, error) {
	return r.c.Get(ctx, store.Key(tenantID, id))
}

func (r *ProductRepo) Save(ctx context.Context, p *model.Product) error {
	return r.c.Put(ctx, store.Key(p.TenantID, p.ID), p)
}

// Delete removes the product; a missing id is not an error.
func (r *ProductRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.c.Delete(ctx, store.Key(tenantID, id))
	return err
}

func (r *ProductRepo) Truncate(ctx context.Context) error { return r.c.Truncate(ctx) }
