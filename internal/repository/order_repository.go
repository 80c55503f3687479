package repository

import (
	"context"
	"sort"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/store"
)

// OrderRepo stores orders under "tenant:id" so admins can scan a whole
// tenant; per-user listings filter on UserID.
type OrderRepo struct{ c *store.Collection[model.Order] }

func NewOrderRepo(b store.Backend) *OrderRepo {
	return &OrderRepo{c: store.NewCollection[model.Order](b, OrdersCollection)}
}

func (r *OrderRepo) Save(ctx context.Context, o *model.Order) error {
	return r.c.Put(ctx, store.Key(o.TenantID, o.ID), o)
}

func (r *OrderRepo) GetByID(ctx context.Context, tenantID, id string) (*model.Order, error) {
	return r.c.Get(ctx, store.Key(tenantID, id))
}

func (r *OrderRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.c.Delete(ctx, store.Key(tenantID, id))
	return err
}

// ListByTenant returns every order of the tenant, newest first.
func (r *OrderRepo) ListByTenant(ctx context.Context, tenantID string) ([]model.Order, error) {
	orders, err := r.c.List(ctx, store.Prefix(tenantID))
	if err != nil {
		return nil, err
	}
	newestFirst(orders)
	return orders, nil
}

// ListByUser returns the user's orders, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, tenantID, userID string) ([]model.Order, error) {
	all, err := r.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(all))
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func newestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
