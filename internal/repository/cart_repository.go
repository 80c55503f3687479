package repository

import (
	"context"
	"errors"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/store"
)

// CartRepo stores one cart document per "tenant:user".
type CartRepo struct{ c *store.Collection[model.Cart] }

func NewCartRepo(b store.Backend) *CartRepo {
	return &CartRepo{c: store.NewCollection[model.Cart](b, CartsCollection)}
}

// Items returns the cart lines; a missing cart is an empty one.
func (r *CartRepo) Items(ctx context.Context, tenantID, userID string) ([]model.CartItem, error) {
	cart, err := r.c.Get(ctx, store.Key(tenantID, userID))
	if errors.Is(err, ErrNotFound) {
		return []model.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	return cart.Items, nil
}

// SetItems replaces the cart lines.
func (r *CartRepo) SetItems(ctx context.Context, tenantID, userID string, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	return r.c.Put(ctx, store.Key(tenantID, userID), &model.Cart{TenantID: tenantID, UserID: userID, Items: items})
}

// Clear deletes the cart document.
func (r *CartRepo) Clear(ctx context.Context, tenantID, userID string) error {
	_, err := r.c.Delete(ctx, store.Key(tenantID, userID))
	return err
}
