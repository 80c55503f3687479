package repository

import (
	"context"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/store"
)

// AddressRepo stores addresses under "tenant:user:id" so a user's
// addresses are a single prefix scan and ownership is implied by the key.
type AddressRepo struct{ c *store.Collection[model.Address] }

func NewAddressRepo(b store.Backend) *AddressRepo {
	return &AddressRepo{c: store.NewCollection[model.Address](b, AddressesCollection)}
}

func (r *AddressRepo) ListByUser(ctx context.Context, tenantID, userID string) ([]model.Address, error) {
	return r.c.List(ctx, store.Prefix(tenantID, userID))
}

// GetByID returns ErrNotFound when the address does not belong to the user.
func (r *AddressRepo) GetByID(ctx context.Context, tenantID, userID, id string) (*model.Address, error) {
	return r.c.Get(ctx, store.Key(tenantID, userID, id))
}

func (r *AddressRepo) Save(ctx context.Context, a *model.Address) error {
	return r.c.Put(ctx, store.Key(a.TenantID, a.UserID, a.ID), a)
}

// Delete returns ErrNotFound when nothing was removed.
func (r *AddressRepo) Delete(ctx context.Context, tenantID, userID, id string) error {
	existed, err := r.c.Delete(ctx, store.Key(tenantID, userID, id))
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}
