package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/store"
)

// UserRepo stores users under "tenant:id".
type UserRepo struct {
	c *store.Collection[model.User]
	// mu serialises Create so the per-tenant email check and the write
	// cannot interleave.
	mu sync.Mutex
}

func NewUserRepo(b store.Backend) *UserRepo {
	return &UserRepo{c: store.NewCollection[model.User](b, UsersCollection)}
}

// Create inserts u unless its email is already registered in the tenant.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.GetByEmail(ctx, u.TenantID, u.Email); err == nil {
		return ErrEmailExists
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return r.c.Put(ctx, store.Key(u.TenantID, u.ID), u)
}

// Save inserts or replaces u without the uniqueness check (seeding).
func (r *UserRepo) Save(ctx context.Context, u *model.User) error {
	return r.c.Put(ctx, store.Key(u.TenantID, u.ID), u)
}

// GetByID fetches a user by id within the tenant.
func (r *UserRepo) GetByID(ctx context.Context, tenantID, id string) (*model.User, error) {
	return r.c.Get(ctx, store.Key(tenantID, id))
}

// GetByEmail fetches a user by normalized email within the tenant.
func (r *UserRepo) GetByEmail(ctx context.Context, tenantID, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := r.c.List(ctx, store.Prefix(tenantID))
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// ListByTenant returns every user of the tenant.
func (r *UserRepo) ListByTenant(ctx context.Context, tenantID string) ([]model.User, error) {
	return r.c.List(ctx, store.Prefix(tenantID))
}

// Truncate removes every user of every tenant.
func (r *UserRepo) Truncate(ctx context.Context) error { return r.c.Truncate(ctx) }
