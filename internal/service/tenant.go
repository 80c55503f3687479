package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// TenantService is the tenant registry.  It reads tenants through the
// store, whichever backend was selected at startup.
type TenantService struct {
	repo *repository.TenantRepo
	// locks serialises read-modify-write of a tenant document.
	locks *keyedMutex
}

func NewTenantService(repo *repository.TenantRepo) *TenantService {
	return &TenantService{repo: repo, locks: newKeyedMutex()}
}

// Resolve returns the tenant or ErrUnknownTenant.
func (s *TenantService) Resolve(ctx context.Context, id string) (*model.Tenant, error) {
	if !utils.ValidTenantID(id) {
		return nil, ErrUnknownTenant
	}
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnknownTenant
	}
	if err != nil {
		return nil, fmt.Errorf("load tenant %s: %w", id, err)
	}
	if t.Strings == nil {
		t.Strings = map[string]string{}
	}
	if t.AdminEmails == nil {
		t.AdminEmails = []string{}
	}
	return t, nil
}

// Config returns the public branding document of the tenant.
func (s *TenantService) Config(ctx context.Context, id string) (model.TenantConfig, error) {
	t, err := s.Resolve(ctx, id)
	if err != nil {
		return model.TenantConfig{}, err
	}
	return t.Public(), nil
}

// update applies fn to the tenant under the tenant lock and persists
// the result.
func (s *TenantService) update(ctx context.Context, id string, fn func(t *model.Tenant)) (*model.Tenant, error) {
	unlock := s.locks.Lock(id)
	defer unlock()
	t, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	fn(t)
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("save tenant %s: %w", id, err)
	}
	return t, nil
}
