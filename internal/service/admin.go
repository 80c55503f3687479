package service

import (
	"context"
	"strings"

	"github.com/abubasith456/React-white-label/internal/model"
)

// AdminService edits the tenant's admin email list.  Emails are not
// checked against registered users.
type AdminService struct {
	tenants *TenantService
}

func NewAdminService(tenants *TenantService) *AdminService {
	return &AdminService{tenants: tenants}
}

func (s *AdminService) List(ctx context.Context, tenantID string) ([]string, error) {
	t, err := s.tenants.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return t.AdminEmails, nil
}

// Add inserts email; adding an existing admin is a no-op.
func (s *AdminService) Add(ctx context.Context, tenantID, email string) ([]string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrMissingEmail
	}
	t, err := s.tenants.update(ctx, tenantID, func(t *model.Tenant) { t.AddAdmin(email) })
	if err != nil {
		return nil, err
	}
	return t.AdminEmails, nil
}

// Remove filters email out of the admin list if present.
func (s *AdminService) Remove(ctx context.Context, tenantID, email string) ([]string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrMissingEmail
	}
	t, err := s.tenants.update(ctx, tenantID, func(t *model.Tenant) { t.RemoveAdmin(email) })
	if err != nil {
		return nil, err
	}
	return t.AdminEmails, nil
}
