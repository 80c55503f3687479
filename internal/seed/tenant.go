package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// Defaults applied to newly provisioned tenants.
const (
	DefaultName      = "Demo Shop"
	DefaultPrimary   = "59 130 246"
	DefaultSecondary = "99 102 241"
	DefaultAccent    = "16 185 129"
	DefaultLogoURL   = "https://dummyimage.com/120x40/3b82f6/ffffff&text=Demo"
	DefaultTagline   = "Powered by WLA"
)

var (
	ErrInvalidTenantID = errors.New("invalid tenant id: use letters, numbers, dash or underscore only")
	ErrTenantExists    = errors.New("tenant already exists")
)

// TenantOptions describes a tenant to provision.  Empty fields fall back
// to the current value (on update) or the defaults above.
type TenantOptions struct {
	ID         string
	Name       string
	Admins     []string
	Primary    string
	Secondary  string
	Accent     string
	LogoURL    string
	AppTitle   string
	Tagline    string
	WithSample bool
	// Update allows modifying an existing tenant instead of failing.
	Update bool
}

// CreateTenant provisions or updates a tenant.  New tenants without
// admins get admin@<id>.test; updates union the admin list.
func CreateTenant(ctx context.Context, repos *repository.Repos, opts TenantOptions) (*model.Tenant, error) {
	if !utils.ValidTenantID(opts.ID) {
		return nil, ErrInvalidTenantID
	}
	t, err := repos.Tenants.GetByID(ctx, opts.ID)
	switch {
	case err == nil:
		if !opts.Update {
			return nil, fmt.Errorf("%w: %s (re-run with update to modify it)", ErrTenantExists, opts.ID)
		}
	case errors.Is(err, repository.ErrNotFound):
		t = &model.Tenant{ID: opts.ID, AdminEmails: []string{}}
	default:
		return nil, fmt.Errorf("load tenant: %w", err)
	}
	existed := err == nil

	name := first(opts.Name, t.Name, DefaultName)
	t.Name = name
	t.Branding = model.Branding{
		Primary:   first(opts.Primary, t.Branding.Primary, DefaultPrimary),
		Secondary: first(opts.Secondary, t.Branding.Secondary, DefaultSecondary),
		Accent:    first(opts.Accent, t.Branding.Accent, DefaultAccent),
		LogoURL:   first(opts.LogoURL, t.Branding.LogoURL, DefaultLogoURL),
	}
	if t.Strings == nil {
		t.Strings = map[string]string{}
	}
	t.Strings["appTitle"] = first(opts.AppTitle, t.Strings["appTitle"], name)
	t.Strings["tagline"] = first(opts.Tagline, t.Strings["tagline"], DefaultTagline)

	for _, e := range opts.Admins {
		if strings.TrimSpace(e) != "" {
			t.AddAdmin(e)
		}
	}
	if !existed && len(t.AdminEmails) == 0 {
		t.AddAdmin("admin@" + opts.ID + ".test")
	}

	if err := repos.Tenants.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("save tenant: %w", err)
	}
	if opts.WithSample {
		if err := sample(ctx, repos, opts.ID); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// sample adds two categories and two products with deterministic ids,
// skipping any that already exist.
func sample(ctx context.Context, repos *repository.Repos, id string) error {
	cats := []model.Category{
		{ID: "c-" + id + "-1", TenantID: id, Name: "Electronics"},
		{ID: "c-" + id + "-2", TenantID: id, Name: "Home"},
	}
	existing, err := repos.Categories.ListByTenant(ctx, id)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	have := map[string]bool{}
	for _, c := range existing {
		have[c.ID] = true
	}
	for _, c := range cats {
		if have[c.ID] {
			continue
		}
		if err := repos.Categories.Save(ctx, &c); err != nil {
			return fmt.Errorf("save category: %w", err)
		}
	}

	products := []model.Product{
		{
			ID: "p-" + id + "-1", TenantID: id, Name: "Demo Headphones", Description: "Crisp, clear sound.", Price: 99.99,
			Image:      "https://images.unsplash.com/photo-1518449958364-1751f105424f?q=80&w=800&auto=format&fit=crop",
			CategoryID: cats[0].ID,
		},
		{
			ID: "p-" + id + "-2", TenantID: id, Name: "Demo Lamp", Description: "Light up your home.", Price: 29.99,
			Image:      "https://images.unsplash.com/photo-1503602642458-232111445657?q=80&w=800&auto=format&fit=crop",
			CategoryID: cats[1].ID,
		},
	}
	for _, p := range products {
		_, err := repos.Products.GetByID(ctx, id, p.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("load product: %w", err)
		}
		if err := repos.Products.Save(ctx, &p); err != nil {
			return fmt.Errorf("save product: %w", err)
		}
	}
	return nil
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
