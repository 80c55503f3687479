package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// Load writes every tenant of doc, with its users, categories and
// products, into the repositories.  Existing records with the same keys
// are overwritten; nothing is removed.
func Load(ctx context.Context, repos *repository.Repos, doc *Document, hasher utils.PasswordHasher) error {
	for _, id := range doc.IDs() {
		td := doc.Tenants[id]
		t := &model.Tenant{
			ID:          td.ID,
			Name:        td.Name,
			Branding:    td.Branding,
			Strings:     td.Strings,
			AdminEmails: normalizeEmails(td.AdminEmails),
		}
		if t.Strings == nil {
			t.Strings = map[string]string{}
		}
		if err := repos.Tenants.Save(ctx, t); err != nil {
			return fmt.Errorf("seed tenant %s: %w", id, err)
		}

		for _, u := range td.Users {
			u.TenantID = id
			u.Email = strings.ToLower(strings.TrimSpace(u.Email))
			if u.ID == "" {
				u.ID = utils.NewID()
			}
			stored, err := hasher.Hash(u.Password)
			if err != nil {
				return fmt.Errorf("seed user %s/%s: %w", id, u.Email, err)
			}
			u.Password = stored
			if err := repos.Users.Save(ctx, &u); err != nil {
				return fmt.Errorf("seed user %s/%s: %w", id, u.Email, err)
			}
		}
		for _, c := range td.Categories {
			c.TenantID = id
			if c.ID == "" {
				c.ID = utils.NewID()
			}
			if err := repos.Categories.Save(ctx, &c); err != nil {
				return fmt.Errorf("seed category %s/%s: %w", id, c.ID, err)
			}
		}
		for _, p := range td.Products {
			p.TenantID = id
			if p.ID == "" {
				p.ID = utils.NewID()
			}
			if p.Price < 0 {
				p.Price = 0
			}
			if err := repos.Products.Save(ctx, &p); err != nil {
				return fmt.Errorf("seed product %s/%s: %w", id, p.ID, err)
			}
		}
	}
	return nil
}

// Reset deletes every tenant, user, category and product, then loads
// doc.  Carts, addresses and orders are left alone.  This is destructive
// and must only run on explicit request.
func Reset(ctx context.Context, repos *repository.Repos, doc *Document, hasher utils.PasswordHasher) error {
	for _, truncate := range []func(context.Context) error{
		repos.Tenants.Truncate,
		repos.Users.Truncate,
		repos.Categories.Truncate,
		repos.Products.Truncate,
	} {
		if err := truncate(ctx); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
	}
	return Load(ctx, repos, doc, hasher)
}

func normalizeEmails(in []string) []string {
	t := &model.Tenant{AdminEmails: []string{}}
	for _, e := range in {
		if strings.TrimSpace(e) != "" {
			t.AddAdmin(e)
		}
	}
	return t.AdminEmails
}
