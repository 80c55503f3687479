// Package service holds the storefront's business rules.  Services are
// storage agnostic: they only talk to repositories built on a
// store.Backend, so in-memory and persistent deployments share one code
// path.
package service

import (
	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/session"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// Services bundles every service of one server instance.
type Services struct {
	Tenants   *TenantService
	Auth      *AuthService
	Catalog   *CatalogService
	Cart      *CartService
	Addresses *AddressService
	Orders    *OrderService
	Admins    *AdminService
}

// New wires every service on repos.
func New(repos *repository.Repos, sessions *session.Store, hasher utils.PasswordHasher, log *zap.Logger) *Services {
	if log == nil {
		log = zap.NewNop()
	}
	tenants := NewTenantService(repos.Tenants)
	auth := NewAuthService(tenants, repos.Users, sessions, hasher, log.Named("auth"))
	return &Services{
		Tenants:   tenants,
		Auth:      auth,
		Catalog:   NewCatalogService(tenants, repos.Products, repos.Categories),
		Cart:      NewCartService(tenants, repos.Carts),
		Addresses: NewAddressService(tenants, repos.Addresses),
		Orders:    NewOrderService(tenants, auth, repos, log.Named("orders")),
		Admins:    NewAdminService(tenants),
	}
}
