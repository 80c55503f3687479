package repository

import "github.com/abubasith456/React-white-label/internal/store"

// Repos bundles every repository bound to one backend.
type Repos struct {
	Backend    store.Backend
	Tenants    *TenantRepo
	Users      *UserRepo
	Categories *CategoryRepo
	Products   *ProductRepo
	Carts      *CartRepo
	Addresses  *AddressRepo
	Orders     *OrderRepo
}

// New builds all repositories on b.
func New(b store.Backend) *Repos {
	return &Repos{
		Backend:    b,
		Tenants:    NewTenantRepo(b),
		Users:      NewUserRepo(b),
		Categories: NewCategoryRepo(b),
		Products:   NewProductRepo(b),
		Carts:      NewCartRepo(b),
		Addresses:  NewAddressRepo(b),
		Orders:     NewOrderRepo(b),
	}
}
