// Package repository defines typed repositories over the document store
// and the error values they share.  Handlers never see these errors
// directly; the service layer translates them into API errors.
package repository

import (
	"errors"

	"github.com/abubasith456/React-white-label/internal/store"
)

// ErrNotFound is returned when the requested record does not exist.  It
// is the store's sentinel so errors.Is works across both layers.
var ErrNotFound = store.ErrNotFound

// ErrEmailExists is returned by UserRepo.Create when the email is
// already registered within the tenant.
var ErrEmailExists = errors.New("email already exists")

// Collection names.
const (
	TenantsCollection    = "tenants"
	UsersCollection      = "users"
	CategoriesCollection = "categories"
	ProductsCollection   = "products"
	CartsCollection      = "carts"
	AddressesCollection  = "addresses"
	OrdersCollection     = "orders"
)
