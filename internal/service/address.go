package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// AddressInput is the body of POST and PUT /addresses.  On update nil
// fields keep their current value.
type AddressInput struct {
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
}

// AddressService manages a user's shipping addresses.
type AddressService struct {
	tenants   *TenantService
	addresses *repository.AddressRepo
}

func NewAddressService(tenants *TenantService, addresses *repository.AddressRepo) *AddressService {
	return &AddressService{tenants: tenants, addresses: addresses}
}

func (s *AddressService) List(ctx context.Context, tenantID, userID string) ([]model.Address, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	list, err := s.addresses.ListByUser(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return list, nil
}

// Create requires line1, city, state, postalCode and country.
func (s *AddressService) Create(ctx context.Context, tenantID, userID string, in AddressInput) (*model.Address, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	a := &model.Address{ID: utils.NewID(), TenantID: tenantID, UserID: userID}
	apply(a, in)
	if !complete(a) {
		return nil, ErrMissingFields
	}
	if err := s.addresses.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}
	return a, nil
}

// Update merges in; ErrNotFound when the address is not the user's.
func (s *AddressService) Update(ctx context.Context, tenantID, userID, id string, in AddressInput) (*model.Address, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	a, err := s.addresses.GetByID(ctx, tenantID, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load address: %w", err)
	}
	apply(a, in)
	if !complete(a) {
		return nil, ErrMissingFields
	}
	if err := s.addresses.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}
	return a, nil
}

// Delete removes the address; ErrNotFound when it is not the user's.
func (s *AddressService) Delete(ctx context.Context, tenantID, userID, id string) error {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return err
	}
	err := s.addresses.Delete(ctx, tenantID, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func apply(a *model.Address, in AddressInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&a.Line1, in.Line1)
	set(&a.Line2, in.Line2)
	set(&a.City, in.City)
	set(&a.State, in.State)
	set(&a.PostalCode, in.PostalCode)
	set(&a.Country, in.Country)
}

func complete(a *model.Address) bool {
	return a.Line1 != "" && a.City != "" && a.State != "" && a.PostalCode != "" && a.Country != ""
}
