package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
)

// CartLineInput is one client-supplied cart line.  Quantity is coerced.
type CartLineInput struct {
	ProductID string `json:"productId"`
	Quantity  any    `json:"quantity"`
}

// CartService manages the per-user cart.  Each operation is a plain
// read-modify-write of the cart document: two concurrent adds for the
// same user can lose one increment.
type CartService struct {
	tenants *TenantService
	carts   *repository.CartRepo
}

func NewCartService(tenants *TenantService, carts *repository.CartRepo) *CartService {
	return &CartService{tenants: tenants, carts: carts}
}

func (s *CartService) Items(ctx context.Context, tenantID, userID string) ([]model.CartItem, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	items, err := s.carts.Items(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return items, nil
}

// Add increases the line for productID by quantity, appending a new
// line when the product is not in the cart yet.  The product itself is
// not checked.
func (s *CartService) Add(ctx context.Context, tenantID, userID string, in CartLineInput) ([]model.CartItem, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, ErrMissingFields
	}
	items, err := s.Items(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	items = addLine(items, productID, CoerceQuantity(in.Quantity))
	if err := s.carts.SetItems(ctx, tenantID, userID, items); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return items, nil
}

// Remove drops the line for productID if present.
func (s *CartService) Remove(ctx context.Context, tenantID, userID, productID string) ([]model.CartItem, error) {
	items, err := s.Items(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	if err := s.carts.SetItems(ctx, tenantID, userID, out); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return out, nil
}

// Replace overwrites the cart, merging duplicate products and dropping
// lines without a product id.
func (s *CartService) Replace(ctx context.Context, tenantID, userID string, lines []CartLineInput) ([]model.CartItem, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	items := []model.CartItem{}
	for _, l := range lines {
		if id := strings.TrimSpace(l.ProductID); id != "" {
			items = addLine(items, id, CoerceQuantity(l.Quantity))
		}
	}
	if err := s.carts.SetItems(ctx, tenantID, userID, items); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return items, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, tenantID, userID string) error {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return err
	}
	if err := s.carts.Clear(ctx, tenantID, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func addLine(items []model.CartItem, productID string, qty int) []model.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += qty
			return items
		}
	}
	return append(items, model.CartItem{ProductID: productID, Quantity: qty})
}
