package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/store"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// OrderService turns carts into orders and serves order history.
type OrderService struct {
	tenants   *TenantService
	auth      *AuthService
	carts     *repository.CartRepo
	products  *repository.ProductRepo
	addresses *repository.AddressRepo
	orders    *repository.OrderRepo
	// checkout serialises order creation per (tenant, user).
	checkout *keyedMutex
	now      func() time.Time
	log      *zap.Logger
}

func NewOrderService(tenants *TenantService, auth *AuthService, repos *repository.Repos, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		tenants:   tenants,
		auth:      auth,
		carts:     repos.Carts,
		products:  repos.Products,
		addresses: repos.Addresses,
		orders:    repos.Orders,
		checkout:  newKeyedMutex(),
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

// List returns the user's orders, newest first.
func (s *OrderService) List(ctx context.Context, tenantID, userID string) ([]model.Order, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	list, err := s.orders.ListByUser(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

// Get returns one of the user's own orders.
func (s *OrderService) Get(ctx context.Context, tenantID, userID, id string) (*model.Order, error) {
	o, err := s.GetAny(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotFound
	}
	return o, nil
}

// Create checks out the user's cart against addressID.
//
// The order is written before the cart is cleared.  If clearing fails
// the order is deleted again, so a caller sees either both effects or
// neither.  Concurrent checkouts of the same user are serialised.
func (s *OrderService) Create(ctx context.Context, tenantID, userID, addressID string) (*model.Order, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	unlock := s.checkout.Lock(store.Key(tenantID, userID))
	defer unlock()

	cart, err := s.carts.Items(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	addressID = strings.TrimSpace(addressID)
	if addressID == "" {
		return nil, ErrAddressNotFound
	}
	addr, err := s.addresses.GetByID(ctx, tenantID, userID, addressID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load address: %w", err)
	}

	items := make([]model.OrderItem, 0, len(cart))
	total := 0.0
	for _, line := range cart {
		p, err := s.products.GetByID(ctx, tenantID, line.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			// product deleted since it was added; it cannot be sold
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load product %s: %w", line.ProductID, err)
		}
		it := model.OrderItem{ProductID: p.ID, Quantity: line.Quantity, Price: p.Price, Name: p.Name}
		items = append(items, it)
		total += it.Subtotal()
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	o := &model.Order{
		ID:        utils.NewID(),
		TenantID:  tenantID,
		UserID:    userID,
		AddressID: addr.ID,
		Address:   addr.Snapshot(),
		Items:     items,
		Total:     total,
		Status:    model.OrderCreated,
		CreatedAt: s.now(),
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	if err := s.carts.Clear(ctx, tenantID, userID); err != nil {
		// detach from the request so the rollback still runs on cancel
		if derr := s.orders.Delete(context.WithoutCancel(ctx), tenantID, o.ID); derr != nil {
			s.log.Error("order rollback failed",
				zap.String("tenant", tenantID), zap.String("order_id", o.ID), zap.Error(derr))
		}
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	s.log.Info("order created",
		zap.String("tenant", tenantID),
		zap.String("user_id", userID),
		zap.String("order_id", o.ID),
		zap.Int("items", len(items)),
		zap.Float64("total", total))
	return o, nil
}

// Invoice returns the order for rendering when the caller owns it or is
// an admin of the tenant.
func (s *OrderService) Invoice(ctx context.Context, tenantID, userID, id string) (*model.Order, error) {
	o, err := s.GetAny(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if o.UserID == userID {
		return o, nil
	}
	admin, err := s.auth.IsAdmin(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, ErrForbidden
	}
	return o, nil
}

// ListAll returns every order of the tenant, newest first.
func (s *OrderService) ListAll(ctx context.Context, tenantID string) ([]model.Order, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	list, err := s.orders.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

// GetAny returns any order of the tenant.
func (s *OrderService) GetAny(ctx context.Context, tenantID, id string) (*model.Order, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	o, err := s.orders.GetByID(ctx, tenantID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	return o, nil
}

// UpdateStatus sets the status to any of the four known values.
func (s *OrderService) UpdateStatus(ctx context.Context, tenantID, id, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	o, err := s.GetAny(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return o, nil
}
