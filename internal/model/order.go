package model

import "time"

// Order statuses.  Transitions between them are unconstrained.
const (
	OrderCreated   = "created"
	OrderPacked    = "packed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
)

// ValidOrderStatus reports whether s is one of the four order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderCreated, OrderPacked, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// Order is created once from the contents of a cart.  Items and Address
// are snapshots taken at purchase time; only Status changes afterwards.
//
// Fields:
//
//	ID        – opaque, time-ordered identifier.
//	TenantID  – owning tenant.
//	UserID    – purchasing user.
//	AddressID – id of the address chosen at checkout.
//	Address   – frozen copy of that address.
//	Items     – frozen product name/price per line.
//	Total     – sum of price × quantity over Items.
//	Status    – one of created, packed, shipped, delivered.
//	CreatedAt – purchase time (UTC).
type Order struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenantId"`
	UserID    string           `json:"userId"`
	AddressID string           `json:"addressId"`
	Address   *AddressSnapshot `json:"address,omitempty"`
	Items     []OrderItem      `json:"items"`
	Total     float64          `json:"total"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

// OrderItem is one purchased line.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

// Subtotal returns price × quantity for the line.
func (i OrderItem) Subtotal() float64 { return i.Price * float64(i.Quantity) }
