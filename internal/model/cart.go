package model

// CartItem is one line of a shopping cart.  A cart holds at most one
// line per product; repeated adds increase Quantity.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is the per (tenant, user) shopping cart document.
type Cart struct {
	TenantID string     `json:"tenantId"`
	UserID   string     `json:"userId"`
	Items    []CartItem `json:"items"`
}
