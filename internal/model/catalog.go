package model

// Category groups products.  Nothing references it by foreign key, so a
// product may keep pointing at a deleted category.
type Category struct {
	ID       string `json:"id"`
	TenantID string `json:"tenantId"`
	Name     string `json:"name"`
}

// Product is a sellable catalogue item.  Price is always non-negative.
type Product struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenantId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	CategoryID  string  `json:"categoryId"`
}
