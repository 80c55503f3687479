package router

import "github.com/labstack/echo/v4"

// RegisterCustomer registers the routes scoped to the session user.  All
// of them answer 401 without a session for the path's tenant.
func RegisterCustomer(g *echo.Group, h *Handlers, requireAuth echo.MiddlewareFunc) {
	g.GET("/auth/me", h.Auth.Me, requireAuth)

	g.GET("/cart", h.Cart.Get, requireAuth)
	g.POST("/cart", h.Cart.Add, requireAuth)
	g.PUT("/cart", h.Cart.Replace, requireAuth)
	g.DELETE("/cart", h.Cart.Clear, requireAuth)
	g.DELETE("/cart/:productId", h.Cart.Remove, requireAuth)

	g.GET("/addresses", h.Addresses.List, requireAuth)
	g.POST("/addresses", h.Addresses.Create, requireAuth)
	g.PUT("/addresses/:id", h.Addresses.Update, requireAuth)
	g.DELETE("/addresses/:id", h.Addresses.Delete, requireAuth)

	g.GET("/orders", h.Orders.List, requireAuth)
	g.POST("/orders", h.Orders.Create, requireAuth)
	g.GET("/orders/:id", h.Orders.Get, requireAuth)
	// owner or admin; the check is made by the order service
	g.GET("/orders/:id/invoice", h.Orders.Invoice, requireAuth)
}
