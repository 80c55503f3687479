package router

import "github.com/labstack/echo/v4"

// RegisterAdmin registers the routes reserved for users whose email is
// in the tenant's admin list.  Membership is checked on every request.
func RegisterAdmin(g *echo.Group, h *Handlers, requireAdmin echo.MiddlewareFunc) {
	g.POST("/products", h.Catalog.CreateProduct, requireAdmin)
	g.PUT("/products/:id", h.Catalog.UpdateProduct, requireAdmin)
	g.DELETE("/products/:id", h.Catalog.DeleteProduct, requireAdmin)

	g.POST("/categories", h.Catalog.CreateCategory, requireAdmin)
	g.DELETE("/categories/:id", h.Catalog.DeleteCategory, requireAdmin)

	g.GET("/users", h.Auth.Users, requireAdmin)

	g.GET("/orders/admin", h.Orders.ListAll, requireAdmin)
	g.GET("/orders/admin/:id", h.Orders.GetAny, requireAdmin)
	g.PUT("/orders/admin/:id/status", h.Orders.UpdateStatus, requireAdmin)

	g.GET("/admins", h.Admins.List, requireAdmin)
	g.POST("/admins", h.Admins.Add, requireAdmin)
	g.DELETE("/admins", h.Admins.Remove, requireAdmin)
}
