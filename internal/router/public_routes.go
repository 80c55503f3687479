package router

import "github.com/labstack/echo/v4"

// RegisterPublic registers the routes that need no session: branding,
// the auth endpoints and catalog reads.
func RegisterPublic(g *echo.Group, h *Handlers) {
	g.GET("/config", h.Auth.Config)

	g.POST("/auth/register", h.Auth.Register)
	g.POST("/auth/login", h.Auth.Login)
	g.POST("/auth/forgot", h.Auth.Forgot)

	g.GET("/products", h.Catalog.ListProducts)
	g.GET("/products/:id", h.Catalog.GetProduct)
	g.GET("/categories", h.Catalog.ListCategories)
}
