package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/service"
)

// CatalogHandler serves products and categories.  Reads are public;
// writes sit behind RequireAdmin.
type CatalogHandler struct {
	base
	Catalog *service.CatalogService
}

// NewCatalogHandler panics if the service is missing.
func NewCatalogHandler(catalog *service.CatalogService, timeout time.Duration) *CatalogHandler {
	if catalog == nil {
		panic("nil service passed to NewCatalogHandler")
	}
	return &CatalogHandler{base: newBase(timeout), Catalog: catalog}
}

type categoryReq struct {
	Name string `json:"name"`
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	products, err := h.Catalog.ListProducts(ctx, tenantID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.Catalog.GetProduct(ctx, tenantID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"product": p})
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req service.ProductInput
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.Catalog.CreateProduct(ctx, tenantID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"product": p})
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req service.ProductPatch
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.Catalog.UpdateProduct(ctx, tenantID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"product": p})
}

// DeleteProduct succeeds whether or not the product existed.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Catalog.DeleteProduct(ctx, tenantID(c), c.Param("id")); err != nil {
		return err
	}
	return ok(c)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	cats, err := h.Catalog.ListCategories(ctx, tenantID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": cats})
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	cat, err := h.Catalog.CreateCategory(ctx, tenantID(c), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"category": cat})
}

// DeleteCategory succeeds whether or not the category existed.  Products
// keep their categoryId.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Catalog.DeleteCategory(ctx, tenantID(c), c.Param("id")); err != nil {
		return err
	}
	return ok(c)
}
