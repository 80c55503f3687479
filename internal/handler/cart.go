package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/service"
)

// CartHandler serves the session user's cart.
type CartHandler struct {
	base
	Cart *service.CartService
}

// NewCartHandler panics if the service is missing.
func NewCartHandler(cart *service.CartService, timeout time.Duration) *CartHandler {
	if cart == nil {
		panic("nil service passed to NewCartHandler")
	}
	return &CartHandler{base: newBase(timeout), Cart: cart}
}

type replaceCartReq struct {
	Items []service.CartLineInput `json:"items"`
}

func items(c echo.Context, list []model.CartItem) error {
	if list == nil {
		list = []model.CartItem{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list})
}

func (h *CartHandler) Get(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Cart.Items(ctx, tenantID(c), uid)
	if err != nil {
		return err
	}
	return items(c, list)
}

// Add increments the line for productId, creating it when absent.
func (h *CartHandler) Add(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req service.CartLineInput
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Cart.Add(ctx, tenantID(c), uid, req)
	if err != nil {
		return err
	}
	return items(c, list)
}

// Replace overwrites the whole cart, used when a guest cart is merged
// after login.
func (h *CartHandler) Replace(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req replaceCartReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Cart.Replace(ctx, tenantID(c), uid, req.Items)
	if err != nil {
		return err
	}
	return items(c, list)
}

func (h *CartHandler) Remove(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Cart.Remove(ctx, tenantID(c), uid, c.Param("productId"))
	if err != nil {
		return err
	}
	return items(c, list)
}

func (h *CartHandler) Clear(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Cart.Clear(ctx, tenantID(c), uid); err != nil {
		return err
	}
	return ok(c)
}
