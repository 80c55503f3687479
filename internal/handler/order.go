package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/invoice"
	"github.com/abubasith456/React-white-label/internal/service"
)

// OrderHandler serves checkout, order history, invoices and the admin
// order desk.
type OrderHandler struct {
	base
	Orders   *service.OrderService
	Invoices invoice.Renderer
}

// NewOrderHandler panics if a dependency is missing.
func NewOrderHandler(orders *service.OrderService, invoices invoice.Renderer, timeout time.Duration) *OrderHandler {
	if orders == nil || invoices == nil {
		panic("nil dependency passed to NewOrderHandler")
	}
	return &OrderHandler{base: newBase(timeout), Orders: orders, Invoices: invoices}
}

type createOrderReq struct {
	AddressID string `json:"addressId"`
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *OrderHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Orders.List(ctx, tenantID(c), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": list})
}

// Create checks out the session user's cart.
func (h *OrderHandler) Create(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	o, err := h.Orders.Create(ctx, tenantID(c), uid, req.AddressID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"order": o})
}

func (h *OrderHandler) Get(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	o, err := h.Orders.Get(ctx, tenantID(c), uid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"order": o})
}

// Invoice streams the order as a document.  The owner and tenant admins
// may download it.
func (h *OrderHandler) Invoice(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	tenant := tenantID(c)
	o, err := h.Orders.Invoice(ctx, tenant, uid, c.Param("id"))
	if err != nil {
		return err
	}
	// render fully before writing so failures still get a JSON error
	var buf bytes.Buffer
	if err := h.Invoices.Render(&buf, tenant, o); err != nil {
		return fmt.Errorf("render invoice %s: %w", o.ID, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=invoice-%s.pdf", o.ID))
	return c.Blob(http.StatusOK, h.Invoices.ContentType(), buf.Bytes())
}

// ListAll is the admin view of every order in the tenant.
func (h *OrderHandler) ListAll(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Orders.ListAll(ctx, tenantID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": list})
}

func (h *OrderHandler) GetAny(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	o, err := h.Orders.GetAny(ctx, tenantID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"order": o})
}

// UpdateStatus accepts created, packed, shipped or delivered, in any
// order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	o, err := h.Orders.UpdateStatus(ctx, tenantID(c), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"order": o})
}
