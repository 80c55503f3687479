package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/service"
)

// AdminHandler edits the tenant's admin email list.
type AdminHandler struct {
	base
	Admins *service.AdminService
}

// NewAdminHandler panics if the service is missing.
func NewAdminHandler(admins *service.AdminService, timeout time.Duration) *AdminHandler {
	if admins == nil {
		panic("nil service passed to NewAdminHandler")
	}
	return &AdminHandler{base: newBase(timeout), Admins: admins}
}

// adminReq is read from the body, or from ?email= on DELETE requests
// sent without one.
type adminReq struct {
	Email string `json:"email" query:"email"`
}

func admins(c echo.Context, list []string) error {
	if list == nil {
		list = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{"admins": list})
}

func (h *AdminHandler) List(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Admins.List(ctx, tenantID(c))
	if err != nil {
		return err
	}
	return admins(c, list)
}

// Add is idempotent.  The email need not belong to a registered user.
func (h *AdminHandler) Add(c echo.Context) error {
	var req adminReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Admins.Add(ctx, tenantID(c), req.Email)
	if err != nil {
		return err
	}
	return admins(c, list)
}

func (h *AdminHandler) Remove(c echo.Context) error {
	var req adminReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Admins.Remove(ctx, tenantID(c), req.Email)
	if err != nil {
		return err
	}
	return admins(c, list)
}
