package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/service"
)

// AddressHandler serves the session user's shipping addresses.
type AddressHandler struct {
	base
	Addresses *service.AddressService
}

// NewAddressHandler panics if the service is missing.
func NewAddressHandler(addresses *service.AddressService, timeout time.Duration) *AddressHandler {
	if addresses == nil {
		panic("nil service passed to NewAddressHandler")
	}
	return &AddressHandler{base: newBase(timeout), Addresses: addresses}
}

func (h *AddressHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list, err := h.Addresses.List(ctx, tenantID(c), uid)
	if err != nil {
		return err
	}
	if list == nil {
		list = []model.Address{}
	}
	return c.JSON(http.StatusOK, echo.Map{"addresses": list})
}

func (h *AddressHandler) Create(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req service.AddressInput
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	a, err := h.Addresses.Create(ctx, tenantID(c), uid, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"address": a})
}

// Update merges the body into an address owned by the session user.
func (h *AddressHandler) Update(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req service.AddressInput
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	a, err := h.Addresses.Update(ctx, tenantID(c), uid, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"address": a})
}

// Delete reports 404 for addresses the user does not own, unlike the
// catalog deletes.
func (h *AddressHandler) Delete(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Addresses.Delete(ctx, tenantID(c), uid, c.Param("id")); err != nil {
		return err
	}
	return ok(c)
}
