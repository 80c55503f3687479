package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/service"
)

// AuthHandler serves tenant config, registration, login and the user
// directory.
type AuthHandler struct {
	base
	Tenants *service.TenantService
	Auth    *service.AuthService
}

// NewAuthHandler panics if a dependency is missing.
func NewAuthHandler(tenants *service.TenantService, auth *service.AuthService, timeout time.Duration) *AuthHandler {
	if tenants == nil || auth == nil {
		panic("nil service passed to NewAuthHandler")
	}
	return &AuthHandler{base: newBase(timeout), Tenants: tenants, Auth: auth}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Config returns the public branding of the tenant.
func (h *AuthHandler) Config(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	cfg, err := h.Tenants.Config(ctx, tenantID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// Register creates the user and returns a session token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.Auth.Register(ctx, tenantID(c), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Login checks credentials and returns a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.Auth.Login(ctx, tenantID(c), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Forgot acknowledges a password reset request.  Nothing is sent.
func (h *AuthHandler) Forgot(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": h.Auth.ForgotPassword()})
}

// Me returns the session user with a freshly computed role.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.Auth.Profile(ctx, tenantID(c), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": p})
}

// Users lists the tenant's users without credentials.
func (h *AuthHandler) Users(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	users, err := h.Auth.ListUsers(ctx, tenantID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
