// Package router binds the handlers to URL patterns.  Every API route
// lives under /api/:tenant; the tenant segment is threaded into each
// service call by the handlers.
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/config"
	"github.com/abubasith456/React-white-label/internal/handler"
	"github.com/abubasith456/React-white-label/internal/invoice"
	"github.com/abubasith456/React-white-label/internal/middleware"
	"github.com/abubasith456/React-white-label/internal/service"
)

// Deps is everything the routes need.
type Deps struct {
	Services *service.Services
	Sessions middleware.SessionLookup
	Invoices invoice.Renderer
	Timeout  time.Duration
	// Storage is reported by /healthz.
	Storage string
	// Gatherer backs /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer

	// The fields below are used by New only.
	Log         *zap.Logger
	Metrics     *middleware.Metrics
	CORSOrigins []string
	RateLimit   config.RateLimitConfig
	// Redis backs the rate limiter; nil disables it.
	Redis redis.Scripter
}

// New builds the server's echo instance.  Request logging and metrics
// wrap Recover, and the rate limiter runs on the tenant group after
// session binding.
func New(d Deps) *echo.Echo {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(d.Log)

	e.Use(middleware.RequestLogger(d.Log.Named("http")))
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			d.Log.Error("panic recovered",
				zap.String("path", c.Path()),
				zap.Error(err),
				zap.ByteString("stack", stack))
			return err
		},
	}))
	if len(d.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: d.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	Register(e, d)
	return e
}

// Handlers groups the handler structs of one server.
type Handlers struct {
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Cart      *handler.CartHandler
	Addresses *handler.AddressHandler
	Orders    *handler.OrderHandler
	Admins    *handler.AdminHandler
}

// NewHandlers builds the handlers on d.Services.
func NewHandlers(d Deps) *Handlers {
	s := d.Services
	return &Handlers{
		Auth:      handler.NewAuthHandler(s.Tenants, s.Auth, d.Timeout),
		Catalog:   handler.NewCatalogHandler(s.Catalog, d.Timeout),
		Cart:      handler.NewCartHandler(s.Cart, d.Timeout),
		Addresses: handler.NewAddressHandler(s.Addresses, d.Timeout),
		Orders:    handler.NewOrderHandler(s.Orders, d.Invoices, d.Timeout),
		Admins:    handler.NewAdminHandler(s.Admins, d.Timeout),
	}
}

// Register mounts every route on e.
func Register(e *echo.Echo, d Deps) {
	if d.Invoices == nil {
		d.Invoices = invoice.NewPDF()
	}
	h := NewHandlers(d)
	RegisterRoutes(e, d)

	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	api := e.Group("/api/:tenant",
		middleware.BindSession(d.Sessions),
		middleware.NewTokenBucket(d.RateLimit, d.Redis, log.Named("ratelimit")),
	)
	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin(d.Services.Auth)

	RegisterPublic(api, h)
	RegisterCustomer(api, h, requireAuth)
	RegisterAdmin(api, h, requireAdmin)
}

// RegisterRoutes registers the routes outside the tenant prefix: the
// health check and, when a gatherer is configured, Prometheus metrics.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health(d.Storage))
	if d.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
}
