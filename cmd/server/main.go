// Command server runs the multi-tenant storefront API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/config"
	"github.com/abubasith456/React-white-label/internal/invoice"
	"github.com/abubasith456/React-white-label/internal/logger"
	"github.com/abubasith456/React-white-label/internal/middleware"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/router"
	"github.com/abubasith456/React-white-label/internal/seed"
	"github.com/abubasith456/React-white-label/internal/service"
	"github.com/abubasith456/React-white-label/internal/session"
	"github.com/abubasith456/React-white-label/internal/store"
	"github.com/abubasith456/React-white-label/internal/utils"
)

func main() {
	// a missing .env is fine; the environment may already be set
	_ = godotenv.Load()
	cfg, cfgErr := config.Load()

	seedOnly := flag.Bool("seed", false, "replace tenants, users, categories and products in the persistent store with the tenants document, then exit")
	flag.StringVar(&cfg.TenantsConfig, "config", cfg.TenantsConfig, "path of the tenants document")
	flag.Parse()

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	if cfgErr != nil {
		log.Fatal("invalid configuration", zap.Error(cfgErr))
	}
	if err := run(cfg, *seedOnly, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg config.Config, seedOnly bool, log *zap.Logger) error {
	ctx := context.Background()

	backend, err := store.FromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()
	storage := store.Describe(backend)
	repos := repository.New(backend)
	hasher := utils.NewPasswordHasher(cfg.PasswordMode, cfg.BcryptCost)

	if seedOnly {
		if !cfg.Persistent() {
			return errors.New("--seed needs DATABASE_URL or DB_HOST")
		}
		doc, err := seed.LoadFile(cfg.TenantsConfig)
		if err != nil {
			return err
		}
		if err := seed.Reset(ctx, repos, doc, hasher); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info("seeded", zap.String("storage", storage), zap.Strings("tenants", doc.IDs()))
		return nil
	}

	if !cfg.Persistent() {
		doc, err := seed.LoadFile(cfg.TenantsConfig)
		if err != nil {
			return err
		}
		if err := seed.Load(ctx, repos, doc, hasher); err != nil {
			return fmt.Errorf("load tenants: %w", err)
		}
		log.Info("tenants loaded", zap.String("path", cfg.TenantsConfig), zap.Strings("tenants", doc.IDs()))
	}

	sessions := session.NewStore()
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Bearer sessions issued since start.",
		}, func() float64 { return float64(sessions.Len()) }),
	)
	rateLimit, err := config.LoadRateLimitConfig()
	if err != nil {
		return err
	}
	var limiter redis.Scripter
	if config.RedisEnabled() {
		if rdb := config.NewRedisClient(); rdb != nil {
			defer rdb.Close()
			limiter = rdb
		} else {
			log.Warn("redis unreachable; rate limiting disabled")
		}
	}

	e := router.New(router.Deps{
		Services:    service.New(repos, sessions, hasher, log),
		Sessions:    sessions,
		Invoices:    invoice.NewPDF(),
		Timeout:     cfg.RequestTimeout,
		Storage:     storage,
		Gatherer:    reg,
		Log:         log,
		Metrics:     middleware.NewMetrics(reg),
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   rateLimit,
		Redis:       limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("storage", storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
