// Command tenantctl provisions tenants in the persistent store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/config"
	"github.com/abubasith456/React-white-label/internal/logger"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	if err := newRootCommand(context.Background(), cfg, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(ctx context.Context, cfg config.Config, log *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "tenantctl",
		Short:         "Manage storefront tenants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCreateCommand(ctx, cfg, log), newSeedCommand(ctx, cfg, log))
	return root
}
