package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/config"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/seed"
	"github.com/abubasith456/React-white-label/internal/store"
	"github.com/abubasith456/React-white-label/internal/utils"
)

func newSeedCommand(ctx context.Context, cfg config.Config, log *zap.Logger) *cobra.Command {
	path := cfg.TenantsConfig
	var yes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace tenants, users, categories and products with the tenants document",
		Long: `Seed deletes every tenant, user, category and product in the persistent
store and loads the tenants document in their place.  Carts, addresses
and orders are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cfg.Persistent() {
				return errors.New("seed needs DATABASE_URL or DB_HOST")
			}
			if !yes {
				return errors.New("seed is destructive; pass --yes to confirm")
			}
			doc, err := seed.LoadFile(path)
			if err != nil {
				return err
			}
			backend, err := store.FromConfig(ctx, cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			hasher := utils.NewPasswordHasher(cfg.PasswordMode, cfg.BcryptCost)
			if err := seed.Reset(ctx, repository.New(backend), doc, hasher); err != nil {
				return err
			}
			log.Info("seeded", zap.String("storage", store.Describe(backend)), zap.Strings("tenants", doc.IDs()))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tenants\n", len(doc.Tenants))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "config", path, "path of the tenants document")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive reset")
	return cmd
}
