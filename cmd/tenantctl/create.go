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
)

func newCreateCommand(ctx context.Context, cfg config.Config, log *zap.Logger) *cobra.Command {
	var opts seed.TenantOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tenant, or update one with --update",
		Long: `Create a tenant in the store named by DATABASE_URL (or DB_HOST).

A new tenant without --admin gets admin@<id>.test as its only admin.
With --update, an existing tenant keeps every value that is not given
on the command line and the admin list is extended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.ID == "" {
				return errors.New("--id is required")
			}
			backend, err := store.FromConfig(ctx, cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			t, err := seed.CreateTenant(ctx, repository.New(backend), opts)
			if err != nil {
				return err
			}
			log.Info("tenant saved",
				zap.String("storage", store.Describe(backend)),
				zap.String("tenant", t.ID),
				zap.Strings("admins", t.AdminEmails),
				zap.Bool("sample", opts.WithSample))
			fmt.Fprintf(cmd.OutOrStdout(), "tenant %s ready at /api/%s\n", t.ID, t.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ID, "id", "", "tenant id (letters, numbers, dash, underscore)")
	f.StringVar(&opts.Name, "name", "", "display name")
	f.StringSliceVar(&opts.Admins, "admin", nil, "admin email; repeat or comma-separate for several")
	f.StringVar(&opts.Primary, "primary", "", `primary color as "r g b"`)
	f.StringVar(&opts.Secondary, "secondary", "", `secondary color as "r g b"`)
	f.StringVar(&opts.Accent, "accent", "", `accent color as "r g b"`)
	f.StringVar(&opts.LogoURL, "logo", "", "logo URL")
	f.StringVar(&opts.AppTitle, "app-title", "", "storefront title (defaults to the name)")
	f.StringVar(&opts.Tagline, "tagline", "", "storefront tagline")
	f.BoolVar(&opts.WithSample, "with-sample", false, "add two sample categories and products")
	f.BoolVar(&opts.Update, "update", false, "modify the tenant if it already exists")
	return cmd
}
