package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihara/courseflow/internal/config"
	pgstorage "github.com/mihara/courseflow/internal/storage/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Applies pending schema migrations to the postgres database named
by DATABASE_URL. Only meaningful for the postgres backend; the memory
and redis backends are schemaless.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL not set")
			}

			ctx := context.Background()
			store, err := pgstorage.New(ctx, pgstorage.Config{URL: cfg.DatabaseURL})
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.RunMigrations(ctx); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage("migrations applied")
			return nil
		},
	}
}
