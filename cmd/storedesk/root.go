package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storedesk/internal/config"
	"storedesk/internal/db"
	"storedesk/internal/logger"
	"storedesk/internal/seed"
	"storedesk/internal/store"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "storedesk",
		Short:         "Data entry and reports for a small online store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(cfg),
		newSeedCmd(cfg),
		newClientCmd(cfg),
		newProductCmd(cfg),
		newOrderCmd(cfg),
		newReportCmd(cfg),
		newExportCmd(cfg),
	)
	return root
}

// openStore connects and brings the schema up to date. Every command
// goes through here, so startup migration stays idempotent by contract.
func openStore(cfg *config.Config) (*store.Store, error) {
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return store.New(gdb), nil
}

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openStore(cfg); err != nil {
				return err
			}
			logger.Named("migrate").Info("schema up to date",
				zap.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}

func newSeedCmd(cfg *config.Config) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo clients, products and random orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			if err := seed.Demo(st, n, r, time.Now()); err != nil {
				return err
			}
			logger.Named("seed").Info("demo data inserted", zap.Int("orders", n))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "orders", "n", 100, "number of random orders to insert")
	return cmd
}
