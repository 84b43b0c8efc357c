package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		defer logger.Sync() //nolint:errcheck

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := storage.NewPostgresClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		applied, err := db.Migrate(ctx, logger.Named("migrate"))
		if err != nil {
			logger.Error("migrations failed", zap.Error(err))
			return err
		}

		if len(applied) == 0 {
			fmt.Println("database is up to date")
			return nil
		}
		for _, name := range applied {
			fmt.Printf("applied %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
