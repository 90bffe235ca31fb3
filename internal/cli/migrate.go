package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talkboard/api-comments/internal/config"
	"github.com/talkboard/api-comments/internal/database"
	"github.com/talkboard/api-comments/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logging.Setup(cfg.DevLog)

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			slog.Info("schema up to date")
			return nil
		},
	}
}
