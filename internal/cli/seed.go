package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talkboard/api-comments/internal/account"
	"github.com/talkboard/api-comments/internal/article"
	"github.com/talkboard/api-comments/internal/config"
	"github.com/talkboard/api-comments/internal/database"
	"github.com/talkboard/api-comments/internal/logging"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo account and demo articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func runSeed() error {
	cfg := config.Load()
	logging.Setup(cfg.DevLog)

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	hash, err := account.HashPassword("demo")
	if err != nil {
		return err
	}
	demo := account.Account{Username: "demo", Name: "Demo User", PasswordHash: hash}
	if err := db.FirstOrCreate(&demo, account.Account{Username: "demo"}).Error; err != nil {
		return fmt.Errorf("seed account: %w", err)
	}

	articles := article.NewRepository()
	existing, err := articles.List(db)
	if err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	if len(existing) == 0 {
		for _, title := range []string{"Hello world", "Second post"} {
			a := article.Article{Title: title, Body: "Seeded demo article."}
			if err := articles.Create(db, &a); err != nil {
				return fmt.Errorf("seed articles: %w", err)
			}
		}
	}

	slog.Info("seed data ready", "account", demo.Username)
	return nil
}
