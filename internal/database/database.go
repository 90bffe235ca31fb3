// Package database opens the postgres connection and keeps the schema
// in step with the models.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkboard/api-comments/internal/account"
	"github.com/talkboard/api-comments/internal/article"
	"github.com/talkboard/api-comments/internal/comment"
	"github.com/talkboard/api-comments/internal/config"
)

// Connect opens the postgres database described by cfg.
func Connect(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model the API persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&account.Account{},
		&article.Article{},
		&comment.Comment{},
	)
}
