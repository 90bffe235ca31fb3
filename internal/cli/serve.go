package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/talkboard/api-comments/internal/account"
	"github.com/talkboard/api-comments/internal/article"
	"github.com/talkboard/api-comments/internal/auth"
	"github.com/talkboard/api-comments/internal/comment"
	"github.com/talkboard/api-comments/internal/config"
	"github.com/talkboard/api-comments/internal/database"
	"github.com/talkboard/api-comments/internal/httpx"
	"github.com/talkboard/api-comments/internal/logging"
	"github.com/talkboard/api-comments/internal/permissions"
	"github.com/talkboard/api-comments/internal/sanitize"
	"github.com/talkboard/api-comments/internal/target"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg := config.Load()
	logging.Setup(cfg.DevLog)

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Deployments replace AllowAll with their own policies here.
	permissions.Set(permissions.AllowAll{}, permissions.AllowAll{})

	targets := target.NewResolver()
	targets.Register("article", article.Lookup)

	sanitizer := sanitize.New(sanitize.Options{
		AllowedTags:       cfg.AllowedTags,
		AllowedAttributes: cfg.AllowedAttributes,
	})

	secret := []byte(cfg.JWTSecret)
	accountHandler := account.NewHandler(db, secret)
	commentHandler := comment.NewHandler(db, sanitizer, targets)

	// Open routes first; everything below the auth middleware after.
	r := mux.NewRouter().StrictSlash(true)
	r.HandleFunc("/healthz", healthHandler(db)).Methods("GET")
	r.HandleFunc("/auth/register", accountHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", accountHandler.Login).Methods("POST")

	authed := r.PathPrefix("/").Subrouter()
	authed.Use(auth.Middleware(secret))
	authed.HandleFunc("/auth/me", accountHandler.Me).Methods("GET")
	commentHandler.Routes(authed)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	handler := logging.RequestLogger(c.Handler(r))

	slog.Info("server listening", "addr", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, handler)
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			httpx.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		httpx.JSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
