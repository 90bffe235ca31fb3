package auth

import (
	"net/http"
	"strings"

	"github.com/talkboard/api-comments/internal/httpx"
)

// Middleware validates the Bearer token and stores the caller identity in the
// request context. OPTIONS requests pass through for CORS preflight.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				httpx.Error(w, "Missing token", http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")
			claims, err := ParseToken(secret, raw)
			if err != nil {
				httpx.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			id := Identity{UserID: claims.UserID, Username: claims.Username, IsAdmin: claims.IsAdmin}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
