package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/talkboard/api-comments/internal/auth"
	"github.com/talkboard/api-comments/internal/httpx"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler encapsulates the DB and the account repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	JWTSecret  []byte
}

func NewHandler(db *gorm.DB, jwtSecret []byte) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		JWTSecret:  jwtSecret,
	}
}

// Register creates a new account. Open endpoint.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		slog.Error("hash password", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	a := Account{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := h.Repository.Save(h.DB, &a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.Error(w, "Username already taken", http.StatusConflict)
			return
		}
		slog.Error("save account", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	httpx.JSON(w, a, http.StatusCreated)
}

// Login issues a JWT for valid credentials.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	a, err := h.Repository.FindByUsername(h.DB, req.Username)
	if err != nil || !CheckPassword(a.PasswordHash, req.Password) {
		httpx.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, a.ID, a.Username, a.IsAdmin)
	if err != nil {
		slog.Error("generate token", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	httpx.JSON(w, map[string]string{"token": token}, http.StatusOK)
}

// Me returns the account of the authenticated caller.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	a, err := h.Repository.FindByID(h.DB, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, "Account not found", http.StatusNotFound)
			return
		}
		slog.Error("fetch account", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	httpx.JSON(w, a, http.StatusOK)
}
