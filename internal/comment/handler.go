package comment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/talkboard/api-comments/internal/auth"
	"github.com/talkboard/api-comments/internal/httpx"
	"github.com/talkboard/api-comments/internal/permissions"
	"github.com/talkboard/api-comments/internal/sanitize"
	"github.com/talkboard/api-comments/internal/target"
)

// MaxBodyLength caps the size of a comment body.
const MaxBodyLength = 2000

// Handler encapsulates the DB, the store and the collaborators the
// comment endpoints need.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Sanitizer  *sanitize.Sanitizer
	Targets    *target.Resolver
}

// NewHandler creates a comment handler backed by the default repository.
func NewHandler(db *gorm.DB, s *sanitize.Sanitizer, targets *target.Resolver) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Sanitizer:  s,
		Targets:    targets,
	}
}

// Routes registers the five comment endpoints on r.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/{contentType}/{objectPk:[0-9]+}/", h.List).Methods("GET")
	r.HandleFunc("/{contentType}/{objectPk:[0-9]+}/", h.Create).Methods("POST")
	r.HandleFunc("/{contentType}/{objectPk:[0-9]+}/{commentId:[0-9]+}/", h.Get).Methods("GET")
	r.HandleFunc("/{contentType}/{objectPk:[0-9]+}/{commentId:[0-9]+}/", h.Update).Methods("PUT")
	r.HandleFunc("/{contentType}/{objectPk:[0-9]+}/{commentId:[0-9]+}/", h.Delete).Methods("DELETE")
}

// CreateCommentRequest is the body of POST /{contentType}/{objectPk}/.
type CreateCommentRequest struct {
	Comment  string `json:"comment"`
	ParentID *uint  `json:"parentID"`
}

// UpdateCommentRequest is the body of PUT on a single comment. The field
// is a pointer so a missing key can be told apart from an empty string.
type UpdateCommentRequest struct {
	Comment *string `json:"comment"`
}

// List handles GET /{contentType}/{objectPk}/.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	contentType, objectPK := pathTarget(r)

	// Permission comes before any lookup so denied callers learn
	// nothing about what exists.
	root, _ := permissions.Policies()
	if !root.CanListComments(identity, contentType, objectPK) {
		httpx.Error(w, "Permission denied", http.StatusForbidden)
		return
	}

	t, ok := h.resolveTarget(w, contentType, objectPK)
	if !ok {
		return
	}

	comments, err := h.Repository.ListForTarget(h.DB, t)
	if err != nil {
		slog.Error("list comments", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	httpx.JSON(w, toDTOs(comments), http.StatusOK)
}

// Create handles POST /{contentType}/{objectPk}/. The body is sanitized
// before validation: the rules apply to what would be stored.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	contentType, objectPK := pathTarget(r)

	root, _ := permissions.Policies()
	if !root.CanCreateComment(identity, contentType, objectPK) {
		httpx.Error(w, "Permission denied", http.StatusForbidden)
		return
	}

	t, ok := h.resolveTarget(w, contentType, objectPK)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	body := h.Sanitizer.Clean(req.Comment)
	if body == "" {
		httpx.Error(w, "Comment text is required", http.StatusBadRequest)
		return
	}
	if len(body) > MaxBodyLength {
		httpx.Error(w, "Comment text is too long", http.StatusBadRequest)
		return
	}

	c := Comment{
		ContentType: t.ContentType,
		ObjectPK:    t.ObjectPK,
		UserID:      identity.UserID,
		UserName:    identity.Username,
		ParentID:    req.ParentID,
		Body:        body,
		Active:      true,
	}
	if err := h.Repository.Create(h.DB, &c); err != nil {
		if errors.Is(err, ErrInvalidParent) {
			httpx.Error(w, "Bad parent", http.StatusNotFound)
			return
		}
		slog.Error("create comment", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	httpx.JSON(w, toDTO(c), http.StatusCreated)
}

// Get handles GET /{contentType}/{objectPk}/{commentId}/.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	contentType, objectPK := pathTarget(r)
	commentID := pathCommentID(r)

	_, detail := permissions.Policies()
	if !detail.CanGetComment(identity, contentType, objectPK, commentID) {
		httpx.Error(w, "Permission denied", http.StatusForbidden)
		return
	}
	if _, ok := h.resolveTarget(w, contentType, objectPK); !ok {
		return
	}

	c, ok := h.fetchActive(w, commentID)
	if !ok {
		return
	}
	httpx.JSON(w, toDTO(*c), http.StatusOK)
}

// Update handles PUT /{contentType}/{objectPk}/{commentId}/. Schema
// validation runs on the raw body; the no-op branch runs on the
// sanitized text.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	contentType, objectPK := pathTarget(r)
	commentID := pathCommentID(r)

	_, detail := permissions.Policies()
	if !detail.CanUpdateComment(identity, contentType, objectPK, commentID) {
		httpx.Error(w, "Permission denied", http.StatusForbidden)
		return
	}
	if _, ok := h.resolveTarget(w, contentType, objectPK); !ok {
		return
	}
	if _, ok := h.fetchActive(w, commentID); !ok {
		return
	}

	var req UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Comment == nil {
		httpx.Error(w, "Comment text is required", http.StatusBadRequest)
		return
	}
	if len(*req.Comment) > MaxBodyLength {
		httpx.Error(w, "Comment text is too long", http.StatusBadRequest)
		return
	}

	body := h.Sanitizer.Clean(*req.Comment)
	if body == "" {
		// A body that sanitizes to nothing means "do not modify".
		w.WriteHeader(http.StatusNotModified)
		return
	}

	c, err := h.Repository.UpdateBody(h.DB, commentID, body)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, "Comment not found", http.StatusNotFound)
			return
		}
		slog.Error("update comment", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	httpx.JSON(w, toDTO(*c), http.StatusOK)
}

// Delete handles DELETE /{contentType}/{objectPk}/{commentId}/.
// Authorization comes from the delete predicate; the comment is then
// deactivated in place.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	contentType, objectPK := pathTarget(r)
	commentID := pathCommentID(r)

	_, detail := permissions.Policies()
	if !detail.CanDeleteComment(identity, contentType, objectPK, commentID) {
		httpx.Error(w, "Permission denied", http.StatusForbidden)
		return
	}
	if _, ok := h.resolveTarget(w, contentType, objectPK); !ok {
		return
	}
	if _, ok := h.fetchActive(w, commentID); !ok {
		return
	}

	if err := h.Repository.Deactivate(h.DB, commentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, "Comment not found", http.StatusNotFound)
			return
		}
		slog.Error("deactivate comment", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// callerIdentity extracts the authenticated identity, answering 401 when
// the middleware did not run.
func callerIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.Error(w, "Not authenticated", http.StatusUnauthorized)
		return auth.Identity{}, false
	}
	return identity, true
}

// pathTarget reads the content type and object pk path variables. The
// route pattern restricts the pk to digits but not to range; out-of-range
// values map to 0, which no row ever has, so they fall through to 404.
func pathTarget(r *http.Request) (string, uint) {
	vars := mux.Vars(r)
	pk, err := strconv.ParseUint(vars["objectPk"], 10, 32)
	if err != nil {
		pk = 0
	}
	return vars["contentType"], uint(pk)
}

func pathCommentID(r *http.Request) uint {
	id, err := strconv.ParseUint(mux.Vars(r)["commentId"], 10, 32)
	if err != nil {
		id = 0
	}
	return uint(id)
}

// resolveTarget maps the path pair to a target, writing the error
// response itself when that fails.
func (h *Handler) resolveTarget(w http.ResponseWriter, contentType string, objectPK uint) (target.Target, bool) {
	t, err := h.Targets.Resolve(h.DB, contentType, objectPK)
	if errors.Is(err, target.ErrNotFound) {
		httpx.Error(w, "Bad content type or object id", http.StatusNotFound)
		return target.Target{}, false
	}
	if err != nil {
		slog.Error("resolve target", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return target.Target{}, false
	}
	return t, true
}

// fetchActive loads one active comment, writing the error response
// itself when that fails.
func (h *Handler) fetchActive(w http.ResponseWriter, id uint) (*Comment, bool) {
	c, err := h.Repository.GetActive(h.DB, id)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, "Comment not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		slog.Error("fetch comment", "error", err)
		httpx.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return c, true
}
