package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareInjectsIdentity(t *testing.T) {
	secret := []byte("secret")
	var got Identity
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = IdentityFrom(r.Context())
		called = true
	})

	tok, err := GenerateToken(secret, 9, "bob", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	Middleware(secret)(next).ServeHTTP(w, req)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), got.UserID)
	assert.Equal(t, "bob", got.Username)
	assert.False(t, got.IsAdmin)
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	secret := []byte("secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a valid token")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcg=="},
		{"garbage token", "Bearer nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			Middleware(secret)(next).ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestMiddlewareAllowsPreflight(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	w := httptest.NewRecorder()
	Middleware([]byte("secret"))(next).ServeHTTP(w, req)

	assert.True(t, called)
}

func TestIdentityFromEmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	_, ok := IdentityFrom(req.Context())
	assert.False(t, ok)
}
