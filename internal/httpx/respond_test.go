package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, "boom", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "boom"}`, w.Body.String())
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, map[string]int{"n": 3}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n": 3}`, w.Body.String())
}
