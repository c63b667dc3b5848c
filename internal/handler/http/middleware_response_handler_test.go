package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusBadRequest)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusBadRequest, w.status)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte(`{"status":"success"}`))
	require.NoError(t, err)

	assert.Equal(t, 20, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
