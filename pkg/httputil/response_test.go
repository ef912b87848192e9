package httputil

import (
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON with correct content type", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		WriteJSON(rec, http.StatusOK, map[string]string{"foo": "bar"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var result map[string]string
		err := stdjson.Unmarshal(rec.Body.Bytes(), &result)
		require.NoError(t, err)
		assert.Equal(t, "bar", result["foo"])
	})

	t.Run("handles nil data", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		WriteJSON(rec, http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("integer-keyed maps become string keys", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		WriteJSON(rec, http.StatusOK, map[int]string{1: "one", 2: "two"})

		var result map[string]string
		err := stdjson.Unmarshal(rec.Body.Bytes(), &result)
		require.NoError(t, err)
		assert.Equal(t, "one", result["1"])
	})
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "invalid_input", "title is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result map[string]string
	err := stdjson.Unmarshal(rec.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "invalid_input", result["error"])
	assert.Equal(t, "title is required", result["message"])
}

func TestConvenienceWriters(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteCreated(rec, map[string]int{"id": 3})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("no content", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteNoContent(rec)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteNotFound(rec, "not_found", "book not found")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteInternalError(rec, "store_error", "operation failed")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
