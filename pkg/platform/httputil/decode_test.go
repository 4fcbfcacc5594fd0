package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "verisbt/pkg/domain-errors"
)

type namedRequest struct {
	Name       string `json:"name"`
	normalized bool
}

func (r *namedRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.normalized = true
}

func (r *namedRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type coded struct {
	ID string `json:"id"`
}

func (r *coded) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "id is required")
	}
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("normalizes before validating", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"  kyc "}`))
		w := httptest.NewRecorder()

		req, ok := DecodeAndPrepare[namedRequest](w, r, logger, ctx, "r1")
		require.True(t, ok)
		assert.Equal(t, "kyc", req.Name)
		assert.True(t, req.normalized)
	})

	t.Run("invalid JSON is a bad request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{invalid`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[namedRequest](w, r, logger, ctx, "r1")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeBody(t, w).Error)
	})

	t.Run("oversized body is reported", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))
		r.Body = http.MaxBytesReader(rec, r.Body, 16)

		_, ok := DecodeJSON[namedRequest](rec, r, logger, ctx, "r1")
		assert.False(t, ok)
		assert.Equal(t, "request body too large", decodeBody(t, rec).Description)
	})

	t.Run("plain validation error becomes validation_error", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"   "}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[namedRequest](w, r, logger, ctx, "r1")
		assert.False(t, ok)
		body := decodeBody(t, w)
		assert.Equal(t, "validation_error", body.Error)
		assert.Contains(t, body.Description, "name is required")
	})

	t.Run("domain error code is preserved", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":""}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[coded](w, r, logger, ctx, "r1")
		assert.False(t, ok)
		assert.Equal(t, "bad_request", decodeBody(t, w).Error)
	})
}
