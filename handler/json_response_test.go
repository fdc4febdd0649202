package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgame/handler"
	"github.com/dmitrymomot/passgame/pkg/validator"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("simple data", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := handler.JSON(map[string]string{"id": "123"}).Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, handler.JSONResponse{Data: map[string]any{"id": "123"}}, got)
	})

	t.Run("with status and meta", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSON("ok",
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"version": "1.0"}),
		)
		require.NoError(t, resp.Render(w, r))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "ok", got.Data)
		assert.Equal(t, map[string]any{"version": "1.0"}, got.Meta)
	})

	t.Run("error value renders as error body", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, handler.JSON(handler.ErrNotFound).Render(w, r))
		assert.Equal(t, http.StatusNotFound, w.Code)

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.Error)
		assert.Equal(t, "not_found", got.Error.Code)
		assert.Nil(t, got.Data)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	verrs := validator.String().Min(6).Parse("abc").Err()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation errors", err: verrs, wantStatus: http.StatusUnprocessableEntity, wantCode: "validation_error"},
		{name: "wrapped validation errors", err: fmt.Errorf("signup: %w", verrs), wantStatus: http.StatusUnprocessableEntity, wantCode: "validation_error"},
		{name: "http error", err: handler.ErrBadRequest, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "unsupported media type", err: fmt.Errorf("%w: text/plain", handler.ErrUnsupportedMediaType), wantStatus: http.StatusUnsupportedMediaType, wantCode: "unsupported_media_type"},
		{name: "bad json", err: fmt.Errorf("%w: eof", handler.ErrFailedToParseJSON), wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "unknown error", err: errors.New("db password is hunter2"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
		{name: "nil error", err: nil, wantStatus: http.StatusInternalServerError, wantCode: "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			require.NoError(t, handler.JSONError(tt.err).Render(w, r))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus, handler.StatusCode(tt.err))

			var got handler.JSONResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.NotNil(t, got.Error)
			assert.Equal(t, tt.wantCode, got.Error.Code)
			assert.NotContains(t, got.Error.Message, "hunter2")
		})
	}

	t.Run("validation details are exposed", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, handler.JSONError(verrs).Render(w, r))

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Error.Details, 1)
		assert.Equal(t, validator.CodeTooShort, got.Error.Details[0].Code)
		assert.Equal(t, "string", got.Error.Details[0].ExpectedType)
	})
}
