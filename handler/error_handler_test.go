package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgame/handler"
	"github.com/dmitrymomot/passgame/pkg/environment"
	"github.com/dmitrymomot/passgame/pkg/requestid"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         environment.Environment
		err         error
		wantStatus  int
		wantLevel   string
		wantMessage string
	}{
		{
			name:        "client error logs warn",
			env:         environment.Production,
			err:         handler.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantLevel:   "WARN",
			wantMessage: "not_found",
		},
		{
			name:        "server error hidden in production",
			env:         environment.Production,
			err:         errors.New("db exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantLevel:   "ERROR",
			wantMessage: "Internal Server Error",
		},
		{
			name:        "server error shown in development",
			env:         environment.Development,
			err:         errors.New("db exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantLevel:   "ERROR",
			wantMessage: "db exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			eh := handler.NewErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))

			r := httptest.NewRequest(http.MethodGet, "/x", nil)
			ctx := environment.WithContext(requestid.WithContext(r.Context(), "req-1"), tt.env)
			w := httptest.NewRecorder()
			eh(handler.NewContext(w, r.WithContext(ctx)), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body handler.JSONResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMessage, body.Error.Message)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, "/x", entry["path"])
		})
	}
}
