package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/passgame/pkg/environment"
	"github.com/dmitrymomot/passgame/pkg/logger"
	"github.com/dmitrymomot/passgame/pkg/requestid"
)

// NewErrorHandler returns an ErrorHandler that logs the error with request
// details and renders it as a JSON error body. Client errors log at warn,
// server errors at error. Outside production, server error bodies carry the
// underlying error text. Configure it once in main and pass it to modules.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := StatusCode(err)

		level := slog.LevelError
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		var opts []JSONOption
		if status >= http.StatusInternalServerError && !environment.IsProduction(r.Context()) {
			opts = append(opts, WithJSONErrorMessage(err.Error()))
		}

		if renderErr := JSONError(err, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
