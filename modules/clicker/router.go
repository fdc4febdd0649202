package clicker

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/passgame/handler"
)

type sessionRequest struct {
	Session uuid.UUID `json:"-"`
}

type multiplierRequest struct {
	Session uuid.UUID `json:"-"`
	Value   int64     `json:"value"`
}

type toggleRequest struct {
	Session uuid.UUID `json:"-"`
	Key     string    `json:"-"`
}

type sessionResponse struct {
	Session uuid.UUID `json:"session"`
	State   State     `json:"state"`
}

// RouterOption configures Router.
type RouterOption func(*routerConfig)

type routerConfig struct {
	clickMiddlewares []func(http.Handler) http.Handler
}

// WithClickMiddleware wraps only the click endpoint, typically with a rate
// limiter keyed by session.
func WithClickMiddleware(mw ...func(http.Handler) http.Handler) RouterOption {
	return func(c *routerConfig) {
		c.clickMiddlewares = append(c.clickMiddlewares, mw...)
	}
}

// Router exposes the click counter over HTTP:
//
//	POST /                                  start a session
//	GET  /{session}                         current state
//	POST /{session}/click                   one click
//	PUT  /{session}/multiplier              {"value": 3}
//	POST /{session}/power-ups/{key}/toggle  flip a power-up
func Router(svc *Service, errorHandler handler.ErrorHandler[handler.Context], opts ...RouterOption) chi.Router {
	var cfg routerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()

	r.Post("/", handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			id, st, err := svc.NewSession(ctx)
			if err != nil {
				return handler.JSONError(err)
			}
			return handler.JSON(sessionResponse{Session: id, State: st}, handler.WithJSONStatus(http.StatusCreated))
		},
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))

	r.Route("/{session}", func(r chi.Router) {
		r.Get("/", handler.Wrap(
			func(ctx handler.Context, req sessionRequest) handler.Response {
				return stateResponse(req.Session)(svc.State(ctx, req.Session))
			},
			handler.WithBinders[handler.Context, sessionRequest](handler.PathParams(func(r *http.Request, req *sessionRequest) error {
				return parseSession(r, &req.Session)
			})),
			handler.WithErrorHandler[handler.Context, sessionRequest](errorHandler),
		))

		r.With(cfg.clickMiddlewares...).Post("/click", handler.Wrap(
			func(ctx handler.Context, req sessionRequest) handler.Response {
				return stateResponse(req.Session)(svc.Increment(ctx, req.Session))
			},
			handler.WithBinders[handler.Context, sessionRequest](handler.PathParams(func(r *http.Request, req *sessionRequest) error {
				return parseSession(r, &req.Session)
			})),
			handler.WithErrorHandler[handler.Context, sessionRequest](errorHandler),
		))

		r.Put("/multiplier", handler.Wrap(
			func(ctx handler.Context, req multiplierRequest) handler.Response {
				return stateResponse(req.Session)(svc.ChangeMultiplier(ctx, req.Session, req.Value))
			},
			handler.WithBinders[handler.Context, multiplierRequest](
				handler.JSONBody(),
				handler.PathParams(func(r *http.Request, req *multiplierRequest) error {
					return parseSession(r, &req.Session)
				}),
			),
			handler.WithErrorHandler[handler.Context, multiplierRequest](errorHandler),
		))

		r.Post("/power-ups/{key}/toggle", handler.Wrap(
			func(ctx handler.Context, req toggleRequest) handler.Response {
				return stateResponse(req.Session)(svc.TogglePowerUp(ctx, req.Session, req.Key))
			},
			handler.WithBinders[handler.Context, toggleRequest](handler.PathParams(func(r *http.Request, req *toggleRequest) error {
				req.Key = chi.URLParam(r, "key")
				return parseSession(r, &req.Session)
			})),
			handler.WithErrorHandler[handler.Context, toggleRequest](errorHandler),
		))
	})

	return r
}

func parseSession(r *http.Request, dst *uuid.UUID) error {
	id, err := uuid.Parse(chi.URLParam(r, "session"))
	if err != nil {
		return fmt.Errorf("%w: %w", handler.ErrBadRequest, ErrInvalidSession)
	}
	*dst = id
	return nil
}

func stateResponse(session uuid.UUID) func(State, error) handler.Response {
	return func(st State, err error) handler.Response {
		switch {
		case err == nil:
			return handler.JSON(sessionResponse{Session: session, State: st})
		case errors.Is(err, ErrUnknownPowerUp):
			return handler.JSONError(handler.ErrNotFound, handler.WithJSONErrorMessage(err.Error()))
		case errors.Is(err, ErrInvalidMultiplier):
			return handler.JSONError(handler.ErrUnprocessableEntity, handler.WithJSONErrorMessage(err.Error()))
		}
		return handler.JSONError(err)
	}
}

// SessionKey returns the raw session path parameter. It suits
// ratelimiter.Composite for per-session click limits.
func SessionKey(r *http.Request) string {
	return chi.URLParam(r, "session")
}
