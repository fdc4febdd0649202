package passwordgame

import (
	"errors"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/passgame/handler"
)

type evaluateRequest struct {
	Phase    int    `json:"phase"`
	Password string `json:"password"`
}

type validateRequest struct {
	Groups []Group `json:"groups"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

// Router exposes the game over HTTP:
//
//	GET  /phases    list of phases
//	POST /evaluate  {"phase": 3, "password": "..."} -> Progress
//	POST /validate  {"groups": [{"phase": 2, "value": "..."}]}
//
// A failed batch answers 422 with the merged errors in error.details.
func Router(svc *Service, errorHandler handler.ErrorHandler[handler.Context]) chi.Router {
	r := chi.NewRouter()

	r.Get("/phases", handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			return handler.JSON(svc.Phases())
		},
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))

	r.Post("/evaluate", handler.Wrap(
		func(ctx handler.Context, req evaluateRequest) handler.Response {
			return handler.JSON(svc.Evaluate(ctx, req.Phase, req.Password))
		},
		handler.WithBinders[handler.Context, evaluateRequest](handler.JSONBody()),
		handler.WithErrorHandler[handler.Context, evaluateRequest](errorHandler),
	))

	r.Post("/validate", handler.Wrap(
		func(ctx handler.Context, req validateRequest) handler.Response {
			res, err := svc.Validate(ctx, req.Groups)
			switch {
			case errors.Is(err, ErrUnknownPhase), errors.Is(err, ErrNoGroups):
				return handler.JSONError(handler.ErrUnprocessableEntity, handler.WithJSONErrorMessage(err.Error()))
			case err != nil:
				return handler.JSONError(err)
			case !res.Valid:
				return handler.JSONError(res.Err())
			}
			return handler.JSON(validateResponse{Valid: true})
		},
		handler.WithBinders[handler.Context, validateRequest](handler.JSONBody()),
		handler.WithErrorHandler[handler.Context, validateRequest](errorHandler),
	))

	return r
}
