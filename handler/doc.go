// Package handler provides type-safe JSON HTTP handlers.
//
// A handler is a generic function that receives a request already bound into
// a Go struct and returns a Response. Wrap adapts it to http.HandlerFunc,
// running binders, decorators and the error handler:
//
//	type EvaluateRequest struct {
//		Phase    int    `json:"phase"`
//		Password string `json:"password"`
//	}
//
//	func evaluate(ctx handler.Context, req EvaluateRequest) handler.Response {
//		return handler.JSON(game.Evaluate(req.Phase, req.Password))
//	}
//
//	r.Post("/evaluate", handler.Wrap(evaluate,
//		handler.WithBinders[handler.Context, EvaluateRequest](handler.JSONBody()),
//		handler.WithErrorHandler[handler.Context, EvaluateRequest](errHandler),
//	))
//
// # Error Handling
//
// Errors are rendered as JSONResponse{Error: ...}. validator.ValidationErrors
// map to 422 with the individual failures in Details, HTTPError values to
// their own status, body parsing failures to 400 or 415, anything else to a
// generic 500 whose message does not leak internals.
package handler
