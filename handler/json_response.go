package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/passgame/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                     `json:"code,omitempty"`
	Message string                     `json:"message,omitempty"`
	Details validator.ValidationErrors `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// WithJSONErrorMessage replaces the message of an error body. It has no
// effect on success responses.
func WithJSONErrorMessage(msg string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil && msg != "" {
			r.body.Error.Message = msg
		}
	}
}

// JSON creates a JSON response with options. Errors passed as v are rendered
// as error bodies.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response from an error with options
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	if err == nil {
		err = ErrInternalServerError
	}
	r.body.Error = errorToDetail(err, &r.status)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StatusCode maps an error to the HTTP status it is rendered with.
func StatusCode(err error) int {
	status := http.StatusInternalServerError
	errorToDetail(err, &status)
	return status
}

// errorToDetail converts err to an ErrorDetail and sets the matching status.
func errorToDetail(err error, status *int) *ErrorDetail {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		*status = http.StatusUnprocessableEntity
		return &ErrorDetail{
			Code:    "validation_error",
			Message: err.Error(),
			Details: verrs,
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: err.Error()}
	}

	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		*status = http.StatusUnsupportedMediaType
		return &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, ErrFailedToParseJSON), errors.Is(err, ErrMissingContentType):
		*status = http.StatusBadRequest
		return &ErrorDetail{Code: "bad_request", Message: err.Error()}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
