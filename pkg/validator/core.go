package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Code categorises a validation failure.
type Code string

const (
	CodeInvalidType   Code = "invalid_type"
	CodeTooShort      Code = "too_short"
	CodeTooLong       Code = "too_long"
	CodeInvalidFormat Code = "invalid_format"
	CodeRefineFailed  Code = "refine_failed"
)

// TypeString is the only expected type tag produced by this package.
const TypeString = "string"

// ValidationError represents a single failed check.
type ValidationError struct {
	Code         Code   `json:"code"`
	Message      string `json:"message"`
	ExpectedType string `json:"expected_type"`
	Path         string `json:"path"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether any error was produced under the given path.
func (ve ValidationErrors) Has(path string) bool {
	for _, err := range ve {
		if err.Path == path {
			return true
		}
	}
	return false
}

// HasCode reports whether any error carries the given code.
func (ve ValidationErrors) HasCode(code Code) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

// Get returns the messages recorded under the given path, in order.
func (ve ValidationErrors) Get(path string) []string {
	var messages []string
	for _, err := range ve {
		if err.Path == path {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(path string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Path == path {
			errs = append(errs, err)
		}
	}
	return errs
}

// Codes returns the error codes in evaluation order.
func (ve ValidationErrors) Codes() []Code {
	codes := make([]Code, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

// Paths returns the distinct paths in first-seen order.
func (ve ValidationErrors) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Path] {
			paths = append(paths, err.Path)
			seen[err.Path] = true
		}
	}
	return paths
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// WithPath returns a copy of the errors with every Path replaced by path.
func (ve ValidationErrors) WithPath(path string) ValidationErrors {
	if ve == nil {
		return nil
	}
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		err.Path = path
		out[i] = err
	}
	return out
}

// Result is the outcome of evaluating a schema.
// Errors is non-empty if and only if Valid is false.
type Result[T any] struct {
	Valid  bool             `json:"valid"`
	Value  T                `json:"value"`
	Errors ValidationErrors `json:"errors,omitempty"`
}

func valid[T any](v T) Result[T] {
	return Result[T]{Valid: true, Value: v}
}

func invalid[T any](errs ValidationErrors) Result[T] {
	return Result[T]{Errors: errs}
}

// Err returns the accumulated errors as an error, or nil for a valid result.
func (r Result[T]) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
