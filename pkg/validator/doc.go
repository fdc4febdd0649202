// Package validator provides a small declarative schema for validating
// strings against an ordered set of rules.
//
// A StringSchema is assembled once with a fluent builder and then evaluated
// many times. Evaluation runs every rule, never stopping at the first
// failure, so callers can present all violated rules at once (for example as
// a checklist).
//
// # Architecture
//
// Core building blocks:
//   - StringSchema      – min/max length bounds, ordered regex patterns and
//     ordered refinement predicates, each with its own message
//   - Evaluate          – read-only evaluation of a schema over any value
//   - Result            – valid/invalid outcome carrying the value or errors
//   - ValidationError   – one failure tagged with a Code and a Path
//   - ValidationErrors  – slice type that implements the error interface
//   - ParseAll          – batch evaluation that relabels errors per group
//
// Bounds overwrite: calling Min twice keeps the second bound and message.
// Patterns and refinements accumulate: every Regex or Refine call appends.
//
// # Usage
//
//	schema := validator.String().
//	    Min(3).
//	    Max(10).
//	    Regex(regexp.MustCompile(`^[a-zA-Z0-9]+$`)).
//	    Refine(validator.HasOddDigit(), "needs an odd digit")
//
//	res := schema.Parse("ab")
//	if !res.Valid {
//	    for _, e := range res.Errors {
//	        fmt.Println(e.Code, e.Message) // too_short Must be at least 3 characters
//	    }
//	}
//
// # Error Handling
//
// Failures are data: Evaluate never returns a Go error. Result.Err exposes
// the failures as ValidationErrors, which works with errors.As through
// ExtractValidationErrors and IsValidationError.
//
// Refinement predicates must be total. A panicking predicate is not
// recovered and propagates to the caller.
//
// # Concurrency
//
// Evaluate only reads the schema, so one schema may be evaluated from many
// goroutines as long as no builder method runs at the same time.
package validator
