package phase

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/dmitrymomot/passgame/pkg/validator"
)

// RefinementFactory builds a predicate from the optional catalog argument.
type RefinementFactory func(arg string) (validator.Predicate, error)

// Refinements maps catalog refinement names to their factories.
type Refinements map[string]RefinementFactory

// DefaultRefinements returns the built-in named refinements:
//
//	digit_sum           arg: integer, digits must add up to it
//	has_even_digit      no arg
//	has_odd_digit       no arg
//	has_upper           no arg
//	contains            arg: substring
//	equals              arg: exact value
//	no_repeating_chars  arg: integer, longest allowed run
func DefaultRefinements() Refinements {
	return Refinements{
		"digit_sum": func(arg string) (validator.Predicate, error) {
			n, err := intArg("digit_sum", arg)
			if err != nil {
				return nil, err
			}
			return validator.DigitSumEquals(n), nil
		},
		"has_even_digit": noArg(validator.HasEvenDigit),
		"has_odd_digit":  noArg(validator.HasOddDigit),
		"has_upper":      noArg(validator.HasUpper),
		"contains": func(arg string) (validator.Predicate, error) {
			if arg == "" {
				return nil, fmt.Errorf("%w: contains needs a substring", ErrInvalidRefinementArg)
			}
			return validator.Contains(arg), nil
		},
		"equals": func(arg string) (validator.Predicate, error) {
			return validator.Equals(arg), nil
		},
		"no_repeating_chars": func(arg string) (validator.Predicate, error) {
			n, err := intArg("no_repeating_chars", arg)
			if err != nil {
				return nil, err
			}
			return validator.NoRepeatingChars(n), nil
		},
	}
}

// With returns a copy of r extended with extra, which wins on name clashes.
func (r Refinements) With(extra Refinements) Refinements {
	out := make(Refinements, len(r)+len(extra))
	maps.Copy(out, r)
	maps.Copy(out, extra)
	return out
}

// Build resolves a named refinement.
func (r Refinements) Build(name, arg string) (validator.Predicate, error) {
	factory, ok := r[name]
	if !ok || factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRefinement, name)
	}
	return factory(arg)
}

func noArg(fn func() validator.Predicate) RefinementFactory {
	return func(string) (validator.Predicate, error) {
		return fn(), nil
	}
}

func intArg(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidRefinementArg, name, arg)
	}
	return n, nil
}
