package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	DefaultMinMessage    = "Must be at least {min} characters"
	DefaultMaxMessage    = "Must be at most {max} characters"
	DefaultRegexMessage  = "Does not match pattern"
	DefaultRefineMessage = "Custom refinement check failed"
	InvalidTypeMessage   = "Expected string"
)

// Predicate is a caller-supplied check over a string.
// Predicates must be total: a panic propagates to the caller of Evaluate.
type Predicate func(value string) bool

type bound struct {
	set     bool
	limit   int
	message string
}

type pattern struct {
	re      *regexp.Regexp
	message string
}

type refinement struct {
	check   Predicate
	message string
}

// StringSchema describes the checks applied to a string value.
// Configure it once with the builder methods, then evaluate it any number of
// times; Evaluate never mutates it. Builder calls must not run concurrently
// with evaluation.
type StringSchema struct {
	min         bound
	max         bound
	patterns    []pattern
	refinements []refinement
}

// String starts a new, empty string schema.
func String() *StringSchema {
	return &StringSchema{}
}

// Min sets the minimum length in runes. An emoji counts once per code point,
// so "🥚" is 1 and "❤️" is 2. A later call replaces the previous bound and
// message.
func (s *StringSchema) Min(n int, message ...string) *StringSchema {
	s.min = bound{set: true, limit: n, message: pickMessage(DefaultMinMessage, message)}
	return s
}

// Max sets the maximum length in runes, counted like Min. A later call
// replaces the previous bound and message.
func (s *StringSchema) Max(n int, message ...string) *StringSchema {
	s.max = bound{set: true, limit: n, message: pickMessage(DefaultMaxMessage, message)}
	return s
}

// Regex appends a pattern that must match somewhere in the value.
// A nil pattern is ignored.
func (s *StringSchema) Regex(re *regexp.Regexp, message ...string) *StringSchema {
	if re == nil {
		return s
	}
	s.patterns = append(s.patterns, pattern{re: re, message: pickMessage(DefaultRegexMessage, message)})
	return s
}

// Refine appends a custom predicate. A nil predicate is ignored.
func (s *StringSchema) Refine(check Predicate, message ...string) *StringSchema {
	if check == nil {
		return s
	}
	s.refinements = append(s.refinements, refinement{check: check, message: pickMessage(DefaultRefineMessage, message)})
	return s
}

// Parse evaluates input against the schema. See Evaluate.
func (s *StringSchema) Parse(input any) Result[string] {
	return Evaluate(s, input)
}

// MinLength returns the configured minimum and whether one is set.
func (s *StringSchema) MinLength() (int, bool) { return s.min.limit, s.min.set }

// MaxLength returns the configured maximum and whether one is set.
func (s *StringSchema) MaxLength() (int, bool) { return s.max.limit, s.max.set }

// Rules returns the number of pattern and refinement rules.
func (s *StringSchema) Rules() (patterns, refinements int) {
	return len(s.patterns), len(s.refinements)
}

// Evaluate runs every configured check against input.
//
// Non-string input yields a single invalid_type error. Otherwise the checks
// run in a fixed order (min length, max length, patterns, refinements) and
// every failure is reported; evaluation never stops at the first one.
// A nil schema accepts any string.
func Evaluate(s *StringSchema, input any) Result[string] {
	value, ok := input.(string)
	if !ok {
		return invalid[string](ValidationErrors{newError(CodeInvalidType, InvalidTypeMessage)})
	}
	if s == nil {
		return valid(value)
	}

	var errs ValidationErrors
	length := utf8.RuneCountInString(value)

	if s.min.set && length < s.min.limit {
		errs.Add(newError(CodeTooShort, substitute(s.min.message, "{min}", s.min.limit)))
	}
	if s.max.set && length > s.max.limit {
		errs.Add(newError(CodeTooLong, substitute(s.max.message, "{max}", s.max.limit)))
	}
	for _, p := range s.patterns {
		if !p.re.MatchString(value) {
			errs.Add(newError(CodeInvalidFormat, p.message))
		}
	}
	for _, r := range s.refinements {
		if !r.check(value) {
			errs.Add(newError(CodeRefineFailed, r.message))
		}
	}

	if len(errs) > 0 {
		return invalid[string](errs)
	}
	return valid(value)
}

func newError(code Code, message string) ValidationError {
	return ValidationError{Code: code, Message: message, ExpectedType: TypeString}
}

func substitute(template, placeholder string, n int) string {
	return strings.ReplaceAll(template, placeholder, strconv.Itoa(n))
}

func pickMessage(def string, message []string) string {
	if len(message) > 0 && message[0] != "" {
		return message[0]
	}
	return def
}
