package validator

import (
	"errors"
	"regexp"
)

// ErrInvalidPattern is returned when a pattern expression does not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// CompilePattern compiles expr for use with Regex, wrapping failures with
// ErrInvalidPattern.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return re, nil
}
