package validator

import (
	"strings"
	"unicode"
)

// Ready-made predicates for Refine. All of them are total over any string.

// DigitSumEquals passes when the ASCII digits of the value add up to sum.
func DigitSumEquals(sum int) Predicate {
	return func(value string) bool {
		return digitSum(value) == sum
	}
}

// HasEvenDigit passes when the value contains at least one of 0, 2, 4, 6, 8.
func HasEvenDigit() Predicate {
	return func(value string) bool {
		return strings.ContainsAny(value, "02468")
	}
}

// HasOddDigit passes when the value contains at least one of 1, 3, 5, 7, 9.
func HasOddDigit() Predicate {
	return func(value string) bool {
		return strings.ContainsAny(value, "13579")
	}
}

// Contains passes when substr occurs in the value.
func Contains(substr string) Predicate {
	return func(value string) bool {
		return strings.Contains(value, substr)
	}
}

// Equals passes only for exactly want.
func Equals(want string) Predicate {
	return func(value string) bool {
		return value == want
	}
}

// HasUpper passes when the value contains an upper-case letter in any script.
func HasUpper() Predicate {
	return func(value string) bool {
		return strings.IndexFunc(value, unicode.IsUpper) >= 0
	}
}

// NoRepeatingChars fails when any rune repeats more than maxRepeats times in a row.
func NoRepeatingChars(maxRepeats int) Predicate {
	return func(value string) bool {
		var prev rune
		count := 0
		for i, r := range value {
			if i > 0 && r == prev {
				count++
			} else {
				count = 1
			}
			if count > maxRepeats {
				return false
			}
			prev = r
		}
		return true
	}
}

func digitSum(value string) int {
	sum := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}
