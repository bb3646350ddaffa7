package verify

import (
	"fmt"

	"github.com/abdul-hamid-achik/verity/packages/mapdiff"
)

// Subject wraps a single value under test. It is short-lived: one
// subject per assertion expression, discarded after the chained calls.
// All checks are read-only against the wrapped value.
type Subject struct {
	strategy FailureStrategy
	actual   any
}

// IsEqualTo fails if the wrapped value is not equal to other.
func (s *Subject) IsEqualTo(other any) {
	if !valueEqual(s.actual, other) {
		s.failComparing("is equal to", other)
	}
}

// IsNotEqualTo fails if the wrapped value is equal to other.
func (s *Subject) IsNotEqualTo(other any) {
	if valueEqual(s.actual, other) {
		s.failComparing("is not equal to", other)
	}
}

// IsNil fails if the wrapped value is non-nil.
func (s *Subject) IsNil() {
	if s.actual != nil {
		s.fail("is nil")
	}
}

// IsNotNil fails if the wrapped value is nil.
func (s *Subject) IsNotNil() {
	if s.actual == nil {
		s.fail("is not nil")
	}
}

func (s *Subject) fail(check string) {
	s.strategy.Fail(&Failure{
		Check:   check,
		Actual:  s.actual,
		Message: fmt.Sprintf("Not true that <%s> %s", formatValue(s.actual), check),
	})
}

func (s *Subject) failComparing(check string, expected any) {
	s.strategy.Fail(&Failure{
		Check:    check,
		Actual:   s.actual,
		Expected: expected,
		Message: fmt.Sprintf("Not true that <%s> %s <%s>",
			formatValue(s.actual), check, formatValue(expected)),
	})
}

// failWithBadResults reports a check whose failure is best explained by
// the result that was obtained instead, e.g.
// "Not true that <m> has a size of <2>. It is <3>".
func (s *Subject) failWithBadResults(check string, expected any, secondCheck string, got any) {
	s.strategy.Fail(&Failure{
		Check:    check,
		Actual:   s.actual,
		Expected: expected,
		Message: fmt.Sprintf("Not true that <%s> %s <%s>. It %s <%s>",
			formatValue(s.actual), check, formatValue(expected), secondCheck, formatValue(got)),
	})
}

// formatValue renders a value for inclusion in a failure message.
// Strings are quoted so empty and whitespace-only values stay visible.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// valueEqual compares two values, treating numerically equal values of
// different numeric types as equal. JSON decoding produces float64 for
// every number, so a subject built from a document would otherwise
// never equal an int literal.
func valueEqual(a, b any) bool {
	if mapdiff.Equal(a, b) {
		return true
	}
	an, aok := toFloat64(a)
	bn, bok := toFloat64(b)
	return aok && bok && an == bn
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
