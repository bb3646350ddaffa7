package verify

import "fmt"

// Failure describes a single failed check.
type Failure struct {
	Check    string // predicate name, e.g. "is equal to"
	Actual   any
	Expected any
	Message  string // fully rendered failure message
}

// FailureStrategy decides what happens to a failed check: raise it
// immediately, collect it for later, or drop it.
type FailureStrategy interface {
	Fail(f *Failure)
}

// Reporter is the subset of testing.TB needed to report a failure
// immediately. *testing.T and *testing.B satisfy it.
type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
}

// ReportStrategy fails the surrounding test as soon as a check fails.
type ReportStrategy struct {
	r Reporter
}

// Report returns a strategy that reports failures through r.
func Report(r Reporter) *ReportStrategy {
	return &ReportStrategy{r: r}
}

func (s *ReportStrategy) Fail(f *Failure) {
	s.r.Helper()
	s.r.Errorf("%s", f.Message)
}

// Verifier is the entry point for building subjects. Subjects created
// from the same Verifier share its failure strategy.
type Verifier struct {
	strategy FailureStrategy
}

// New returns a Verifier that fails immediately through r.
func New(r Reporter) *Verifier {
	return With(Report(r))
}

// With returns a Verifier using the given failure strategy.
func With(s FailureStrategy) *Verifier {
	if s == nil {
		panic("verify: nil FailureStrategy")
	}
	return &Verifier{strategy: s}
}

// Strategy returns the Verifier's failure strategy.
func (v *Verifier) Strategy() FailureStrategy {
	return v.strategy
}

// Fail routes an ad-hoc failure through the strategy. It is used by
// subject constructors that can fail before any check runs, such as
// document parsing.
func (v *Verifier) Fail(format string, args ...any) {
	v.strategy.Fail(&Failure{Message: fmt.Sprintf(format, args...)})
}

// That wraps an arbitrary value.
func (v *Verifier) That(actual any) *Subject {
	return &Subject{strategy: v.strategy, actual: actual}
}

// ThatString wraps a string value.
func (v *Verifier) ThatString(actual string) *StringSubject {
	return &StringSubject{Subject: v.That(actual), actual: actual}
}

// ThatMap wraps a map value. It is a package function because methods
// cannot introduce type parameters.
func ThatMap[K comparable, V any](v *Verifier, actual map[K]V) *MapSubject[K, V] {
	return &MapSubject[K, V]{strategy: v.strategy, actual: actual}
}
