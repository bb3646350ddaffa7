package expect

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/verity/packages/verify"
)

// Reporter is the subset of testing.TB needed to register end-of-test
// aggregation and report the aggregated failure. *testing.T satisfies
// it; tests that need to inspect the aggregated message can supply
// their own implementation.
type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
	Cleanup(f func())
}

// Record is one gathered failure together with the call stack captured
// at the failure site.
type Record struct {
	Failure *verify.Failure
	stack   []uintptr
}

// StackTrace renders the record's captured stack, one frame per line.
func (r *Record) StackTrace() string {
	return formatStack(r.stack)
}

// Expect builds subjects whose failures are gathered instead of
// failing the test immediately. It is not safe for concurrent use.
type Expect struct {
	*verify.Verifier
	g *gatherer
}

// Option configures an Expect.
type Option func(*gatherer)

// WithStackTrace controls whether the aggregated failure message
// includes the stack trace captured at each failure site.
func WithStackTrace(show bool) Option {
	return func(g *gatherer) {
		g.showStackTrace = show
	}
}

// WithConsole additionally renders gathered failures through the given
// formatter when the test finishes.
func WithConsole(f *ConsoleFormatter) Option {
	return func(g *gatherer) {
		g.console = f
	}
}

// New returns an Expect that reports all gathered failures through r
// when the test finishes. A test body that panics or fails through
// other means is left alone; only checks routed through the returned
// Expect are gathered.
func New(r Reporter, opts ...Option) *Expect {
	g := &gatherer{}
	for _, opt := range opts {
		opt(g)
	}
	e := &Expect{Verifier: verify.With(g), g: g}
	r.Cleanup(func() {
		e.finish(r)
	})
	return e
}

// Failures returns the failures gathered so far.
func (e *Expect) Failures() []*Record {
	return e.g.failures
}

func (e *Expect) finish(r Reporter) {
	if len(e.g.failures) == 0 {
		return
	}
	if e.g.console != nil {
		e.g.console.FormatFailures(e.g.failures)
	}
	r.Helper()
	r.Errorf("%s", e.g.compose())
}

// gatherer implements verify.FailureStrategy by recording failures
// non-fatally, each with the stack captured at the failure site.
type gatherer struct {
	failures       []*Record
	showStackTrace bool
	console        *ConsoleFormatter
}

func (g *gatherer) Fail(f *verify.Failure) {
	g.failures = append(g.failures, &Record{
		Failure: f,
		stack:   captureStack(),
	})
}

func (g *gatherer) compose() string {
	var b strings.Builder
	if len(g.failures) == 1 {
		b.WriteString("1 expectation failed:\n")
	} else {
		fmt.Fprintf(&b, "%d expectations failed:\n", len(g.failures))
	}
	for i, rec := range g.failures {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, rec.Failure.Message)
		if g.showStackTrace {
			b.WriteString(rec.StackTrace())
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
