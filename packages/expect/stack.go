package expect

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Frames inside these packages are assertion plumbing, not failure
// sites; they are dropped so the failing test's own frame leads the
// rendered trace. The trailing dot keeps "_test" packages visible.
var internalPrefixes = []string{
	"github.com/abdul-hamid-achik/verity/packages/verify.",
	"github.com/abdul-hamid-achik/verity/packages/mapdiff.",
	"github.com/abdul-hamid-achik/verity/packages/expect.",
	"github.com/abdul-hamid-achik/verity/packages/document.",
	"github.com/abdul-hamid-achik/verity/packages/snapshot.",
}

// captureStack records the caller stack at a failure site. Skips
// runtime.Callers, captureStack, and the strategy's Fail; deeper
// library frames are filtered out at render time.
func captureStack() []uintptr {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

func internalFrame(function string) bool {
	for _, p := range internalPrefixes {
		if strings.HasPrefix(function, p) {
			return true
		}
	}
	return false
}

// formatStack renders captured program counters as indented
// "at function (file:line)" lines, stopping at the testing framework.
func formatStack(pcs []uintptr) string {
	var b strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "testing.") ||
			strings.HasPrefix(frame.Function, "runtime.") {
			break
		}
		if !internalFrame(frame.Function) {
			fmt.Fprintf(&b, "       at %s (%s:%d)\n",
				frame.Function, filepath.Base(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}
