// Package expect gathers non-fatal check failures during a test and
// reports them as one aggregated failure when the test finishes.
//
// Usage:
//
//	func TestThing(t *testing.T) {
//		e := expect.New(t)
//		e.That(got).IsEqualTo(want)
//		e.ThatString(body).Contains("ok")
//	}
//
// Every failed check is recorded instead of failing the test on the
// spot; at cleanup time all recorded failures are composed into a
// single message, optionally with the stack trace captured at each
// failure site.
package expect
