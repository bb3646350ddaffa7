// Package verify provides fluent assertion subjects for Go tests.
//
// Supported subjects:
//   - Values (verify.That): equality, nil checks
//   - Strings (verify.ThatString): contains, prefix/suffix, regex, length
//   - Maps (verify.ThatMap): equality with three-way diff messages,
//     size, key and entry presence
//
// Failed checks are routed through a pluggable FailureStrategy: the
// default ReportStrategy fails the test immediately, while the expect
// package gathers failures non-fatally and aggregates them at the end
// of the test.
package verify
