package verify

import (
	"fmt"
	"regexp"
	"strings"
)

// StringSubject wraps a string value. It inherits the value checks from
// Subject and adds string-specific predicates.
type StringSubject struct {
	*Subject
	actual string
}

// Contains fails if the wrapped string does not contain sub.
func (s *StringSubject) Contains(sub string) {
	if !strings.Contains(s.actual, sub) {
		s.failComparing("contains", sub)
	}
}

// DoesNotContain fails if the wrapped string contains sub.
func (s *StringSubject) DoesNotContain(sub string) {
	if strings.Contains(s.actual, sub) {
		s.failComparing("does not contain", sub)
	}
}

// StartsWith fails if the wrapped string does not start with prefix.
func (s *StringSubject) StartsWith(prefix string) {
	if !strings.HasPrefix(s.actual, prefix) {
		s.failComparing("starts with", prefix)
	}
}

// EndsWith fails if the wrapped string does not end with suffix.
func (s *StringSubject) EndsWith(suffix string) {
	if !strings.HasSuffix(s.actual, suffix) {
		s.failComparing("ends with", suffix)
	}
}

// Matches fails if the wrapped string does not match the regular
// expression pattern. An invalid pattern is a programming error and
// panics before the check runs.
func (s *StringSubject) Matches(pattern string) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("invalid regex pattern %q: %v", pattern, err))
	}
	if !re.MatchString(s.actual) {
		s.failComparing("matches", pattern)
	}
}

// IsEmpty fails if the wrapped string is nonempty.
func (s *StringSubject) IsEmpty() {
	if s.actual != "" {
		s.fail("is empty")
	}
}

// HasLength fails if the wrapped string's length differs from n.
// A negative n panics before the check runs.
func (s *StringSubject) HasLength(n int) {
	if n < 0 {
		panic(fmt.Sprintf("expectedLength(%d) must be >= 0", n))
	}
	if len(s.actual) != n {
		s.failWithBadResults("has a length of", n, "is", len(s.actual))
	}
}
