package verify

import (
	"fmt"

	"github.com/abdul-hamid-achik/verity/packages/mapdiff"
)

// MapSubject wraps a map value. The map is never mutated; every check
// reads it and either returns silently or routes a Failure to the
// strategy.
type MapSubject[K comparable, V any] struct {
	strategy FailureStrategy
	actual   map[K]V
}

// IsEqualTo fails if the wrapped map is not equal, entry for entry, to
// other. When other is a map of the same type, the failure message
// enumerates the entries other has that the subject is missing, the
// extra entries the subject has, and the keys whose values differ, in
// that order.
func (s *MapSubject[K, V]) IsEqualTo(other any) {
	expected, ok := other.(map[K]V)
	if !ok {
		s.failComparing("is equal to", other)
		return
	}
	diff := mapdiff.Diff(expected, s.actual)
	if diff.Empty() {
		return
	}
	msg := "The subject"
	if len(diff.OnlyLeft) > 0 {
		msg += " is missing the following entries: " + mapdiff.FormatEntries(diff.OnlyLeft)
		if len(diff.OnlyRight) > 0 || len(diff.Differing) > 0 {
			msg += " and"
		}
	}
	if len(diff.OnlyRight) > 0 {
		msg += " has the following extra entries: " + mapdiff.FormatEntries(diff.OnlyRight)
		if len(diff.Differing) > 0 {
			msg += " and"
		}
	}
	if len(diff.Differing) > 0 {
		msg += " has the following different entries: " + mapdiff.FormatPairs(diff.Differing)
	}
	s.strategy.Fail(&Failure{
		Check:    "is equal to",
		Actual:   s.actual,
		Expected: other,
		Message: fmt.Sprintf("Not true that <%s> is equal to <%s>. %s",
			mapdiff.FormatEntries(s.actual), mapdiff.FormatEntries(expected), msg),
	})
}

// IsEmpty fails if the map has any entries.
func (s *MapSubject[K, V]) IsEmpty() {
	if len(s.actual) != 0 {
		s.fail("is empty")
	}
}

// IsNotEmpty fails if the map has no entries.
func (s *MapSubject[K, V]) IsNotEmpty() {
	if len(s.actual) == 0 {
		s.fail("is not empty")
	}
}

// HasSize fails if the map's entry count differs from expectedSize.
// A negative expectedSize panics before the map is inspected.
func (s *MapSubject[K, V]) HasSize(expectedSize int) {
	if expectedSize < 0 {
		panic(fmt.Sprintf("expectedSize(%d) must be >= 0", expectedSize))
	}
	if len(s.actual) != expectedSize {
		s.failWithBadResults("has a size of", expectedSize, "is", len(s.actual))
	}
}

// ContainsKey fails if the map does not contain key.
func (s *MapSubject[K, V]) ContainsKey(key K) {
	if _, ok := s.actual[key]; !ok {
		s.failComparing("contains key", key)
	}
}

// DoesNotContainKey fails if the map contains key.
func (s *MapSubject[K, V]) DoesNotContainKey(key K) {
	if _, ok := s.actual[key]; ok {
		s.failComparing("does not contain key", key)
	}
}

// ContainsEntry fails if the map does not contain exactly the given
// key=value pair.
func (s *MapSubject[K, V]) ContainsEntry(key K, value V) {
	if !s.hasEntry(key, value) {
		s.failComparing("contains entry", entry{key, value})
	}
}

// DoesNotContainEntry fails if the map contains exactly the given
// key=value pair.
func (s *MapSubject[K, V]) DoesNotContainEntry(key K, value V) {
	if s.hasEntry(key, value) {
		s.failComparing("does not contain entry", entry{key, value})
	}
}

func (s *MapSubject[K, V]) hasEntry(key K, value V) bool {
	got, ok := s.actual[key]
	return ok && valueEqual(got, value)
}

// entry renders a key-value pair as "k=v" in failure messages.
type entry struct {
	key, value any
}

func (e entry) String() string {
	return fmt.Sprintf("%v=%v", e.key, e.value)
}

func (s *MapSubject[K, V]) fail(check string) {
	s.strategy.Fail(&Failure{
		Check:   check,
		Actual:  s.actual,
		Message: fmt.Sprintf("Not true that <%s> %s", mapdiff.FormatEntries(s.actual), check),
	})
}

func (s *MapSubject[K, V]) failComparing(check string, expected any) {
	s.strategy.Fail(&Failure{
		Check:    check,
		Actual:   s.actual,
		Expected: expected,
		Message: fmt.Sprintf("Not true that <%s> %s <%s>",
			mapdiff.FormatEntries(s.actual), check, formatValue(expected)),
	})
}

func (s *MapSubject[K, V]) failWithBadResults(check string, expected any, secondCheck string, got any) {
	s.strategy.Fail(&Failure{
		Check:    check,
		Actual:   s.actual,
		Expected: expected,
		Message: fmt.Sprintf("Not true that <%s> %s <%s>. It %s <%s>",
			mapdiff.FormatEntries(s.actual), check, formatValue(expected), secondCheck, formatValue(got)),
	})
}
