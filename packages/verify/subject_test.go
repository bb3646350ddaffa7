package verify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject_IsEqualTo(t *testing.T) {
	tests := []struct {
		name    string
		actual  any
		other   any
		message string
	}{
		{name: "equal ints", actual: 4, other: 4},
		{name: "equal strings", actual: "abc", other: "abc"},
		{name: "cross-type numeric equality", actual: int64(4), other: 4},
		{
			name:    "unequal ints",
			actual:  4,
			other:   5,
			message: "Not true that <4> is equal to <5>",
		},
		{
			name:    "unequal strings quote values",
			actual:  "abc",
			other:   "abd",
			message: `Not true that <"abc"> is equal to <"abd">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rec := newRecorded()
			v.That(tt.actual).IsEqualTo(tt.other)
			if tt.message == "" {
				assert.Empty(t, rec.failures)
			} else {
				require.Len(t, rec.failures, 1)
				assert.Equal(t, tt.message, rec.lastMessage())
			}
		})
	}
}

// Struct values with unexported fields are valid input: a failed
// comparison records a Failure, it never panics.
func TestSubject_IsEqualTo_UnexportedFields(t *testing.T) {
	type account struct {
		id    int
		owner string
	}

	t.Run("equal values pass", func(t *testing.T) {
		v, rec := newRecorded()
		v.That(account{1, "ann"}).IsEqualTo(account{1, "ann"})
		assert.Empty(t, rec.failures)
	})

	t.Run("unequal values fail without panicking", func(t *testing.T) {
		v, rec := newRecorded()
		assert.NotPanics(t, func() {
			v.That(account{1, "ann"}).IsEqualTo(account{2, "bob"})
		})
		require.Len(t, rec.failures, 1)
		assert.Equal(t, "Not true that <{1 ann}> is equal to <{2 bob}>", rec.lastMessage())
	})
}

func TestSubject_IsNotEqualTo(t *testing.T) {
	t.Run("different values pass", func(t *testing.T) {
		v, rec := newRecorded()
		v.That(4).IsNotEqualTo(5)
		assert.Empty(t, rec.failures)
	})

	t.Run("same value fails", func(t *testing.T) {
		v, rec := newRecorded()
		v.That(4).IsNotEqualTo(4)
		require.Len(t, rec.failures, 1)
		assert.Equal(t, "Not true that <4> is not equal to <4>", rec.lastMessage())
	})
}

func TestSubject_NilChecks(t *testing.T) {
	t.Run("nil passes IsNil", func(t *testing.T) {
		v, rec := newRecorded()
		v.That(nil).IsNil()
		assert.Empty(t, rec.failures)
	})

	t.Run("value fails IsNil", func(t *testing.T) {
		v, rec := newRecorded()
		v.That(4).IsNil()
		require.Len(t, rec.failures, 1)
		assert.Equal(t, "Not true that <4> is nil", rec.lastMessage())
	})

	t.Run("nil fails IsNotNil", func(t *testing.T) {
		v, rec := newRecorded()
		v.That(nil).IsNotNil()
		require.Len(t, rec.failures, 1)
		assert.Equal(t, "Not true that <<nil>> is not nil", rec.lastMessage())
	})
}

func TestStringSubject(t *testing.T) {
	tests := []struct {
		name    string
		check   func(s *StringSubject)
		message string
	}{
		{
			name:  "Contains present",
			check: func(s *StringSubject) { s.Contains("bc") },
		},
		{
			name:    "Contains absent",
			check:   func(s *StringSubject) { s.Contains("x") },
			message: `Not true that <"abc"> contains <"x">`,
		},
		{
			name:  "DoesNotContain absent",
			check: func(s *StringSubject) { s.DoesNotContain("x") },
		},
		{
			name:    "DoesNotContain present",
			check:   func(s *StringSubject) { s.DoesNotContain("ab") },
			message: `Not true that <"abc"> does not contain <"ab">`,
		},
		{
			name:  "StartsWith matching prefix",
			check: func(s *StringSubject) { s.StartsWith("ab") },
		},
		{
			name:    "StartsWith wrong prefix",
			check:   func(s *StringSubject) { s.StartsWith("bc") },
			message: `Not true that <"abc"> starts with <"bc">`,
		},
		{
			name:  "EndsWith matching suffix",
			check: func(s *StringSubject) { s.EndsWith("bc") },
		},
		{
			name:    "EndsWith wrong suffix",
			check:   func(s *StringSubject) { s.EndsWith("ab") },
			message: `Not true that <"abc"> ends with <"ab">`,
		},
		{
			name:  "Matches pattern",
			check: func(s *StringSubject) { s.Matches("^a.c$") },
		},
		{
			name:    "Matches failing pattern",
			check:   func(s *StringSubject) { s.Matches("^x") },
			message: `Not true that <"abc"> matches <"^x">`,
		},
		{
			name:  "HasLength correct",
			check: func(s *StringSubject) { s.HasLength(3) },
		},
		{
			name:    "HasLength wrong",
			check:   func(s *StringSubject) { s.HasLength(2) },
			message: `Not true that <"abc"> has a length of <2>. It is <3>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rec := newRecorded()
			tt.check(v.ThatString("abc"))
			if tt.message == "" {
				assert.Empty(t, rec.failures)
			} else {
				require.Len(t, rec.failures, 1)
				assert.Equal(t, tt.message, rec.lastMessage())
			}
		})
	}
}

func TestStringSubject_IsEmpty(t *testing.T) {
	v, rec := newRecorded()
	v.ThatString("").IsEmpty()
	assert.Empty(t, rec.failures)

	v.ThatString("abc").IsEmpty()
	require.Len(t, rec.failures, 1)
	assert.Equal(t, `Not true that <"abc"> is empty`, rec.lastMessage())
}

func TestStringSubject_InvalidArguments(t *testing.T) {
	v, _ := newRecorded()

	assert.Panics(t, func() {
		v.ThatString("abc").Matches("[unclosed")
	})
	assert.PanicsWithValue(t, "expectedLength(-2) must be >= 0", func() {
		v.ThatString("abc").HasLength(-2)
	})
}

func TestReportStrategy(t *testing.T) {
	r := &stubReporter{}
	New(r).That(4).IsEqualTo(5)

	require.Len(t, r.messages, 1)
	assert.Equal(t, "Not true that <4> is equal to <5>", r.messages[0])
	assert.Equal(t, 1, r.helper, "failures must mark the reporting frame as a helper")
}

type stubReporter struct {
	messages []string
	helper   int
}

func (r *stubReporter) Helper() { r.helper++ }

func (r *stubReporter) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}
