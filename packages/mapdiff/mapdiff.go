// Package mapdiff computes the three-way difference between two maps:
// entries only in the left map, entries only in the right map, and keys
// present in both whose values differ.
package mapdiff

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Equal reports whether two values are equal. cmp.Equal panics on
// structs with unexported fields; those values fall back to
// reflect.DeepEqual.
func Equal(x, y any, opts ...cmp.Option) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(x, y)
		}
	}()
	return cmp.Equal(x, y, opts...)
}

// ValuePair holds the two values recorded for a key that is present in
// both maps with differing values.
type ValuePair[V any] struct {
	Left  V
	Right V
}

// Difference is the three-way partition of two maps.
type Difference[K comparable, V any] struct {
	OnlyLeft  map[K]V
	OnlyRight map[K]V
	Differing map[K]ValuePair[V]
}

// Empty reports whether the two maps were equal entry-for-entry.
func (d Difference[K, V]) Empty() bool {
	return len(d.OnlyLeft) == 0 && len(d.OnlyRight) == 0 && len(d.Differing) == 0
}

// Diff partitions left and right. Values are compared with Equal,
// extended by opts.
func Diff[K comparable, V any](left, right map[K]V, opts ...cmp.Option) Difference[K, V] {
	d := Difference[K, V]{
		OnlyLeft:  make(map[K]V),
		OnlyRight: make(map[K]V),
		Differing: make(map[K]ValuePair[V]),
	}
	for k, lv := range left {
		rv, ok := right[k]
		if !ok {
			d.OnlyLeft[k] = lv
			continue
		}
		if !Equal(lv, rv, opts...) {
			d.Differing[k] = ValuePair[V]{Left: lv, Right: rv}
		}
	}
	for k, rv := range right {
		if _, ok := left[k]; !ok {
			d.OnlyRight[k] = rv
		}
	}
	return d
}

// FormatEntries renders a map as "{k1=v1, k2=v2}" with entries sorted
// by formatted key. Map iteration order is random; failure messages
// must be stable.
func FormatEntries[K comparable, V any](m map[K]V) string {
	entries := make([]string, 0, len(m))
	for k, v := range m {
		entries = append(entries, fmt.Sprintf("%v=%v", k, v))
	}
	sort.Strings(entries)
	return "{" + strings.Join(entries, ", ") + "}"
}

// FormatPairs renders differing entries as "{k=(left, right)}" with
// entries sorted by formatted key.
func FormatPairs[K comparable, V any](m map[K]ValuePair[V]) string {
	entries := make([]string, 0, len(m))
	for k, p := range m {
		entries = append(entries, fmt.Sprintf("%v=(%v, %v)", k, p.Left, p.Right))
	}
	sort.Strings(entries)
	return "{" + strings.Join(entries, ", ") + "}"
}
