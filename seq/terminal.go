package seq

import (
	"errors"
	"strings"

	"github.com/charmingruby/lambdalab/option"
)

// ErrEmpty reports that a terminal needing at least one element got none.
var ErrEmpty = errors.New("seq: empty sequence")

// ToSlice exhausts the iterator and collects its values.
func ToSlice[T any](it Iterator[T]) []T {
	result := []T{}
	for {
		v, ok := it.Next()
		if !ok {
			return result
		}
		result = append(result, v)
	}
}

// ToSet collects the values into a set.
func ToSet[T comparable](it Iterator[T]) map[T]struct{} {
	set := make(map[T]struct{})
	ForEach(it, func(v T) { set[v] = struct{}{} })
	return set
}

// Join concatenates the strings with sep between them.
func Join(it Iterator[string], sep string) string {
	var b strings.Builder
	first := true
	ForEach(it, func(s string) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(s)
	})
	return b.String()
}

// ForEach calls fn for every value.
func ForEach[T any](it Iterator[T], fn func(T)) {
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// Count drains the iterator and returns how many values it produced.
func Count[T any](it Iterator[T]) int {
	n := 0
	ForEach(it, func(T) { n++ })
	return n
}

// Fold reduces from left to right starting at seed. An empty iterator
// returns seed.
func Fold[T any, A any](it Iterator[T], seed A, fn func(acc A, v T) A) A {
	acc := seed
	ForEach(it, func(v T) { acc = fn(acc, v) })
	return acc
}

// Reduce combines the values pairwise using the first one as the seed. It
// returns None when the iterator is empty.
func Reduce[T any](it Iterator[T], fn func(acc, v T) T) option.Option[T] {
	acc, ok := it.Next()
	if !ok {
		return option.None[T]()
	}
	return option.Some(Fold(it, acc, fn))
}

// First returns the first value, pulling nothing beyond it.
func First[T any](it Iterator[T]) option.Option[T] {
	v, ok := it.Next()
	return option.FromOk(v, ok)
}

// Max returns the greatest value by compare. Among equal maxima the first
// one wins. It returns None when the iterator is empty.
func Max[T any](it Iterator[T], compare func(a, b T) int) option.Option[T] {
	return Reduce(it, func(best, v T) T {
		if compare(v, best) > 0 {
			return v
		}
		return best
	})
}

// Min returns the smallest value by compare. Among equal minima the first one
// wins. It returns None when the iterator is empty.
func Min[T any](it Iterator[T], compare func(a, b T) int) option.Option[T] {
	return Reduce(it, func(best, v T) T {
		if compare(v, best) < 0 {
			return v
		}
		return best
	})
}

// AnyMatch reports whether some value satisfies predicate, stopping at the
// first match.
func AnyMatch[T any](it Iterator[T], predicate func(T) bool) bool {
	return First(Filter(it, predicate)).IsSome()
}

// AllMatch reports whether every value satisfies predicate. It is true for an
// empty iterator.
func AllMatch[T any](it Iterator[T], predicate func(T) bool) bool {
	return !AnyMatch(it, func(v T) bool { return !predicate(v) })
}

// NoneMatch reports whether no value satisfies predicate.
func NoneMatch[T any](it Iterator[T], predicate func(T) bool) bool {
	return !AnyMatch(it, predicate)
}

// GroupBy groups values by the key returned from key, keeping encounter order
// within each group.
func GroupBy[T any, K comparable](it Iterator[T], key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	ForEach(it, func(v T) {
		k := key(v)
		groups[k] = append(groups[k], v)
	})
	return groups
}

// CountBy groups values by key and counts each group.
func CountBy[T any, K comparable](it Iterator[T], key func(T) K) map[K]int {
	counts := make(map[K]int)
	ForEach(it, func(v T) { counts[key(v)]++ })
	return counts
}
