package seq

import (
	"cmp"
	"slices"
)

// Map lazily transforms iterator values.
func Map[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, bool) {
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			return fn(v), true
		},
	}
}

// Filter keeps values satisfying predicate.
func Filter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if predicate(v) {
					return v, true
				}
			}
		},
	}
}

// FlatMap maps each value to an inner iterator and yields the inner values in
// order. An inner iterator is only created once the previous one is drained.
func FlatMap[A any, B any](it Iterator[A], fn func(A) Iterator[B]) Iterator[B] {
	inner := Empty[B]()
	return Iterator[B]{
		next: func() (B, bool) {
			for {
				if v, ok := inner.Next(); ok {
					return v, true
				}
				outer, ok := it.Next()
				if !ok {
					var zero B
					return zero, false
				}
				inner = fn(outer)
			}
		},
	}
}

// Distinct drops values equal to one already yielded. The first occurrence
// wins and order is preserved.
func Distinct[T comparable](it Iterator[T]) Iterator[T] {
	return DistinctBy(it, func(v T) T { return v })
}

// DistinctBy drops values whose key was already seen.
func DistinctBy[T any, K comparable](it Iterator[T], key func(T) K) Iterator[T] {
	seen := make(map[K]struct{})
	return Filter(it, func(v T) bool {
		k := key(v)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Take returns an iterator that yields at most n elements. Upstream is not
// pulled again once n elements were produced.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{}
	}
	count := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok {
				count = n
				return v, false
			}
			count++
			return v, true
		},
	}
}

// Drop skips the first n elements.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !skipped {
				skipped = true
				for range n {
					if _, ok := it.Next(); !ok {
						var zero T
						return zero, false
					}
				}
			}
			return it.Next()
		},
	}
}

// TakeWhile yields values until predicate first fails.
func TakeWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	done := false
	return Iterator[T]{
		next: func() (T, bool) {
			var zero T
			if done {
				return zero, false
			}
			v, ok := it.Next()
			if !ok || !predicate(v) {
				done = true
				return zero, false
			}
			return v, true
		},
	}
}

// DropWhile skips the leading values that satisfy predicate.
func DropWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	dropping := true
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					return v, false
				}
				if dropping && predicate(v) {
					continue
				}
				dropping = false
				return v, true
			}
		},
	}
}

// Peek calls fn on each value as it flows past.
func Peek[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return Map(it, func(v T) T {
		fn(v)
		return v
	})
}

// Sorted yields the upstream values ordered by compare. It is a barrier: the
// whole upstream is drained on the first pull, not before. The sort is stable.
func Sorted[T any](it Iterator[T], compare func(a, b T) int) Iterator[T] {
	var sorted Iterator[T]
	loaded := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !loaded {
				loaded = true
				values := ToSlice(it)
				slices.SortStableFunc(values, compare)
				sorted = FromSlice(values)
			}
			return sorted.Next()
		},
	}
}

// SortedNatural sorts by the natural order of T.
func SortedNatural[T cmp.Ordered](it Iterator[T]) Iterator[T] {
	return Sorted(it, cmp.Compare[T])
}

// Comparing builds a comparison that orders values by key.
//
// Example:
//
//	longestFirst := seq.Reversed(seq.Comparing(func(s string) int { return len(s) }))
func Comparing[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reversed flips a comparison.
func Reversed[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}
