// Package seq implements lazy, pull-based pipelines.
//
// A pipeline is described first and run once: sources and stages only wrap
// the upstream iterator, and nothing executes until a terminal (ToSlice,
// ForEach, Fold, Summarize, ...) starts pulling. Each element travels through
// every stage before the next one is pulled, so a Take at the end of a chain
// stops all upstream work as soon as the bound is reached.
//
// Example:
//
//	names := seq.ToSlice(seq.Take(seq.Map(
//		seq.Filter(seq.FromSlice(tracks), isLong),
//		trackName,
//	), 2))
package seq

import "iter"

// Iterator is a lazy, pull-based iterator. The zero value is empty. An
// Iterator is single-use and not safe for concurrent pulls.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// All adapts the iterator for range-over-func loops.
func (it Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromFunc builds an iterator from a raw pull function.
func FromFunc[T any](next func() (T, bool)) Iterator[T] {
	return Iterator[T]{next: next}
}

// Empty returns an iterator that yields nothing.
func Empty[T any]() Iterator[T] {
	return Iterator[T]{}
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

// Of is FromSlice for literal arguments.
func Of[T any](values ...T) Iterator[T] {
	return FromSlice(values)
}

// Generate returns an unbounded iterator whose elements come from calling
// fn once per pull. fn receives no state; pair it with Take.
func Generate[T any](fn func() T) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			return fn(), true
		},
	}
}

// Iterate returns the unbounded sequence seed, next(seed), next(next(seed)),
// ... The successor is only applied when the following element is pulled.
func Iterate[T any](seed T, next func(T) T) Iterator[T] {
	current := seed
	started := false
	return Iterator[T]{
		next: func() (T, bool) {
			if started {
				current = next(current)
			}
			started = true
			return current, true
		},
	}
}

// Range yields start, start+1, ..., end-1.
func Range(start, end int) Iterator[int] {
	current := start
	return Iterator[int]{
		next: func() (int, bool) {
			if current >= end {
				return 0, false
			}
			v := current
			current++
			return v, true
		},
	}
}

// Repeat yields value forever.
func Repeat[T any](value T) Iterator[T] {
	return Generate(func() T { return value })
}

// Concat yields every element of each iterator in turn.
func Concat[T any](its ...Iterator[T]) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			for idx < len(its) {
				if v, ok := its[idx].Next(); ok {
					return v, true
				}
				idx++
			}
			var zero T
			return zero, false
		},
	}
}
