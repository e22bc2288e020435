// Package validated accumulates every error found while checking a value
// instead of stopping at the first one. The catalog uses it so a malformed
// album reports all of its bad tracks at once.
package validated

import (
	"errors"

	"github.com/charmingruby/lambdalab/result"
)

// Validated wraps either a valid value or the list of problems found.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Pair holds the two values combined by Zip2.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Valid wraps value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid records errs. With no errs the result is still invalid.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	if len(errs) == 0 {
		return Validated[E, T]{errors: []E{}}
	}
	return Validated[E, T]{errors: append([]E(nil), errs...)}
}

// IsValid reports whether no errors were recorded.
func (v Validated[E, T]) IsValid() bool {
	return v.errors == nil
}

// Errors returns a copy of the recorded errors.
func (v Validated[E, T]) Errors() []E {
	return append([]E{}, v.errors...)
}

// Value returns the wrapped value. It is the zero value when invalid.
func (v Validated[E, T]) Value() T {
	return v.value
}

// Map transforms a valid value.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E](fn(v.value))
}

// Zip2 combines two values, accumulating errors from both sides.
func Zip2[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, Pair[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](Pair[A, B]{First: a.value, Second: b.value})
	}
	return Validated[E, Pair[A, B]]{errors: concat(a.errors, b.errors)}
}

// Traverse validates every item and collects all errors in input order.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	values := make([]B, 0, len(items))
	var errs []E
	for _, item := range items {
		res := fn(item)
		if !res.IsValid() {
			errs = concat(errs, res.errors)
			continue
		}
		values = append(values, res.value)
	}
	if errs != nil {
		return Validated[E, []B]{errors: errs}
	}
	return Valid[E](values)
}

// ToResult joins the recorded errors into one with errors.Join.
func ToResult[T any](v Validated[error, T]) result.Result[T] {
	if v.IsValid() {
		return result.Ok(v.value)
	}
	return result.Err[T](errors.Join(v.errors...))
}

func concat[E any](dst, src []E) []E {
	if dst == nil && src == nil {
		return nil
	}
	out := make([]E, 0, len(dst)+len(src))
	out = append(out, dst...)
	return append(out, src...)
}
