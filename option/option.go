// Package option models a value that may be absent. Pipeline terminals that
// must produce exactly one element (max, min, seedless reduce, first) return
// an Option instead of panicking on empty input.
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/lambdalab/result"
)

// ErrMissing is used by ToResult when the caller supplies no error.
var ErrMissing = errors.New("option: missing value")

// Option holds either one value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk adapts the comma-ok idiom (map lookups, type assertions).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the value, or fallback when empty.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc is GetOrElse with a lazily computed fallback.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// OrElse returns o when present, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// Filter drops the value when predicate rejects it.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToResult converts the Option into a Result. An empty Option becomes an Err
// carrying err, or ErrMissing when err is nil.
//
// Example:
//
//	longest := seq.Max(tracks, byLength).ToResult(seq.ErrEmpty)
func (o Option[T]) ToResult(err error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	if err == nil {
		err = ErrMissing
	}
	return result.Err[T](err)
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to the value when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains an Option-returning function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Fold collapses the Option into U.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Tap runs fn on the value when present and returns o unchanged.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}
