// Package result pairs a value with an error so pipeline outcomes can be
// passed around and combined before the caller decides how to fail.
//
// Example:
//
//	res := result.FromTuple(catalog.LongestTrack(albums))
//	name := result.Map(res, func(t catalog.Track) string { return t.Name })
package result

import "errors"

// ErrNil replaces a nil error handed to Err.
var ErrNil = errors.New("result: nil error")

// Result is either Ok(value) or Err(err).
type Result[T any] struct {
	value T
	err   error
}

// Ok builds a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err builds a failed Result. A nil err is replaced with ErrNil so a failure
// can never look like success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNil
	}
	return Result[T]{err: err}
}

// FromTuple adapts a (value, error) return.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value on success, otherwise fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// Map transforms a successful value.
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// FlatMap chains a Result-returning step, keeping the first error.
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// Fold collapses the Result into U.
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Tap runs fn on success and returns r unchanged.
func Tap[T any](r Result[T], fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// Sequence turns []Result[T] into Result[[]T], stopping at the first error.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}
