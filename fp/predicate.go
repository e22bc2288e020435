package fp

// Predicate tests a single value. Predicates combine with And, Or, Xor and
// Negate without wrapping them in new literals at the call site.
type Predicate[T any] func(T) bool

// Test evaluates the predicate.
func (p Predicate[T]) Test(v T) bool {
	return p(v)
}

// And is true when both predicates hold. other is skipped when p fails.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or is true when either predicate holds. other is skipped when p holds.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Xor is true when exactly one predicate holds.
func (p Predicate[T]) Xor(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) != other(v)
	}
}

// Negate inverts the predicate.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// Always accepts everything.
func Always[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Never rejects everything.
func Never[T any]() Predicate[T] {
	return func(T) bool { return false }
}
