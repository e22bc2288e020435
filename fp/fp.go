// Package fp provides single-method capabilities that plain function values
// satisfy, plus small composition helpers.
//
// Example:
//
//	var name fp.Transformer[catalog.Track, string] = func(t catalog.Track) string {
//		return t.Name
//	}
//	fmt.Println(fp.To(name, track))
package fp

// Converter is a capability with exactly one operation: turn an F into a T.
type Converter[F any, T any] interface {
	Convert(F) T
}

// Transformer is the function form of Converter. Any func(F) T literal, or a
// named function such as strings.ToUpper, converts to a Transformer and so
// satisfies Converter without a named implementing type.
type Transformer[F any, T any] func(F) T

// Convert calls t. A panic inside t reaches the caller unchanged.
func (t Transformer[F, T]) Convert(f F) T {
	return t(f)
}

// To runs the capability on f.
//
// Example:
//
//	upper := fp.To(fp.Transformer[string, string](strings.ToUpper), "abc")
func To[F any, T any](c Converter[F, T], f F) T {
	return c.Convert(f)
}

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	greeting := Constant("hello world")
//	seq.Generate(greeting)
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies fns to value from left to right.
//
// Example:
//
//	withVAT := Pipe(100.0,
//		func(c float64) float64 { return c * 1.12 },
//		math.Round,
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}

// Compose composes functions right to left: Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			value = fns[i](value)
		}
		return value
	}
}

// AndThen chains two transformers of different types.
func AndThen[A any, B any, C any](first Transformer[A, B], second Transformer[B, C]) Transformer[A, C] {
	return func(a A) C {
		return second(first(a))
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addTen := Curry(add)(10)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}
