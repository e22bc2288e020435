package fp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/lambdalab/fp"
)

type lengthConverter struct{}

func (lengthConverter) Convert(s string) int { return len(s) }

func TestTransformerSatisfiesConverter(t *testing.T) {
	var inline fp.Transformer[string, int] = func(s string) int { return len(s) * 2 }
	assert.Equal(t, 6, fp.To[string, int](inline, "abc"))
	assert.Equal(t, 3, fp.To[string, int](lengthConverter{}, "abc"))

	pointFree := fp.Transformer[string, string](strings.ToUpper)
	assert.Equal(t, "ABC", pointFree.Convert("abc"))
}

func TestTransformerPanicsPropagate(t *testing.T) {
	var boom fp.Transformer[int, int] = func(int) int { panic("boom") }
	assert.PanicsWithValue(t, "boom", func() { fp.To[int, int](boom, 1) })
}

func TestAndThen(t *testing.T) {
	trim := fp.Transformer[string, string](strings.TrimSpace)
	length := fp.Transformer[string, int](func(s string) int { return len(s) })
	assert.Equal(t, 2, fp.AndThen(trim, length)("  go "))
}

func TestPipeComposeCurry(t *testing.T) {
	add := func(a, b int) int { return a + b }
	assert.Equal(t, 5, fp.Curry(add)(2)(3))

	double := func(i int) int { return i * 2 }
	inc := func(i int) int { return i + 1 }
	assert.Equal(t, 8, fp.Compose(double, inc)(3))
	assert.Equal(t, 7, fp.Pipe(3, double, inc))
	assert.Equal(t, 3, fp.Pipe(3))
	assert.Equal(t, "x", fp.Constant("x")())
	assert.Equal(t, 4, fp.Identity(4))
}

func TestPredicateCombinators(t *testing.T) {
	startsWithJ := fp.Predicate[string](func(s string) bool { return strings.HasPrefix(s, "J") })
	fourLetters := fp.Predicate[string](func(s string) bool { return len(s) == 4 })

	both := startsWithJ.And(fourLetters)
	either := startsWithJ.Or(fourLetters)
	exactlyOne := startsWithJ.Xor(fourLetters)

	cases := []struct {
		name                      string
		both, either, exactlyOne bool
	}{
		{"Java", true, true, false},
		{"JDK8", true, true, false},
		{"Scala", false, false, false},
		{"Jython", false, true, true},
		{"Rust", false, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.both, both.Test(tc.name))
			assert.Equal(t, tc.either, either.Test(tc.name))
			assert.Equal(t, tc.exactlyOne, exactlyOne.Test(tc.name))
			assert.Equal(t, !tc.both, both.Negate().Test(tc.name))
		})
	}
	assert.True(t, fp.Always[int]()(0))
	assert.False(t, fp.Never[int]()(0))
}

func TestAndShortCircuits(t *testing.T) {
	calls := 0
	counted := fp.Predicate[int](func(int) bool { calls++; return true })
	fp.Never[int]().And(counted).Test(1)
	fp.Always[int]().Or(counted).Test(1)
	assert.Zero(t, calls)
}
