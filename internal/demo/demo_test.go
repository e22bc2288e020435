package demo_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lambdalab/internal/demo"
)

// lockedBuffer lets the test read output that spawned goroutines may still be
// writing.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func run(t *testing.T, names ...string) string {
	t.Helper()
	var out lockedBuffer
	require.NoError(t, demo.Run(demo.NewEnv(&out, 1, zerolog.Nop()), names...))
	return out.String()
}

func TestRegistryNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range demo.All() {
		assert.False(t, seen[d.Name], "duplicate demo %s", d.Name)
		seen[d.Name] = true
		assert.NotEmpty(t, d.Summary)
		assert.NotNil(t, d.Run)
	}
	assert.Len(t, seen, 22)
}

func TestLookupUnknown(t *testing.T) {
	_, err := demo.Lookup("nope")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)

	err = demo.Run(demo.NewEnv(&bytes.Buffer{}, 1, zerolog.Nop()), "iterate", "nope")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}

func TestRunAllSucceeds(t *testing.T) {
	out := run(t)
	for _, d := range demo.All() {
		assert.Contains(t, out, "== "+d.Name+"\n")
	}
}

func TestOutputs(t *testing.T) {
	cases := []struct {
		name string
		want []string
	}{
		{"join-countries", []string{"USA, JAPAN, FRANCE, GERMANY, ITALY, U.K., CANADA", "usa, japan, france, germany, italy, u.k., canada"}},
		{"reduce-seed", []string{"16"}},
		{"vat-total", []string{"Total : 1680\nTotal : 1680"}},
		{"count", []string{"4"}},
		{"group-count", []string{"map[Date and Time API:1 Default Method:1 Lambdas:2 Stream API:2]"}},
		{"distinct", []string{"Square Without duplicates : [81 100 9 16 49]"}},
		{"summary-stats", []string{"Some(29)", "Some(2)", ": 129", ": 12.9"}},
		{"predicate", []string{"is: Java", "is: JDK8"}},
		{"long-tracks", []string{"[Blue Train Moment's Notice]"}},
		{"longest-track", []string{"Track{name=Blue Train, length=643}"}},
		{"functional-interface", []string{"abc"}},
		{"default-method", []string{"Welcome to Blue Train", "Welcome to Interludes", "Welcome to Giant Steps"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, tc.name)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestPredicateFunctionSections(t *testing.T) {
	out := run(t, "predicate-function")
	sections := strings.Split(out, "Print no language :\n")
	require.Len(t, sections, 2)
	assert.True(t, strings.HasPrefix(sections[1], "Print language whose length greater than 4:\nScala\nHaskell\n"))
}

func TestGenerateRandomIsSeeded(t *testing.T) {
	first := run(t, "generate-random")
	second := run(t, "generate-random")
	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 6)
}

func TestSortByLength(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(run(t, "sort-by-length")), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "welcome to the go playground.", lines[1])
	assert.Equal(t, "hello, world!", lines[3])
	assert.Equal(t, "Hello, World!", lines[4])
}

func TestThreadDoesNotWait(t *testing.T) {
	var out lockedBuffer
	require.NoError(t, demo.Run(demo.NewEnv(&out, 1, zerolog.Nop()), "thread"))
	assert.Contains(t, out.String(), "spawned two goroutines")
	assert.Eventually(t, func() bool {
		s := out.String()
		return strings.Contains(s, "named Runnable") && strings.Contains(s, "function value")
	}, time.Second, 5*time.Millisecond)
}
