// Package demo is the registry of runnable demonstrations. Each demo builds a
// small literal collection, runs it through a short pipeline and prints what
// came out. The printed text is for reading, not parsing.
package demo

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/charmingruby/lambdalab/seq"
)

// ErrUnknownDemo is returned for a name that is not registered.
var ErrUnknownDemo = errors.New("demo: unknown demo")

// Env is what a demo may touch while it runs.
type Env struct {
	// Out receives the demo output. It may be written to from goroutines the
	// demo leaves running, so it must tolerate concurrent writes.
	Out  io.Writer
	Rand *rand.Rand
	Log  zerolog.Logger
}

// NewEnv wraps w for concurrent use and seeds the random source. A zero seed
// uses the current time.
func NewEnv(w io.Writer, seed uint64, log zerolog.Logger) Env {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return Env{
		Out:  zerolog.SyncWriter(w),
		Rand: rand.New(rand.NewPCG(seed, seed>>1|1)),
		Log:  log,
	}
}

// Demo is one named demonstration.
type Demo struct {
	Name    string
	Summary string
	Run     func(Env) error
}

// All lists the demos in registration order.
func All() []Demo {
	return append([]Demo(nil), registry...)
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, error) {
	found, ok := seq.First(seq.Filter(seq.FromSlice(registry), func(d Demo) bool {
		return d.Name == name
	})).Get()
	if !ok {
		return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	return found, nil
}

// Run executes the named demos in order, each under a heading. It stops at
// the first unknown name or failing demo. With no names it runs them all.
func Run(env Env, names ...string) error {
	demos := registry
	if len(names) > 0 {
		demos = make([]Demo, 0, len(names))
		for _, name := range names {
			d, err := Lookup(name)
			if err != nil {
				return err
			}
			demos = append(demos, d)
		}
	}
	for _, d := range demos {
		env.Log.Debug().Str("demo", d.Name).Msg("running demo")
		if _, err := fmt.Fprintf(env.Out, "== %s\n", d.Name); err != nil {
			return err
		}
		if err := d.Run(env); err != nil {
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	return nil
}

// printer remembers the first write error so demos can print freely and
// report failure once.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(env Env) *printer {
	return &printer{w: env.Out}
}

func (p *printer) Println(a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, a...)
	}
}

func (p *printer) Printf(format string, a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, a...)
	}
}

// Line prints a single string. It exists so a method value can be handed to
// seq.ForEach directly.
func (p *printer) Line(s string) {
	p.Println(s)
}
