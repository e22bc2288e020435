// Package task starts background work without waiting for it.
//
// Go and Spawn are fire-and-forget: the caller gets control back immediately,
// nothing joins the goroutine, and there is no ordering guarantee between the
// spawned work and whatever the caller does next. Callers that need the
// outcome must arrange their own signalling.
//
// Example:
//
//	task.Go(task.RunnableFunc(func() { fmt.Println("In Go") }))
package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/charmingruby/lambdalab/internal/logger"
)

// ErrPanicked wraps a value recovered from a panicking spawned task.
var ErrPanicked = errors.New("task: panicked")

// Runnable is a unit of work with no input and no result.
type Runnable interface {
	Run()
}

// RunnableFunc lets an ordinary function value satisfy Runnable.
type RunnableFunc func()

// Run calls f.
func (f RunnableFunc) Run() {
	f()
}

// Go runs r on a new goroutine and returns at once. A panic in r is recovered
// and logged so it cannot take the process down. The returned id only tags
// the log lines of this run.
func Go(r Runnable) uuid.UUID {
	id := uuid.New()
	log := logger.WithComponent("task")
	go func() {
		defer func() {
			if p := recover(); p != nil {
				log.Error().Str("task_id", id.String()).Interface("panic", p).Msg("runnable panicked")
			}
		}()
		r.Run()
		log.Debug().Str("task_id", id.String()).Msg("runnable finished")
	}()
	log.Debug().Str("task_id", id.String()).Msg("runnable spawned")
	return id
}

// Task is a context-aware computation producing a T.
type Task[T any] func(ctx context.Context) (T, error)

// From wraps fn so it fails fast when ctx is already done.
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Pure lifts a value into a Task that respects cancellation.
func Pure[T any](value T) Task[T] {
	return From(func(context.Context) (T, error) {
		return value, nil
	})
}

// Map transforms the Task result when it succeeds.
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(val), nil
	}
}

// Spawn runs t in the background with ctx and logs how it ended. The value is
// discarded; onDone, when non-nil, receives the error (nil on success, an
// ErrPanicked wrap when t panicked) from the spawned goroutine.
func Spawn[T any](ctx context.Context, t Task[T], onDone func(error)) uuid.UUID {
	return Go(RunnableFunc(func() {
		var err error
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%w: %v", ErrPanicked, p)
			}
			logOutcome(err)
			if onDone != nil {
				onDone(err)
			}
		}()
		_, err = t(ctx)
	}))
}

func logOutcome(err error) {
	log := logger.WithComponent("task")
	if err != nil {
		log.Warn().Err(err).Msg("task failed")
		return
	}
	log.Debug().Msg("task succeeded")
}
