package result_test

import (
	"errors"
	"testing"

	"github.com/charmingruby/lambdalab/result"
)

func TestErrNeverLooksLikeSuccess(t *testing.T) {
	res := result.Err[int](nil)
	if res.IsOk() {
		t.Fatalf("nil error must still be a failure")
	}
	if !errors.Is(res.Err(), result.ErrNil) {
		t.Fatalf("expected ErrNil, got %v", res.Err())
	}
}

func TestFromTupleAndUnwrap(t *testing.T) {
	value, err := result.FromTuple(10, nil).Unwrap()
	if err != nil || value != 10 {
		t.Fatalf("unexpected tuple back %v %v", value, err)
	}
	boom := errors.New("boom")
	if result.FromTuple(3, boom).UnwrapOr(-1) != -1 {
		t.Fatalf("expected fallback on error")
	}
}

func TestSequenceStopsAtFirstError(t *testing.T) {
	first := errors.New("first")
	res := result.Sequence([]result.Result[int]{
		result.Ok(1),
		result.Err[int](first),
		result.Err[int](errors.New("second")),
	})
	if !errors.Is(res.Err(), first) {
		t.Fatalf("expected first error, got %v", res.Err())
	}
	ok := result.Sequence([]result.Result[int]{result.Ok(1), result.Ok(2)})
	if values := ok.UnwrapOr(nil); len(values) != 2 || values[1] != 2 {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestFoldAndTap(t *testing.T) {
	seen := 0
	res := result.Tap(result.Ok(4), func(v int) { seen = v })
	if seen != 4 {
		t.Fatalf("tap did not run")
	}
	msg := result.Fold(res, func(error) string { return "failed" }, func(int) string { return "ok" })
	if msg != "ok" {
		t.Fatalf("unexpected fold %q", msg)
	}
}
