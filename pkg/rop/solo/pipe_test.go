package solo

import (
	"strconv"
	"testing"

	"github.com/ib-77/rop4/pkg/rop"
)

func TestPipe_AllStepsSucceed(t *testing.T) {
	t.Parallel()
	out := Pipe(rop.Ok[int, string](1),
		func(v int) rop.Result[int, string] { return rop.Ok[int, string](v + 1) },
		func(v int) rop.Result[int, string] { return rop.Ok[int, string](v * 10) },
	)
	if !out.IsOk() || out.Value() != 20 {
		t.Fatalf("expected ok 20, got: ok=%v, val=%v, err=%q", out.IsOk(), out.Value(), out.Err())
	}
}

func TestPipe_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	invocations := 0
	out := Pipe(rop.Ok[int, string](1),
		func(v int) rop.Result[int, string] { invocations++; return rop.Ok[int, string](v + 1) },
		func(int) rop.Result[int, string] { invocations++; return rop.Err[int]("middle failed") },
		func(v int) rop.Result[int, string] { invocations++; return rop.Ok[int, string](v) },
	)
	if !out.IsErr() || out.Err() != "middle failed" {
		t.Fatalf("expected err 'middle failed', got: err=%v, payload=%q", out.IsErr(), out.Err())
	}
	if invocations != 2 {
		t.Fatalf("expected 2 step invocations, got %d", invocations)
	}
}

func TestPipe_FailedInputRunsNothing(t *testing.T) {
	t.Parallel()
	invocations := 0
	out := Pipe(rop.Err[int]("upstream"),
		func(v int) rop.Result[int, string] { invocations++; return rop.Ok[int, string](v) },
	)
	if !out.IsErr() || out.Err() != "upstream" || invocations != 0 {
		t.Fatalf("expected untouched failure, got: err=%q, invocations=%d", out.Err(), invocations)
	}
}

func TestPipe_NoSteps(t *testing.T) {
	t.Parallel()
	input := rop.Ok[int, string](7)
	if out := Pipe(input); out != input {
		t.Fatalf("expected input returned unchanged, got %v", out)
	}
}

func TestPipe_MatchesAndThenFold(t *testing.T) {
	t.Parallel()
	double := func(v int) rop.Result[int, string] { return rop.Ok[int, string](v * 2) }
	reject := func(int) rop.Result[int, string] { return rop.Err[int]("nope") }

	for _, steps := range [][]func(int) rop.Result[int, string]{
		{double, double},
		{double, reject, double},
		{reject},
	} {
		viaPipe := Pipe(rop.Ok[int, string](3), steps...)
		viaFold := rop.Ok[int, string](3)
		for _, step := range steps {
			viaFold = AndThen(viaFold, step)
		}
		if viaPipe != viaFold {
			t.Fatalf("pipe and andThen fold disagree: %v vs %v", viaPipe, viaFold)
		}
	}
}

func TestPipe2_TypeChangingSteps(t *testing.T) {
	t.Parallel()
	out := Pipe2(rop.Ok[string, string]("21"),
		func(s string) rop.Result[int, string] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return rop.Err[int]("not a number: " + s)
			}
			return rop.Ok[int, string](n)
		},
		func(n int) rop.Result[bool, string] { return rop.Ok[bool, string](n >= 18) },
	)
	if !out.IsOk() || out.Value() != true {
		t.Fatalf("expected ok true, got: ok=%v, val=%v, err=%q", out.IsOk(), out.Value(), out.Err())
	}
}

func TestPipe2_FirstStepFailureSkipsSecond(t *testing.T) {
	t.Parallel()
	called := false
	out := Pipe2(rop.Ok[string, string]("x"),
		func(string) rop.Result[int, string] { return rop.Err[int]("parse error") },
		func(n int) rop.Result[bool, string] { called = true; return rop.Ok[bool, string](n > 0) },
	)
	if !out.IsErr() || out.Err() != "parse error" || called {
		t.Fatalf("expected 'parse error' without second step, got: err=%q, called=%v", out.Err(), called)
	}
}

func TestPipe3_TypeChangingSteps(t *testing.T) {
	t.Parallel()
	out := Pipe3(rop.Ok[int, string](5),
		func(v int) rop.Result[string, string] { return rop.Ok[string, string](strconv.Itoa(v)) },
		func(s string) rop.Result[int, string] { return rop.Ok[int, string](len(s)) },
		func(n int) rop.Result[bool, string] { return rop.Ok[bool, string](n == 1) },
	)
	if !out.IsOk() || out.Value() != true {
		t.Fatalf("expected ok true, got: ok=%v, val=%v", out.IsOk(), out.Value())
	}
}
