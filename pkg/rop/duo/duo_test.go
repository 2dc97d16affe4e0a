package duo

import (
	"testing"

	"github.com/ib-77/rop4/pkg/rop"
)

func TestZip_BothSucceed(t *testing.T) {
	t.Parallel()
	out := Zip(rop.Ok[int, string](1), rop.Ok[string, string]("a"))
	if !out.IsOk() {
		t.Fatalf("expected ok, got err %q", out.Err())
	}
	pair := out.Value()
	if pair.First != 1 || pair.Second != "a" {
		t.Fatalf("expected pair {1 a}, got %+v", pair)
	}
}

func TestZip_FirstOperandPriority(t *testing.T) {
	t.Parallel()
	out := Zip(rop.Err[int]("left broke"), rop.Err[string]("right broke"))
	if !out.IsErr() || out.Err() != "left broke" {
		t.Fatalf("expected first operand's error, got %q", out.Err())
	}
}

func TestZip_SecondFailureReported(t *testing.T) {
	t.Parallel()
	out := Zip(rop.Ok[int, string](1), rop.Err[string]("right broke"))
	if !out.IsErr() || out.Err() != "right broke" {
		t.Fatalf("expected second operand's error, got %q", out.Err())
	}
}

func TestZip_EmptyOperand(t *testing.T) {
	t.Parallel()
	var absent rop.Result[int, string]
	if out := Zip(absent, rop.Ok[string, string]("a")); !out.IsEmpty() {
		t.Fatalf("expected empty result for empty operand")
	}
}

func TestZipWith_MergesValues(t *testing.T) {
	t.Parallel()
	out := ZipWith(rop.Ok[int, string](6), rop.Ok[int, string](7), func(a, b int) int { return a * b })
	if !out.IsOk() || out.Value() != 42 {
		t.Fatalf("expected ok 42, got: ok=%v, val=%v", out.IsOk(), out.Value())
	}
}

func TestZipWith_MergeNotCalledOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	out := ZipWith(rop.Err[int]("broken"), rop.Ok[int, string](1), func(a, b int) int {
		called = true
		return 0
	})
	if !out.IsErr() || out.Err() != "broken" || called {
		t.Fatalf("expected untouched failure, got: err=%q, called=%v", out.Err(), called)
	}
}

func TestApply_WrappedFunction(t *testing.T) {
	t.Parallel()
	double := rop.Ok[func(int) int, string](func(v int) int { return v * 2 })
	out := Apply(double, rop.Ok[int, string](21))
	if !out.IsOk() || out.Value() != 42 {
		t.Fatalf("expected ok 42, got: ok=%v, val=%v", out.IsOk(), out.Value())
	}
}

func TestApply_FunctionOperandPriority(t *testing.T) {
	t.Parallel()
	out := Apply(rop.Err[func(int) int]("no fn"), rop.Err[int]("no arg"))
	if !out.IsErr() || out.Err() != "no fn" {
		t.Fatalf("expected function operand's error, got %q", out.Err())
	}
}

func TestOr_SelectsFirstSuccess(t *testing.T) {
	t.Parallel()
	if out := Or(rop.Ok[int, string](1), rop.Ok[int, string](2)); out.Value() != 1 {
		t.Fatalf("expected first success, got %v", out.Value())
	}
	if out := Or(rop.Err[int]("x"), rop.Ok[int, string](2)); out.Value() != 2 {
		t.Fatalf("expected second success, got %v", out.Value())
	}
	if out := Or(rop.Err[int]("x"), rop.Err[int]("y")); out.Err() != "x" {
		t.Fatalf("expected first failure, got %q", out.Err())
	}
}

func TestOr_EmptyOperands(t *testing.T) {
	t.Parallel()
	var absent rop.Result[int, string]
	if out := Or(absent, rop.Err[int]("y")); out.Err() != "y" {
		t.Fatalf("expected failure over emptiness, got %v", out)
	}
	if out := Or(absent, absent); !out.IsEmpty() {
		t.Fatalf("expected two empties to stay empty")
	}
}

func TestAnd_DemandsBoth(t *testing.T) {
	t.Parallel()
	if out := And(rop.Ok[int, string](1), rop.Ok[int, string](2)); out.Value() != 2 {
		t.Fatalf("expected second success kept, got %v", out.Value())
	}
	if out := And(rop.Err[int]("x"), rop.Err[int]("y")); out.Err() != "x" {
		t.Fatalf("expected first failure, got %q", out.Err())
	}
	if out := And(rop.Ok[int, string](1), rop.Err[int]("y")); out.Err() != "y" {
		t.Fatalf("expected second failure, got %q", out.Err())
	}
}
