package rop

import (
	"fmt"
	"testing"
)

func TestMatch_DispatchesOk(t *testing.T) {
	t.Parallel()
	out := Match(Ok[int, string](5), Cases[int, string, string]{
		Ok:  func(v int) string { return fmt.Sprintf("got %d", v) },
		Err: func(e string) string { return "failed: " + e },
	})
	if out != "got 5" {
		t.Fatalf("expected 'got 5', got %q", out)
	}
}

func TestMatch_DispatchesErr(t *testing.T) {
	t.Parallel()
	out := Match(Err[int]("timeout"), Cases[int, string, string]{
		Ok:  func(v int) string { return fmt.Sprintf("got %d", v) },
		Err: func(e string) string { return "failed: " + e },
	})
	if out != "failed: timeout" {
		t.Fatalf("expected 'failed: timeout', got %q", out)
	}
}

func TestMatch_ChangesResultType(t *testing.T) {
	t.Parallel()
	n := Match(Ok[string, error]("abcd"), Cases[string, error, int]{
		Ok:  func(s string) int { return len(s) },
		Err: func(error) int { return -1 },
	})
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
}

func TestMatch_NilHitHandlerPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil ok handler")
		}
	}()
	Match(Ok[int, string](1), Cases[int, string, int]{
		Err: func(string) int { return 0 },
	})
}

func TestMatch_EmptyPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty result")
		}
	}()
	var r Result[int, string]
	Match(r, Cases[int, string, int]{
		Ok:  func(int) int { return 0 },
		Err: func(string) int { return 0 },
	})
}
