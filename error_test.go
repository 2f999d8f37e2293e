// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine_test

import (
	"errors"
	"testing"

	"github.com/brunoczim/corustine"
)

func TestTaskErrorMessage(t *testing.T) {
	_, err := corustine.New[string, int, int]().Run("ghost", 0)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "start task ghost: corustine: unknown task"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestTaskErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &corustine.TaskError{Task: 7, Op: corustine.OpResume, Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("errors.Is should reach the wrapped error")
	}
	if errors.Is(err, corustine.ErrUnknownTask) {
		t.Fatal("unexpected match with ErrUnknownTask")
	}
	if err.Error() != "resume task 7: inner" {
		t.Fatalf("got %q", err.Error())
	}
}

func TestYieldZeroPause(t *testing.T) {
	// A zero Pause is a hand-off to the zero identifier.
	b := corustine.New[string, int, int]().
		Func("a", func(int) corustine.Pause[string, int, int] {
			return corustine.Pause[string, int, int]{}
		})
	_, err := b.Run("a", 0)
	if !errors.Is(err, corustine.ErrUnknownTask) {
		t.Fatalf("got %v, want ErrUnknownTask", err)
	}
}
