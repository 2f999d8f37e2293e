// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import "cmp"

// Coroutine is a unit of cooperative logic with a one-time setup step and
// a repeatable resume step.
//
// Init is called exactly once, before any task of the run is resumed.
// Resume receives the message currently owned by the scheduler and must
// return exactly one Pause. A returned error aborts the whole run; a panic
// is not recovered and propagates to the caller of Run or Advance.
type Coroutine[I cmp.Ordered, M, R any] interface {
	Init(v View[I]) error
	Resume(msg M) (Pause[I, M, R], error)
}

// View is the read-only window on the registry handed to Init.
type View[I cmp.Ordered] interface {
	// IDFor resolves a registration name to its task identifier.
	IDFor(name I) (I, bool)
	// Len returns the number of registered tasks.
	Len() int
}

// Func adapts a resume function into a Coroutine with a no-op Init.
type Func[I cmp.Ordered, M, R any] func(msg M) Pause[I, M, R]

// Init implements Coroutine.
func (Func[I, M, R]) Init(View[I]) error { return nil }

// Resume implements Coroutine.
func (f Func[I, M, R]) Resume(msg M) (Pause[I, M, R], error) {
	return f(msg), nil
}

// Funcs adapts a pair of functions into a Coroutine.
// A nil OnInit is a no-op. OnResume must not be nil.
type Funcs[I cmp.Ordered, M, R any] struct {
	OnInit   func(v View[I]) error
	OnResume func(msg M) (Pause[I, M, R], error)
}

// Init implements Coroutine.
func (f Funcs[I, M, R]) Init(v View[I]) error {
	if f.OnInit == nil {
		return nil
	}
	return f.OnInit(v)
}

// Resume implements Coroutine.
func (f Funcs[I, M, R]) Resume(msg M) (Pause[I, M, R], error) {
	return f.OnResume(msg)
}

// State is the lifecycle tag of a registered coroutine.
type State uint8

const (
	// StateUninitialized: registered, Init not yet called.
	StateUninitialized State = iota
	// StateReady: Init succeeded; the coroutine may be resumed.
	StateReady
	// StateFinished: the coroutine ended the run or failed.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateFinished:
		return "finished"
	}
	return "invalid"
}
