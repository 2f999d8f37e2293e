// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

var (
	// ErrUnknownTask is reported when a starting task or a Yield target
	// does not resolve in the registry.
	ErrUnknownTask = errors.New("corustine: unknown task")

	// ErrLifecycle is reported when a coroutine's init-once, resume-many
	// contract is broken: resume before init, resume after finish, or a
	// second init.
	ErrLifecycle = errors.New("corustine: coroutine lifecycle violated")

	// ErrConsumed is returned when a builder is started twice or a
	// scheduler is advanced after it reached PhaseDone.
	ErrConsumed = errors.New("corustine: scheduler already consumed")

	// ErrUnhandledEffect is reported when an effect coroutine suspends on
	// an operation other than Transfer.
	ErrUnhandledEffect = errors.New("corustine: unhandled effect")

	// ErrNilThrow is reported when an effect coroutine throws a nil error.
	ErrNilThrow = errors.New("corustine: nil error thrown")
)

// Operation names carried by TaskError.
const (
	OpStart  = "start"
	OpInit   = "init"
	OpResume = "resume"
	OpYield  = "yield"
)

// TaskError is the failure of a single task. It names the task and the
// phase in which the failure happened, and wraps either one of the
// package sentinels or the error returned by the coroutine itself.
type TaskError struct {
	Task any
	Op   string
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s task %v: %v", e.Op, e.Task, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

func taskError(task any, op string, err error) error {
	return &TaskError{Task: task, Op: op, Err: err}
}

// lifecycleError wraps ErrLifecycle with the offending state.
func lifecycleError(what string, s State) error {
	return fmt.Errorf("%w: %s in state %s", ErrLifecycle, what, s)
}

// dispatchError runs op as a kont error effect. handled is false when op
// is not one. A Throw, or a Catch whose handler throws again, comes back
// as err; otherwise v is the value to resume the suspension with.
func dispatchError(op kont.Operation) (v kont.Resumed, handled bool, err error) {
	eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	})
	if !ok {
		return nil, false, nil
	}
	var ctx kont.ErrorContext[error]
	v, _ = eop.DispatchError(&ctx)
	if !ctx.HasErr {
		return v, true, nil
	}
	if ctx.Err == nil {
		return nil, true, ErrNilThrow
	}
	return nil, true, ctx.Err
}
