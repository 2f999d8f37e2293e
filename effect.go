// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"cmp"
	"fmt"

	"code.hybscloud.com/kont"
)

// Proc is a Coroutine whose body is a single kont program.
//
// The first Resume starts the body with the delivered message. Each
// Transfer the body performs becomes a Yield, and the suspended body is
// continued by the next Resume with the message delivered then. When the
// body returns, its value becomes Done; a nil R is a valid final value.
//
// Error effects are handled inside the Proc: a kont.Throw[error] ends the
// body and Resume returns the thrown error, while kont.Catch[error] runs
// its handler and the body carries on.
type Proc[I cmp.Ordered, M, R any] struct {
	body    func(first M) kont.Expr[kont.Either[error, R]]
	susp    *kont.Suspension[kont.Either[error, R]]
	started bool
	state   State
}

// FromEff builds a Proc from a Cont-world body.
func FromEff[I cmp.Ordered, M, R any](body func(first M) kont.Eff[R]) *Proc[I, M, R] {
	return &Proc[I, M, R]{body: func(first M) kont.Expr[kont.Either[error, R]] {
		return kont.Reify(kont.Map[kont.Resumed, R, kont.Either[error, R]](body(first), func(r R) kont.Either[error, R] {
			return kont.Right[error](r)
		}))
	}}
}

// FromExpr builds a Proc from an Expr-world body.
func FromExpr[I cmp.Ordered, M, R any](body func(first M) kont.Expr[R]) *Proc[I, M, R] {
	return &Proc[I, M, R]{body: func(first M) kont.Expr[kont.Either[error, R]] {
		return settle(body(first))
	}}
}

// settle maps the final value of expr into Right. Unlike kont.ExprMap it
// accepts a nil final value when R is an interface type.
func settle[R any](expr kont.Expr[R]) kont.Expr[kont.Either[error, R]] {
	if _, ok := expr.Frame.(kont.ReturnFrame); ok {
		return kont.ExprReturn(kont.Right[error](expr.Value))
	}
	return kont.Expr[kont.Either[error, R]]{
		Frame: kont.ChainFrames(expr.Frame, &kont.MapFrame[kont.Erased, kont.Erased]{
			F: func(a kont.Erased) kont.Erased {
				r, _ := a.(R)
				return kont.Right[error](r)
			},
			Next: kont.ReturnFrame{},
		}),
	}
}

// State reports the lifecycle state of the Proc.
func (p *Proc[I, M, R]) State() State {
	return p.state
}

// Init implements Coroutine.
func (p *Proc[I, M, R]) Init(View[I]) error {
	if p.state != StateUninitialized {
		return lifecycleError("init", p.state)
	}
	p.state = StateReady
	return nil
}

// Resume implements Coroutine.
func (p *Proc[I, M, R]) Resume(msg M) (Pause[I, M, R], error) {
	var zero Pause[I, M, R]
	if p.state != StateReady {
		return zero, lifecycleError("resume", p.state)
	}

	var (
		outcome kont.Either[error, R]
		susp    *kont.Suspension[kont.Either[error, R]]
	)
	if !p.started {
		p.started = true
		outcome, susp = kont.StepExpr(p.body(msg))
	} else {
		outcome, susp = p.susp.Resume(msg)
	}
	p.susp = nil

	for susp != nil {
		if op, ok := susp.Op().(Transfer[I, M]); ok {
			p.susp = susp
			return Yield[R](op.To, op.Msg), nil
		}
		v, handled, err := dispatchError(susp.Op())
		if !handled {
			op := susp.Op()
			susp.Discard()
			p.state = StateFinished
			return zero, fmt.Errorf("%w: %T", ErrUnhandledEffect, op)
		}
		if err != nil {
			susp.Discard()
			p.state = StateFinished
			return zero, err
		}
		outcome, susp = susp.Resume(v)
	}

	p.state = StateFinished
	result, _ := outcome.GetRight()
	return Done[I, M](result), nil
}
