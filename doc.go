// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package corustine provides a minimal cooperative multitasking runtime:
// named coroutines that hand control to one another explicitly, and a FIFO
// channel for decoupled message passing between them.
//
// Exactly one coroutine executes at a time, on the caller's goroutine.
// A coroutine suspends only by returning from Resume with a [Pause]: either
// [Yield], which hands a message to a named peer, or [Done], which ends the
// whole run with a final value. The sequence of resumes is fully determined
// by the chain of Yield targets, so a run with deterministic coroutines is a
// replayable trace.
//
// # Architecture
//
//   - Registry: tasks are kept sorted by identifier and found by binary search. Registering an identifier twice replaces its coroutine in place.
//   - Lifecycle: every coroutine is initialized once, in identifier order, before the first resume. Each entry carries an explicit [State].
//   - Control transfer: [Pause] is a [code.hybscloud.com/kont.Either]; Left hands off, Right finishes.
//   - Channel: [Chan] is an unbounded FIFO built from bounded [code.hybscloud.com/lfq] rings under one mutex. Copies of the handle share the queue.
//
// # API Topologies
//
//   - Building: [New], [Builder.Task], [Builder.Func], [Builder.Trace], [Builder.Logger].
//   - Running: [Builder.Run] to completion, or [Builder.Start] and [Scheduler.Advance] one resume at a time from a host loop.
//   - Coroutines: implement [Coroutine], or adapt functions with [Func] and [Funcs].
//   - Effect coroutines: write a body as one kont program with [TransferTo], [TransferBind], [TransferThen] and [Loop], then wrap it with [FromEff] or [FromExpr].
//
// # Errors
//
// Every failure is fatal to the run and is reported as a [*TaskError] naming
// the task, wrapping [ErrUnknownTask], [ErrLifecycle], [ErrUnhandledEffect]
// or the coroutine's own error. An effect coroutine's own error is whatever
// its body threw with kont.ThrowError. Panics raised by coroutines are not
// recovered. A run in which no coroutine ever returns Done does not
// terminate; there is no timeout or cancellation.
//
// # Example
//
//	ch := corustine.NewChan[int]()
//	m, n := 1, 0
//	var seq []int
//	result, err := corustine.New[string, struct{}, []int]().
//		Func("producer", func(struct{}) corustine.Pause[string, struct{}, []int] {
//			ch.Send(m)
//			m, n = m+n, m
//			return corustine.Yield[[]int]("consumer", struct{}{})
//		}).
//		Func("consumer", func(struct{}) corustine.Pause[string, struct{}, []int] {
//			if len(seq) >= 10 {
//				return corustine.Done[string, struct{}](seq)
//			}
//			v, _ := ch.Recv()
//			seq = append(seq, v)
//			return corustine.Yield[[]int]("producer", struct{}{})
//		}).
//		Run("producer", struct{}{})
//	// result == [1 1 2 3 5 8 13 21 34 55]
package corustine
