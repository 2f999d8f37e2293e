// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"log/slog"
)

// Start consumes the builder and prepares a run beginning at task start
// with message msg.
//
// The starting task is resolved first; if it is unknown Start fails with
// ErrUnknownTask and no coroutine is touched. Otherwise every coroutine
// receives its single Init call in ascending identifier order, and the
// returned scheduler is in PhaseRunning with start due next.
func (b *Builder[I, M, R]) Start(start I, msg M) (*Scheduler[I, M, R], error) {
	if b.consumed {
		return nil, ErrConsumed
	}
	b.consumed = true

	s := &Scheduler[I, M, R]{
		reg:    b.reg,
		serial: nextSerial(),
		trace:  b.trace,
		logger: b.logger,
	}
	b.reg = registry[I, M, R]{}

	if s.reg.lookup(start) == nil {
		return nil, s.fail(taskError(start, OpStart, ErrUnknownTask))
	}

	s.phase = PhaseInitializing
	for i := range s.reg.entries {
		e := &s.reg.entries[i]
		if err := e.co.Init(&s.reg); err != nil {
			e.state = StateFinished
			return nil, s.fail(taskError(e.id, OpInit, err))
		}
		e.state = StateReady
	}

	s.next = start
	s.msg = msg
	s.phase = PhaseRunning
	s.debug("corustine: run started", slog.Any("start", start), slog.Int("tasks", s.reg.Len()))
	return s, nil
}

// Advance performs a single resume: the pending message is taken, the
// due task is looked up and resumed with it, and its Pause decides what
// happens next.
//
// On Yield, done is false and the target becomes due. On Done, done is
// true and result is the final value of the run. Any error is fatal and
// leaves the scheduler in PhaseDone; further calls return ErrConsumed.
func (s *Scheduler[I, M, R]) Advance() (result R, done bool, err error) {
	if s.phase != PhaseRunning {
		return result, false, ErrConsumed
	}

	msg := s.msg
	var zero M
	s.msg = zero

	id := s.next
	e := s.reg.lookup(id)
	if e == nil {
		return result, false, s.fail(taskError(id, OpResume, ErrUnknownTask))
	}
	if e.state != StateReady {
		return result, false, s.fail(taskError(id, OpResume, lifecycleError("resume", e.state)))
	}

	s.steps++
	if s.trace != nil {
		s.trace(Event[I, M]{Serial: s.serial, Seq: s.steps, Task: id, Msg: msg})
	}

	// The scheduler stays terminal if Resume panics or re-enters Advance.
	s.phase = PhaseDone
	p, err := e.co.Resume(msg)
	if err != nil {
		e.state = StateFinished
		return result, false, s.fail(taskError(id, OpResume, err))
	}
	s.phase = PhaseRunning

	if h, ok := p.GetLeft(); ok {
		if s.reg.lookup(h.To) == nil {
			return result, false, s.fail(taskError(h.To, OpYield, ErrUnknownTask))
		}
		s.debug("corustine: handoff", slog.Any("from", id), slog.Any("to", h.To))
		s.next = h.To
		s.msg = h.Msg
		return result, false, nil
	}

	result, _ = p.GetRight()
	e.state = StateFinished
	s.phase = PhaseDone
	s.debug("corustine: run done", slog.Any("task", id), slog.Uint64("steps", s.steps))
	return result, true, nil
}
