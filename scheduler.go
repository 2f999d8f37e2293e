// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"cmp"
	"log/slog"
)

// Phase is the state of a Scheduler.
type Phase uint8

const (
	// PhaseUninitialized is the zero Phase; Start has not begun.
	PhaseUninitialized Phase = iota
	// PhaseInitializing means Start is calling Init on each coroutine.
	PhaseInitializing
	// PhaseRunning means a task is due and Advance may resume it.
	PhaseRunning
	// PhaseDone is terminal: a coroutine returned Done or the run failed.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	}
	return "invalid"
}

// Event describes one resume: which task ran, with which message, as the
// seq-th step of the scheduler identified by Serial.
type Event[I cmp.Ordered, M any] struct {
	Serial Serial
	Seq    uint64
	Task   I
	Msg    M
}

// Builder collects named coroutines before a run.
// It is consumed by Start or Run and cannot be reused afterwards.
type Builder[I cmp.Ordered, M, R any] struct {
	reg      registry[I, M, R]
	trace    func(Event[I, M])
	logger   *slog.Logger
	consumed bool
}

// New returns an empty builder.
func New[I cmp.Ordered, M, R any]() *Builder[I, M, R] {
	return &Builder[I, M, R]{}
}

// Task registers co under id and returns the builder for chaining.
// Registering an id again replaces its coroutine; the registry never
// holds two entries for one id.
func (b *Builder[I, M, R]) Task(id I, co Coroutine[I, M, R]) *Builder[I, M, R] {
	if b.consumed {
		panic("corustine: task registered on a consumed builder")
	}
	if co == nil {
		panic("corustine: nil coroutine")
	}
	b.reg.register(id, co)
	return b
}

// Func registers a resume-only coroutine under id.
func (b *Builder[I, M, R]) Func(id I, f func(msg M) Pause[I, M, R]) *Builder[I, M, R] {
	if f == nil {
		panic("corustine: nil coroutine")
	}
	return b.Task(id, Func[I, M, R](f))
}

// Trace installs fn to observe every resume, in order.
func (b *Builder[I, M, R]) Trace(fn func(Event[I, M])) *Builder[I, M, R] {
	b.trace = fn
	return b
}

// Logger installs l for debug records on start, hand-off and completion.
// A nil logger disables logging, which is the default.
func (b *Builder[I, M, R]) Logger(l *slog.Logger) *Builder[I, M, R] {
	b.logger = l
	return b
}

// Len returns the number of distinct task identifiers registered.
func (b *Builder[I, M, R]) Len() int {
	return b.reg.Len()
}

// IDs returns the registered identifiers in ascending order.
func (b *Builder[I, M, R]) IDs() []I {
	return b.reg.ids()
}

// IDFor resolves name to a registered task identifier.
func (b *Builder[I, M, R]) IDFor(name I) (I, bool) {
	return b.reg.IDFor(name)
}

// Lookup returns the coroutine currently registered under id.
func (b *Builder[I, M, R]) Lookup(id I) (Coroutine[I, M, R], bool) {
	e := b.reg.lookup(id)
	if e == nil {
		return nil, false
	}
	return e.co, true
}

// Scheduler owns the registry and drives the control-transfer loop.
// It runs entirely on the calling goroutine; exactly one coroutine
// executes at any instant.
type Scheduler[I cmp.Ordered, M, R any] struct {
	reg    registry[I, M, R]
	next   I
	msg    M
	phase  Phase
	serial Serial
	steps  uint64
	trace  func(Event[I, M])
	logger *slog.Logger
}

// Serial returns the serial number assigned to this scheduler.
func (s *Scheduler[I, M, R]) Serial() Serial {
	return s.serial
}

// Phase reports the scheduler's current phase.
func (s *Scheduler[I, M, R]) Phase() Phase {
	return s.phase
}

// Next returns the task due to run on the next Advance.
// ok is false once the scheduler is done.
func (s *Scheduler[I, M, R]) Next() (id I, ok bool) {
	if s.phase != PhaseRunning {
		return id, false
	}
	return s.next, true
}

// Steps returns the number of resumes performed so far.
func (s *Scheduler[I, M, R]) Steps() uint64 {
	return s.steps
}

// IDFor resolves name against the scheduler's registry.
func (s *Scheduler[I, M, R]) IDFor(name I) (I, bool) {
	return s.reg.IDFor(name)
}

func (s *Scheduler[I, M, R]) debug(msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, append([]any{slog.Uint64("serial", uint64(s.serial))}, args...)...)
}

// fail moves the scheduler to its terminal phase and returns err.
func (s *Scheduler[I, M, R]) fail(err error) error {
	s.phase = PhaseDone
	var zero M
	s.msg = zero
	s.debug("corustine: run failed", slog.Any("err", err))
	return err
}
