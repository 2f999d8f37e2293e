// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine_test

import (
	"github.com/brunoczim/corustine"
)

type unit = struct{}

type fibPause = corustine.Pause[string, unit, []int]

// fibonacci builds the producer/consumer pair: the producer sends the next
// Fibonacci number through a shared channel and hands control to the
// consumer, which collects limit values and then finishes.
func fibonacci(limit int) *corustine.Builder[string, unit, []int] {
	ch := corustine.NewChan[int]()

	producer := func() func(unit) fibPause {
		tx := ch
		m, n := 1, 0
		return func(unit) fibPause {
			tx.Send(m)
			m, n = m+n, m
			return corustine.Yield[[]int]("consumer", unit{})
		}
	}()

	consumer := func() func(unit) fibPause {
		rx := ch
		seq := make([]int, 0, limit)
		return func(unit) fibPause {
			if len(seq) >= limit {
				return corustine.Done[string, unit](seq)
			}
			v, ok := rx.Recv()
			if !ok {
				panic("consumer resumed on an empty channel")
			}
			seq = append(seq, v)
			return corustine.Yield[[]int]("producer", unit{})
		}
	}()

	return corustine.New[string, unit, []int]().
		Func("consumer", consumer).
		Func("producer", producer)
}

// recorder is a coroutine that logs its lifecycle calls into a shared
// journal and then runs resume.
type recorder[M, R any] struct {
	name    string
	journal *[]string
	resume  func(M) corustine.Pause[string, M, R]
	initErr error
}

func (r *recorder[M, R]) Init(corustine.View[string]) error {
	*r.journal = append(*r.journal, "init:"+r.name)
	return r.initErr
}

func (r *recorder[M, R]) Resume(msg M) (corustine.Pause[string, M, R], error) {
	*r.journal = append(*r.journal, "resume:"+r.name)
	return r.resume(msg), nil
}

// countdown hands n-1 to peer until n reaches zero, then finishes with the
// name of the task that saw zero.
func countdown(self, peer string) func(int) corustine.Pause[string, int, string] {
	return func(n int) corustine.Pause[string, int, string] {
		if n <= 0 {
			return corustine.Done[string, int](self)
		}
		return corustine.Yield[string](peer, n-1)
	}
}
