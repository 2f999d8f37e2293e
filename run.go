// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

// Run consumes the builder and runs the tasks to completion, starting at
// task start with message msg. It returns the value carried by the first
// Done.
//
// Run fails with a *TaskError when start or any Yield target is unknown,
// or when a coroutine returns an error from Init or Resume. It does not
// return if no coroutine ever produces Done.
func (b *Builder[I, M, R]) Run(start I, msg M) (R, error) {
	s, err := b.Start(start, msg)
	if err != nil {
		var zero R
		return zero, err
	}
	return s.Run()
}

// Run advances the scheduler until some coroutine returns Done or a
// fatal error occurs.
func (s *Scheduler[I, M, R]) Run() (R, error) {
	for {
		result, done, err := s.Advance()
		if err != nil || done {
			return result, err
		}
	}
}
