// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"cmp"

	"code.hybscloud.com/kont"
)

// Handoff is a request to transfer control to task To, delivering Msg.
type Handoff[I cmp.Ordered, M any] struct {
	To  I
	Msg M
}

// Pause is the result of a single Resume.
// Left(Handoff) yields control to another task; Right(R) ends the whole
// run with a final value. The orientation follows Loop: left continues,
// right finishes.
type Pause[I cmp.Ordered, M, R any] = kont.Either[Handoff[I, M], R]

// Yield returns a Pause handing control and msg to task to.
// R comes first so that callers only spell out the final type:
//
//	corustine.Yield[[]int]("consumer", struct{}{})
func Yield[R any, I cmp.Ordered, M any](to I, msg M) Pause[I, M, R] {
	return kont.Left[Handoff[I, M], R](Handoff[I, M]{To: to, Msg: msg})
}

// Done returns a Pause that terminates the run with v.
func Done[I cmp.Ordered, M, R any](v R) Pause[I, M, R] {
	return kont.Right[Handoff[I, M]](v)
}
