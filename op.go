// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"cmp"

	"code.hybscloud.com/kont"
)

// Transfer is the effect operation for handing control to another task.
// Perform(Transfer[I, M]{To: id, Msg: m}) suspends the body, yields m to
// task id, and resumes with the next message delivered to this task.
type Transfer[I cmp.Ordered, M any] struct {
	kont.Phantom[M]
	To  I
	Msg M
}

// TransferTo hands msg to task to and resumes with the reply.
func TransferTo[I cmp.Ordered, M any](to I, msg M) kont.Eff[M] {
	return kont.Perform(Transfer[I, M]{To: to, Msg: msg})
}

// TransferBind hands msg to task to and passes the reply to f.
// Fuses Perform(Transfer) + Bind.
func TransferBind[I cmp.Ordered, M, B any](to I, msg M, f func(M) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(TransferTo(to, msg), f)
}

// TransferThen hands msg to task to, ignores the reply, and continues
// with next.
// Fuses Perform(Transfer) + Then.
func TransferThen[I cmp.Ordered, M, B any](to I, msg M, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(TransferTo(to, msg), next)
}

// Loop runs a Proc body as repeated rounds between Transfers. Each round
// gets the state left by the previous one and usually performs one
// Transfer, then ends with Left(state) to go around again once the peer
// has replied, or Right(result) to finish the Proc with Done(result).
func Loop[S, A any](state S, round func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(round(state), func(e kont.Either[S, A]) kont.Eff[A] {
		if result, done := e.GetRight(); done {
			return kont.Pure(result)
		}
		next, _ := e.GetLeft()
		return Loop(next, round)
	})
}
