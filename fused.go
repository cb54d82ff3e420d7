// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import (
	"code.hybscloud.com/kont"
)

// EmitThen emits a value downstream and then continues with next.
// Fuses Perform(Emit[T]{Value: v}) + Then.
func EmitThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Emit[T]{Value: v}), next)
}

// EndDone pushes the terminal sentinel and returns a.
// Fuses Perform(End[T]) + Then + Pure.
func EndDone[T, A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(End[T]{}), kont.Pure(a))
}

// NextBind pulls one element and calls onElem with it, or onEnd on the
// terminal sentinel. Fuses Perform(Next[T]) + Bind + Either branch.
func NextBind[T, B any](onElem func(T) kont.Eff[B], onEnd func() kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Next[T]{}), func(e kont.Either[struct{}, T]) kont.Eff[B] {
		if v, ok := e.GetRight(); ok {
			return onElem(v)
		}
		return onEnd()
	})
}

// Loop runs a recursive stream protocol (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}
