// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame shared by all fused
// Expr constructors, avoiding a heap escape per construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprEmitThen emits a value downstream and then continues with next.
// Fuses ExprPerform(Emit[T]{Value: v}) + ExprThen.
func ExprEmitThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Emit[T]{Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprEndDone pushes the terminal sentinel and returns a.
// Fuses ExprPerform(End[T]) + ExprThen + ExprReturn.
func ExprEndDone[T, A any](a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = End[T]{}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}

func nextBindUnwind[T, B any](data, data2, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	onElem := data.(func(T) kont.Expr[B])
	onEnd := data2.(func() kont.Expr[B])
	e := current.(kont.Either[struct{}, T])
	var result kont.Expr[B]
	if v, ok := e.GetRight(); ok {
		result = onElem(v)
	} else {
		result = onEnd()
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprNextBind pulls one element and calls onElem with it, or onEnd on the
// terminal sentinel. Fuses ExprPerform(Next[T]) + ExprBind + Either branch.
func ExprNextBind[T, B any](onElem func(T) kont.Expr[B], onEnd func() kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = onElem
	bf.Data2 = onEnd
	bf.Unwind = nextBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Next[T]{}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprLoop runs a recursive stream protocol (Expr-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Fuses ExprBind inline to avoid the type-erasing wrapper closure.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	m := step(initial)
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		if left, ok := m.Value.GetLeft(); ok {
			return ExprLoop(left, step)
		}
		right, _ := m.Value.GetRight()
		return kont.ExprReturn(right)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		e := a.(kont.Either[S, A])
		if left, ok := e.GetLeft(); ok {
			result := ExprLoop(left, step)
			return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
		}
		right, _ := e.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(right), Frame: kont.ReturnFrame{}}
	}
	bf.Next = kont.ReturnFrame{}
	var zero A
	return kont.Expr[A]{
		Value: zero,
		Frame: kont.ChainFrames(m.Frame, bf),
	}
}
