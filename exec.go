// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import (
	"code.hybscloud.com/kont"
)

// Produce runs a Cont-world producer protocol against sink.
// Emit and End dispatch directly on the sink; blocking is the sink's own.
func Produce[T, R any](sink Sink[T], protocol kont.Eff[R]) R {
	h := sinkHandler[T, R]{sink: sink}
	return kont.Handle(protocol, h)
}

// ProduceExpr runs an Expr-world producer protocol against sink.
func ProduceExpr[T, R any](sink Sink[T], protocol kont.Expr[R]) R {
	h := sinkHandler[T, R]{sink: sink}
	return kont.HandleExpr(protocol, h)
}

// Consume runs a Cont-world consumer protocol against src.
// Next dispatches directly on the source; blocking is the source's own.
func Consume[T, R any](src Source[T], protocol kont.Eff[R]) R {
	h := sourceHandler[T, R]{src: src}
	return kont.Handle(protocol, h)
}

// ConsumeExpr runs an Expr-world consumer protocol against src.
func ConsumeExpr[T, R any](src Source[T], protocol kont.Expr[R]) R {
	h := sourceHandler[T, R]{src: src}
	return kont.HandleExpr(protocol, h)
}

// Step evaluates a stream protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended stream operation on the pipe.
// DispatchPipe is non-blocking: returns iox.ErrWouldBlock when the bounded
// queue cannot make progress (the I/O boundary).
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// after the peer side makes progress.
func Advance[T, R any](p *Pipe[T], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	sop, ok := susp.Op().(pipeDispatcher[T])
	if !ok {
		panic("seqio: unhandled effect in Advance")
	}
	v, err := sop.DispatchPipe(p)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
