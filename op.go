// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import (
	"code.hybscloud.com/kont"
)

// Emit is the effect operation for pushing one element downstream.
// Perform(Emit[T]{Value: v}) delivers v to the stream's sink.
type Emit[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchPipe handles Emit on a pipe transport.
// Non-blocking: returns iox.ErrWouldBlock if the bounded queue is full.
func (e Emit[T]) DispatchPipe(p *Pipe[T]) (kont.Resumed, error) {
	if err := p.TryPush(e.Value, true); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// End is the effect operation for pushing the terminal sentinel.
// Perform(End[T]{}) ends the stream; no further Emit may follow.
type End[T any] struct {
	kont.Phantom[struct{}]
}

// DispatchPipe handles End on a pipe transport.
// Non-blocking: returns iox.ErrWouldBlock if the bounded queue is full.
func (End[T]) DispatchPipe(p *Pipe[T]) (kont.Resumed, error) {
	var zero T
	if err := p.TryPush(zero, false); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Next is the effect operation for pulling one element.
// Perform(Next[T]{}) resumes with Right(element), or Left on the sentinel.
type Next[T any] struct {
	kont.Phantom[kont.Either[struct{}, T]]
}

// DispatchPipe handles Next on a pipe transport.
// Non-blocking: returns iox.ErrWouldBlock if no element is ready.
func (Next[T]) DispatchPipe(p *Pipe[T]) (kont.Resumed, error) {
	v, ok, err := p.TryPull()
	if err != nil {
		return nil, err
	}
	if !ok {
		return kont.Left[struct{}, T](struct{}{}), nil
	}
	return kont.Right[struct{}](v), nil
}

// pipeDispatcher is the structural interface for stream operations on a
// pipe transport. DispatchPipe is non-blocking: it returns
// iox.ErrWouldBlock at the I/O boundary when the bounded queue cannot
// make progress.
type pipeDispatcher[T any] interface {
	DispatchPipe(p *Pipe[T]) (kont.Resumed, error)
}

// sinkHandler implements kont.Handler for producer effects against an
// arbitrary [Sink]. Blocking is the sink's own: a decorated or pipe-backed
// sink waits however its collaborator waits.
type sinkHandler[T, R any] struct {
	sink Sink[T]
}

// Dispatch implements kont.Handler for Emit and End.
func (h sinkHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	switch o := op.(type) {
	case Emit[T]:
		h.sink.Push(o.Value, true)
		return struct{}{}, true
	case End[T]:
		var zero T
		h.sink.Push(zero, false)
		return struct{}{}, true
	}
	panic("seqio: unhandled effect in sinkHandler")
}

// sourceHandler implements kont.Handler for consumer effects against an
// arbitrary [Source]. Blocking is the source's own.
type sourceHandler[T, R any] struct {
	src Source[T]
}

// Dispatch implements kont.Handler for Next.
func (h sourceHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if _, ok := op.(Next[T]); !ok {
		panic("seqio: unhandled effect in sourceHandler")
	}
	v, ok := h.src.Pull()
	if !ok {
		return kont.Left[struct{}, T](struct{}{}), true
	}
	return kont.Right[struct{}](v), true
}
