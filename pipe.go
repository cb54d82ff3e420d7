// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultCapacity is the default bound for pipe transport queues.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const DefaultCapacity = 4

// elem carries one stream element through the queue; ok == false is the
// terminal sentinel.
type elem[T any] struct {
	value T
	ok    bool
}

// Pipe is a bounded in-memory element transport: the producer side is a
// [Sink], the consumer side a [Source]. Transport is a single-producer
// single-consumer lock-free queue from lfq, so exactly one pusher and one
// puller may operate concurrently.
//
// Once the sentinel has been pulled the end is sticky: every later pull
// returns the sentinel immediately instead of blocking.
type Pipe[T any] struct {
	q     lfq.SPSC[elem[T]]
	ended atomix.Uint32
	// slot stages the producer-side element; Enqueue copies through the
	// pointer, so the single producer may reuse it without a per-push
	// heap escape.
	slot elem[T]
}

// NewPipe creates a pipe with the given queue capacity.
func NewPipe[T any](capacity int) *Pipe[T] {
	p := &Pipe[T]{}
	p.q.Init(capacity)
	return p
}

// TryPush enqueues one element (or the sentinel when ok == false) without
// blocking. Returns iox.ErrWouldBlock when the queue is full.
func (p *Pipe[T]) TryPush(v T, ok bool) error {
	p.slot = elem[T]{value: v, ok: ok}
	return p.q.Enqueue(&p.slot)
}

// TryPull dequeues one element without blocking. Returns iox.ErrWouldBlock
// when no element is ready. After the sentinel has been observed, TryPull
// keeps returning the sentinel with a nil error.
func (p *Pipe[T]) TryPull() (T, bool, error) {
	if p.ended.Load() != 0 {
		var zero T
		return zero, false, nil
	}
	e, err := p.q.Dequeue()
	if err != nil {
		var zero T
		return zero, false, err
	}
	if !e.ok {
		p.ended.Store(1)
	}
	return e.value, e.ok, nil
}

// Push blocks until the element is enqueued, waiting past the
// iox.ErrWouldBlock boundary with adaptive backoff.
func (p *Pipe[T]) Push(v T, ok bool) {
	var bo iox.Backoff
	for p.TryPush(v, ok) != nil {
		bo.Wait()
	}
}

// Pull blocks until an element (or the sentinel) is available, waiting
// past the iox.ErrWouldBlock boundary with adaptive backoff.
func (p *Pipe[T]) Pull() (T, bool) {
	var bo iox.Backoff
	for {
		v, ok, err := p.TryPull()
		if err == nil {
			return v, ok
		}
		bo.Wait()
	}
}
