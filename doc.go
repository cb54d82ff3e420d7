// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seqio provides sequence-checked stream decorators for ordered
// element pipelines: a validating source decorator that detects dropped and
// duplicated sequence ids on the pull path, and an assigning sink decorator
// that stamps outgoing elements with the next id on the push path.
//
// Both decorators are built on a shared stateful-fold combinator whose
// running state lives in an atomic cell, so a supervising task may inspect
// and reseed the counter concurrently with ongoing pulls and pushes without
// tearing or losing an update.
//
// # Architecture
//
//   - Collaborators: [Source] (one-element pull, sentinel-terminated) and
//     [Sink] (one-element push). The sentinel is ok == false.
//   - Arithmetic: [Numbering] classifies an id pair as contiguous, [Dropped]
//     or [Duplicated] and computes the successor id. [Linear] never wraps;
//     [Ring] uses serial arithmetic in the id's own width.
//   - State: [Cell] is a single atomic slot with fetch-and-reset. Fold steps
//     commit through compare-and-swap via [code.hybscloud.com/atomix], so a
//     concurrent [Reset] serializes against the step.
//   - Transport: [Pipe] is a bounded element queue built on lock-free SPSC
//     queues via [code.hybscloud.com/lfq]. Non-blocking operations return
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//
// # API Topologies
//
//   - Decorators: [Validate] wraps a Source and reports anomalies as
//     [Error] values to a caller-supplied handler; content passes through
//     untouched. [Assign] wraps a Sink and rewrites each payload to carry
//     its id. Both return a [Reset] accessor.
//   - Combinators: [FoldSource] and [FoldSink] thread state through a
//     stream without buffering beyond the in-flight element.
//   - Cont-world: [EmitThen], [NextBind], [EndDone], [Loop] build effectful
//     producers and consumers on [code.hybscloud.com/kont]; run with
//     [Produce], [Consume], or interleave both ends with [Run].
//   - Expr-world: zero-allocation variants [ExprEmitThen], [ExprNextBind],
//     [ExprEndDone], [ExprLoop]. Bridge via [Reify] and [Reflect].
//   - Stepping: [Step] and [Advance] evaluate one effect at a time against
//     a [Pipe], leaving the suspension retryable on ErrWouldBlock.
//
// # Example
//
//	p := seqio.NewPipe[Tick](seqio.DefaultCapacity)
//	sink, _ := seqio.Assign[uint64, Tick, Tick](seqio.Linear[uint64]{}, 0,
//		func(id uint64, t Tick) Tick { t.Seq = id; return t },
//		func(Tick) (uint64, bool) { return 0, false },
//		p,
//	)
//	src, reset := seqio.Validate(seqio.Linear[uint64]{}, uint64(0),
//		func(t Tick) uint64 { return t.Seq },
//		func(Tick) bool { return true },
//		func(e seqio.Error[uint64]) { log(e) },
//		p,
//	)
//	_ = reset // a supervising task may reseed concurrently
package seqio
