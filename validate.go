// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

// Validate wraps src with sequence continuity checking. For each pulled
// element x with check(x) true, id(x) is classified against the last
// checked id via num; a [Dropped] or [Duplicated] anomaly is delivered
// synchronously to onError before Pull returns. Content passes through
// unmodified: validation is observational.
//
// Elements with check(x) false neither advance nor break continuity
// tracking: a later checked element is compared against the last checked
// id, not the skipped one.
//
// The tracked state becomes the current id whenever it is strictly newer
// than the last one (the contiguous and Dropped cases), so a single
// anomaly does not cascade into spurious errors on every later element.
//
// The returned [Reset] reseeds tracking as if the validator had been
// freshly constructed with the new seed, returning the prior state.
func Validate[S ID, A any](
	num Numbering[S],
	initial S,
	id func(A) S,
	check func(A) bool,
	onError func(Error[S]),
	src Source[A],
) (Source[A], Reset[S]) {
	// The step may re-run when a concurrent reset wins the commit race, so
	// anomaly delivery is deferred to after the commit: the final run of
	// the loop body is the one whose transition committed. The slot is
	// owned by the single puller.
	var pending Error[S]
	var hasPending bool

	step := func(last S, x A) S {
		hasPending = false
		if !check(x) {
			return last
		}
		current := id(x)
		kind, anomalous := num.Classify(last, current)
		if !anomalous {
			return current
		}
		pending = Error[S]{Kind: kind, Last: last, Current: current}
		hasPending = true
		if kind == Duplicated {
			// current is not newer; keep tracking from last.
			return last
		}
		return current
	}

	inner, reset := FoldSource(initial, step, src)
	wrapped := SourceFunc[A](func() (A, bool) {
		v, ok := inner.Pull()
		if ok && hasPending {
			hasPending = false
			onError(pending)
		}
		return v, ok
	})
	return wrapped, reset
}
