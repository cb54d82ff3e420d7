// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

// Reset atomically replaces a fold adapter's running state with seed and
// returns the state accumulated so far. It is safe to call from a
// supervising task concurrently with ongoing pulls or pushes on the
// adapter; resets never fail.
type Reset[S ID] func(seed S) S

// FoldSource wraps src with a state-threading step. Each pulled element is
// passed through unmodified after step(state, element) commits into the
// cell; the sentinel propagates without touching state. No buffering beyond
// the in-flight element.
//
// The commit is a compare-and-swap loop: if a concurrent [Reset] lands
// mid-step, the reset wins and the step re-runs against the new seed, so
// the committed transition is always consistent. The step must therefore
// be pure in its state argument.
//
// A single logical owner pulls at a time; only the Reset accessor may be
// called from another execution context.
func FoldSource[S ID, A any](seed S, step func(S, A) S, src Source[A]) (Source[A], Reset[S]) {
	cell := NewCell(seed)
	wrapped := SourceFunc[A](func() (A, bool) {
		v, ok := src.Pull()
		if !ok {
			return v, false
		}
		for {
			old := cell.load()
			if cell.compareAndSwap(old, step(old, v)) {
				return v, true
			}
		}
	})
	return wrapped, cell.FetchAndReset
}

// FoldSink wraps sink with a state-threading step. Each pushed element x is
// replaced by the y of step(state, x) = (state', y) once state' commits
// into the cell; the sentinel is forwarded untouched and does not touch
// state. The forwarded output is the committed attempt's.
//
// Commit and ownership rules are those of [FoldSource].
func FoldSink[S ID, A, B any](seed S, step func(S, A) (S, B), sink Sink[B]) (Sink[A], Reset[S]) {
	cell := NewCell(seed)
	wrapped := SinkFunc[A](func(v A, ok bool) {
		if !ok {
			var zero B
			sink.Push(zero, false)
			return
		}
		for {
			old := cell.load()
			next, out := step(old, v)
			if cell.compareAndSwap(old, next) {
				sink.Push(out, true)
				return
			}
		}
	})
	return wrapped, cell.FetchAndReset
}
