// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

// Assign wraps sink with sequence id assignment. Each pushed element x
// receives num.Next of the running counter, or the element's own id when
// explicit(x) reports one; attach(id, x) produces the payload forwarded to
// sink. The sentinel is forwarded untouched.
//
// An explicit id overwrites the counter rather than merging with it: an
// explicitly tagged element can rewind or jump the sequence, and later
// auto-assigned elements continue from that point.
//
// The returned [Reset] reseeds the counter and returns its prior value.
func Assign[S ID, A, B any](
	num Numbering[S],
	initial S,
	attach func(S, A) B,
	explicit func(A) (S, bool),
	sink Sink[B],
) (Sink[A], Reset[S]) {
	step := func(counter S, x A) (S, B) {
		id, ok := explicit(x)
		if !ok {
			id = num.Next(counter)
		}
		return id, attach(id, x)
	}
	return FoldSink(initial, step, sink)
}
