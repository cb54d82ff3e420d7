// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/seqio"
)

// sliceSource yields the elements of vs in order, then the sentinel.
// Keeps returning the sentinel if pulled past the end.
func sliceSource[T any](vs []T) seqio.Source[T] {
	i := 0
	return seqio.SourceFunc[T](func() (T, bool) {
		if i >= len(vs) {
			var zero T
			return zero, false
		}
		v := vs[i]
		i++
		return v, true
	})
}

// collectSink records every push, including the sentinel.
type collectSink[T any] struct {
	got   []T
	ended bool
}

func (s *collectSink[T]) Push(v T, ok bool) {
	if !ok {
		s.ended = true
		return
	}
	s.got = append(s.got, v)
}

// drain pulls from src until the sentinel, returning the elements.
func drain[T any](src seqio.Source[T]) []T {
	var out []T
	for {
		v, ok := src.Pull()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// execExpr drives a protocol to completion on p via Step+Advance loop.
// Retries on iox.ErrWouldBlock (the peer side not ready yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[T, R any](p *seqio.Pipe[T], protocol kont.Expr[R]) R {
	result, susp := seqio.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = seqio.Advance(p, susp)
		if err != nil {
			continue
		}
	}
	return result
}
