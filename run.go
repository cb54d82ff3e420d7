// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run creates a pipe of the given capacity and interleaves a Cont-world
// producer and consumer over it on the calling goroutine, using adaptive
// backoff (iox.Backoff) when neither side can make progress. Does not
// spawn goroutines or create channels. Returns both results.
func Run[T, A, B any](capacity int, producer kont.Eff[A], consumer kont.Eff[B]) (A, B) {
	return RunExpr[T](capacity, Reify(producer), Reify(consumer))
}

// RunExpr creates a pipe of the given capacity and interleaves an
// Expr-world producer and consumer over it on the calling goroutine,
// using adaptive backoff (iox.Backoff) when neither side can make
// progress. Does not spawn goroutines or create channels.
func RunExpr[T, A, B any](capacity int, producer kont.Expr[A], consumer kont.Expr[B]) (A, B) {
	p := NewPipe[T](capacity)
	resultA, suspA := Step[A](producer)
	resultB, suspB := Step[B](consumer)
	var bo iox.Backoff

	var sopA pipeDispatcher[T]
	if suspA != nil {
		sopA = suspA.Op().(pipeDispatcher[T])
	}
	var sopB pipeDispatcher[T]
	if suspB != nil {
		sopB = suspB.Op().(pipeDispatcher[T])
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := sopA.DispatchPipe(p)
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					sopA = suspA.Op().(pipeDispatcher[T])
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := sopB.DispatchPipe(p)
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					sopB = suspB.Op().(pipeDispatcher[T])
				}
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
