// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

// Source is a one-element pull collaborator. Pull returns the next element,
// or ok == false exactly once at end of stream: the terminal sentinel. A
// well-behaved caller does not pull past the sentinel.
type Source[T any] interface {
	Pull() (v T, ok bool)
}

// SourceFunc adapts an ordinary function to a [Source].
type SourceFunc[T any] func() (T, bool)

// Pull calls f.
func (f SourceFunc[T]) Pull() (T, bool) { return f() }

// Sink is a one-element push collaborator. Pushing ok == false delivers the
// terminal sentinel and must not be followed by further pushes.
type Sink[T any] interface {
	Push(v T, ok bool)
}

// SinkFunc adapts an ordinary function to a [Sink].
type SinkFunc[T any] func(T, bool)

// Push calls f.
func (f SinkFunc[T]) Push(v T, ok bool) { f(v, ok) }

// Pump pulls from src until the sentinel, forwarding every element and the
// sentinel itself to sink. Returns the number of elements forwarded, not
// counting the sentinel.
func Pump[T any](src Source[T], sink Sink[T]) int {
	n := 0
	for {
		v, ok := src.Pull()
		sink.Push(v, ok)
		if !ok {
			return n
		}
		n++
	}
}
