// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import "fmt"

// ID constrains sequence identifier types: ordered integral counters of at
// most 64 bits. Comparison and increment are the only operations the core
// needs, so protocol-specific widths and wraparound counters all qualify.
type ID interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// UnsignedID constrains ids with well-defined wraparound, as required by
// the serial arithmetic of [Ring].
type UnsignedID interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Kind classifies a sequence anomaly.
type Kind uint8

const (
	// Dropped: one or more ids were skipped since the last seen id.
	Dropped Kind = iota + 1
	// Duplicated: the current id is not strictly newer than the last seen id.
	Duplicated
)

// String returns the anomaly kind name.
func (k Kind) String() string {
	switch k {
	case Dropped:
		return "dropped"
	case Duplicated:
		return "duplicated"
	}
	return "unknown"
}

// Error reports a sequence continuity anomaly between two ids.
// It is produced as a value and delivered to a handler, never thrown:
// stream processing continues uninterrupted after an anomaly.
type Error[S ID] struct {
	Kind    Kind
	Last    S
	Current S
}

// Error implements the error interface.
func (e Error[S]) Error() string {
	return fmt.Sprintf("seqio: %s sequence id (last %v, current %v)", e.Kind, e.Last, e.Current)
}

// Numbering is the sequence-arithmetic collaborator. Classify reports the
// anomaly between the last seen id and the current one, or ok == false when
// current is exactly the successor of last. Next computes the successor.
//
// Contract: Classify(last, Next(last)) reports no anomaly for every last.
type Numbering[S ID] interface {
	Classify(last, current S) (Kind, bool)
	Next(s S) S
}

// Linear is natural-order sequence arithmetic: ids increase by exactly one
// and never wrap. Ids that run past the type's maximum are the caller's
// precondition violation, not a classified anomaly.
type Linear[S ID] struct{}

// Classify reports Dropped when current skips past last+1 and Duplicated
// when current is not strictly greater than last.
func (Linear[S]) Classify(last, current S) (Kind, bool) {
	switch {
	case current == last+1:
		return 0, false
	case current > last:
		return Dropped, true
	default:
		return Duplicated, true
	}
}

// Next returns last+1.
func (Linear[S]) Next(s S) S { return s + 1 }

// Ring is serial sequence arithmetic for fixed-width wrapping counters.
// Distance is computed in the id's own width, so the successor of the
// maximum value is zero and classification holds across the wrap point.
// A current id half or more of the value range ahead of last is considered
// stale (Duplicated) rather than a forward gap.
type Ring[S UnsignedID] struct{}

// Classify reports the anomaly between last and current under serial
// arithmetic.
func (Ring[S]) Classify(last, current S) (Kind, bool) {
	d := current - last
	half := (^S(0) >> 1) + 1
	switch {
	case d == 1:
		return 0, false
	case d == 0 || d >= half:
		return Duplicated, true
	default:
		return Dropped, true
	}
}

// Next returns last+1 in the id's own width, wrapping at the maximum.
func (Ring[S]) Next(s S) S { return s + 1 }
