// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio

import "code.hybscloud.com/atomix"

// Cell is a single mutable slot holding a sequence id. The only external
// mutation path is the atomic [Cell.FetchAndReset]; fold steps commit
// through compare-and-swap, so an observer never sees a torn or
// half-applied value.
//
// The id is stored as its 64-bit pattern. Integer conversion is injective
// per fixed width, so bit equality in the slot is value equality of S.
type Cell[S ID] struct {
	bits atomix.Uint64
}

// NewCell creates a cell holding seed.
func NewCell[S ID](seed S) *Cell[S] {
	c := &Cell[S]{}
	c.bits.Store(uint64(seed))
	return c
}

// FetchAndReset atomically reads the current value, replaces it with seed,
// and returns the prior value. It serializes against the fold step's
// compare-and-swap: a reset landing mid-step wins and the step re-runs
// against the new seed.
func (c *Cell[S]) FetchAndReset(seed S) S {
	return S(c.bits.Swap(uint64(seed)))
}

// load returns the current value.
func (c *Cell[S]) load() S {
	return S(c.bits.Load())
}

// compareAndSwap commits the transition old → next if the cell still holds
// old. Reports whether the commit won.
func (c *Cell[S]) compareAndSwap(old, next S) bool {
	return c.bits.CompareAndSwap(uint64(old), uint64(next))
}
