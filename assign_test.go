// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio_test

import (
	"testing"

	"code.hybscloud.com/seqio"
)

// order is an outgoing element; numbered is the payload on the wire.
type order struct {
	forced uint64 // 0 means auto-assign
	body   string
}

type numbered struct {
	seq  uint64
	body string
}

func newOrderAssigner(initial uint64) (seqio.Sink[order], seqio.Reset[uint64], *collectSink[numbered]) {
	sink := &collectSink[numbered]{}
	wrapped, reset := seqio.Assign(seqio.Linear[uint64]{}, initial,
		func(id uint64, o order) numbered { return numbered{seq: id, body: o.body} },
		func(o order) (uint64, bool) { return o.forced, o.forced != 0 },
		sink,
	)
	return wrapped, reset, sink
}

func TestAssignSequential(t *testing.T) {
	wrapped, _, sink := newOrderAssigner(10)

	for _, b := range []string{"a", "b", "c"} {
		wrapped.Push(order{body: b}, true)
	}

	want := []numbered{{11, "a"}, {12, "b"}, {13, "c"}}
	if len(sink.got) != len(want) {
		t.Fatalf("forwarded %d elements, want %d", len(sink.got), len(want))
	}
	for i := range want {
		if sink.got[i] != want[i] {
			t.Fatalf("element %d got %+v, want %+v", i, sink.got[i], want[i])
		}
	}
}

func TestAssignExplicitOverridesCounter(t *testing.T) {
	wrapped, _, sink := newOrderAssigner(0)

	wrapped.Push(order{body: "a"}, true)             // auto → 1
	wrapped.Push(order{body: "b"}, true)             // auto → 2
	wrapped.Push(order{forced: 10, body: "c"}, true) // explicit → 10
	wrapped.Push(order{body: "d"}, true)             // auto → 11, not 3

	want := []uint64{1, 2, 10, 11}
	for i, w := range want {
		if sink.got[i].seq != w {
			t.Fatalf("id %d got %d, want %d", i, sink.got[i].seq, w)
		}
	}
}

func TestAssignExplicitRewind(t *testing.T) {
	wrapped, _, sink := newOrderAssigner(100)

	wrapped.Push(order{body: "a"}, true)            // auto → 101
	wrapped.Push(order{forced: 5, body: "b"}, true) // rewind → 5
	wrapped.Push(order{body: "c"}, true)            // continues → 6

	want := []uint64{101, 5, 6}
	for i, w := range want {
		if sink.got[i].seq != w {
			t.Fatalf("id %d got %d, want %d", i, sink.got[i].seq, w)
		}
	}
}

func TestAssignSentinelUntouched(t *testing.T) {
	wrapped, reset, sink := newOrderAssigner(3)

	wrapped.Push(order{body: "a"}, true)
	wrapped.Push(order{}, false)

	if !sink.ended {
		t.Fatal("sentinel not forwarded")
	}
	if len(sink.got) != 1 {
		t.Fatalf("forwarded %d elements, want 1", len(sink.got))
	}
	if counter := reset(0); counter != 4 {
		t.Fatalf("counter after sentinel got %d, want 4", counter)
	}
}

func TestAssignReset(t *testing.T) {
	wrapped, reset, sink := newOrderAssigner(0)

	wrapped.Push(order{body: "a"}, true)
	wrapped.Push(order{body: "b"}, true)
	if prior := reset(50); prior != 2 {
		t.Fatalf("reset returned %d, want 2", prior)
	}

	wrapped.Push(order{body: "c"}, true)
	if sink.got[2].seq != 51 {
		t.Fatalf("id after reset got %d, want 51", sink.got[2].seq)
	}
}
