// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqio_test

import (
	"testing"

	"code.hybscloud.com/seqio"
)

func TestPump(t *testing.T) {
	src := sliceSource([]string{"a", "b", "c"})
	sink := &collectSink[string]{}

	n := seqio.Pump[string](src, sink)
	if n != 3 {
		t.Fatalf("Pump got %d, want 3", n)
	}
	if len(sink.got) != 3 || sink.got[0] != "a" || sink.got[1] != "b" || sink.got[2] != "c" {
		t.Fatalf("forwarded %v, want [a b c]", sink.got)
	}
	if !sink.ended {
		t.Fatal("sentinel not forwarded")
	}
}

func TestPumpEmpty(t *testing.T) {
	src := sliceSource([]int(nil))
	sink := &collectSink[int]{}

	if n := seqio.Pump[int](src, sink); n != 0 {
		t.Fatalf("Pump got %d, want 0", n)
	}
	if len(sink.got) != 0 {
		t.Fatalf("forwarded %v, want none", sink.got)
	}
	if !sink.ended {
		t.Fatal("sentinel not forwarded")
	}
}
