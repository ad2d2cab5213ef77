package price

import (
	"fmt"
	"testing"
)

func TestHistory_BoundedFIFO(t *testing.T) {
	h := NewHistory()
	for i := 0; i < Capacity+1; i++ {
		h.Push(Sample{Price: float64(i), Label: fmt.Sprintf("t%d", i)})
	}
	if h.Len() != Capacity {
		t.Fatalf("len = %d, want %d", h.Len(), Capacity)
	}
	snap := h.Snapshot()
	if snap.Prices[0] != 1 || snap.Labels[0] != "t1" {
		t.Errorf("oldest sample not evicted: %v %v", snap.Prices[0], snap.Labels[0])
	}
	if got := snap.Prices[len(snap.Prices)-1]; got != Capacity {
		t.Errorf("newest price = %v, want %d", got, Capacity)
	}
}

func TestHistory_PricesAndLabelsStayAligned(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 137; i++ {
		h.Push(Sample{Price: float64(i), Label: fmt.Sprintf("t%d", i)})
		snap := h.Snapshot()
		if len(snap.Prices) != len(snap.Labels) {
			t.Fatalf("after push %d: %d prices vs %d labels", i, len(snap.Prices), len(snap.Labels))
		}
		if len(snap.Prices) > Capacity {
			t.Fatalf("after push %d: %d entries exceeds capacity", i, len(snap.Prices))
		}
	}
}

func TestHistory_SnapshotIsIndependent(t *testing.T) {
	h := NewHistory()
	h.Push(Sample{Price: 100, Label: "t0"})
	snap := h.Snapshot()
	snap.Prices[0] = -1
	snap.Labels[0] = "mutated"
	after := h.Snapshot()
	if after.Prices[0] != 100 || after.Labels[0] != "t0" {
		t.Error("snapshot mutation reached the history")
	}
}
