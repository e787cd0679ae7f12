package planner

import "testing"

func TestSplitBatchesSingle(t *testing.T) {
	batches := SplitBatches("X", 100, 500)
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	if batches[0].Prep != "X" || batches[0].Volume != 100 {
		t.Fatalf("bad batch %+v", batches[0])
	}
}

func TestSplitBatchesMultiple(t *testing.T) {
	batches := SplitBatches("X", 1300, 500)
	want := []int{500, 500, 300}
	if len(batches) != len(want) {
		t.Fatalf("expected %d batches, got %d", len(want), len(batches))
	}
	for i, v := range want {
		if batches[i].Volume != v {
			t.Fatalf("batch %d: got %d want %d", i, batches[i].Volume, v)
		}
	}
}

func TestSplitBatchesExact(t *testing.T) {
	batches := SplitBatches("X", 1000, 500)
	if len(batches) != 2 || batches[0].Volume != 500 || batches[1].Volume != 500 {
		t.Fatalf("bad split %+v", batches)
	}
}

func TestSplitBatchesZero(t *testing.T) {
	if batches := SplitBatches("X", 0, 500); len(batches) != 0 {
		t.Fatalf("expected no batches, got %+v", batches)
	}
}
