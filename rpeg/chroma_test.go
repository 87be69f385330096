package rpeg

import "testing"

func TestChromaIndexRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		v := ChromaOfIndex(i)
		if got := IndexOfChroma(v); got != i {
			t.Errorf("IndexOfChroma(ChromaOfIndex(%d)) = %d", i, got)
		}
	}
}

func TestIndexOfChromaMonotonic(t *testing.T) {
	prev := 0
	for v := float32(-0.5); v <= 0.5; v += 0.001 {
		idx := IndexOfChroma(v)
		if idx < prev {
			t.Fatalf("IndexOfChroma(%v) = %d, decreased from %d", v, idx, prev)
		}
		prev = idx
	}
}

func TestIndexOfChromaBounds(t *testing.T) {
	if got := IndexOfChroma(-1.0); got != 0 {
		t.Errorf("IndexOfChroma(-1.0) = %d, want 0", got)
	}
	if got := IndexOfChroma(1.0); got != 15 {
		t.Errorf("IndexOfChroma(1.0) = %d, want 15", got)
	}
	if got := IndexOfChroma(0); got != 7 {
		t.Errorf("IndexOfChroma(0) = %d, want 7", got)
	}
}

func TestChromaOfIndexClamps(t *testing.T) {
	if got := ChromaOfIndex(-1); got != chromaTable[0] {
		t.Errorf("ChromaOfIndex(-1) = %v, want table start", got)
	}
	if got := ChromaOfIndex(99); got != chromaTable[15] {
		t.Errorf("ChromaOfIndex(99) = %v, want table end", got)
	}
}
