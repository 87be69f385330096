package rpeg

// chromaTable is the fixed 16-entry quantization of a chroma side channel.
// Buckets are denser near zero, where chroma values concentrate.
var chromaTable = [16]float32{
	-0.35, -0.20, -0.15, -0.10, -0.077, -0.055, -0.033, -0.011,
	0.011, 0.033, 0.055, 0.077, 0.10, 0.15, 0.20, 0.35,
}

// IndexOfChroma quantizes a chroma value to the index of the nearest table
// entry. The search compares against bucket midpoints, so the mapping is
// monotonic and deterministic.
func IndexOfChroma(chroma float32) int {
	lo, hi := 0, len(chromaTable)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if chroma <= (chromaTable[mid]+chromaTable[mid+1])/2 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// ChromaOfIndex returns the chroma value of a table index. Indices outside
// the table clamp to its ends; a 4-bit field cannot exceed 15, so only
// negative misuse is ever clamped in practice.
func ChromaOfIndex(index int) float32 {
	if index < 0 {
		index = 0
	}
	if index >= len(chromaTable) {
		index = len(chromaTable) - 1
	}
	return chromaTable[index]
}
