package rpeg

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		coefficient DCTCoefficient
	}{
		{"zero", DCTCoefficient{}},
		{"max a", DCTCoefficient{A: 511, IndexOfPb: 15, IndexOfPr: 15}},
		{"negative diffs", DCTCoefficient{A: 300, B: -15, C: -1, D: -5, IndexOfPb: 8, IndexOfPr: 10}},
		{"positive diffs", DCTCoefficient{A: 42, B: 15, C: 7, D: 1, IndexOfPb: 0, IndexOfPr: 3}},
		{"signed minimum", DCTCoefficient{A: 1, B: -16, C: -16, D: -16, IndexOfPb: 7, IndexOfPr: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, err := packWord(tt.coefficient)
			if err != nil {
				t.Fatalf("packWord: %v", err)
			}
			got := unpackWord(word)
			if diff := cmp.Diff(tt.coefficient, got); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPackFieldOverflow(t *testing.T) {
	tests := []struct {
		name        string
		coefficient DCTCoefficient
	}{
		{"a too large", DCTCoefficient{A: 512}},
		{"a negative", DCTCoefficient{A: -1}},
		{"b too large", DCTCoefficient{B: 17}},
		{"d too negative", DCTCoefficient{D: -17}},
		{"chroma index too large", DCTCoefficient{IndexOfPb: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := packWord(tt.coefficient); !errors.Is(err, codec.ErrFieldOverflow) {
				t.Errorf("got %v, want ErrFieldOverflow", err)
			}
		})
	}
}

func TestPackedLayout(t *testing.T) {
	// a=1 alone lands in bits [23,32): big-endian byte 0 = 0x00, byte 1 = 0x80.
	word, err := packWord(DCTCoefficient{A: 1})
	if err != nil {
		t.Fatalf("packWord: %v", err)
	}
	if got := [4]byte{0x00, 0x80, 0x00, 0x00}; word != got {
		t.Errorf("a field layout: got %x", word)
	}

	// index_of_pr occupies the lowest 4 bits.
	word, err = packWord(DCTCoefficient{IndexOfPr: 0xF})
	if err != nil {
		t.Fatalf("packWord: %v", err)
	}
	if got := [4]byte{0x00, 0x00, 0x00, 0x0F}; word != got {
		t.Errorf("pr field layout: got %x", word)
	}
}
