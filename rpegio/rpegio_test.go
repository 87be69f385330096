package rpegio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
)

func testWords() [][4]byte {
	return [][4]byte{
		{0x01, 0x02, 0x03, 0x04},
		{0xDE, 0xAD, 0xBE, 0xEF},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	words := testWords()

	var buf bytes.Buffer
	if err := WriteWords(&buf, words, 4, 2); err != nil {
		t.Fatalf("WriteWords: %v", err)
	}

	got, w, h, err := ReadWords(&buf)
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if w != 4 || h != 2 {
		t.Errorf("dimensions: got %dx%d, want 4x2", w, h)
	}
	if diff := cmp.Diff(words, got); diff != "" {
		t.Errorf("words (-want +got):\n%s", diff)
	}
}

func TestZstdRoundTrip(t *testing.T) {
	words := testWords()

	var buf bytes.Buffer
	if err := WriteWordsZstd(&buf, words, 4, 2); err != nil {
		t.Fatalf("WriteWordsZstd: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("rpegz\n")) {
		t.Fatal("zstd container should start with its magic")
	}

	got, w, h, err := ReadWords(&buf)
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if w != 4 || h != 2 {
		t.Errorf("dimensions: got %dx%d, want 4x2", w, h)
	}
	if diff := cmp.Diff(words, got); diff != "" {
		t.Errorf("words (-want +got):\n%s", diff)
	}
}

func TestWriteRejectsWordCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWords(&buf, testWords(), 6, 2)
	if !errors.Is(err, codec.ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "Compressed image format 9\n4 2\n"},
		{"missing dimensions", "Compressed image format 2\n"},
		{"garbage dimensions", "Compressed image format 2\nx y\n"},
		{"truncated words", "Compressed image format 2\n4 2\n\x01\x02"},
		{"bad zstd stream", "rpegz\nnot a zstd stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ReadWords(bytes.NewReader([]byte(tt.input)))
			if !errors.Is(err, codec.ErrMalformedData) {
				t.Errorf("got %v, want ErrMalformedData", err)
			}
		})
	}
}
