package rpeg

import (
	"encoding/binary"
	"fmt"

	"github.com/danielediazp/Lossy-Image-Compression/bitpack"
)

// Bit layout of one packed 32-bit word. The six fields fill the word exactly.
const (
	widthA     = 9
	widthBCD   = 5
	widthIndex = 4

	lsbA  = 23
	lsbB  = 18
	lsbC  = 13
	lsbD  = 8
	lsbPb = 4
	lsbPr = 0
)

// packWord encodes a quantized coefficient record as a 4-byte big-endian
// word. Any field that does not fit its width aborts the word with a field
// overflow error.
func packWord(coefficient DCTCoefficient) ([4]byte, error) {
	var word uint64
	var err error

	if word, err = bitpack.PutUnsigned(word, widthA, lsbA, uint64(coefficient.A)); err != nil {
		return [4]byte{}, fmt.Errorf("pack a: %w", err)
	}
	if word, err = bitpack.PutSigned(word, widthBCD, lsbB, coefficient.B); err != nil {
		return [4]byte{}, fmt.Errorf("pack b: %w", err)
	}
	if word, err = bitpack.PutSigned(word, widthBCD, lsbC, coefficient.C); err != nil {
		return [4]byte{}, fmt.Errorf("pack c: %w", err)
	}
	if word, err = bitpack.PutSigned(word, widthBCD, lsbD, coefficient.D); err != nil {
		return [4]byte{}, fmt.Errorf("pack d: %w", err)
	}
	if word, err = bitpack.PutUnsigned(word, widthIndex, lsbPb, uint64(coefficient.IndexOfPb)); err != nil {
		return [4]byte{}, fmt.Errorf("pack pb index: %w", err)
	}
	if word, err = bitpack.PutUnsigned(word, widthIndex, lsbPr, uint64(coefficient.IndexOfPr)); err != nil {
		return [4]byte{}, fmt.Errorf("pack pr index: %w", err)
	}

	var out [4]byte
	binary.BigEndian.PutUint32(out[:], uint32(word))
	return out, nil
}

// unpackWord reverses packWord.
func unpackWord(data [4]byte) DCTCoefficient {
	word := uint64(binary.BigEndian.Uint32(data[:]))
	return DCTCoefficient{
		A:         int64(bitpack.GetUnsigned(word, widthA, lsbA)),
		B:         bitpack.GetSigned(word, widthBCD, lsbB),
		C:         bitpack.GetSigned(word, widthBCD, lsbC),
		D:         bitpack.GetSigned(word, widthBCD, lsbD),
		IndexOfPb: int(bitpack.GetUnsigned(word, widthIndex, lsbPb)),
		IndexOfPr: int(bitpack.GetUnsigned(word, widthIndex, lsbPr)),
	}
}
