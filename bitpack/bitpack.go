// Package bitpack provides pure functions for reading and writing bit fields
// inside a 64-bit word, with two's-complement semantics for signed fields.
//
// All arithmetic is carried out on 64-bit words to avoid intermediate
// overflow even when callers only ever use the low 32 bits.
package bitpack

import (
	"fmt"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
)

const wordLength = 64

// FitsUnsigned reports whether the unsigned value n requires no more than
// width bits.
func FitsUnsigned(n uint64, width uint) bool {
	if width >= wordLength {
		return true
	}
	return n>>width == 0
}

// FitsSigned reports whether the signed value n lies in
// [-2^(width-1), 2^(width-1)]. The interval is closed on both ends, one value
// wider than the strict two's-complement range on the positive side; packed
// streams depend on this exact boundary.
func FitsSigned(n int64, width uint) bool {
	if width == 0 {
		return false
	}
	if width >= wordLength {
		return true
	}
	bound := int64(1) << (width - 1)
	return n >= -bound && n <= bound
}

// GetUnsigned extracts the width bits of word beginning at least-significant
// bit lsb as an unsigned value.
func GetUnsigned(word uint64, width, lsb uint) uint64 {
	return word << (wordLength - width - lsb) >> (wordLength - width)
}

// GetSigned extracts the width bits of word beginning at least-significant
// bit lsb as a two's-complement signed value; the final shift sign-extends.
func GetSigned(word uint64, width, lsb uint) int64 {
	return int64(word<<(wordLength-width-lsb)) >> (wordLength - width)
}

// PutUnsigned returns word with value placed in the width bits beginning at
// least-significant bit lsb. The target bits must currently be zero; they are
// ORed into, not cleared first. Fails with codec.ErrFieldOverflow when value
// does not fit in width unsigned bits.
func PutUnsigned(word uint64, width, lsb uint, value uint64) (uint64, error) {
	if !FitsUnsigned(value, width) {
		return 0, fmt.Errorf("%w: %d does not fit in %d unsigned bits", codec.ErrFieldOverflow, value, width)
	}
	return (value << lsb) | word, nil
}

// PutSigned returns word with value placed, masked to width bits, in the
// width bits beginning at least-significant bit lsb. The target bits must
// currently be zero. Fails with codec.ErrFieldOverflow when value does not
// fit in width signed bits.
func PutSigned(word uint64, width, lsb uint, value int64) (uint64, error) {
	if !FitsSigned(value, width) {
		return 0, fmt.Errorf("%w: %d does not fit in %d signed bits", codec.ErrFieldOverflow, value, width)
	}
	mask := uint64(1)<<width - 1
	return (uint64(value)&mask)<<lsb | word, nil
}
