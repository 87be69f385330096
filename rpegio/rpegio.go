// Package rpegio frames packed code words for storage: a text header carrying
// the trimmed pixel dimensions followed by 4-byte big-endian words, optionally
// wrapped in a zstd container.
package rpegio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
)

const (
	header    = "Compressed image format 2"
	zstdMagic = "rpegz\n"
)

// WriteWords writes the plain container: header line, dimension line, then
// one 4-byte big-endian word per entry. Width and height are the trimmed
// pixel dimensions, so len(words) must equal (width/2)*(height/2).
func WriteWords(w io.Writer, words [][4]byte, width, height int) error {
	if err := validate(words, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n", header, width, height); err != nil {
		return fmt.Errorf("rpegio: write header: %w", err)
	}
	for _, word := range words {
		if _, err := w.Write(word[:]); err != nil {
			return fmt.Errorf("rpegio: write words: %w", err)
		}
	}
	return nil
}

// WriteWordsZstd writes the zstd container: the zstd magic line followed by
// the plain container compressed as a zstd stream.
func WriteWordsZstd(w io.Writer, words [][4]byte, width, height int) error {
	if err := validate(words, width, height); err != nil {
		return err
	}
	if _, err := io.WriteString(w, zstdMagic); err != nil {
		return fmt.Errorf("rpegio: write magic: %w", err)
	}
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return fmt.Errorf("rpegio: zstd writer: %w", err)
	}
	if err := WriteWords(enc, words, width, height); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("rpegio: zstd close: %w", err)
	}
	return nil
}

// ReadWords reads either container variant, sniffing the zstd magic, and
// returns the words with the recorded pixel dimensions. The word count must
// match the dimensions exactly.
func ReadWords(r io.Reader) (words [][4]byte, width, height int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("rpegio: read input: %w", err)
	}

	if bytes.HasPrefix(data, []byte(zstdMagic)) {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("rpegio: zstd reader: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data[len(zstdMagic):], nil)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: zstd stream: %v", codec.ErrMalformedData, err)
		}
	}

	rest, ok := bytes.CutPrefix(data, []byte(header+"\n"))
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: missing header", codec.ErrMalformedData)
	}
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		return nil, 0, 0, fmt.Errorf("%w: missing dimension line", codec.ErrMalformedData)
	}
	if _, err := fmt.Sscanf(string(rest[:nl]), "%d %d", &width, &height); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: dimension line %q", codec.ErrMalformedData, rest[:nl])
	}
	if width < 0 || height < 0 {
		return nil, 0, 0, fmt.Errorf("%w: negative dimensions %dx%d", codec.ErrMalformedData, width, height)
	}

	body := rest[nl+1:]
	wantWords := (width / 2) * (height / 2)
	if len(body) != wantWords*4 {
		return nil, 0, 0, fmt.Errorf("%w: %d bytes of words for %dx%d (want %d)",
			codec.ErrMalformedData, len(body), width, height, wantWords*4)
	}

	words = make([][4]byte, wantWords)
	for i := range words {
		copy(words[i][:], body[i*4:])
	}
	return words, width, height, nil
}

func validate(words [][4]byte, width, height int) error {
	if width < 0 || height < 0 || len(words) != (width/2)*(height/2) {
		return fmt.Errorf("%w: %d words for %dx%d", codec.ErrInvalidParameter, len(words), width, height)
	}
	return nil
}
