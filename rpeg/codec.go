// Package rpeg implements a lossy still-image codec. Pixels move through a
// fixed pipeline: RGB scaled to floats, a component-video color transform,
// 2x2 block decomposition with an averaging-differencing transform,
// quantization, and packing of each block into one 32-bit big-endian word,
// roughly a third the size of the input. Decompression reverses every stage.
package rpeg

import (
	"bytes"
	"fmt"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
	"github.com/danielediazp/Lossy-Image-Compression/imageio"
	"github.com/danielediazp/Lossy-Image-Compression/rpegio"
)

// Codec implements the codec.Codec interface for rpeg
type Codec struct{}

// NewCodec creates a new rpeg codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode compresses interleaved 8-bit RGB pixel data into a framed rpeg
// stream. Odd dimensions are trimmed to even, so the recorded dimensions may
// be smaller than the input's.
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	opts := &Options{}
	if params.Options != nil {
		var ok bool
		if opts, ok = params.Options.(*Options); !ok {
			return nil, fmt.Errorf("%w: options are not rpeg options", codec.ErrInvalidParameter)
		}
		if err := opts.Validate(); err != nil {
			return nil, err
		}
	}

	if params.Width <= 0 || params.Height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d", codec.ErrInvalidParameter, params.Width, params.Height)
	}
	if len(params.PixelData) != params.Width*params.Height*3 {
		return nil, fmt.Errorf("%w: %d bytes of pixel data for %dx%d RGB",
			codec.ErrInvalidParameter, len(params.PixelData), params.Width, params.Height)
	}

	denominator := params.Denominator
	if denominator == 0 {
		denominator = 255
	}
	img := imageio.FromBytes(params.PixelData, params.Width, params.Height, denominator)
	img = imageio.Downscale(img, opts.ScaleWidth)
	img = imageio.GaussianBlur(img, opts.BlurSigma)

	words, width, height, err := Compress(img)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if opts.Zstd {
		err = rpegio.WriteWordsZstd(&buf, words, width, height)
	} else {
		err = rpegio.WriteWords(&buf, words, width, height)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses a framed rpeg stream
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	words, width, height, err := rpegio.ReadWords(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	img, err := Decompress(words, width, height)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData:   img.Bytes(),
		Width:       img.Width,
		Height:      img.Height,
		Denominator: img.Denominator,
	}, nil
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "rpeg"
}

// Extension returns the file extension for compressed output
func (c *Codec) Extension() string {
	return ".rpeg"
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
