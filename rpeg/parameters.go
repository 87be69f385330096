package rpeg

import (
	"fmt"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
)

// Options contains encoding options for rpeg
type Options struct {
	// Zstd wraps the compressed stream in the zstd container variant
	Zstd bool

	// ScaleWidth downscales the input to this width before compressing.
	// 0 disables scaling.
	ScaleWidth int

	// BlurSigma applies a Gaussian blur of this sigma before compressing.
	// 0 disables the blur.
	BlurSigma float32
}

// Validate validates the options
func (o *Options) Validate() error {
	if o.ScaleWidth < 0 {
		return fmt.Errorf("%w: scale width %d", codec.ErrInvalidParameter, o.ScaleWidth)
	}
	if o.BlurSigma < 0 {
		return fmt.Errorf("%w: blur sigma %v", codec.ErrInvalidParameter, o.BlurSigma)
	}
	return nil
}
