package codec

// Codec is the universal interface for all image codecs
type Codec interface {
	// Encode encodes pixel data
	Encode(params EncodeParams) ([]byte, error)

	// Decode decodes compressed data
	Decode(data []byte) (*DecodeResult, error)

	// Name returns a human-readable name
	Name() string

	// Extension returns the file extension used for compressed files
	Extension() string
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	PixelData   []byte  // Raw pixel data, interleaved RGB, row-major
	Width       int     // Image width
	Height      int     // Image height
	Denominator uint16  // Channel scale denominator (255 for 8-bit input)
	Options     Options // Codec-specific options
}

// Options is an interface for codec-specific encoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	PixelData   []byte // Decoded pixel data, interleaved RGB, row-major
	Width       int    // Image width
	Height      int    // Image height
	Denominator uint16 // Channel scale denominator
}
