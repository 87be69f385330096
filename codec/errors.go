package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when encoding/decoding parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrFieldOverflow is returned when a value does not fit the bit width
	// assigned to it in a packed word
	ErrFieldOverflow = errors.New("bit field overflow")

	// ErrMalformedData is returned when compressed input is truncated or garbled
	ErrMalformedData = errors.New("malformed compressed data")
)
