package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Read decodes an image from r. PPM input is recognized by its magic bytes;
// anything else is handed to the standard image decoder, which covers PNG,
// JPEG, GIF, BMP and TIFF through the registered formats.
func Read(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("imageio: read input: %w", err)
	}
	if magic[0] == 'P' && (magic[1] == '3' || magic[1] == '6') {
		return ReadPPM(br)
	}

	m, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode input: %w", err)
	}
	return FromRGBA(m), nil
}
