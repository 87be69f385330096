package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
)

// maxPixels bounds the pixel allocation drawn from an untrusted header.
const maxPixels = 1 << 30

// ReadPPM decodes a PPM image in either the binary (P6) or plain-text (P3)
// variant. The maxval of the file becomes the image denominator.
func ReadPPM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: read magic: %w", err)
	}
	if magic != "P6" && magic != "P3" {
		return nil, fmt.Errorf("%w: not a PPM file (magic %q)", codec.ErrMalformedData, magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: read width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: read height: %w", err)
	}
	maxval, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: read maxval: %w", err)
	}
	if width <= 0 || height <= 0 || maxval <= 0 || maxval > 65535 {
		return nil, fmt.Errorf("%w: ppm header %dx%d maxval %d", codec.ErrMalformedData, width, height, maxval)
	}
	if width > maxPixels/height {
		return nil, fmt.Errorf("%w: ppm dimensions %dx%d exceed pixel limit", codec.ErrMalformedData, width, height)
	}

	pixels := make([]Pixel, width*height)
	if magic == "P3" {
		for i := range pixels {
			r0, err := readIntToken(br)
			if err != nil {
				return nil, fmt.Errorf("ppm: read sample: %w", err)
			}
			g0, err := readIntToken(br)
			if err != nil {
				return nil, fmt.Errorf("ppm: read sample: %w", err)
			}
			b0, err := readIntToken(br)
			if err != nil {
				return nil, fmt.Errorf("ppm: read sample: %w", err)
			}
			if r0 < 0 || r0 > maxval || g0 < 0 || g0 > maxval || b0 < 0 || b0 > maxval {
				return nil, fmt.Errorf("%w: sample %d %d %d outside [0, %d]",
					codec.ErrMalformedData, r0, g0, b0, maxval)
			}
			pixels[i] = Pixel{R: uint16(r0), G: uint16(g0), B: uint16(b0)}
		}
	} else {
		bytesPerSample := 1
		if maxval > 255 {
			bytesPerSample = 2
		}
		raw := make([]byte, width*height*3*bytesPerSample)
		if _, err := io.ReadFull(br, raw); err != nil {
			return nil, fmt.Errorf("%w: ppm pixel data: %v", codec.ErrMalformedData, err)
		}
		for i := range pixels {
			off := i * 3 * bytesPerSample
			if bytesPerSample == 1 {
				pixels[i] = Pixel{
					R: uint16(raw[off]),
					G: uint16(raw[off+1]),
					B: uint16(raw[off+2]),
				}
			} else {
				pixels[i] = Pixel{
					R: uint16(raw[off])<<8 | uint16(raw[off+1]),
					G: uint16(raw[off+2])<<8 | uint16(raw[off+3]),
					B: uint16(raw[off+4])<<8 | uint16(raw[off+5]),
				}
			}
		}
	}

	return &Image{
		Pixels:      pixels,
		Width:       width,
		Height:      height,
		Denominator: uint16(maxval),
	}, nil
}

// WritePPM encodes the image as binary PPM (P6) with the image's denominator
// as maxval.
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	maxval := img.Denominator
	if maxval == 0 {
		maxval = 255
	}
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", img.Width, img.Height, maxval); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	wide := maxval > 255
	for _, p := range img.Pixels {
		var err error
		if wide {
			_, err = bw.Write([]byte{
				byte(p.R >> 8), byte(p.R),
				byte(p.G >> 8), byte(p.G),
				byte(p.B >> 8), byte(p.B),
			})
		} else {
			_, err = bw.Write([]byte{byte(p.R), byte(p.G), byte(p.B)})
		}
		if err != nil {
			return fmt.Errorf("ppm: write pixels: %w", err)
		}
	}

	return bw.Flush()
}

// readToken reads the next whitespace-delimited token, skipping comment lines
// introduced by '#'.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#':
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	n := 0
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		return 0, fmt.Errorf("%w: expected integer, got %q", codec.ErrMalformedData, tok)
	}
	return n, nil
}
