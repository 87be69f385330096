// Package imageio reads and writes the pixel grids consumed and produced by
// the codec. PPM (P3 and P6) is the native interchange format; any image
// format registered with the standard image package is accepted on input.
package imageio

import (
	"image"
	"image/color"
)

// Pixel is one RGB sample. Channel values are scaled by the owning Image's
// denominator.
type Pixel struct {
	R, G, B uint16
}

// Image is a row-major pixel grid with a channel scale denominator.
type Image struct {
	Pixels      []Pixel
	Width       int
	Height      int
	Denominator uint16
}

// Bytes flattens the image into interleaved 8-bit RGB. The image denominator
// must be 255.
func (img *Image) Bytes() []byte {
	out := make([]byte, 0, len(img.Pixels)*3)
	for _, p := range img.Pixels {
		out = append(out, byte(p.R), byte(p.G), byte(p.B))
	}
	return out
}

// FromBytes builds an Image from interleaved 8-bit RGB data.
func FromBytes(data []byte, width, height int, denominator uint16) *Image {
	pixels := make([]Pixel, 0, width*height)
	for i := 0; i+2 < len(data); i += 3 {
		pixels = append(pixels, Pixel{
			R: uint16(data[i]),
			G: uint16(data[i+1]),
			B: uint16(data[i+2]),
		})
	}
	return &Image{
		Pixels:      pixels,
		Width:       width,
		Height:      height,
		Denominator: denominator,
	}
}

// ToRGBA renders the image into a standard RGBA image, rescaling channels to
// 8 bits when the denominator is not 255.
func (img *Image) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	d := uint32(img.Denominator)
	if d == 0 {
		d = 255
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixels[y*img.Width+x]
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(uint32(p.R) * 255 / d),
				G: uint8(uint32(p.G) * 255 / d),
				B: uint8(uint32(p.B) * 255 / d),
				A: 255,
			})
		}
	}
	return dst
}

// FromRGBA converts any standard image into an 8-bit Image (denominator 255).
func FromRGBA(src image.Image) *Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]Pixel, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			pixels = append(pixels, Pixel{
				R: uint16(r >> 8),
				G: uint16(g >> 8),
				B: uint16(b >> 8),
			})
		}
	}
	return &Image{
		Pixels:      pixels,
		Width:       width,
		Height:      height,
		Denominator: 255,
	}
}
