package imageio

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
)

// Downscale resizes the image to the given width, preserving aspect ratio.
// A target width of zero or one at least as large as the image returns the
// input unchanged. The result is 8-bit (denominator 255).
func Downscale(img *Image, targetWidth int) *Image {
	if targetWidth <= 0 || targetWidth >= img.Width {
		return img
	}
	resized := resize.Resize(uint(targetWidth), 0, img.ToRGBA(), resize.NearestNeighbor)
	return FromRGBA(resized)
}

// GaussianBlur smooths the image with the given sigma. Sigma <= 0 returns the
// input unchanged. The result is 8-bit (denominator 255).
func GaussianBlur(img *Image, sigma float32) *Image {
	if sigma <= 0 {
		return img
	}
	g := gift.New(gift.GaussianBlur(sigma))
	src := img.ToRGBA()
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return FromRGBA(dst)
}
