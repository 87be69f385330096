package rpeg

import (
	"github.com/danielediazp/Lossy-Image-Compression/imageio"
)

// RGBFloats is a pixel with real-valued channels, nominally in [0, 1] after
// division by the image denominator.
type RGBFloats struct {
	Red   float64
	Green float64
	Blue  float64
}

// ComponentVideo is a pixel in luma/chroma form: brightness Y and the two
// color-difference side channels Pb and Pr.
type ComponentVideo struct {
	Y  float64
	Pb float64
	Pr float64
}

// rgbToFloats scales an integer pixel by the image denominator.
func rgbToFloats(p imageio.Pixel, denominator float64) RGBFloats {
	return RGBFloats{
		Red:   float64(p.R) / denominator,
		Green: float64(p.G) / denominator,
		Blue:  float64(p.B) / denominator,
	}
}

// componentVideo converts a float pixel to luma/chroma form.
func componentVideo(p RGBFloats) ComponentVideo {
	return ComponentVideo{
		Y:  0.299*p.Red + 0.587*p.Green + 0.114*p.Blue,
		Pb: -0.168736*p.Red - 0.331264*p.Green + 0.5*p.Blue,
		Pr: 0.5*p.Red - 0.418688*p.Green - 0.081312*p.Blue,
	}
}

// componentVideoToFloats inverts componentVideo and rescales to 8-bit range;
// decompressed output always has denominator 255.
func componentVideoToFloats(cv ComponentVideo) RGBFloats {
	return RGBFloats{
		Red:   (cv.Y + 1.402*cv.Pr) * 255.0,
		Green: (cv.Y - 0.344136*cv.Pb - 0.714136*cv.Pr) * 255.0,
		Blue:  (cv.Y + 1.772*cv.Pb) * 255.0,
	}
}

// floatsToRGB narrows float channels to integers. The conversion truncates
// toward zero, matching the historical on-disk output; channels outside
// [0, 255] saturate at the bounds rather than wrapping.
func floatsToRGB(p RGBFloats) imageio.Pixel {
	return imageio.Pixel{
		R: truncateChannel(p.Red),
		G: truncateChannel(p.Green),
		B: truncateChannel(p.Blue),
	}
}

func truncateChannel(v float64) uint16 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint16(v)
}
