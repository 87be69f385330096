package rpeg

import (
	"fmt"

	"github.com/danielediazp/Lossy-Image-Compression/array2"
	"github.com/danielediazp/Lossy-Image-Compression/imageio"
)

// Compress runs the full compression pipeline: trim to even dimensions,
// convert to float RGB and then component video, gather 2x2 blocks, transform
// and quantize each block, and pack every coefficient record into a 32-bit
// word. The returned width and height are the trimmed pixel dimensions the
// container records; one word stands for each 2x2 block, so
// len(words) == (width/2)*(height/2).
func Compress(img *imageio.Image) (words [][4]byte, width, height int, err error) {
	trimmed := array2.FromEvenDimension(img.Width, img.Height, img.Pixels)

	floats := pixelsToFloats(trimmed, img.Denominator)
	cv := floatsToComponentVideo(floats)
	blocks := gatherBlocks(cv)
	coefficients := blocksToDCT(blocks)

	words, err = packCoefficients(coefficients)
	if err != nil {
		return nil, 0, 0, err
	}
	return words, trimmed.Width(), trimmed.Height(), nil
}

// pixelsToFloats scales every integer pixel by the image denominator.
func pixelsToFloats(pixels *array2.Array2[imageio.Pixel], denominator uint16) *array2.Array2[RGBFloats] {
	if denominator == 0 {
		denominator = 255
	}
	floats := make([]RGBFloats, 0, pixels.Size())
	pixels.IterRowMajor(func(col, row int, p imageio.Pixel) bool {
		floats = append(floats, rgbToFloats(p, float64(denominator)))
		return true
	})
	return array2.FromRowMajor(pixels.Width(), pixels.Height(), floats)
}

// floatsToComponentVideo converts every float pixel to luma/chroma form.
func floatsToComponentVideo(floats *array2.Array2[RGBFloats]) *array2.Array2[ComponentVideo] {
	cv := make([]ComponentVideo, 0, floats.Size())
	floats.IterRowMajor(func(col, row int, p RGBFloats) bool {
		cv = append(cv, componentVideo(p))
		return true
	})
	return array2.FromRowMajor(floats.Width(), floats.Height(), cv)
}

// gatherBlocks extracts the non-overlapping 2x2 blocks in row-major scan
// order of their top-left corner. The grid keeps the pixel dimensions even
// though it holds one block per four pixels.
func gatherBlocks(cv *array2.Array2[ComponentVideo]) *array2.Array2[Block] {
	width := cv.Width()
	height := cv.Height()
	blocks := make([]Block, 0, (width/2)*(height/2))
	for row := 0; row < height; row += 2 {
		for col := 0; col < width; col += 2 {
			blocks = append(blocks, blockAt(cv, col, row))
		}
	}
	return array2.FromRowMajor(width, height, blocks)
}

// blocksToDCT transforms and quantizes every block. Blocks are independent,
// so the work fans out across CPUs into preassigned result slots.
func blocksToDCT(blocks *array2.Array2[Block]) *array2.Array2[DCTCoefficient] {
	data := blocks.Data()
	coefficients := make([]DCTCoefficient, len(data))
	parallelFor(len(data), func(i int) {
		coefficients[i] = computeDCT(data[i])
	})
	return array2.FromRowMajor(blocks.Width(), blocks.Height(), coefficients)
}

// packCoefficients packs every coefficient record into a big-endian word,
// propagating the first field overflow instead of writing a corrupted word.
func packCoefficients(coefficients *array2.Array2[DCTCoefficient]) ([][4]byte, error) {
	data := coefficients.Data()
	words := make([][4]byte, len(data))
	for i, coefficient := range data {
		word, err := packWord(coefficient)
		if err != nil {
			return nil, fmt.Errorf("rpeg: word %d: %w", i, err)
		}
		words[i] = word
	}
	return words, nil
}
