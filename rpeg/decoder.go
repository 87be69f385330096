package rpeg

import (
	"fmt"

	"github.com/danielediazp/Lossy-Image-Compression/array2"
	"github.com/danielediazp/Lossy-Image-Compression/codec"
	"github.com/danielediazp/Lossy-Image-Compression/imageio"
)

// Decompress reverses Compress: unpack every word, undo the block transform,
// flatten the blocks back to pixels, convert to RGB, and re-scatter the
// block-ordered pixels into their true row-major positions. Width and height
// are the trimmed pixel dimensions recorded by the container; the output
// denominator is fixed at 255.
func Decompress(words [][4]byte, width, height int) (*imageio.Image, error) {
	if width < 0 || height < 0 || width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("%w: compressed dimensions %dx%d are not even", codec.ErrMalformedData, width, height)
	}
	if len(words) != (width/2)*(height/2) {
		return nil, fmt.Errorf("%w: %d words for %dx%d image", codec.ErrMalformedData, len(words), width, height)
	}

	coefficients := unpackWords(words, width, height)
	blocks := dctToBlocks(coefficients)
	cv := flattenBlocks(blocks)
	floats := componentVideoGridToFloats(cv)
	pixels := floatsToPixels(floats)

	return &imageio.Image{
		Pixels:      scatterBlockOrder(pixels),
		Width:       width,
		Height:      height,
		Denominator: 255,
	}, nil
}

// unpackWords decodes every word back into a quantized coefficient record.
func unpackWords(words [][4]byte, width, height int) *array2.Array2[DCTCoefficient] {
	coefficients := make([]DCTCoefficient, len(words))
	for i, word := range words {
		coefficients[i] = unpackWord(word)
	}
	return array2.FromRowMajor(width, height, coefficients)
}

// dctToBlocks undoes the transform for every coefficient record, fanning out
// across CPUs.
func dctToBlocks(coefficients *array2.Array2[DCTCoefficient]) *array2.Array2[Block] {
	data := coefficients.Data()
	blocks := make([]Block, len(data))
	parallelFor(len(data), func(i int) {
		blocks[i] = dctToBlock(data[i])
	})
	return array2.FromRowMajor(coefficients.Width(), coefficients.Height(), blocks)
}

// flattenBlocks lays out each block's four pixels sequentially, in corner
// order Y1, Y2, Y3, Y4. The result is block-ordered, not row-major;
// scatterBlockOrder fixes the positions after color conversion.
func flattenBlocks(blocks *array2.Array2[Block]) *array2.Array2[ComponentVideo] {
	cv := make([]ComponentVideo, 0, len(blocks.Data())*4)
	for _, block := range blocks.Data() {
		cv = append(cv, block.Y1, block.Y2, block.Y3, block.Y4)
	}
	return array2.FromRowMajor(blocks.Width(), blocks.Height(), cv)
}

// componentVideoGridToFloats inverts the color transform for every pixel.
func componentVideoGridToFloats(cv *array2.Array2[ComponentVideo]) *array2.Array2[RGBFloats] {
	floats := make([]RGBFloats, 0, len(cv.Data()))
	for _, pixel := range cv.Data() {
		floats = append(floats, componentVideoToFloats(pixel))
	}
	return array2.FromRowMajor(cv.Width(), cv.Height(), floats)
}

// floatsToPixels narrows every float pixel to integer channels.
func floatsToPixels(floats *array2.Array2[RGBFloats]) *array2.Array2[imageio.Pixel] {
	pixels := make([]imageio.Pixel, 0, len(floats.Data()))
	for _, pixel := range floats.Data() {
		pixels = append(pixels, floatsToRGB(pixel))
	}
	return array2.FromRowMajor(floats.Width(), floats.Height(), pixels)
}

// scatterBlockOrder rewrites the flat per-block pixel sequence into true
// row-major image order: walking the same even-stepped (row, col) loop as
// block extraction, each group of four consecutive pixels lands at
// (row, col), (row, col+1), (row+1, col), (row+1, col+1).
func scatterBlockOrder(pixels *array2.Array2[imageio.Pixel]) []imageio.Pixel {
	width := pixels.Width()
	height := pixels.Height()
	data := pixels.Data()

	out := make([]imageio.Pixel, width*height)
	counter := 0
	for row := 0; row < height; row += 2 {
		for col := 0; col < width; col += 2 {
			out[row*width+col] = data[counter]
			out[row*width+col+1] = data[counter+1]
			out[(row+1)*width+col] = data[counter+2]
			out[(row+1)*width+col+1] = data[counter+3]
			counter += 4
		}
	}
	return out
}
