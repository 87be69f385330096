package rpeg

import (
	"math"

	"github.com/danielediazp/Lossy-Image-Compression/array2"
)

// Block holds the four component-video pixels of one 2x2 neighborhood:
// Y1 top-left, Y2 top-right, Y3 bottom-left, Y4 bottom-right.
type Block struct {
	Y1 ComponentVideo
	Y2 ComponentVideo
	Y3 ComponentVideo
	Y4 ComponentVideo
}

// DCTCoefficient is the quantized transform of one Block: four luma
// coefficients and the chroma table indices of the block's average Pb and Pr.
type DCTCoefficient struct {
	A, B, C, D int64
	IndexOfPb  int
	IndexOfPr  int
}

// blockAt gathers the 2x2 block whose top-left corner is (col, row).
// col and row must both be even and at least two cells inside the grid.
func blockAt(cv *array2.Array2[ComponentVideo], col, row int) Block {
	y1, _ := cv.Get(col, row)
	y2, _ := cv.Get(col+1, row)
	y3, _ := cv.Get(col, row+1)
	y4, _ := cv.Get(col+1, row+1)
	return Block{Y1: y1, Y2: y2, Y3: y3, Y4: y4}
}

// computeDCT applies the averaging-differencing transform to a block and
// quantizes the result: a scales to 9 unsigned bits, b, c and d clamp to
// [-0.3, 0.3] and scale to 5 signed bits, and the averaged chroma channels
// quantize through the chroma table.
func computeDCT(block Block) DCTCoefficient {
	const denominator = 4.0
	y1, y2, y3, y4 := block.Y1, block.Y2, block.Y3, block.Y4

	a := (y4.Y + y3.Y + y2.Y + y1.Y) / denominator
	b := (y4.Y + y3.Y - y2.Y - y1.Y) / denominator
	c := (y4.Y - y3.Y + y2.Y - y1.Y) / denominator
	d := (y4.Y - y3.Y - y2.Y + y1.Y) / denominator
	averagePb := (y1.Pb + y2.Pb + y3.Pb + y4.Pb) / denominator
	averagePr := (y1.Pr + y2.Pr + y3.Pr + y4.Pr) / denominator

	return DCTCoefficient{
		A:         int64(math.Round(a * 511.0)),
		B:         int64(math.Round(clamp(b, -0.3, 0.3) * 50.0)),
		C:         int64(math.Round(clamp(c, -0.3, 0.3) * 50.0)),
		D:         int64(math.Round(clamp(d, -0.3, 0.3) * 50.0)),
		IndexOfPb: IndexOfChroma(float32(averagePb)),
		IndexOfPr: IndexOfChroma(float32(averagePr)),
	}
}

// dctToBlock undoes computeDCT, producing four component-video pixels that
// share the block's chroma but carry individual luma.
func dctToBlock(coefficient DCTCoefficient) Block {
	a := clamp(float64(coefficient.A)/511.0, 0.0, 1.0)
	b := clamp(float64(coefficient.B)/50.0, -0.3, 0.3)
	c := clamp(float64(coefficient.C)/50.0, -0.3, 0.3)
	d := clamp(float64(coefficient.D)/50.0, -0.3, 0.3)

	y1 := a - b - c + d
	y2 := a - b + c - d
	y3 := a + b - c - d
	y4 := a + b + c + d

	pb := float64(ChromaOfIndex(coefficient.IndexOfPb))
	pr := float64(ChromaOfIndex(coefficient.IndexOfPr))

	return Block{
		Y1: ComponentVideo{Y: y1, Pb: pb, Pr: pr},
		Y2: ComponentVideo{Y: y2, Pb: pb, Pr: pr},
		Y3: ComponentVideo{Y: y3, Pb: pb, Pr: pr},
		Y4: ComponentVideo{Y: y4, Pb: pb, Pr: pr},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
