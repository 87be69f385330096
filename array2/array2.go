// Package array2 provides a generic two-dimensional container over a linear
// row-major backing slice, addressed by (column, row).
package array2

// Array2 emulates a two-dimensional array of T using one-dimensional storage.
// Width is the number of columns and Height the number of rows; the element at
// (col, row) lives at index row*width+col.
type Array2[T any] struct {
	data   []T
	width  int
	height int
}

// New constructs an empty Array2 with width and height 0.
func New[T any]() *Array2[T] {
	return &Array2[T]{}
}

// FromRowMajor wraps data, which must already be in row-major order.
// The caller guarantees len(data) == width*height.
func FromRowMajor[T any](width, height int, data []T) *Array2[T] {
	return &Array2[T]{
		data:   data,
		width:  width,
		height: height,
	}
}

// FromColMajor constructs an Array2 from data supplied in column-major order,
// re-ordering it into row-major storage: for each column c, the elements at
// positions c, c+width, c+2*width, ... of the input are appended in that
// order, which transposes the column-major buffer into row-major layout.
func FromColMajor[T any](width, height int, data []T) *Array2[T] {
	rowMajor := make([]T, 0, len(data))
	for c := 0; c < width; c++ {
		for i := c; i < len(data); i += width {
			rowMajor = append(rowMajor, data[i])
		}
	}
	return &Array2[T]{
		data:   rowMajor,
		width:  width,
		height: height,
	}
}

// FromEvenDimension treats data as a row-major width x height grid and trims
// it so both dimensions are even: an odd width drops the last column of every
// row, an odd height drops the entire last row. The trim is silent; it is the
// canonical way odd input dimensions are made safe for 2x2 block processing.
func FromEvenDimension[T any](width, height int, data []T) *Array2[T] {
	trimWidth := width%2 == 1
	trimHeight := height%2 == 1
	newWidth := width
	newHeight := height
	if trimWidth {
		newWidth--
	}
	if trimHeight {
		newHeight--
	}

	trimmed := make([]T, 0, newWidth*newHeight)
	for r := 0; r < height; r++ {
		if trimHeight && r == height-1 {
			continue
		}
		for c := 0; c < width; c++ {
			if trimWidth && c == width-1 {
				continue
			}
			trimmed = append(trimmed, data[r*width+c])
		}
	}

	return &Array2[T]{
		data:   trimmed,
		width:  newWidth,
		height: newHeight,
	}
}

// Get returns the element at (col, row), or the zero value and false when the
// coordinates fall outside the grid.
func (a *Array2[T]) Get(col, row int) (T, bool) {
	idx, ok := a.index(col, row)
	if !ok {
		var zero T
		return zero, false
	}
	return a.data[idx], true
}

// GetMut returns a pointer to the element at (col, row), or nil when the
// coordinates fall outside the grid.
func (a *Array2[T]) GetMut(col, row int) *T {
	idx, ok := a.index(col, row)
	if !ok {
		return nil
	}
	return &a.data[idx]
}

func (a *Array2[T]) index(col, row int) (int, bool) {
	if col < 0 || row < 0 || col >= a.width || row >= a.height {
		return 0, false
	}
	return row*a.width + col, true
}

// Size returns the number of elements addressable through the grid.
func (a *Array2[T]) Size() int {
	return a.width * a.height
}

// Width returns the number of columns.
func (a *Array2[T]) Width() int {
	return a.width
}

// Height returns the number of rows.
func (a *Array2[T]) Height() int {
	return a.height
}

// Data returns the underlying row-major backing slice.
func (a *Array2[T]) Data() []T {
	return a.data
}

// Entry is one element visited by an iteration, together with its coordinates.
type Entry[T any] struct {
	Col   int
	Row   int
	Value T
}

// IterRowMajor visits every element row by row, varying the column fastest.
// The iteration is finite and restartable; it stops early if yield returns
// false.
func (a *Array2[T]) IterRowMajor(yield func(col, row int, value T) bool) {
	for r := 0; r < a.height; r++ {
		for c := 0; c < a.width; c++ {
			if !yield(c, r, a.data[r*a.width+c]) {
				return
			}
		}
	}
}

// IterColMajor visits every element column by column, varying the row fastest.
func (a *Array2[T]) IterColMajor(yield func(col, row int, value T) bool) {
	for c := 0; c < a.width; c++ {
		for r := 0; r < a.height; r++ {
			if !yield(c, r, a.data[r*a.width+c]) {
				return
			}
		}
	}
}
