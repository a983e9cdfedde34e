package align

import "fmt"

// Matrix is a dense, row-major grid of Cells with fixed dimensions.
// It is exclusively owned and mutated by a solver during the fill
// phase, then read-only for the backtracker. No resizing after
// construction.
type Matrix struct {
	rows, cols int
	cells      []Cell // flat backing storage, length rows*cols
}

// NewMatrix creates a rows×cols Matrix of uninitialized cells.
// Non-positive dimensions yield ErrBadShape.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadShape, rows, cols)
	}

	return &Matrix{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// indexOf computes the flat offset of (i, j) or returns ErrOutOfRange.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}

	return i*m.cols + j, nil
}

// At returns the cell at (i, j), bounds-checked.
func (m *Matrix) At(i, j int) (Cell, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return Cell{}, err
	}

	return m.cells[idx], nil
}

// Set writes the cell at (i, j), bounds-checked.
func (m *Matrix) Set(i, j int, c Cell) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.cells[idx] = c

	return nil
}

// at is the unchecked read used on the hot path once the fill-order
// invariant holds; out-of-range coordinates are a programming error
// and fault via the slice bounds check.
func (m *Matrix) at(i, j int) Cell { return m.cells[i*m.cols+j] }

// set is the unchecked counterpart of at.
func (m *Matrix) set(i, j int, c Cell) { m.cells[i*m.cols+j] = c }

// mustAt reads (i, j) and panics if the cell is uninitialized.
// After the solve phase every cell in the filled region is non-empty;
// an empty cell here means a fill-order bug, which must abort the run
// rather than yield a wrong alignment.
func (m *Matrix) mustAt(i, j int) Cell {
	c := m.at(i, j)
	if c.Empty() {
		panic(fmt.Sprintf("align: empty cell at (%d,%d) during traversal, fill invariant broken", i, j))
	}

	return c
}
