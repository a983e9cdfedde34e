package align

import "errors"

// Sentinel errors for alignment runs and matrix access.
var (
	// ErrNilScoring indicates a nil scoring schema was supplied.
	ErrNilScoring = errors.New("align: scoring schema must not be nil")
	// ErrBadMode indicates an alignment mode outside Global/Local.
	ErrBadMode = errors.New("align: unknown alignment mode")
	// ErrBadShape indicates non-positive matrix dimensions.
	ErrBadShape = errors.New("align: matrix dimensions must be > 0")
	// ErrOutOfRange indicates a matrix index outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("align: matrix index out of range")
)
