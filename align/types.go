package align

import "fmt"

// Mode selects the alignment variant.
type Mode int

const (
	// Global aligns both sequences end to end (Needleman–Wunsch).
	Global Mode = iota
	// Local aligns the best-scoring subsequence pair (Smith–Waterman).
	Local
)

// String implements fmt.Stringer for Mode.
func (m Mode) String() string {
	switch m {
	case Global:
		return "Global"
	case Local:
		return "Local"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Coord addresses one matrix cell: I is the row (left-sequence axis),
// J the column (top-sequence axis).
type Coord struct {
	I, J int
}

// Scoring is the schema contract the solver consumes. Implementations
// must keep Score symmetric (Score(a,b) == Score(b,a)) and GapCost
// non-decreasing in length; GapCost is only ever evaluated at
// length ≥ 1. The scoring package provides amino-acid schemas.
type Scoring[S any] interface {
	// Score returns the substitution score for aligning a with b.
	Score(a, b S) float64
	// GapCost returns the total penalty for a gap of length ≥ 1.
	GapCost(length int) float64
	// GapOpen returns the gap-open cost (0 for linear models).
	GapOpen() float64
	// GapExtend returns the gap-extend cost.
	GapExtend() float64
}

// Pair is one alignment column. A side with a false Has flag is a
// gap; at least one side is always present.
type Pair[S comparable] struct {
	Left    S
	Top     S
	HasLeft bool
	HasTop  bool
}

// Alignment is one optimal alignment: its ordered columns and the
// score recorded at the path's start cell. Immutable once returned.
type Alignment[S comparable] struct {
	Pairs []Pair[S]
	Score float64
}

// Len returns the number of columns.
func (a Alignment[S]) Len() int { return len(a.Pairs) }
