package scoring

import (
	"fmt"
	"math"
)

// GapModel selects one of the supported gap-penalty families.
// The set is closed: solvers may switch over it exhaustively.
type GapModel int

const (
	// Linear prices a gap of length L at extend·L.
	Linear GapModel = iota
	// Affine prices a gap of length L at open + extend·L.
	Affine
)

// Penalty is a validated gap-cost function. Construct one with
// NewLinear or NewAffine; the zero value is a linear penalty of zero
// cost. Penalty values are immutable and safe to share.
//
// A gap is a contiguous run of spaces, so the minimum meaningful
// length is 1: Cost must never be evaluated at length < 1.
type Penalty struct {
	model  GapModel
	open   float64
	extend float64
}

// NewLinear builds a linear gap penalty f(len) = extend·len.
// The extend cost must be finite and non-negative.
func NewLinear(extend float64) (Penalty, error) {
	if !isCost(extend) {
		return Penalty{}, fmt.Errorf("%w: extend=%v", ErrBadPenalty, extend)
	}

	return Penalty{model: Linear, extend: extend}, nil
}

// NewAffine builds an affine gap penalty f(len) = open + extend·len.
// Both costs must be finite and non-negative, and extend must not
// exceed open: the solver prices gap continuation at the extend cost
// on the assumption that extending is never dearer than opening.
func NewAffine(open, extend float64) (Penalty, error) {
	if !isCost(open) || !isCost(extend) {
		return Penalty{}, fmt.Errorf("%w: open=%v extend=%v", ErrBadPenalty, open, extend)
	}
	if extend > open {
		return Penalty{}, fmt.Errorf("%w: extend (%v) exceeds open (%v)", ErrBadPenalty, extend, open)
	}

	return Penalty{model: Affine, open: open, extend: extend}, nil
}

// isCost reports whether v is a finite, non-negative cost.
func isCost(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Model returns the penalty family.
func (p Penalty) Model() GapModel { return p.model }

// Cost returns the total penalty for a gap of the given length.
// length must be ≥ 1; Cost panics otherwise, since a zero-length gap
// is a caller error rather than a scoring question.
func (p Penalty) Cost(length int) float64 {
	if length < 1 {
		panic(fmt.Sprintf("scoring: gap cost evaluated at length %d, want >= 1", length))
	}

	return p.open + p.extend*float64(length)
}

// Open returns the gap-open cost. Linear penalties report 0.
func (p Penalty) Open() float64 { return p.open }

// Extend returns the gap-extend cost.
func (p Penalty) Extend() float64 { return p.extend }
