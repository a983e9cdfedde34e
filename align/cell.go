package align

import "fmt"

// Dir is one contributing direction of a matrix cell.
type Dir uint8

const (
	// Diagonal steps from (i-1,j-1): a match/mismatch column.
	Diagonal Dir = 1 << iota
	// Vertical steps from (i-1,j): a gap in the top sequence.
	Vertical
	// Horizontal steps from (i,j-1): a gap in the left sequence.
	Horizontal
)

// String implements fmt.Stringer for Dir.
func (d Dir) String() string {
	switch d {
	case Diagonal:
		return "Diagonal"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return fmt.Sprintf("Dir(%d)", uint8(d))
	}
}

// DirSet is a subset of the three directions, packed into one byte.
// The empty set marks an uninitialized cell, so every filled cell
// carries at least one direction.
type DirSet uint8

// NewDirSet builds a set from the given directions.
func NewDirSet(dirs ...Dir) DirSet {
	var s DirSet
	for _, d := range dirs {
		s |= DirSet(d)
	}

	return s
}

// Has reports whether d is a member of the set.
func (s DirSet) Has(d Dir) bool { return s&DirSet(d) != 0 }

// Count returns the number of member directions (0–3).
func (s DirSet) Count() int {
	n := 0
	for _, d := range allDirs {
		if s.Has(d) {
			n++
		}
	}

	return n
}

// allDirs fixes the iteration order: Diagonal, Vertical, Horizontal.
var allDirs = [3]Dir{Diagonal, Vertical, Horizontal}

// members returns the set's directions in the fixed order.
func (s DirSet) members() []Dir {
	out := make([]Dir, 0, 3)
	for _, d := range allDirs {
		if s.Has(d) {
			out = append(out, d)
		}
	}

	return out
}

// Cell is one DP matrix entry: the directions achieving the cell's
// best score, and that score. The zero value (empty direction set) is
// the uninitialized sentinel, distinct from every filled state.
type Cell struct {
	Dirs  DirSet
	Score float64
}

// Empty reports whether the cell is still uninitialized.
func (c Cell) Empty() bool { return c.Dirs == 0 }

// makeCell selects the maximum of the three candidate scores and
// records every direction that attains it; equality on more than one
// candidate yields a multi-direction set, a tie.
func makeCell(diag, vert, horiz float64) Cell {
	best := diag
	if vert > best {
		best = vert
	}
	if horiz > best {
		best = horiz
	}
	var s DirSet
	if diag == best {
		s |= DirSet(Diagonal)
	}
	if vert == best {
		s |= DirSet(Vertical)
	}
	if horiz == best {
		s |= DirSet(Horizontal)
	}

	return Cell{Dirs: s, Score: best}
}
