package align

import (
	"context"
	"math"
)

// gapPenalty prices a gap move into a cell whose predecessor is prev.
// When prev's direction set already contains the move's direction the
// gap is being extended and costs GapExtend; extending never costs
// more than opening, so a tie that merely includes the gap direction
// still qualifies. Otherwise a new gap opens at GapCost(1).
func gapPenalty[S comparable](sc Scoring[S], prev Cell, d Dir) float64 {
	if prev.Dirs.Has(d) {
		return sc.GapExtend()
	}

	return sc.GapCost(1)
}

// fillGlobal runs the Needleman–Wunsch fill. Border cells price a
// full-length leading gap; interior cells follow the affine
// recurrence over the three predecessors.
func fillGlobal[S comparable](ctx context.Context, left, top []S, sc Scoring[S]) (*Matrix, error) {
	rows, cols := len(left)+1, len(top)+1
	m := &Matrix{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}

	m.set(0, 0, Cell{Dirs: DirSet(Diagonal), Score: 0})
	for i := 1; i < rows; i++ {
		m.set(i, 0, Cell{Dirs: DirSet(Vertical), Score: -sc.GapCost(i)})
	}
	for j := 1; j < cols; j++ {
		m.set(0, j, Cell{Dirs: DirSet(Horizontal), Score: -sc.GapCost(j)})
	}

	for i := 1; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := 1; j < cols; j++ {
			up, back := m.at(i-1, j), m.at(i, j-1)
			diag := m.at(i-1, j-1).Score + sc.Score(left[i-1], top[j-1])
			vert := up.Score - gapPenalty(sc, up, Vertical)
			horiz := back.Score - gapPenalty(sc, back, Horizontal)
			m.set(i, j, makeCell(diag, vert, horiz))
		}
	}

	return m, nil
}

// fillLocal runs the Smith–Waterman fill: every sub-score is clamped
// at zero before the direction set is formed, and the running maximum
// is tracked together with every cell attaining it. Returns the
// matrix, the maximum score and the maximum cells (backtrack starts).
func fillLocal[S comparable](ctx context.Context, left, top []S, sc Scoring[S]) (*Matrix, float64, []Coord, error) {
	rows, cols := len(left)+1, len(top)+1
	m := &Matrix{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}

	// Border scores are all zero; the direction tags are irrelevant
	// because local paths terminate at score ≤ 0 before using them.
	m.set(0, 0, Cell{Dirs: DirSet(Diagonal), Score: 0})
	for i := 1; i < rows; i++ {
		m.set(i, 0, Cell{Dirs: DirSet(Vertical), Score: 0})
	}
	for j := 1; j < cols; j++ {
		m.set(0, j, Cell{Dirs: DirSet(Horizontal), Score: 0})
	}

	best := math.Inf(-1)
	var maxima []Coord
	for i := 1; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, nil, err
		}
		for j := 1; j < cols; j++ {
			up, back := m.at(i-1, j), m.at(i, j-1)
			diag := math.Max(0, m.at(i-1, j-1).Score+sc.Score(left[i-1], top[j-1]))
			vert := math.Max(0, up.Score-gapPenalty(sc, up, Vertical))
			horiz := math.Max(0, back.Score-gapPenalty(sc, back, Horizontal))
			c := makeCell(diag, vert, horiz)
			m.set(i, j, c)

			switch {
			case c.Score > best:
				best = c.Score
				maxima = append(maxima[:0], Coord{I: i, J: j})
			case c.Score == best:
				maxima = append(maxima, Coord{I: i, J: j})
			}
		}
	}

	return m, best, maxima, nil
}
