package align

import (
	"context"
	"fmt"
	"slices"
)

// predecessor returns the coordinate one step along d from c.
func predecessor(c Coord, d Dir) Coord {
	switch d {
	case Diagonal:
		return Coord{I: c.I - 1, J: c.J - 1}
	case Vertical:
		return Coord{I: c.I - 1, J: c.J}
	case Horizontal:
		return Coord{I: c.I, J: c.J - 1}
	default:
		panic(fmt.Sprintf("align: predecessor of invalid direction %d", uint8(d)))
	}
}

// backtrack enumerates every optimal coordinate path from each start
// cell back to a stopping cell: (0,0), or any cell scoring ≤ cutoff
// (−Inf for global runs, 0 for local ones, where a zero cell anchors
// the local alignment).
//
// The traversal is an iterative depth-first search over an explicit
// work list. The growing currentPath follows the first direction of
// each cell; every further direction of a tied cell clones the path
// so far (divergent branches must not share history) and parks the
// copy on the pendingBranches stack. Each path is emitted exactly
// once; the total can be exponential in tie-heavy matrices.
func backtrack(ctx context.Context, m *Matrix, starts []Coord, cutoff float64) ([][]Coord, error) {
	origin := Coord{I: 0, J: 0}
	var paths [][]Coord

	for _, start := range starts {
		currentPath := []Coord{start}
		var pendingBranches [][]Coord
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			c := currentPath[len(currentPath)-1]
			cell := m.mustAt(c.I, c.J)

			if c == origin || cell.Score <= cutoff {
				paths = append(paths, currentPath)
				n := len(pendingBranches)
				if n == 0 {
					break
				}
				currentPath = pendingBranches[n-1]
				pendingBranches = pendingBranches[:n-1]

				continue
			}

			dirs := cell.Dirs.members()
			for _, d := range dirs[1:] {
				branch := append(slices.Clone(currentPath), predecessor(c, d))
				pendingBranches = append(pendingBranches, branch)
			}
			currentPath = append(currentPath, predecessor(c, dirs[0]))
		}
	}

	return paths, nil
}
