package align

import "fmt"

// reconstruct replays one coordinate path, ordered from the backtrack
// start down to its stopping cell, into alignment columns.
// Walking the path in reverse visits cells start-to-end of the
// alignment: a diagonal step pairs two symbols, a vertical step gaps
// the top side, a horizontal step gaps the left side. Any other
// relative step means a corrupted path and panics.
func reconstruct[S comparable](path []Coord, left, top []S) []Pair[S] {
	pairs := make([]Pair[S], 0, len(path)-1)
	for k := len(path) - 1; k > 0; k-- {
		cur, next := path[k], path[k-1]
		di, dj := next.I-cur.I, next.J-cur.J
		switch {
		case di == 1 && dj == 1:
			pairs = append(pairs, Pair[S]{Left: left[next.I-1], Top: top[next.J-1], HasLeft: true, HasTop: true})
		case di == 1 && dj == 0:
			pairs = append(pairs, Pair[S]{Left: left[next.I-1], HasLeft: true})
		case di == 0 && dj == 1:
			pairs = append(pairs, Pair[S]{Top: top[next.J-1], HasTop: true})
		default:
			panic(fmt.Sprintf("align: non-unit path step (%d,%d)→(%d,%d)", cur.I, cur.J, next.I, next.J))
		}
	}

	return pairs
}
