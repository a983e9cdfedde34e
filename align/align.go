package align

import (
	"context"
	"fmt"
	"math"
)

// Align computes every optimal alignment of left and top under sc in
// the given mode. The result is never empty on success: even two
// empty sequences yield one degenerate zero-column Alignment.
//
// All returned Alignments share the optimal score. Their order is an
// artifact of traversal and carries no meaning.
func Align[S comparable](left, top []S, sc Scoring[S], mode Mode) ([]Alignment[S], error) {
	return AlignContext(context.Background(), left, top, sc, mode)
}

// AlignContext is Align with cancellation: ctx is checked on every
// fill row and every backtracking step, and its error is returned in
// place of a partial result.
func AlignContext[S comparable](ctx context.Context, left, top []S, sc Scoring[S], mode Mode) ([]Alignment[S], error) {
	if sc == nil {
		return nil, ErrNilScoring
	}
	if ctx == nil {
		ctx = context.Background()
	}

	switch mode {
	case Global:
		return alignGlobal(ctx, left, top, sc)
	case Local:
		return alignLocal(ctx, left, top, sc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(mode))
	}
}

// alignGlobal backtracks from the terminal cell with no cutoff: every
// path runs all the way to (0,0).
func alignGlobal[S comparable](ctx context.Context, left, top []S, sc Scoring[S]) ([]Alignment[S], error) {
	m, err := fillGlobal(ctx, left, top, sc)
	if err != nil {
		return nil, err
	}

	start := Coord{I: len(left), J: len(top)}
	score := m.at(start.I, start.J).Score
	paths, err := backtrack(ctx, m, []Coord{start}, math.Inf(-1))
	if err != nil {
		return nil, err
	}

	return assemble(paths, left, top, score), nil
}

// alignLocal backtracks from every maximum cell down to the first
// cell scoring ≤ 0. When no cell scores above zero there is nothing
// to anchor an alignment on, and the well-defined degenerate result
// is a single empty Alignment with score 0.
func alignLocal[S comparable](ctx context.Context, left, top []S, sc Scoring[S]) ([]Alignment[S], error) {
	m, best, maxima, err := fillLocal(ctx, left, top, sc)
	if err != nil {
		return nil, err
	}
	if len(maxima) == 0 || best <= 0 {
		return []Alignment[S]{{Pairs: []Pair[S]{}, Score: 0}}, nil
	}

	paths, err := backtrack(ctx, m, maxima, 0)
	if err != nil {
		return nil, err
	}

	return assemble(paths, left, top, best), nil
}

// assemble converts coordinate paths into Alignment records sharing
// one optimal score.
func assemble[S comparable](paths [][]Coord, left, top []S, score float64) []Alignment[S] {
	out := make([]Alignment[S], 0, len(paths))
	for _, p := range paths {
		out = append(out, Alignment[S]{Pairs: reconstruct(p, left, top), Score: score})
	}

	return out
}
