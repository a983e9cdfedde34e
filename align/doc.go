// Package align computes optimal pairwise alignments between two
// symbol sequences under a configurable scoring schema, in global
// (Needleman–Wunsch) or local (Smith–Waterman) mode, and returns
// every alignment that reaches the optimal score, ties included.
//
// 🚀 How it works
//
//	1. A dense (|left|+1)×(|top|+1) matrix is filled row by row. Each
//	   cell records the best score reachable at that position together
//	   with the set of directions (Diagonal, Vertical, Horizontal)
//	   that achieved it; more than one direction marks a tie.
//	2. Gap pricing is affine-aware without extra matrices: a move is
//	   priced as a gap extension when the predecessor cell's direction
//	   set already contains that gap direction, and as a fresh gap
//	   (open + extend, or extend alone for linear models) otherwise.
//	   The three-state affine automaton is thereby folded into the
//	   direction tags themselves.
//	3. An iterative, explicit-stack backtracker walks the filled
//	   matrix from the terminal cell (global) or from every cell
//	   attaining the running maximum (local), cloning its partial path
//	   once per extra tied direction, until it reaches (0,0) or, in
//	   local mode, a cell scoring ≤ 0. Recursion is never used, so
//	   stack depth stays bounded for arbitrarily long sequences.
//	4. Each discovered coordinate path is replayed start-to-end into
//	   an Alignment: a list of symbol pairs where one absent side
//	   denotes a gap.
//
// ✨ Guarantees
//
//   - Every tied optimal path is emitted exactly once. The number of
//     ties can grow exponentially on pathological inputs; that is a
//     property of the problem, not a defect.
//   - Local scores are never negative; global scores may be.
//   - Results are deterministic as a set. The discovery order of tied
//     alignments follows branch-stack push order and carries no
//     meaning; compare result sets, not sequences.
//
// ⚙️ Usage:
//
//	p, _ := scoring.NewAffine(10, 1)
//	sc, _ := scoring.NewSchema(scoring.Blosum62, p)
//	alignments, err := align.Align(left.Seq(), top.Seq(), sc, align.Global)
//
// Cancellation: AlignContext threads a context through the fill's
// outer loop and the backtracker's step loop and aborts with the
// context's error instead of returning a partial result.
//
// Concurrency: a run owns its matrix exclusively; scoring schemas are
// read-only and may be shared across any number of concurrent runs.
// Cells on one anti-diagonal (constant i+j) are mutually independent,
// so a wavefront fill is a legal pure optimization; the current fill
// is single-threaded.
//
// Complexity:
//
//	Time   = O(n·m) fill + O(paths · path length) backtracking
//	Memory = O(n·m)
package align
