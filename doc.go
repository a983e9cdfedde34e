// Package bioalign is a toolkit for optimal pairwise alignment of
// biological sequences: exact dynamic-programming solvers with full
// enumeration of every tied optimal alignment.
//
// 🚀 What is bioalign?
//
//	A small, focused library that brings together:
//		• Global alignment: Needleman–Wunsch over affine or linear gaps
//		• Local alignment: Smith–Waterman with zero-clamped scoring
//		• Tie enumeration: every alignment reaching the optimal score,
//		  recovered by an iterative, explicit-stack backtracker
//		• Scoring schemas: BLOSUM45, BLOSUM62 and PAM160 substitution
//		  tables plus affine/linear gap-penalty models
//		• Protein sequences: validated IUPAC amino-acid parsing
//
// ✨ Why choose bioalign?
//
//   - Exact, not heuristic – the full DP matrix, no seeding or banding
//   - Complete answers – ties are enumerated, never silently dropped
//   - Pure Go – no cgo, no hidden deps
//   - Bounded stacks – backtracking never recurses, whatever the input
//
// Everything is organized under four subpackages:
//
//	align/   — DP matrix, solvers, backtracker & the Align entry point
//	scoring/ — substitution tables & gap-penalty models
//	bioseq/  — amino-acid codes & protein sequences
//	format/  — three-line textual rendering of alignments
//
// Quick ASCII example:
//
//	MVLSPADKT
//	||||::||:
//	MVLSGEDKS
//
// is the single optimal global alignment of MVLSPADKT and MVLSGEDKS
// under BLOSUM62 with affine gaps (open 10, extend 1).
//
//	go get github.com/katalvlaran/bioalign/align
package bioalign
