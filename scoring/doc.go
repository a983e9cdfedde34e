// Package scoring supplies the substitution tables and gap-penalty
// models consumed by the align package.
//
// 🚀 What does scoring provide?
//
//	• Substitution tables: BLOSUM45, BLOSUM62 and PAM160 over the 20
//	  standard amino acids, stored compactly as their upper triangle
//	  keyed by the Cantor pairing of each residue pair
//	• Gap penalties: the closed set of supported models —
//	  Linear  f(len) = extend·len
//	  Affine  f(len) = open + extend·len
//	• Schema: one substitution table paired with one penalty model,
//	  satisfying the align.Scoring contract
//
// All parameter validation happens at construction time. A Schema or
// Penalty that was built without error never fails during a solve:
// Cost panics only when called with length < 1, which the gap-cost
// contract forbids and which therefore marks a caller bug, not data.
//
// ⚙️ Usage:
//
//	p, err := scoring.NewAffine(10, 1)
//	if err != nil { ... }
//	sc, err := scoring.NewSchema(scoring.Blosum62, p)
//	if err != nil { ... }
//	alignments, err := align.Align(left, top, sc, align.Global)
//
// The tables are module-level read-only data, validated once by the
// package tests for symmetry, ordering and completeness; lookups are
// O(log n) binary searches over 210 sorted entries and are safe for
// concurrent use from any number of alignment runs.
package scoring
