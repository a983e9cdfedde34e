package align_test

import (
	"fmt"

	"github.com/katalvlaran/bioalign/align"
	"github.com/katalvlaran/bioalign/bioseq"
	"github.com/katalvlaran/bioalign/format"
	"github.com/katalvlaran/bioalign/scoring"
)

// ExampleAlign aligns two short protein fragments globally under
// BLOSUM62 with an affine gap penalty and renders the single optimum.
func ExampleAlign() {
	left, _ := bioseq.NewProtein("MVLSPADKT")
	top, _ := bioseq.NewProtein("MVLSGEDKS")

	penalty, _ := scoring.NewAffine(10, 1)
	schema, _ := scoring.NewSchema(scoring.Blosum62, penalty)

	alignments, _ := align.Align(left.Seq(), top.Seq(), schema, align.Global)

	fmt.Printf("score: %v\n", alignments[0].Score)
	fmt.Println(format.Render(alignments[0], bioseq.Aac.Byte))
	// Output:
	// score: 26
	// MVLSPADKT
	// ||||::||:
	// MVLSGEDKS
}

// ExampleAlign_local finds the best-scoring local region shared by a
// long and a short sequence.
func ExampleAlign_local() {
	left, _ := bioseq.NewProtein("AAAWWWAAA")
	top, _ := bioseq.NewProtein("WWW")

	penalty, _ := scoring.NewAffine(10, 1)
	schema, _ := scoring.NewSchema(scoring.Blosum62, penalty)

	alignments, _ := align.Align(left.Seq(), top.Seq(), schema, align.Local)

	fmt.Printf("score: %v\n", alignments[0].Score)
	fmt.Println(format.Render(alignments[0], bioseq.Aac.Byte))
	// Output:
	// score: 33
	// WWW
	// |||
	// WWW
}
