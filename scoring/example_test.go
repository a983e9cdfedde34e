package scoring_test

import (
	"fmt"

	"github.com/katalvlaran/bioalign/bioseq"
	"github.com/katalvlaran/bioalign/scoring"
)

// ExampleNewSchema builds a BLOSUM62 schema with an affine gap
// penalty and queries a few substitution scores and gap costs.
func ExampleNewSchema() {
	penalty, err := scoring.NewAffine(10, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	schema, err := scoring.NewSchema(scoring.Blosum62, penalty)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(schema.Score(bioseq.W, bioseq.W))
	fmt.Println(schema.Score(bioseq.P, bioseq.G))
	fmt.Println(schema.GapCost(1))
	fmt.Println(schema.GapCost(4))
	// Output:
	// 11
	// -2
	// 11
	// 14
}
