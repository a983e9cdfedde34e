package bioseq_test

import (
	"fmt"

	"github.com/katalvlaran/bioalign/bioseq"
)

// ExampleNewProtein parses a mixed-case string into a protein and
// prints its canonical upper-case form.
func ExampleNewProtein() {
	p, err := bioseq.NewProtein("pVaGH")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(p)
	fmt.Println(p.Len())
	// Output:
	// PVAGH
	// 5
}

// ExampleFromChar shows the two failure classes: an ASCII letter that
// is not an amino-acid code, and a non-ASCII rune.
func ExampleFromChar() {
	_, err := bioseq.FromChar('B')
	fmt.Println(err)

	_, err = bioseq.FromChar('本')
	fmt.Println(err)
	// Output:
	// bioseq: not a valid IUPAC amino-acid code: 'B'
	// bioseq: IUPAC codes must be ASCII characters: '本'
}
