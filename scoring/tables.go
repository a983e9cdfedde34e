package scoring

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bioalign/bioseq"
)

// Table selects one of the bundled substitution tables.
type Table int

const (
	// Blosum45 is the BLOSUM matrix clustered at 45% identity.
	Blosum45 Table = iota
	// Blosum62 is the BLOSUM matrix clustered at 62% identity.
	Blosum62
	// Pam160 is the point-accepted-mutation matrix at distance 160.
	Pam160
)

// String implements fmt.Stringer for Table.
func (t Table) String() string {
	switch t {
	case Blosum45:
		return "BLOSUM45"
	case Blosum62:
		return "BLOSUM62"
	case Pam160:
		return "PAM160"
	default:
		return fmt.Sprintf("Table(%d)", int(t))
	}
}

// pairScore is one upper-triangle table entry: the Cantor pair key of
// a sorted residue pair and the score assigned to that pair.
type pairScore struct {
	key   uint16
	score int8
}

// subTable is a substitution table in compact symmetric form: the 210
// upper-triangle entries sorted by pair key for binary search.
type subTable []pairScore

// buildTable folds a full symmetric 20×20 matrix into its compact
// sorted upper-triangle form. Runs once per table at package init.
func buildTable(m *[20][20]int8) subTable {
	t := make(subTable, 0, bioseq.NumAac*(bioseq.NumAac+1)/2)
	for a := 0; a < bioseq.NumAac; a++ {
		for b := a; b < bioseq.NumAac; b++ {
			t = append(t, pairScore{
				key:   bioseq.PairKey(bioseq.Aac(a), bioseq.Aac(b)),
				score: m[a][b],
			})
		}
	}
	slices.SortFunc(t, func(x, y pairScore) int { return int(x.key) - int(y.key) })

	return t
}

// lookup returns the score for the residue pair (a, b). The tables
// are complete over the alphabet, so a missing key means corrupted
// table data and panics.
func (t subTable) lookup(a, b bioseq.Aac) int8 {
	key := bioseq.SortedPairKey(a, b)
	i, ok := slices.BinarySearchFunc(t, key, func(e pairScore, k uint16) int { return int(e.key) - int(k) })
	if !ok {
		panic(fmt.Sprintf("scoring: pair key %d (%s,%s) missing, table is incomplete", key, a, b))
	}

	return t[i].score
}

// Compact forms, folded once at init and read-only afterwards. They
// are safely shared by any number of concurrent alignment runs.
var (
	blosum45Table = buildTable(&blosum45)
	blosum62Table = buildTable(&blosum62)
	pam160Table   = buildTable(&pam160)
)

// Residue rows/columns follow the bioseq.Aac order:
// A C D E F G H I K L M N P Q R S T V W Y.

var blosum45 = [20][20]int8{
	{5, -1, -2, -1, -2, 0, -2, -1, -1, -1, -1, -1, -1, -1, -2, 1, 0, 0, -2, -2},          // A
	{-1, 12, -3, -3, -2, -3, -3, -3, -3, -2, -2, -2, -4, -3, -3, -1, -1, -1, -5, -3},     // C
	{-2, -3, 7, 2, -4, -1, 0, -4, 0, -3, -3, 2, -1, 0, -1, 0, -1, -3, -4, -2},            // D
	{-1, -3, 2, 6, -3, -2, 0, -3, 1, -2, -2, 0, 0, 2, 0, 0, -1, -3, -3, -2},              // E
	{-2, -2, -4, -3, 8, -3, -2, 0, -3, 1, 0, -2, -3, -4, -2, -2, -1, 0, 1, 3},            // F
	{0, -3, -1, -2, -3, 7, -2, -4, -2, -3, -2, 0, -2, -2, -2, 0, -2, -3, -2, -3},         // G
	{-2, -3, 0, 0, -2, -2, 10, -3, -1, -2, 0, 1, -2, 1, 0, -1, -2, -3, -3, 2},            // H
	{-1, -3, -4, -3, 0, -4, -3, 5, -3, 2, 2, -2, -2, -2, -3, -2, -1, 3, -2, 0},           // I
	{-1, -3, 0, 1, -3, -2, -1, -3, 5, -3, -1, 0, -1, 1, 3, -1, -1, -2, -2, -1},           // K
	{-1, -2, -3, -2, 1, -3, -2, 2, -3, 5, 2, -3, -3, -2, -2, -3, -1, 1, -2, 0},           // L
	{-1, -2, -3, -2, 0, -2, 0, 2, -1, 2, 6, -2, -2, 0, -1, -2, -1, 1, -2, 0},             // M
	{-1, -2, 2, 0, -2, 0, 1, -2, 0, -3, -2, 6, -2, 0, 0, 1, 0, -3, -4, -2},               // N
	{-1, -4, -1, 0, -3, -2, -2, -2, -1, -3, -2, -2, 9, -1, -2, -1, -1, -3, -3, -3},       // P
	{-1, -3, 0, 2, -4, -2, 1, -2, 1, -2, 0, 0, -1, 6, 1, 0, -1, -3, -2, -1},              // Q
	{-2, -3, -1, 0, -2, -2, 0, -3, 3, -2, -1, 0, -2, 1, 7, -1, -1, -2, -2, -1},           // R
	{1, -1, 0, 0, -2, 0, -1, -2, -1, -3, -2, 1, -1, 0, -1, 4, 2, -1, -4, -2},             // S
	{0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, 0, -1, -1, -1, 2, 5, 0, -3, -1},          // T
	{0, -1, -3, -3, 0, -3, -3, 3, -2, 1, 1, -3, -3, -3, -2, -1, 0, 5, -3, -1},            // V
	{-2, -5, -4, -3, 1, -2, -3, -2, -2, -2, -2, -4, -3, -2, -2, -4, -3, -3, 15, 3},       // W
	{-2, -3, -2, -2, 3, -3, 2, 0, -1, 0, 0, -2, -3, -1, -1, -2, -1, -1, 3, 8},            // Y
}

var blosum62 = [20][20]int8{
	{4, 0, -2, -1, -2, 0, -2, -1, -1, -1, -1, -2, -1, -1, -1, 1, 0, 0, -3, -2},           // A
	{0, 9, -3, -4, -2, -3, -3, -1, -3, -1, -1, -3, -3, -3, -3, -1, -1, -1, -2, -2},       // C
	{-2, -3, 6, 2, -3, -1, -1, -3, -1, -4, -3, 1, -1, 0, -2, 0, -1, -3, -4, -3},          // D
	{-1, -4, 2, 5, -3, -2, 0, -3, 1, -3, -2, 0, -1, 2, 0, 0, -1, -2, -3, -2},             // E
	{-2, -2, -3, -3, 6, -3, -1, 0, -3, 0, 0, -3, -4, -3, -3, -2, -2, -1, 1, 3},           // F
	{0, -3, -1, -2, -3, 6, -2, -4, -2, -4, -3, 0, -2, -2, -2, 0, -2, -3, -2, -3},         // G
	{-2, -3, -1, 0, -1, -2, 8, -3, -1, -3, -2, 1, -2, 0, 0, -1, -2, -3, -2, 2},           // H
	{-1, -1, -3, -3, 0, -4, -3, 4, -3, 2, 1, -3, -3, -3, -3, -2, -1, 3, -3, -1},          // I
	{-1, -3, -1, 1, -3, -2, -1, -3, 5, -2, -1, 0, -1, 1, 2, 0, -1, -2, -3, -2},           // K
	{-1, -1, -4, -3, 0, -4, -3, 2, -2, 4, 2, -3, -3, -2, -2, -2, -1, 1, -2, -1},          // L
	{-1, -1, -3, -2, 0, -3, -2, 1, -1, 2, 5, -2, -2, 0, -1, -1, -1, 1, -1, -1},           // M
	{-2, -3, 1, 0, -3, 0, 1, -3, 0, -3, -2, 6, -2, 0, 0, 1, 0, -3, -4, -2},               // N
	{-1, -3, -1, -1, -4, -2, -2, -3, -1, -3, -2, -2, 7, -1, -2, -1, -1, -2, -4, -3},      // P
	{-1, -3, 0, 2, -3, -2, 0, -3, 1, -2, 0, 0, -1, 5, 1, 0, -1, -2, -2, -1},              // Q
	{-1, -3, -2, 0, -3, -2, 0, -3, 2, -2, -1, 0, -2, 1, 5, -1, -1, -3, -3, -2},           // R
	{1, -1, 0, 0, -2, 0, -1, -2, 0, -2, -1, 1, -1, 0, -1, 4, 1, -2, -3, -2},              // S
	{0, -1, -1, -1, -2, -2, -2, -1, -1, -1, -1, 0, -1, -1, -1, 1, 5, 0, -2, -2},          // T
	{0, -1, -3, -2, -1, -3, -3, 3, -2, 1, 1, -3, -2, -2, -3, -2, 0, 4, -3, -1},           // V
	{-3, -2, -4, -3, 1, -2, -2, -3, -3, -2, -1, -4, -4, -2, -3, -3, -2, -3, 11, 2},       // W
	{-2, -2, -3, -2, 3, -3, 2, -1, -2, -1, -1, -2, -3, -1, -2, -2, -2, -1, 2, 7},         // Y
}

var pam160 = [20][20]int8{
	{2, -2, 0, 0, -3, 1, -1, -1, -1, -2, -1, 0, 1, 0, -2, 1, 1, 0, -5, -3},               // A
	{-2, 12, -5, -5, -4, -3, -3, -2, -5, -6, -5, -4, -2, -5, -3, 0, -2, -2, -7, 0},       // C
	{0, -5, 4, 3, -5, 0, 1, -2, 0, -4, -3, 2, -1, 2, -1, 0, 0, -2, -6, -4},               // D
	{0, -5, 3, 4, -5, 0, 1, -2, 0, -3, -2, 1, -1, 2, -1, 0, 0, -2, -7, -4},               // E
	{-3, -4, -5, -5, 9, -5, -2, 1, -5, 2, 0, -3, -4, -5, -4, -3, -3, -1, 0, 5},           // F
	{1, -3, 0, 0, -5, 5, -2, -2, -2, -4, -3, 0, -1, -2, -3, 1, 0, -1, -7, -5},            // G
	{-1, -3, 1, 1, -2, -2, 6, -2, 0, -2, -2, 2, 0, 3, 2, -1, -1, -2, -3, 0},              // H
	{-1, -2, -2, -2, 1, -2, -2, 5, -2, 2, 2, -2, -2, -2, -2, -1, 0, 4, -5, -1},           // I
	{-1, -5, 0, 0, -5, -2, 0, -2, 5, -3, 0, 1, -1, 1, 3, 0, 0, -2, -3, -4},               // K
	{-2, -6, -4, -3, 2, -4, -2, 2, -3, 6, 4, -3, -2, -2, -3, -3, -2, 2, -2, -1},          // L
	{-1, -5, -3, -2, 0, -3, -2, 2, 0, 4, 6, -2, -2, -1, 0, -2, -1, 2, -4, -2},            // M
	{0, -4, 2, 1, -3, 0, 2, -2, 1, -3, -2, 3, -1, 1, 0, 1, 0, -2, -4, -1},                // N
	{1, -2, -1, -1, -4, -1, 0, -2, -1, -2, -2, -1, 6, 0, 0, 1, 0, -1, -5, -5},            // P
	{0, -5, 2, 2, -5, -2, 3, -2, 1, -2, -1, 1, 0, 4, 1, -1, -1, -2, -5, -4},              // Q
	{-2, -3, -1, -1, -4, -3, 2, -2, 3, -3, 0, 0, 0, 1, 6, 0, -1, -2, 2, -4},              // R
	{1, 0, 0, 0, -3, 1, -1, -1, 0, -3, -2, 1, 1, -1, 0, 2, 1, -1, -2, -3},                // S
	{1, -2, 0, 0, -3, 0, -1, 0, 0, -2, -1, 0, 0, -1, -1, 1, 3, 0, -5, -3},                // T
	{0, -2, -2, -2, -1, -1, -2, 4, -2, 2, 2, -2, -1, -2, -2, -1, 0, 4, -6, -2},           // V
	{-5, -7, -6, -7, 0, -7, -3, -5, -3, -2, -4, -4, -5, -5, 2, -2, -5, -6, 12, 0},        // W
	{-3, 0, -4, -4, 5, -5, 0, -1, -4, -1, -2, -1, -5, -4, -4, -3, -3, -2, 0, 8},          // Y
}
