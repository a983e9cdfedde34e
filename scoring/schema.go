package scoring

import (
	"fmt"

	"github.com/katalvlaran/bioalign/bioseq"
)

// Schema pairs a substitution table with a gap-penalty model. It
// satisfies the align.Scoring contract for amino-acid sequences.
// A Schema is immutable and safe for concurrent use.
type Schema struct {
	kind    Table
	table   subTable
	penalty Penalty
}

// NewSchema builds a Schema from a table selector and a validated
// Penalty. Unknown selectors yield ErrBadTable.
func NewSchema(kind Table, p Penalty) (*Schema, error) {
	var t subTable
	switch kind {
	case Blosum45:
		t = blosum45Table
	case Blosum62:
		t = blosum62Table
	case Pam160:
		t = pam160Table
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadTable, int(kind))
	}

	return &Schema{kind: kind, table: t, penalty: p}, nil
}

// Table returns the schema's substitution-table selector.
func (s *Schema) Table() Table { return s.kind }

// Score returns the substitution score for aligning a with b.
// The tables are symmetric: Score(a, b) == Score(b, a).
func (s *Schema) Score(a, b bioseq.Aac) float64 {
	return float64(s.table.lookup(a, b))
}

// GapCost returns the total penalty for a gap of the given length ≥ 1.
func (s *Schema) GapCost(length int) float64 { return s.penalty.Cost(length) }

// GapOpen returns the gap-open cost of the penalty model.
func (s *Schema) GapOpen() float64 { return s.penalty.Open() }

// GapExtend returns the gap-extend cost of the penalty model.
func (s *Schema) GapExtend() float64 { return s.penalty.Extend() }
