package bioseq

import "strings"

// Protein is an immutable, validated amino-acid sequence.
// The zero value is an empty protein.
type Protein struct {
	seq []Aac
}

// NewProtein parses a case-insensitive string of one-letter IUPAC
// codes into a Protein. An empty string yields ErrEmptySequence; any
// invalid character yields the corresponding sentinel from FromChar.
func NewProtein(s string) (*Protein, error) {
	if s == "" {
		return nil, ErrEmptySequence
	}
	seq := make([]Aac, 0, len(s))
	for _, c := range s {
		aa, err := FromChar(c)
		if err != nil {
			return nil, err
		}
		seq = append(seq, aa)
	}

	return &Protein{seq: seq}, nil
}

// Len returns the number of residues.
func (p *Protein) Len() int { return len(p.seq) }

// At returns the residue at position i, 0 ≤ i < Len().
func (p *Protein) At(i int) Aac { return p.seq[i] }

// Seq returns a copy of the underlying residue slice. The copy keeps
// the Protein immutable for the duration of an alignment run.
func (p *Protein) Seq() []Aac {
	out := make([]Aac, len(p.seq))
	copy(out, p.seq)

	return out
}

// String renders the sequence as upper-case one-letter codes.
func (p *Protein) String() string {
	var b strings.Builder
	b.Grow(len(p.seq))
	for _, aa := range p.seq {
		b.WriteByte(aa.Byte())
	}

	return b.String()
}
