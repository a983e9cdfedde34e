package bioseq

import "fmt"

// Aac is one of the 20 standard IUPAC amino-acid codes.
// The numeric order follows the one-letter alphabet, so Aac values are
// totally ordered and usable as compact table indices.
type Aac uint8

const (
	A Aac = iota
	C
	D
	E
	F
	G
	H
	I
	K
	L
	M
	N
	P
	Q
	R
	S
	T
	V
	W
	Y

	// NumAac is the size of the amino-acid alphabet.
	NumAac = 20
)

// codes holds the one-letter display code for each Aac, indexed by value.
const codes = "ACDEFGHIKLMNPQRSTVWY"

// FromChar converts a single one-letter IUPAC code into an Aac.
// The lookup is case-insensitive. Non-ASCII input yields ErrNonASCII;
// ASCII characters outside the alphabet yield ErrInvalidCode.
func FromChar(c rune) (Aac, error) {
	if c > 127 {
		return 0, fmt.Errorf("%w: %q", ErrNonASCII, c)
	}
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 0; i < NumAac; i++ {
		if rune(codes[i]) == c {
			return Aac(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidCode, c)
}

// Byte returns the upper-case one-letter code of a.
func (a Aac) Byte() byte { return codes[a] }

// String implements fmt.Stringer.
func (a Aac) String() string { return string(codes[a]) }

// PairKey maps the ordered pair (a, b) to a single integer using the
// Cantor pairing function:
//
//	key = (a+b)(a+b+1)/2 + b
//
// The map is bijective over ordered pairs and strictly monotonic in
// (a+b, b), so sorted keys admit binary search. Symmetric tables call
// SortedPairKey instead, which collapses (a, b) and (b, a).
func PairKey(a, b Aac) uint16 {
	s := uint16(a) + uint16(b)

	return s*(s+1)/2 + uint16(b)
}

// SortedPairKey returns PairKey of the pair ordered so that the
// smaller code comes first. Both (a, b) and (b, a) map to the same
// key, matching the upper-triangular storage of symmetric tables.
func SortedPairKey(a, b Aac) uint16 {
	if a > b {
		a, b = b, a
	}

	return PairKey(a, b)
}
