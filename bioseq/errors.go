package bioseq

import "errors"

// Sentinel errors for sequence construction.
var (
	// ErrEmptySequence indicates an empty input string.
	ErrEmptySequence = errors.New("bioseq: sequence must contain at least one IUPAC code")
	// ErrInvalidCode indicates a character outside the 20 IUPAC amino-acid codes.
	ErrInvalidCode = errors.New("bioseq: not a valid IUPAC amino-acid code")
	// ErrNonASCII indicates a non-ASCII character in the input.
	ErrNonASCII = errors.New("bioseq: IUPAC codes must be ASCII characters")
)
