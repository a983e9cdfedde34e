// Package bioseq represents biological sequences and their building
// blocks: IUPAC amino-acid codes, validated protein sequences and the
// pairing keys used by symmetric scoring tables.
//
// The 20 standard amino acids are modeled as the Aac enum, ordered
// alphabetically by their one-letter code (A C D E F G H I K L M N P
// Q R S T V W Y). Parsing is case-insensitive and rejects anything
// outside that alphabet.
//
// PairKey maps an ordered pair of codes to a single integer via the
// Cantor pairing function. The map is bijective and strictly
// monotonic, which lets a symmetric substitution table store only its
// upper triangle as a sorted key/score list (see package scoring).
//
// ⚙️ Usage:
//
//	p, err := bioseq.NewProtein("MVLSPADKT")
//	if err != nil {
//	  // handle ErrInvalidCode / ErrNonASCII / ErrEmptySequence
//	}
//	fmt.Println(p.Len(), p.String())
package bioseq
