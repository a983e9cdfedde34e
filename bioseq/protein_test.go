package bioseq_test

import (
	"testing"

	"github.com/katalvlaran/bioalign/bioseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewProtein_MixedCase parses a mixed-case string into residues.
func TestNewProtein_MixedCase(t *testing.T) {
	p, err := bioseq.NewProtein("MnGTEgPNFyVp")
	require.NoError(t, err)

	want := []bioseq.Aac{
		bioseq.M, bioseq.N, bioseq.G, bioseq.T, bioseq.E, bioseq.G,
		bioseq.P, bioseq.N, bioseq.F, bioseq.Y, bioseq.V, bioseq.P,
	}
	assert.Equal(t, want, p.Seq(), "residues in input order")
	assert.Equal(t, len(want), p.Len())
	assert.Equal(t, "MNGTEGPNFYVP", p.String(), "String renders upper-case")
}

// TestNewProtein_Errors covers empty and malformed inputs.
func TestNewProtein_Errors(t *testing.T) {
	_, err := bioseq.NewProtein("")
	assert.ErrorIs(t, err, bioseq.ErrEmptySequence)

	_, err = bioseq.NewProtein("VTVQＨKKLRT")
	assert.ErrorIs(t, err, bioseq.ErrNonASCII)

	_, err = bioseq.NewProtein("VTVQBKKLRT")
	assert.ErrorIs(t, err, bioseq.ErrInvalidCode, "B is not a residue code")
}

// TestProtein_SeqIsACopy ensures callers cannot mutate the sequence.
func TestProtein_SeqIsACopy(t *testing.T) {
	p, err := bioseq.NewProtein("MVLS")
	require.NoError(t, err)

	s := p.Seq()
	s[0] = bioseq.Y
	assert.Equal(t, bioseq.M, p.At(0), "mutating the copy must not touch the protein")
}
