package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bioalign/align"
	"github.com/katalvlaran/bioalign/bioseq"
	"github.com/katalvlaran/bioalign/scoring"
)

// randomResidues returns n pseudo-random amino acids from a fixed seed
// so every run benchmarks the same pair of sequences.
func randomResidues(r *rand.Rand, n int) []bioseq.Aac {
	out := make([]bioseq.Aac, n)
	for i := range out {
		out[i] = bioseq.Aac(r.Intn(bioseq.NumAac))
	}

	return out
}

// benchmarkAlign is a helper that aligns random sequences of lengths
// n and m in the given mode. It resets the timer before entering the
// loop and fails on unexpected errors.
func benchmarkAlign(b *testing.B, n, m int, mode align.Mode) {
	r := rand.New(rand.NewSource(42))
	left := randomResidues(r, n)
	top := randomResidues(r, m)

	penalty, err := scoring.NewAffine(10, 1)
	if err != nil {
		b.Fatalf("NewAffine failed: %v", err)
	}
	schema, err := scoring.NewSchema(scoring.Blosum62, penalty)
	if err != nil {
		b.Fatalf("NewSchema failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := align.Align(left, top, schema, mode)
		if err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_GlobalSmall benchmarks global alignment of 100×100 sequences.
func BenchmarkAlign_GlobalSmall(b *testing.B) {
	benchmarkAlign(b, 100, 100, align.Global)
}

// BenchmarkAlign_GlobalMedium benchmarks global alignment of 500×500 sequences.
func BenchmarkAlign_GlobalMedium(b *testing.B) {
	benchmarkAlign(b, 500, 500, align.Global)
}

// BenchmarkAlign_GlobalSkewed benchmarks global alignment of sequences of very different lengths.
func BenchmarkAlign_GlobalSkewed(b *testing.B) {
	benchmarkAlign(b, 500, 50, align.Global)
}

// BenchmarkAlign_LocalSmall benchmarks local alignment of 100×100 sequences.
func BenchmarkAlign_LocalSmall(b *testing.B) {
	benchmarkAlign(b, 100, 100, align.Local)
}

// BenchmarkAlign_LocalMedium benchmarks local alignment of 500×500 sequences.
func BenchmarkAlign_LocalMedium(b *testing.B) {
	benchmarkAlign(b, 500, 500, align.Local)
}
