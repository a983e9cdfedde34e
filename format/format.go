package format

import (
	"strings"

	"github.com/katalvlaran/bioalign/align"
)

const (
	gapGlyph      = '_'
	matchGlyph    = '|'
	mismatchGlyph = ':'
	spaceGlyph    = ' '

	// lineWidth is the wrap point for long alignments.
	lineWidth = 50
)

// Render draws one alignment as three newline-separated text lines.
// glyph maps a symbol to its display byte; bioseq.Aac.Byte fits
// directly for protein alignments.
func Render[S comparable](al align.Alignment[S], glyph func(S) byte) string {
	var line1, line2, line3 strings.Builder
	line1.Grow(al.Len())
	line2.Grow(al.Len())
	line3.Grow(al.Len())

	col := 0
	for _, p := range al.Pairs {
		if col == lineWidth {
			line1.WriteByte('\n')
			line2.WriteByte('\n')
			line3.WriteByte('\n')
			col = 0
		}
		switch {
		case p.HasLeft && p.HasTop:
			line1.WriteByte(glyph(p.Left))
			if p.Left == p.Top {
				line2.WriteByte(matchGlyph)
			} else {
				line2.WriteByte(mismatchGlyph)
			}
			line3.WriteByte(glyph(p.Top))
		case p.HasLeft:
			line1.WriteByte(glyph(p.Left))
			line2.WriteByte(spaceGlyph)
			line3.WriteByte(gapGlyph)
		case p.HasTop:
			line1.WriteByte(gapGlyph)
			line2.WriteByte(spaceGlyph)
			line3.WriteByte(glyph(p.Top))
		}
		col++
	}

	return line1.String() + "\n" + line2.String() + "\n" + line3.String()
}
