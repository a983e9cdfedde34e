// Package format renders alignments as three-line text blocks: the
// left sequence, a marker line ('|' match, ':' mismatch, space at
// gaps) and the top sequence, with '_' standing in for gap positions.
// Long alignments wrap every 50 columns.
//
//	MVLSPADKT
//	||||::||:
//	MVLSGEDKS
package format
