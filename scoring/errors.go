package scoring

import "errors"

// Sentinel errors for schema construction.
var (
	// ErrBadPenalty indicates gap-cost parameters outside the valid range.
	ErrBadPenalty = errors.New("scoring: invalid gap-penalty parameters")
	// ErrBadTable indicates an unknown substitution-table selector.
	ErrBadTable = errors.New("scoring: unknown substitution table")
)
