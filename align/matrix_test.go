package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMatrix_BadShape rejects non-positive dimensions.
func TestNewMatrix_BadShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		_, err := NewMatrix(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrBadShape, "dims %v", dims)
	}
}

// TestMatrix_SetGetRoundTrip writes and reads cells through the
// checked accessors.
func TestMatrix_SetGetRoundTrip(t *testing.T) {
	m, err := NewMatrix(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	want := Cell{Dirs: NewDirSet(Diagonal, Vertical), Score: 7.5}
	require.NoError(t, m.Set(1, 2, want))

	got, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Untouched cells stay uninitialized.
	other, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, other.Empty())
}

// TestMatrix_OutOfRange: both accessors reject indices beyond bounds.
func TestMatrix_OutOfRange(t *testing.T) {
	m, err := NewMatrix(2, 3)
	require.NoError(t, err)

	for _, ij := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 5}} {
		_, err = m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "At%v", ij)
		err = m.Set(ij[0], ij[1], Cell{Dirs: DirSet(Diagonal)})
		assert.ErrorIs(t, err, ErrOutOfRange, "Set%v", ij)
	}
}

// TestMatrix_MustAtPanicsOnEmpty: reading an uninitialized cell on
// the traversal path is a fill-order bug and must abort.
func TestMatrix_MustAtPanicsOnEmpty(t *testing.T) {
	m, err := NewMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, Cell{Dirs: DirSet(Diagonal)}))

	assert.NotPanics(t, func() { m.mustAt(0, 0) })
	assert.Panics(t, func() { m.mustAt(1, 1) })
}
