package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsNonPositiveDimensions(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 20) })
	assert.Panics(t, func() { NewBoard(10, -1) })
	assert.NotPanics(t, func() { NewBoard(1, 1) })
}

func TestCellStates(t *testing.T) {
	var empty Cell
	assert.False(t, empty.Occupied())
	_, ok := empty.Kind()
	assert.False(t, ok)
	_, ok = empty.Color()
	assert.False(t, ok)

	filled := Filled(S)
	assert.True(t, filled.Occupied())
	kind, ok := filled.Kind()
	require.True(t, ok)
	assert.Equal(t, S, kind)
	color, ok := filled.Color()
	require.True(t, ok)
	assert.Equal(t, S.Color(), color)

	assert.Panics(t, func() { Filled(PieceKind(12)) })
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := parseBoard(t,
		"....",
		"I..O",
	)
	clone := b.Clone()
	assert.True(t, b.Equal(clone))

	clone.set(1, 0, Filled(T))
	assert.False(t, b.Equal(clone))
	assert.False(t, b.At(1, 0).Occupied())
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, 3, clone.Count())
}

func TestBoardRowIsCopy(t *testing.T) {
	b := parseBoard(t, "J.", "..")
	row := b.Row(0)
	row[1] = Filled(L)
	assert.False(t, b.At(1, 0).Occupied())
}

func TestBoardContains(t *testing.T) {
	b := NewBoard(10, 20)
	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(9, 19))
	assert.False(t, b.Contains(10, 0))
	assert.False(t, b.Contains(0, -1))
	assert.False(t, b.Contains(-1, 5))
	assert.False(t, b.Contains(3, 20))
}
