package tetris_test

import (
	"testing"

	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestOverlapsOutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		piece tetris.Piece
		want  bool
	}{
		{"spawn I", tetris.Spawn(tetris.I), false},
		{"column below zero", tetris.Spawn(tetris.I).Translate(-4, 0), true},
		{"column at width", tetris.Spawn(tetris.I).Translate(4, 0), true},
		{"flush right", tetris.Spawn(tetris.I).Translate(3, 0), false},
		{"row below zero", tetris.Spawn(tetris.O).Translate(0, -1), true},
		{"row at height", tetris.Spawn(tetris.O).Translate(0, 19), true},
		{"floor", tetris.Spawn(tetris.O).Translate(0, 18), false},
		{"far away", tetris.Spawn(tetris.T).Translate(100, -100), true},
	}

	var board tetris.Board
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.Overlaps(tt.piece))
		})
	}
}

func TestOverlapsFilledCell(t *testing.T) {
	var board tetris.Board
	piece := tetris.Spawn(tetris.T).Translate(0, 10)

	assert.False(t, board.Overlaps(piece))

	board.Set(tetris.Point{X: 4, Y: 11}, tetris.Z.Cell())
	assert.True(t, board.Overlaps(piece))

	board.Set(tetris.Point{X: 4, Y: 11}, tetris.Empty)
	board.Set(tetris.Point{X: 3, Y: 10}, tetris.Z.Cell())
	assert.False(t, board.Overlaps(piece), "a cell the piece does not cover")
}

func TestLockWritesKind(t *testing.T) {
	var board tetris.Board
	board.Set(tetris.Point{X: 0, Y: 19}, tetris.I.Cell())
	piece := tetris.Spawn(tetris.J).Translate(2, 7)

	board.Lock(piece)

	for _, at := range piece.Cells() {
		assert.Equal(t, tetris.J.Cell(), board.At(at))
	}
	assert.Equal(t, tetris.I.Cell(), board.At(tetris.Point{X: 0, Y: 19}))
	assert.Equal(t, 5, board.Filled())
}

func TestAtAndSetIgnoreOffBoard(t *testing.T) {
	var board tetris.Board
	board.Set(tetris.Point{X: -1, Y: 0}, tetris.O.Cell())
	board.Set(tetris.Point{X: 0, Y: tetris.Height}, tetris.O.Cell())

	assert.Equal(t, 0, board.Filled())
	assert.Equal(t, tetris.Empty, board.At(tetris.Point{X: tetris.Width, Y: 0}))
}

func TestIsRowFull(t *testing.T) {
	var board tetris.Board
	board.FillRow(19, tetris.S.Cell())
	board.FillRow(18, tetris.S.Cell())
	board.Set(tetris.Point{X: 9, Y: 18}, tetris.Empty)

	assert.True(t, board.IsRowFull(19))
	assert.False(t, board.IsRowFull(18))
	assert.False(t, board.IsRowFull(0))
}

func TestClearRowShiftsRowsAbove(t *testing.T) {
	var board tetris.Board
	board.Set(tetris.Point{X: 0, Y: 0}, tetris.T.Cell())
	board.Set(tetris.Point{X: 1, Y: 5}, tetris.L.Cell())
	board.FillRow(12, tetris.I.Cell())
	board.Set(tetris.Point{X: 2, Y: 13}, tetris.O.Cell())

	board.ClearRow(12)

	assert.Equal(t, [tetris.Width]tetris.Cell{}, board.Row(0))
	assert.Equal(t, tetris.T.Cell(), board.At(tetris.Point{X: 0, Y: 1}))
	assert.Equal(t, tetris.L.Cell(), board.At(tetris.Point{X: 1, Y: 6}))
	assert.Equal(t, tetris.Empty, board.At(tetris.Point{X: 1, Y: 5}))
	assert.Equal(t, tetris.O.Cell(), board.At(tetris.Point{X: 2, Y: 13}), "rows below are untouched")
	assert.False(t, board.IsRowFull(12))
	assert.Equal(t, 3, board.Filled())
}

func TestClearFullRows(t *testing.T) {
	t.Run("adjacent rows", func(t *testing.T) {
		var board tetris.Board
		board.FillRow(18, tetris.I.Cell())
		board.FillRow(19, tetris.J.Cell())
		board.Set(tetris.Point{X: 0, Y: 17}, tetris.T.Cell())

		cleared := board.ClearFullRows()

		assert.Equal(t, []int{18, 19}, cleared)
		assert.Equal(t, tetris.T.Cell(), board.At(tetris.Point{X: 0, Y: 19}))
		assert.Equal(t, 1, board.Filled())
	})

	t.Run("separated rows", func(t *testing.T) {
		var board tetris.Board
		board.Set(tetris.Point{X: 2, Y: 15}, tetris.S.Cell())
		board.FillRow(16, tetris.I.Cell())
		board.Set(tetris.Point{X: 1, Y: 17}, tetris.Z.Cell())
		board.FillRow(18, tetris.I.Cell())

		cleared := board.ClearFullRows()

		assert.Equal(t, []int{16, 18}, cleared)
		assert.Equal(t, tetris.S.Cell(), board.At(tetris.Point{X: 2, Y: 17}))
		assert.Equal(t, tetris.Z.Cell(), board.At(tetris.Point{X: 1, Y: 18}))
		assert.Equal(t, 2, board.Filled())
	})

	t.Run("four rows", func(t *testing.T) {
		var board tetris.Board
		for row := 16; row < tetris.Height; row++ {
			board.FillRow(row, tetris.L.Cell())
		}
		board.Set(tetris.Point{X: 5, Y: 15}, tetris.O.Cell())

		cleared := board.ClearFullRows()

		assert.Len(t, cleared, 4)
		assert.Equal(t, tetris.O.Cell(), board.At(tetris.Point{X: 5, Y: 19}))
		assert.Equal(t, 1, board.Filled())
	})

	t.Run("nothing full", func(t *testing.T) {
		var board tetris.Board
		board.Set(tetris.Point{X: 5, Y: 19}, tetris.O.Cell())
		assert.Empty(t, board.ClearFullRows())
		assert.Equal(t, 1, board.Filled())
	})
}
