package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shifted(points []tetris.Point, dx, dy int) []tetris.Point {
	out := make([]tetris.Point, len(points))
	for i, p := range points {
		out[i] = tetris.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

func TestSpawnCells(t *testing.T) {
	tests := []struct {
		kind  tetris.Kind
		cells []tetris.Point
	}{
		{tetris.I, []tetris.Point{{3, 0}, {4, 0}, {5, 0}, {6, 0}}},
		{tetris.O, []tetris.Point{{4, 0}, {4, 1}, {5, 0}, {5, 1}}},
		{tetris.T, []tetris.Point{{3, 1}, {4, 0}, {4, 1}, {5, 1}}},
		{tetris.S, []tetris.Point{{3, 1}, {4, 0}, {4, 1}, {5, 0}}},
		{tetris.Z, []tetris.Point{{3, 0}, {4, 0}, {4, 1}, {5, 1}}},
		{tetris.J, []tetris.Point{{3, 0}, {3, 1}, {4, 1}, {5, 1}}},
		{tetris.L, []tetris.Point{{3, 1}, {4, 1}, {5, 0}, {5, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			piece := tetris.Spawn(tt.kind)
			assert.Equal(t, tt.kind, piece.Kind)
			assert.ElementsMatch(t, tt.cells, piece.Cells())

			var board tetris.Board
			assert.False(t, board.Overlaps(piece))
		})
	}
}

func TestSpawnInvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { tetris.Spawn(0) })
}

func TestTranslateShiftsCells(t *testing.T) {
	deltas := []tetris.Point{{0, 1}, {-1, 0}, {1, 0}, {3, 7}, {-4, 12}}

	for _, kind := range tetris.Kinds {
		piece := tetris.Spawn(kind)
		for _, d := range deltas {
			t.Run(fmt.Sprintf("%s/%d,%d", kind, d.X, d.Y), func(t *testing.T) {
				moved := piece.Translate(d.X, d.Y)
				assert.ElementsMatch(t, shifted(piece.Cells(), d.X, d.Y), moved.Cells())
				assert.Equal(t, piece.Pivot, moved.Pivot)
				assert.Equal(t, piece.Shape, moved.Shape)
			})
		}
	}
}

func TestRotationIdentities(t *testing.T) {
	for _, kind := range tetris.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			piece := tetris.Spawn(kind).Translate(0, 5)
			original := piece.Cells()

			right := piece
			left := piece
			for range 4 {
				right = right.Rotate(tetris.Right)
				left = left.Rotate(tetris.Left)
			}
			assert.ElementsMatch(t, original, right.Cells(), "four right turns")
			assert.ElementsMatch(t, original, left.Cells(), "four left turns")

			double := piece.Rotate(tetris.Double).Rotate(tetris.Double)
			assert.ElementsMatch(t, original, double.Cells(), "two half turns")

			assert.ElementsMatch(t, original, piece.Rotate(tetris.Right).Rotate(tetris.Left).Cells())
			assert.ElementsMatch(t,
				piece.Rotate(tetris.Right).Rotate(tetris.Right).Cells(),
				piece.Rotate(tetris.Double).Cells())
		})
	}
}

func TestRotateKeepsPositionAndReceiver(t *testing.T) {
	piece := tetris.Spawn(tetris.T)
	before := piece.Shape.Clone()

	rotated := piece.Rotate(tetris.Right)

	assert.Equal(t, before, piece.Shape)
	assert.Equal(t, piece.Position, rotated.Position)
	assert.Equal(t, piece.Pivot, rotated.Pivot)
	assert.ElementsMatch(t,
		[]tetris.Point{{4, 0}, {4, 1}, {4, 2}, {5, 1}},
		rotated.Cells())
}

func TestRotatePreservesCellCount(t *testing.T) {
	for _, kind := range tetris.Kinds {
		for _, dir := range []tetris.Rotation{tetris.Left, tetris.Right, tetris.Double} {
			rotated := tetris.Spawn(kind).Rotate(dir)
			assert.Len(t, rotated.Cells(), 4, "%s rotated %s", kind, dir)
		}
	}
}

func TestCoversMatchesCells(t *testing.T) {
	for _, kind := range tetris.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			piece := tetris.Spawn(kind).Rotate(tetris.Left).Translate(-2, 6)
			cells := piece.Cells()
			require.Len(t, cells, 4)

			covered := 0
			for y := -2; y < tetris.Height+2; y++ {
				for x := -2; x < tetris.Width+2; x++ {
					at := tetris.Point{X: x, Y: y}
					if piece.Covers(at) {
						covered++
						assert.Contains(t, cells, at)
					}
				}
			}
			assert.Equal(t, 4, covered)
		})
	}
}

func ExamplePiece_Rotate() {
	draw := func(p tetris.Piece) {
		for y := 0; y < 3; y++ {
			row := ""
			for x := 3; x < 6; x++ {
				if p.Covers(tetris.Point{X: x, Y: y}) {
					row += "#"
				} else {
					row += "."
				}
			}
			fmt.Println(row)
		}
	}

	piece := tetris.Spawn(tetris.T)
	draw(piece)
	fmt.Println()
	draw(piece.Rotate(tetris.Right))
	// Output:
	// .#.
	// ###
	// ...
	//
	// .#.
	// .##
	// .#.
}
