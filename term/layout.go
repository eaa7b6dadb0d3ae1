package term

import (
	"fmt"
	"strings"

	"github.com/plus3/termtris/tetris"
)

// Side panel rows, next to the board.
const (
	nextRow     = 0
	heldRow     = 2
	linesRow    = 4
	gameOverRow = 6
)

// GameOverText is shown once the game has ended.
const GameOverText = "Game over! Press enter to continue."

// BoardColumn returns the screen column of board column x in a layout line.
func BoardColumn(x int) int {
	return 1 + 2*x
}

// Layout renders a snapshot as one text line per board row: the board
// between pipes, with the next pieces, hold slot, line count and game-over
// notice beside it.
func Layout(snap tetris.Snapshot) []string {
	lines := make([]string, tetris.Height)
	var b strings.Builder
	for y := range tetris.Height {
		b.Reset()
		b.WriteByte('|')
		for x := range tetris.Width {
			b.WriteRune(snap.Grid[y][x].Symbol())
			b.WriteByte('|')
		}
		lines[y] = b.String()
	}

	lines[nextRow] += " Next: " + nextPieces(snap.Next)
	lines[heldRow] += fmt.Sprintf(" Held: %s, Can hold: %t", heldName(snap), snap.CanHold)
	lines[linesRow] += fmt.Sprintf(" Lines cleared: %d", snap.Lines)
	if snap.GameOver() {
		lines[gameOverRow] += " " + GameOverText
	}
	return lines
}

func nextPieces(next []tetris.Kind) string {
	var b strings.Builder
	for _, k := range next {
		b.WriteString(k.String())
		b.WriteByte(' ')
	}
	return b.String()
}

func heldName(snap tetris.Snapshot) string {
	if !snap.HasHeld {
		return "None"
	}
	return snap.Held.String()
}
