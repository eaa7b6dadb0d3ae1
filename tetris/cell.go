// Package tetris implements the game-state engine of a falling-block puzzle:
// the playfield, tetromino geometry, the 7-bag randomizer, hold, gravity and
// line clearing. It performs no I/O; frontends feed it Actions and read back
// Snapshots.
package tetris

import "fmt"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota + 1
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every piece kind in canonical bag order.
var Kinds = [7]Kind{I, O, T, S, Z, J, L}

var kindLetters = [...]byte{I: 'I', O: 'O', T: 'T', S: 'S', Z: 'Z', J: 'J', L: 'L'}

// Valid reports whether k is one of the seven tetrominoes.
func (k Kind) Valid() bool {
	return k >= I && k <= L
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string(kindLetters[k])
}

// Cell returns the board cell value left behind by a locked piece of this kind.
func (k Kind) Cell() Cell {
	return Cell(k)
}

// ParseKind returns the kind named by a single letter (I, O, T, S, Z, J or L).
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// Cell is the content of one board position: Empty or the kind of the piece
// that was locked there.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// Filled reports whether the cell holds a locked block.
func (c Cell) Filled() bool {
	return c != Empty
}

// Kind returns the piece kind stored in the cell. ok is false for Empty.
func (c Cell) Kind() (k Kind, ok bool) {
	k = Kind(c)
	return k, k.Valid()
}

// Symbol is the rune used to draw the cell as text.
func (c Cell) Symbol() rune {
	if k, ok := c.Kind(); ok {
		return rune(kindLetters[k])
	}
	return ' '
}

func (c Cell) String() string {
	if c == Empty {
		return "Empty"
	}
	return Kind(c).String()
}

// Point is a signed board or shape coordinate. X grows to the right, Y grows
// downward; (0, 0) is the top-left corner of the board.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}
