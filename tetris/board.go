package tetris

const (
	Width  = 10
	Height = 20
)

// Board is the fixed-size playfield. The zero value is an empty board.
type Board struct {
	cells [Height][Width]Cell
}

// InBounds reports whether p lies on the board.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// At returns the cell at p, or Empty when p is off the board.
func (b *Board) At(p Point) Cell {
	if !InBounds(p) {
		return Empty
	}
	return b.cells[p.Y][p.X]
}

// Set stores c at p. Off-board coordinates are ignored.
func (b *Board) Set(p Point, c Cell) {
	if !InBounds(p) {
		return
	}
	b.cells[p.Y][p.X] = c
}

// Row returns a copy of the given row.
func (b *Board) Row(row int) [Width]Cell {
	return b.cells[row]
}

// FillRow sets every cell of row to c.
func (b *Board) FillRow(row int, c Cell) {
	for x := range b.cells[row] {
		b.cells[row][x] = c
	}
}

// Overlaps reports whether p is illegal on this board: any of its cells is off
// the board or on a filled cell.
func (b *Board) Overlaps(p Piece) bool {
	for _, at := range p.Cells() {
		if !InBounds(at) {
			return true
		}
		if b.cells[at.Y][at.X].Filled() {
			return true
		}
	}
	return false
}

// Lock writes p's kind into every cell it covers. p must not overlap the board.
func (b *Board) Lock(p Piece) {
	for _, at := range p.Cells() {
		b.cells[at.Y][at.X] = p.Kind.Cell()
	}
}

// IsRowFull reports whether every column of row is filled.
func (b *Board) IsRowFull(row int) bool {
	for _, c := range b.cells[row] {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// ClearRow removes row, moving every row above it down by one and leaving
// row 0 empty.
func (b *Board) ClearRow(row int) {
	copy(b.cells[1:row+1], b.cells[0:row])
	b.cells[0] = [Width]Cell{}
}

// ClearFullRows clears every full row and returns their indices as they were
// found. Rows are scanned top to bottom: clearing a row only shifts the rows
// above it, which have already been scanned, so adjacent full rows are all
// caught in one pass.
func (b *Board) ClearFullRows() []int {
	var cleared []int
	for row := 0; row < Height; row++ {
		if b.IsRowFull(row) {
			b.ClearRow(row)
			cleared = append(cleared, row)
		}
	}
	return cleared
}

// Filled returns the number of filled cells on the board.
func (b *Board) Filled() int {
	n := 0
	for row := range b.cells {
		for _, c := range b.cells[row] {
			if c.Filled() {
				n++
			}
		}
	}
	return n
}
