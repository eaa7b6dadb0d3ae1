package tetris

// Shape is a rectangular occupancy grid local to a piece, indexed [x][y].
// Shapes are square so rotations keep their extent.
type Shape [][]bool

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for x := range s {
		out[x] = append([]bool(nil), s[x]...)
	}
	return out
}

// Occupied returns the local coordinates of every filled cell, column by column.
func (s Shape) Occupied() []Point {
	points := make([]Point, 0, 4)
	for x := range s {
		for y, filled := range s[x] {
			if filled {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// At reports whether the local coordinate (x, y) is filled. Coordinates outside
// the grid are empty.
func (s Shape) At(x, y int) bool {
	if x < 0 || x >= len(s) {
		return false
	}
	if y < 0 || y >= len(s[x]) {
		return false
	}
	return s[x][y]
}

func (s Shape) transpose() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	out := make(Shape, len(s[0]))
	for y := range out {
		out[y] = make([]bool, len(s))
		for x := range s {
			out[y][x] = s[x][y]
		}
	}
	return out
}

func (s Shape) reverseColumns() {
	for x := range s {
		col := s[x]
		for i, j := 0, len(col)-1; i < j; i, j = i+1, j-1 {
			col[i], col[j] = col[j], col[i]
		}
	}
}

func (s Shape) reverse() {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Rotation selects the direction of a piece rotation.
type Rotation uint8

const (
	Left Rotation = iota
	Right
	Double
)

func (r Rotation) String() string {
	switch r {
	case Left:
		return "left"
	case Right:
		return "right"
	case Double:
		return "double"
	}
	return "unknown"
}

// Piece is a tetromino placed on the board. Pieces are values: every
// transformation returns a new Piece and leaves the receiver untouched.
type Piece struct {
	Kind  Kind
	Shape Shape
	// Pivot is the local cell that sits on Position.
	Pivot    Point
	Position Point
}

type spawnSpec struct {
	shape    [][]bool
	pivot    Point
	position Point
}

var spawnTable = map[Kind]spawnSpec{
	I: {
		shape: [][]bool{
			{false, true, false, false},
			{false, true, false, false},
			{false, true, false, false},
			{false, true, false, false},
		},
		pivot:    Point{1, 1},
		position: Point{4, 0},
	},
	O: {
		shape: [][]bool{
			{true, true},
			{true, true},
		},
		pivot:    Point{0, 0},
		position: Point{4, 0},
	},
	T: {
		shape: [][]bool{
			{false, true, false},
			{true, true, false},
			{false, true, false},
		},
		pivot:    Point{1, 1},
		position: Point{4, 1},
	},
	S: {
		shape: [][]bool{
			{false, true, false},
			{true, true, false},
			{true, false, false},
		},
		pivot:    Point{1, 1},
		position: Point{4, 1},
	},
	Z: {
		shape: [][]bool{
			{true, false, false},
			{true, true, false},
			{false, true, false},
		},
		pivot:    Point{1, 1},
		position: Point{4, 1},
	},
	J: {
		shape: [][]bool{
			{true, true, false},
			{false, true, false},
			{false, true, false},
		},
		pivot:    Point{1, 1},
		position: Point{4, 1},
	},
	L: {
		shape: [][]bool{
			{false, true, false},
			{false, true, false},
			{true, true, false},
		},
		pivot:    Point{1, 1},
		position: Point{4, 1},
	},
}

// Spawn returns a fresh piece of the given kind at its spawn position.
// Spawn panics on an invalid kind.
func Spawn(kind Kind) Piece {
	spec, ok := spawnTable[kind]
	if !ok {
		panic("tetris: spawn of invalid kind " + kind.String())
	}
	return Piece{
		Kind:     kind,
		Shape:    Shape(spec.shape).Clone(),
		Pivot:    spec.pivot,
		Position: spec.position,
	}
}

// Translate returns a copy of p moved by (dx, dy). Legality is not checked.
func (p Piece) Translate(dx, dy int) Piece {
	p.Position = p.Position.Add(Point{X: dx, Y: dy})
	return p
}

// Rotate returns a copy of p rotated by a quarter turn (left or right) or a
// half turn. The pivot and position are kept as they are; there are no wall
// kicks, an overlapping result is simply rejected by the caller.
func (p Piece) Rotate(dir Rotation) Piece {
	shape := p.Shape.transpose()
	switch dir {
	case Left:
		shape.reverseColumns()
	case Right:
		shape.reverse()
	case Double:
		shape = shape.transpose()
		shape.reverseColumns()
		shape.reverse()
	}
	p.Shape = shape
	return p
}

// Cells returns the absolute board coordinates covered by p.
func (p Piece) Cells() []Point {
	local := p.Shape.Occupied()
	offset := p.Position.Sub(p.Pivot)
	for i := range local {
		local[i] = local[i].Add(offset)
	}
	return local
}

// Covers reports whether p occupies the board coordinate at.
func (p Piece) Covers(at Point) bool {
	local := at.Sub(p.Position).Add(p.Pivot)
	return p.Shape.At(local.X, local.Y)
}
