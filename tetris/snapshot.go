package tetris

// Snapshot is a read-only view of one tick, ready to be drawn.
type Snapshot struct {
	// Grid holds the board with the active piece drawn over it, indexed [y][x].
	Grid [Height][Width]Cell

	Active    Kind
	HasActive bool
	Next      []Kind
	Held      Kind
	HasHeld   bool
	CanHold   bool
	Lines     int
	State     State
	Ticks     uint64
	Gravity   int
}

// GameOver reports whether the session has ended. Frontends should wait for
// the player to acknowledge it before leaving the game view.
func (s Snapshot) GameOver() bool {
	return s.State == GameOver
}

// Row renders one grid row as symbols, without separators.
func (s Snapshot) Row(y int) string {
	runes := make([]rune, Width)
	for x, c := range s.Grid[y] {
		runes[x] = c.Symbol()
	}
	return string(runes)
}
