package tetris

import "math/rand/v2"

const (
	// GravityTicks is the number of ticks between gravity steps, one second at 60Hz.
	GravityTicks = 60
	// Lookahead is the number of upcoming pieces shown to the player.
	Lookahead = 5
)

// State is the lifecycle state of a Game.
type State uint8

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "playing"
}

// Game is one play session. It owns the board, the active piece, the hold slot
// and the piece sequence. A Game is not safe for concurrent use.
type Game struct {
	board Board

	active    Piece
	hasActive bool

	held    Kind
	hasHeld bool
	canHold bool

	seq     *Sequence
	lines   int
	gravity int
	state   State
	ticks   uint64

	stats  Stats
	events []Event
}

type options struct {
	rng   *rand.Rand
	bags  *[2]Bag
	board *Board
}

// Option configures a new Game.
type Option func(*options)

// WithRand makes the game shuffle bags with rng.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed makes the piece sequence reproducible. A zero seed is random.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = NewRand(seed)
	}
}

// WithBags fixes the first two bags dealt.
func WithBags(current, next Bag) Option {
	return func(o *options) {
		o.bags = &[2]Bag{current, next}
	}
}

// WithBoard starts the game on a pre-filled board.
func WithBoard(b Board) Option {
	return func(o *options) {
		o.board = &b
	}
}

// New starts a game and spawns its first piece.
func New(opts ...Option) *Game {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(0)
	}

	g := &Game{
		gravity: GravityTicks,
		stats:   newStats(),
	}
	if o.board != nil {
		g.board = *o.board
	}
	if o.bags != nil {
		g.seq = NewSequenceFrom(o.bags[0], o.bags[1], o.rng)
	} else {
		g.seq = NewSequence(o.rng)
	}

	g.spawnNext(true)
	return g
}

// Board returns a copy of the playfield without the active piece.
func (g *Game) Board() Board {
	return g.board
}

// Active returns the falling piece. ok is false between a hold into an empty
// slot and the next spawn.
func (g *Game) Active() (p Piece, ok bool) {
	return g.active, g.hasActive
}

// Held returns the kind in the hold slot, if any.
func (g *Game) Held() (k Kind, ok bool) {
	return g.held, g.hasHeld
}

// CanHold reports whether a hold is allowed before the next spawn.
func (g *Game) CanHold() bool {
	return g.canHold
}

// Lines returns the number of rows cleared so far.
func (g *Game) Lines() int {
	return g.lines
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) GameOver() bool {
	return g.state == GameOver
}

// GravityCountdown returns the ticks left before the next gravity step.
func (g *Game) GravityCountdown() int {
	return g.gravity
}

// Ticks returns the number of ticks begun so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Next returns the upcoming n pieces (at most BagSize).
func (g *Game) Next(n int) []Kind {
	return g.seq.Peek(n)
}

func (g *Game) Stats() Stats {
	return g.stats
}

// DrainEvents returns the events recorded since the previous call.
func (g *Game) DrainEvents() []Event {
	events := g.events
	g.events = nil
	return events
}

// Step runs one full tick: spawn, line clear, gravity, then the player's
// action (ActionNone for no input). It does nothing once the game is over.
func (g *Game) Step(a Action) {
	if !g.BeginTick() {
		return
	}
	g.SpawnPhase()
	g.ClearPhase()
	g.GravityPhase()
	g.Apply(a)
}

// BeginTick advances the tick counter. It returns false when the game is over
// and no phase should run.
func (g *Game) BeginTick() bool {
	if g.state == GameOver {
		return false
	}
	g.ticks++
	return true
}

// SpawnPhase deals the next piece when there is no active piece. This refill
// only happens after a hold into an empty slot, so it does not re-enable hold.
func (g *Game) SpawnPhase() {
	if g.state == GameOver || g.hasActive {
		return
	}
	g.spawnNext(false)
}

// ClearPhase clears every full row.
func (g *Game) ClearPhase() {
	if g.state == GameOver {
		return
	}
	g.clearRows()
}

// ClearRow removes one row, shifting the rows above it down, and counts it as
// a cleared line. Rows that are not full are cleared all the same.
func (g *Game) ClearRow(row int) {
	if g.state == GameOver || row < 0 || row >= Height {
		return
	}
	g.board.ClearRow(row)
	g.lines++
	g.stats.Lines = g.lines
	g.emit(Event{Type: EventClear, Rows: []int{row}})
}

// GravityPhase counts down to the next gravity step. When it fires the active
// piece moves down a row, or locks if it cannot.
func (g *Game) GravityPhase() {
	if g.state == GameOver {
		return
	}
	g.gravity--
	if g.gravity > 0 {
		return
	}
	g.gravity = GravityTicks
	if !g.hasActive {
		return
	}
	if !g.move(0, 1) {
		g.lock()
	}
}

// Apply performs one player action. Illegal moves and rotations are ignored.
func (g *Game) Apply(a Action) {
	if g.state == GameOver {
		return
	}

	switch a {
	case Quit:
		g.endGame(0)
		return
	case Hold:
		g.hold()
		return
	}

	if !g.hasActive {
		return
	}

	switch a {
	case MoveLeft:
		g.move(-1, 0)
	case MoveRight:
		g.move(1, 0)
	case SoftDrop:
		g.move(0, 1)
	case HardLeft:
		for g.move(-1, 0) {
		}
	case HardRight:
		for g.move(1, 0) {
		}
	case HardDrop:
		for g.move(0, 1) {
		}
		g.stats.HardDrops++
		g.lock()
		g.gravity = GravityTicks
	case RotateLeft:
		g.commit(g.active.Rotate(Left))
	case RotateRight:
		g.commit(g.active.Rotate(Right))
	case RotateDouble:
		g.commit(g.active.Rotate(Double))
	}
}

// Snapshot captures everything a frontend needs to draw the current tick.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Next:    g.seq.Peek(Lookahead),
		Held:    g.held,
		HasHeld: g.hasHeld,
		CanHold: g.canHold,
		Lines:   g.lines,
		State:   g.state,
		Ticks:   g.ticks,
		Gravity: g.gravity,
	}
	if g.hasActive {
		s.Active = g.active.Kind
		s.HasActive = true
	}
	for y := range s.Grid {
		for x := range s.Grid[y] {
			at := Point{X: x, Y: y}
			if g.hasActive && g.active.Covers(at) {
				s.Grid[y][x] = g.active.Kind.Cell()
				continue
			}
			s.Grid[y][x] = g.board.cells[y][x]
		}
	}
	return s
}

func (g *Game) commit(candidate Piece) bool {
	if g.board.Overlaps(candidate) {
		return false
	}
	g.active = candidate
	return true
}

func (g *Game) move(dx, dy int) bool {
	return g.commit(g.active.Translate(dx, dy))
}

func (g *Game) lock() {
	g.board.Lock(g.active)
	g.hasActive = false
	g.stats.Locks++
	g.emit(Event{Type: EventLock, Kind: g.active.Kind})

	g.clearRows()
	g.spawnNext(true)
}

func (g *Game) clearRows() {
	rows := g.board.ClearFullRows()
	if len(rows) == 0 {
		return
	}
	g.lines += len(rows)
	g.stats.Lines = g.lines
	g.emit(Event{Type: EventClear, Rows: rows})
}

func (g *Game) hold() {
	if !g.canHold || !g.hasActive {
		return
	}
	g.canHold = false

	prev, had := g.held, g.hasHeld
	g.held, g.hasHeld = g.active.Kind, true
	g.stats.Holds++
	g.emit(Event{Type: EventHold, Kind: g.active.Kind})

	if !had {
		g.hasActive = false
		return
	}
	g.place(Spawn(prev))
}

// spawnNext deals from the bag. A natural spawn follows a lock and re-arms hold.
func (g *Game) spawnNext(natural bool) {
	if natural {
		g.canHold = true
	}
	k := g.seq.Next()
	g.stats.deal(k)
	g.place(Spawn(k))
}

func (g *Game) place(p Piece) {
	g.active, g.hasActive = p, true
	g.emit(Event{Type: EventSpawn, Kind: p.Kind})
	if g.board.Overlaps(p) {
		g.endGame(p.Kind)
	}
}

func (g *Game) endGame(k Kind) {
	if g.state == GameOver {
		return
	}
	g.state = GameOver
	g.emit(Event{Type: EventGameOver, Kind: k})
}

func (g *Game) emit(e Event) {
	e.Tick = g.ticks
	g.events = append(g.events, e)
}
