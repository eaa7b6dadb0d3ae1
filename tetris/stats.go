package tetris

import "github.com/kamstrup/intmap"

// Stats accumulates per-session counters.
type Stats struct {
	dealt *intmap.Map[Kind, int]

	Locks     int
	Holds     int
	HardDrops int
	Lines     int
}

func newStats() Stats {
	return Stats{dealt: intmap.New[Kind, int](BagSize)}
}

func (s *Stats) deal(k Kind) {
	n, _ := s.dealt.Get(k)
	s.dealt.Put(k, n+1)
}

// Dealt returns how many pieces of kind k came out of the bag.
func (s Stats) Dealt(k Kind) int {
	if s.dealt == nil {
		return 0
	}
	n, _ := s.dealt.Get(k)
	return n
}

// TotalDealt returns the number of pieces dealt from the bag.
func (s Stats) TotalDealt() int {
	total := 0
	for _, k := range Kinds {
		total += s.Dealt(k)
	}
	return total
}

// EventType classifies engine events.
type EventType uint8

const (
	EventSpawn EventType = iota + 1
	EventLock
	EventClear
	EventHold
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventLock:
		return "lock"
	case EventClear:
		return "clear"
	case EventHold:
		return "hold"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event records something the engine did during a tick, for frontends and logs.
type Event struct {
	Type EventType
	Tick uint64
	// Kind is the piece involved, zero for clears and game over by quit.
	Kind Kind
	// Rows lists the cleared rows of an EventClear.
	Rows []int
}
