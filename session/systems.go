package session

import (
	"fmt"

	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/tetris"
	"github.com/rs/zerolog"
)

// Stop reasons reported by the scheduler.
const (
	StopGameOver    = "game over"
	StopRenderError = "render error"
)

// Match is the resource shared by the session systems.
type Match struct {
	Game    *tetris.Game
	Err     error
	Actions int
	Clears  map[int]int
}

// RenderSystem draws the snapshot of the tick before anything else runs.
type RenderSystem struct {
	Match    loop.Singleton[Match]
	Renderer Renderer
}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	match := s.Match.Get()
	if err := s.Renderer.Render(match.Game.Snapshot()); err != nil {
		match.Err = fmt.Errorf("failed to render tick %d: %w", frame.Tick, err)
		frame.Commands.Stop(StopRenderError)
	}
}

// SpawnSystem starts the tick and deals a piece when none is active. Once the
// game is over it stops the scheduler; the game-over frame has already been
// rendered by then.
type SpawnSystem struct {
	Match loop.Singleton[Match]
}

func (s *SpawnSystem) Execute(frame *loop.UpdateFrame) {
	if frame.Commands.Stopping() {
		return
	}
	game := s.Match.Get().Game
	if !game.BeginTick() {
		frame.Commands.Stop(StopGameOver)
		return
	}
	game.SpawnPhase()
}

// ClearSystem removes full rows.
type ClearSystem struct {
	Match loop.Singleton[Match]
}

func (s *ClearSystem) Execute(frame *loop.UpdateFrame) {
	if frame.Commands.Stopping() {
		return
	}
	s.Match.Get().Game.ClearPhase()
}

// GravitySystem advances the gravity countdown.
type GravitySystem struct {
	Match loop.Singleton[Match]
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	if frame.Commands.Stopping() {
		return
	}
	s.Match.Get().Game.GravityPhase()
}

// InputSystem applies at most one pending action per tick.
type InputSystem struct {
	Match loop.Singleton[Match]
	Input InputSource
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	if frame.Commands.Stopping() {
		return
	}
	action, ok := s.Input.Poll()
	if !ok {
		return
	}
	match := s.Match.Get()
	match.Actions++
	match.Game.Apply(action)
}

// EventLogSystem drains engine events into the session log.
type EventLogSystem struct {
	Match loop.Singleton[Match]
	Log   zerolog.Logger
}

func (s *EventLogSystem) Execute(frame *loop.UpdateFrame) {
	match := s.Match.Get()
	for _, ev := range match.Game.DrainEvents() {
		entry := s.Log.Debug().
			Str("event", ev.Type.String()).
			Uint64("tick", ev.Tick)
		if ev.Kind.Valid() {
			entry = entry.Stringer("kind", ev.Kind)
		}

		switch ev.Type {
		case tetris.EventClear:
			if match.Clears == nil {
				match.Clears = make(map[int]int)
			}
			match.Clears[len(ev.Rows)]++
			entry.Ints("rows", ev.Rows).Int("lines", match.Game.Lines()).Msg("rows cleared")
		case tetris.EventGameOver:
			entry.Int("lines", match.Game.Lines()).Msg("game over")
		default:
			entry.Msg("piece " + ev.Type.String())
		}
	}
}
