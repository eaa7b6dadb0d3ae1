// Package session runs one game of tetris as ordered loop systems: render,
// spawn, clear, gravity, then input, once per tick.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/tetris"
	"github.com/rs/zerolog"
)

// TickInterval is the fixed tick period, 60 ticks per second.
const TickInterval = time.Second / 60

// Session owns a game and the scheduler that drives it.
type Session struct {
	ID uuid.UUID

	scheduler *loop.Scheduler
	match     *loop.Singleton[Match]
	log       zerolog.Logger
	started   time.Time
	ended     time.Time
}

type options struct {
	id  uuid.UUID
	log zerolog.Logger
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithID fixes the session id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}

// New wires game, renderer and input into a scheduler.
func New(game *tetris.Game, renderer Renderer, input InputSource, opts ...Option) *Session {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	log := o.log.With().Str("session", o.id.String()).Logger()

	resources := loop.NewResources()
	match := loop.NewSingleton[Match](resources, Match{Game: game})

	scheduler := loop.NewScheduler(resources)
	scheduler.Register(&RenderSystem{Renderer: renderer})
	scheduler.Register(&SpawnSystem{})
	scheduler.Register(&ClearSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&InputSystem{Input: input})
	scheduler.Register(&EventLogSystem{Log: log})

	return &Session{
		ID:        o.id,
		scheduler: scheduler,
		match:     match,
		log:       log,
	}
}

// Game returns the game driven by the session.
func (s *Session) Game() *tetris.Game {
	return s.match.Get().Game
}

// Scheduler exposes the scheduler, for stats panels.
func (s *Session) Scheduler() *loop.Scheduler {
	return s.scheduler
}

// Run ticks the game at TickInterval until it ends or ctx is cancelled. A game
// that ends normally returns nil; a render failure returns its error.
func (s *Session) Run(ctx context.Context) error {
	s.begin()
	err := s.scheduler.Run(ctx, TickInterval)
	s.finish()

	if matchErr := s.match.Get().Err; matchErr != nil {
		return matchErr
	}
	if errors.Is(err, context.Canceled) {
		s.log.Info().Msg("session cancelled")
	}
	return err
}

// Tick runs a single tick, for frontends that own their own frame loop. It
// reports whether the session is done.
func (s *Session) Tick() bool {
	s.begin()
	done := s.scheduler.Once(TickInterval.Seconds())
	if done {
		s.finish()
	}
	return done
}

// Done reports whether the scheduler has stopped.
func (s *Session) Done() bool {
	stopped, _ := s.scheduler.Stopped()
	return stopped
}

// Err returns the render error that stopped the session, if any.
func (s *Session) Err() error {
	return s.match.Get().Err
}

// Report summarizes the session so far.
func (s *Session) Report() *Report {
	match := s.match.Get()
	game := match.Game
	stats := game.Stats()
	_, reason := s.scheduler.Stopped()

	end := s.ended
	if end.IsZero() {
		end = time.Now()
	}
	var elapsed time.Duration
	if !s.started.IsZero() {
		elapsed = end.Sub(s.started)
	}

	r := &Report{
		ID:        s.ID.String(),
		Duration:  elapsed,
		Ticks:     game.Ticks(),
		Actions:   match.Actions,
		Lines:     game.Lines(),
		Locks:     stats.Locks,
		Holds:     stats.Holds,
		HardDrops: stats.HardDrops,
		Dealt:     make([]KindCount, 0, len(tetris.Kinds)),
		Clears:    make([]ClearCount, 0, len(match.Clears)),
		GameOver:  game.GameOver(),
		Reason:    reason,
		Systems:   s.scheduler.GetStats().Systems,
	}
	for _, k := range tetris.Kinds {
		r.Dealt = append(r.Dealt, KindCount{Kind: k.String(), Count: stats.Dealt(k)})
	}
	for rows := 1; rows <= 4; rows++ {
		if n := match.Clears[rows]; n > 0 {
			r.Clears = append(r.Clears, ClearCount{Rows: rows, Count: n})
		}
	}
	return r
}

func (s *Session) begin() {
	if !s.started.IsZero() {
		return
	}
	s.started = time.Now()
	s.log.Info().Msg("session started")
}

func (s *Session) finish() {
	if !s.ended.IsZero() {
		return
	}
	s.ended = time.Now()
	game := s.Game()
	s.log.Info().
		Uint64("ticks", game.Ticks()).
		Int("lines", game.Lines()).
		Bool("game_over", game.GameOver()).
		Dur("elapsed", s.ended.Sub(s.started)).
		Msg("session ended")
}
