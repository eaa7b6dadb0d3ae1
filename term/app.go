package term

import (
	"context"
	"errors"
	"fmt"

	"github.com/plus3/termtris/config"
	"github.com/plus3/termtris/session"
	"github.com/plus3/termtris/tetris"
	"github.com/rs/zerolog"
)

// App runs the title menu and plays games until the player exits.
type App struct {
	UI     *UI
	Config *config.Config
	Log    zerolog.Logger

	// Reports collects the summary of every finished game.
	Reports []*session.Report
}

// Run loops over the title menu. It returns nil when the player picks Exit
// or the screen is closed.
func (a *App) Run(ctx context.Context) error {
	for {
		item, err := a.UI.Title(ctx)
		if err != nil {
			return ignoreClosed(err)
		}
		a.Log.Debug().Stringer("item", item).Msg("menu selection")

		switch item {
		case Start:
			err = a.Play(ctx)
		case Controls:
			err = a.UI.Controls(ctx)
		case Exit:
			return nil
		}
		if err != nil {
			return ignoreClosed(err)
		}
	}
}

// Play runs one game, then waits for Enter on the game-over frame.
func (a *App) Play(ctx context.Context) error {
	game := tetris.New(tetris.WithSeed(a.Config.Seed))
	s := session.New(game, a.UI, a.UI.Input(), session.WithLogger(a.Log))

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	report := s.Report()
	a.Reports = append(a.Reports, report)
	a.Log.Info().
		Str("session", report.ID).
		Int("lines", report.Lines).
		Int("locks", report.Locks).
		Uint64("ticks", report.Ticks).
		Msg("game finished")

	return a.UI.AwaitEnter(ctx)
}

func ignoreClosed(err error) error {
	if errors.Is(err, ErrClosed) {
		return nil
	}
	return err
}
