// Package term is the terminal frontend: it owns the tcell screen, turns key
// events into actions and draws menus and game frames as text.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/termtris/config"
	"github.com/plus3/termtris/tetris"
)

// ErrClosed is returned by blocking screen reads once the screen is closed.
var ErrClosed = errors.New("term: screen closed")

// UI draws on a tcell screen. Events are read by Pump on its own goroutine
// and consumed by the menu screens or, during a game, by Input.
type UI struct {
	screen tcell.Screen
	keymap *Keymap
	styles map[tetris.Kind]tcell.Style
	text   tcell.Style

	events    chan tcell.Event
	closed    chan struct{}
	closeOnce sync.Once
}

// New wraps an initialized screen.
func New(screen tcell.Screen, cfg *config.Config) (*UI, error) {
	keymap, err := NewKeymap(cfg.Bindings())
	if err != nil {
		return nil, fmt.Errorf("failed to build keymap: %w", err)
	}

	styles := make(map[tetris.Kind]tcell.Style, len(tetris.Kinds))
	for _, kind := range tetris.Kinds {
		name := cfg.ColorOf(kind)
		color := tcell.GetColor(name)
		if color == tcell.ColorDefault && name != "default" {
			return nil, fmt.Errorf("unknown colour %q for %s", name, kind)
		}
		styles[kind] = tcell.StyleDefault.Foreground(color).Bold(true)
	}

	return &UI{
		screen: screen,
		keymap: keymap,
		styles: styles,
		text:   tcell.StyleDefault,
		events: make(chan tcell.Event, 64),
		closed: make(chan struct{}),
	}, nil
}

// Keymap returns the keymap in use.
func (ui *UI) Keymap() *Keymap {
	return ui.keymap
}

// Pump reads screen events until the screen is closed or ctx is cancelled.
func (ui *UI) Pump(ctx context.Context) error {
	for {
		ev := ui.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case ui.events <- ev:
		case <-ui.closed:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (ui *UI) Close() {
	ui.closeOnce.Do(func() {
		close(ui.closed)
		ui.screen.Fini()
	})
}

// nextKey blocks for the next key event, handling resizes on the way.
func (ui *UI) nextKey(ctx context.Context) (*tcell.EventKey, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ui.closed:
			return nil, ErrClosed
		case ev := <-ui.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev, nil
			case *tcell.EventResize:
				ui.screen.Sync()
			}
		}
	}
}

// Title shows the title menu until an entry is chosen. ctrl+c, or whatever
// quit is bound to, chooses Exit.
func (ui *UI) Title(ctx context.Context) (MenuItem, error) {
	var menu Menu
	for {
		ui.drawText(TitleLines(&menu))

		ev, err := ui.nextKey(ctx)
		if err != nil {
			return Exit, err
		}
		if ev.Key() == tcell.KeyEnter {
			return menu.Selected(), nil
		}
		switch action, _ := ui.keymap.Lookup(ev); action {
		case tetris.Quit:
			return Exit, nil
		case tetris.MoveLeft:
			menu.Left()
		case tetris.MoveRight:
			menu.Right()
		}
	}
}

// Controls shows the key bindings until any key is pressed.
func (ui *UI) Controls(ctx context.Context) error {
	ui.drawText(ControlsLines(ui.keymap))
	_, err := ui.nextKey(ctx)
	return err
}

// AwaitEnter blocks until Enter is pressed, discarding other keys.
func (ui *UI) AwaitEnter(ctx context.Context) error {
	for {
		ev, err := ui.nextKey(ctx)
		if err != nil {
			return err
		}
		if ev.Key() == tcell.KeyEnter {
			return nil
		}
	}
}

// Render draws one game frame.
func (ui *UI) Render(snap tetris.Snapshot) error {
	select {
	case <-ui.closed:
		return ErrClosed
	default:
	}

	ui.screen.Clear()
	for y, line := range Layout(snap) {
		ui.drawLine(y, line)
	}
	for y := range tetris.Height {
		for x := range tetris.Width {
			kind, ok := snap.Grid[y][x].Kind()
			if !ok {
				continue
			}
			ui.screen.SetContent(BoardColumn(x), y, kind.Cell().Symbol(), nil, ui.styles[kind])
		}
	}
	ui.screen.Show()
	return nil
}

// Input returns the action source for a game. It drains events without
// blocking and yields at most one action per call.
func (ui *UI) Input() *Input {
	return &Input{ui: ui}
}

// Input adapts the event stream to the game's input contract.
type Input struct {
	ui *UI
}

func (in *Input) Poll() (tetris.Action, bool) {
	for {
		select {
		case ev := <-in.ui.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if action, ok := in.ui.keymap.Lookup(ev); ok {
					return action, true
				}
			case *tcell.EventResize:
				in.ui.screen.Sync()
			}
		default:
			return tetris.ActionNone, false
		}
	}
}

func (ui *UI) drawText(lines []string) {
	ui.screen.Clear()
	for y, line := range lines {
		ui.drawLine(y, line)
	}
	ui.screen.Show()
}

func (ui *UI) drawLine(y int, line string) {
	x := 0
	for _, r := range line {
		ui.screen.SetContent(x, y, r, nil, ui.text)
		x++
	}
}
