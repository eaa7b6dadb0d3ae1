package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/termtris/config"
	"github.com/plus3/termtris/debugui"
	debugui_ebiten "github.com/plus3/termtris/debugui/ebiten"
	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/session"
	"github.com/plus3/termtris/tetris"
)

// keys maps window keys to actions. It mirrors the default terminal bindings,
// with arrows added and Escape for quit.
var keys = []struct {
	key    ebiten.Key
	action tetris.Action
}{
	{ebiten.KeyA, tetris.MoveLeft},
	{ebiten.KeyArrowLeft, tetris.MoveLeft},
	{ebiten.KeyD, tetris.MoveRight},
	{ebiten.KeyArrowRight, tetris.MoveRight},
	{ebiten.KeyQ, tetris.HardLeft},
	{ebiten.KeyE, tetris.HardRight},
	{ebiten.KeyS, tetris.SoftDrop},
	{ebiten.KeyArrowDown, tetris.SoftDrop},
	{ebiten.KeySpace, tetris.HardDrop},
	{ebiten.KeyJ, tetris.RotateLeft},
	{ebiten.KeyK, tetris.RotateRight},
	{ebiten.KeyArrowUp, tetris.RotateRight},
	{ebiten.KeyL, tetris.RotateDouble},
	{ebiten.KeySemicolon, tetris.Hold},
	{ebiten.KeyEscape, tetris.Quit},
}

var (
	background = color.RGBA{20, 20, 28, 255}
	emptyCell  = color.RGBA{40, 40, 52, 255}
	gridLine   = color.RGBA{60, 60, 75, 255}
)

// Palette holds the fill colour of each piece kind.
type Palette map[tetris.Kind]color.RGBA

// NewPalette converts the configured colour names, the same names the
// terminal frontend accepts, into RGB colours.
func NewPalette(cfg *config.Config) (Palette, error) {
	p := make(Palette, len(tetris.Kinds))
	for _, kind := range tetris.Kinds {
		name := cfg.ColorOf(kind)
		c := tcell.GetColor(name)
		if !c.Valid() {
			return nil, fmt.Errorf("unknown colour %q for %s", name, kind)
		}
		r, g, b := c.RGB()
		p[kind] = color.RGBA{uint8(r), uint8(g), uint8(b), 255}
	}
	return p, nil
}

// FrameRenderer keeps the latest snapshot for Draw.
type FrameRenderer struct {
	snap tetris.Snapshot
	ok   bool
}

func (f *FrameRenderer) Render(snap tetris.Snapshot) error {
	f.snap, f.ok = snap, true
	return nil
}

// Game implements ebiten.Game. Each Update is one session tick, matching
// Ebiten's default 60 ticks per second.
type Game struct {
	palette Palette
	queue   *session.ActionQueue
	frame   *FrameRenderer
	session *session.Session

	backend    *debugui_ebiten.ImguiBackend
	overlay    *loop.Scheduler
	inputState *loop.Singleton[debugui.ImguiInputState]
}

func (g *Game) Update() error {
	if g.backend != nil {
		g.backend.Frame(g.overlay, 1.0/60.0)
	}

	if g.session.Done() {
		if err := g.session.Err(); err != nil {
			return err
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return ebiten.Termination
		}
		return nil
	}

	if g.inputState == nil || !g.inputState.Get().WantCaptureKeyboard {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k.key) {
				g.queue.Push(k.action)
			}
		}
	}

	g.session.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if g.frame.ok {
		g.drawBoard(screen, g.frame.snap)
	}

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	width := float32(tetris.Width * CellSize)
	height := float32(tetris.Height * CellSize)
	originX := (float32(screen.Bounds().Dx()) - width) / 2
	originY := (float32(screen.Bounds().Dy()) - height) / 2

	for y := range tetris.Height {
		for x := range tetris.Width {
			fill := emptyCell
			if kind, ok := snap.Grid[y][x].Kind(); ok {
				fill = g.palette[kind]
			}
			sx := originX + float32(x*CellSize)
			sy := originY + float32(y*CellSize)
			vector.DrawFilledRect(screen, sx, sy, CellSize, CellSize, fill, false)
			vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, gridLine, false)
		}
	}

	textX := int(originX+width) + 20
	textY := int(originY)
	for i, line := range SidePanel(snap) {
		ebitenutil.DebugPrintAt(screen, line, textX, textY+i*16)
	}
}

// SidePanel lists the text drawn beside the board.
func SidePanel(snap tetris.Snapshot) []string {
	next := make([]string, len(snap.Next))
	for i, k := range snap.Next {
		next[i] = k.String()
	}
	held := "None"
	if snap.HasHeld {
		held = snap.Held.String()
	}

	lines := []string{
		"Next: " + strings.Join(next, " "),
		fmt.Sprintf("Held: %s, Can hold: %t", held, snap.CanHold),
		fmt.Sprintf("Lines cleared: %d", snap.Lines),
	}
	if snap.GameOver() {
		lines = append(lines, "", "Game Over! Press Enter to exit.")
	}
	return lines
}
