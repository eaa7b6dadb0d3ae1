// Command termtris-gui plays the same game in an Ebiten window, with optional
// Dear ImGui debug panels.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/termtris/config"
	"github.com/plus3/termtris/debugui"
	debugui_ebiten "github.com/plus3/termtris/debugui/ebiten"
	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/session"
	"github.com/plus3/termtris/tetris"
)

const (
	ScreenWidth   = 1280
	ScreenHeight  = 720
	CellSize      = 28
	historyFrames = 120
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults to $"+config.EnvPath+".")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence. 0 picks a random one.")
	debug := flag.Bool("debug", false, "Show the debug panels.")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *debug {
		cfg.Debug = true
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer closer.Close()

	palette, err := NewPalette(cfg)
	if err != nil {
		log.Fatalf("Failed to build palette: %v", err)
	}

	game := &Game{
		palette: palette,
		queue:   session.NewActionQueue(16),
		frame:   &FrameRenderer{},
	}
	game.session = session.New(
		tetris.New(tetris.WithSeed(cfg.Seed)),
		game.frame,
		game.queue,
		session.WithLogger(logger),
	)

	if cfg.Debug {
		game.backend = debugui_ebiten.NewImguiBackend("termtris", ScreenWidth, ScreenHeight)
		game.overlay, game.inputState = newOverlay(game.session)
	}
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("termtris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("termtris-gui: %v", err)
	}

	if err := game.session.Report().Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	fmt.Println()
}

// newOverlay builds the scheduler that drives the debug panels. It runs every
// frame, including after the game session has stopped.
func newOverlay(s *session.Session) (*loop.Scheduler, *loop.Singleton[debugui.ImguiInputState]) {
	resources := loop.NewResources()
	scheduler := loop.NewScheduler(resources)

	perf := debugui.NewPerformanceStats(historyFrames)
	timer := debugui.NewFrameTimer()
	inspector := &debugui.SessionInspector{Session: s}

	panels := loop.NewSingleton[debugui.Panels](resources)
	panels.Get().Add("scheduler", func() {
		stats := s.Scheduler().GetStats()
		perf.Record(stats, timer.GetDeltaTime())
		perf.Render(stats)
	})
	panels.Get().Add("session", inspector.Render)

	scheduler.Register(&debugui.ImguiSystem{})
	return scheduler, loop.NewSingleton[debugui.ImguiInputState](resources)
}
