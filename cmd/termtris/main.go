// Command termtris plays Tetris in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/termtris/config"
	"github.com/plus3/termtris/term"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults to $"+config.EnvPath+".")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence. 0 picks a random one.")
	logFile := flag.String("log", "", "Append logs to this file.")
	debug := flag.Bool("debug", false, "Log at debug level.")
	report := flag.Bool("report", true, "Print a summary of each game on exit.")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *debug {
		cfg.Debug = true
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	ui, err := term.New(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create UI: %v", err)
	}

	app := &term.App{UI: ui, Config: cfg, Log: logger}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		return ui.Pump(ctx)
	})
	g.Go(func() error {
		defer ui.Close()
		return app.Run(ctx)
	})

	err = g.Wait()
	ui.Close()
	if err != nil && sigCtx.Err() == nil {
		logger.Error().Err(err).Msg("termtris stopped")
		log.Fatalf("termtris: %v", err)
	}

	if *report {
		for _, r := range app.Reports {
			if err := r.Generate(os.Stdout); err != nil {
				log.Fatalf("Failed to write report: %v", err)
			}
			fmt.Println()
		}
	}
}
