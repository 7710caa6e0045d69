package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"toruslife/internal/app"
	"toruslife/internal/core"
	"toruslife/internal/life"
	"toruslife/internal/term"
	"toruslife/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 10, "generations to run in headless mode")
	quiet := flag.Bool("quiet", false, "only print the summary line")
	delay := flag.Duration("delay", 0, "pause between printed generations")
	useTerm := flag.Bool("term", false, "open the interactive terminal view")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	initial, err := cfg.InitialBoard()
	if err != nil {
		log.Fatalf("pattern: %v", err)
	}
	sim, err := life.NewLife(cfg.Cols, cfg.Rows, cfg.Workers)
	if err != nil {
		log.Fatal(err)
	}
	state := app.NewState(sim, initial).WithSeeds(app.SeedsFrom(cfg.Seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *useTerm {
		err = runTerm(ctx, state, cfg)
	} else {
		err = run(ctx, os.Stdout, state, *gens, *delay, *quiet)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func runTerm(ctx context.Context, state *app.State, cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	return term.New(screen, state, cfg).Run(ctx)
}

// run starts the game, prints the first board and then one board per
// generation, followed by a summary line.
func run(ctx context.Context, w io.Writer, state *app.State, gens int, delay time.Duration, quiet bool) error {
	if err := state.Apply(ui.ActionStartGame); err != nil {
		return err
	}
	l := state.Life()
	frame := func() {
		if quiet {
			return
		}
		fmt.Fprintf(w, "generation %d (alive %d)\n%s", l.Generation(), l.Population(), l.Grid())
	}
	frame()

	step := func() bool {
		if l.Generation() >= gens {
			return false
		}
		l.Step()
		frame()
		return true
	}
	var err error
	if delay > 0 {
		err = core.Every(ctx, delay, step)
	} else {
		for err == nil && step() {
			err = ctx.Err()
		}
	}
	fmt.Fprintf(w, "%dx%d board after %d generations: %d alive\n", l.Size().W, l.Size().H, l.Generation(), l.Population())
	return err
}
