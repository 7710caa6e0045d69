//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"toruslife/internal/app"
	"toruslife/internal/assets"
	"toruslife/internal/life"
	"toruslife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
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

	icon := assets.DefaultIcon()
	if cfg.Icon != "" {
		img, err := assets.Load(cfg.Icon)
		if err != nil {
			log.Fatal(err)
		}
		icon = assets.Icon(img)
	}
	var title image.Image = assets.DefaultTitle(ui.TitleWidth, ui.TitleHeight)
	if cfg.Title != "" {
		img, err := assets.Load(cfg.Title)
		if err != nil {
			log.Fatal(err)
		}
		title = assets.Scale(img, ui.TitleWidth, ui.TitleHeight)
	}

	game := app.New(state, cfg, title)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowIcon([]image.Image{icon})
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
