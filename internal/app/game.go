//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"

	"toruslife/internal/core"
	"toruslife/internal/render"
	"toruslife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.White

// Game adapts the application state to the ebiten.Game interface.
type Game struct {
	state   *State
	layout  ui.Layout
	painter *render.GridPainter
	panel   *ui.Panel
	pacer   *core.FixedStep
	title   *ebiten.Image
}

// New constructs a Game for the provided state. title may be nil.
func New(state *State, cfg *Config, title image.Image) *Game {
	size := state.Life().Size()
	layout := ui.NewLayout(size.H, size.W, cfg.CellSize, cfg.Gap)
	palette := render.Palette{On: color.Black, Off: background, Gap: background}
	g := &Game{
		state:   state,
		layout:  layout,
		painter: render.NewGridPainter(size.W, size.H, cfg.CellSize, cfg.Gap, palette),
		panel:   ui.NewPanel(layout),
		pacer:   core.NewFixedStep(cfg.Interval),
	}
	if title != nil {
		g.title = ebiten.NewImageFromImage(title)
	}
	return g
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width, g.layout.Height
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.state.Phase() == PhaseTitle {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			if g.layout.Start.Contains(mx, my) {
				return g.apply(ui.ActionStartGame)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.apply(ui.ActionStartGame)
		}
		return nil
	}

	if err := g.handleKeys(); err != nil {
		return err
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.click(ebiten.CursorPosition()); err != nil {
			return err
		}
	}
	if g.state.Running() && g.pacer.ShouldStep() {
		g.state.Tick()
	}
	return nil
}

func (g *Game) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.state.Running() {
			return g.apply(ui.ActionStop)
		}
		return g.apply(ui.ActionStart)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		return g.apply(ui.ActionStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.apply(ui.ActionRandomize)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return g.apply(ui.ActionClear)
	}
	return nil
}

func (g *Game) click(x, y int) error {
	if b, ok := g.layout.ButtonAt(x, y); ok {
		return g.apply(b.Action)
	}
	if row, col, ok := g.layout.CellAt(x, y); ok {
		return g.state.Toggle(row, col)
	}
	return nil
}

func (g *Game) apply(a ui.Action) error {
	if a == ui.ActionStart && !g.state.Running() {
		g.pacer.Reset()
	}
	if err := g.state.Apply(a); err != nil {
		log.Printf("action %d: %v", a, err)
	}
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	mx, my := ebiten.CursorPosition()
	if g.state.Phase() == PhaseTitle {
		if g.title != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(g.layout.Title.Min.X), float64(g.layout.Title.Min.Y))
			screen.DrawImage(g.title, op)
		}
		g.panel.DrawStart(screen, mx, my)
		return
	}
	l := g.state.Life()
	g.painter.Blit(screen, l.Cells())
	g.panel.DrawControls(screen, mx, my)
	g.panel.DrawStatus(screen, l.Generation(), l.Population(), g.state.Running())
}
