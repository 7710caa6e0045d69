// Package term shows the board in a terminal with tcell. Each cell is drawn
// two columns wide so it looks roughly square.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"toruslife/internal/app"
	"toruslife/internal/core"
	"toruslife/internal/ui"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

const help = "s start  p stop  space toggle  n step  r random  c clear  q quit"

// Driver runs the interactive loop against a tcell screen.
type Driver struct {
	screen tcell.Screen
	state  *app.State
	ticker *core.Ticker

	// buttons held at the last mouse event; drags report Button1 too.
	buttons tcell.ButtonMask
}

// New returns a driver drawing to an initialised screen. The caller keeps
// ownership of the screen and must Fini it.
func New(screen tcell.Screen, state *app.State, cfg *app.Config) *Driver {
	screen.EnableMouse()
	return &Driver{screen: screen, state: state, ticker: core.NewTicker(cfg.Interval)}
}

// Run processes input and ticks until the user quits or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	if d.state.Phase() == app.PhaseTitle {
		if err := d.state.Apply(ui.ActionStartGame); err != nil {
			return err
		}
	}
	defer d.ticker.Stop()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.ticker.C():
			d.state.Tick()
		case ev := <-events:
			quit, err := d.handle(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
		d.draw()
	}
}

// handle applies one input event and reports whether the user asked to quit.
func (d *Driver) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			return d.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && d.buttons&tcell.Button1 == 0
		d.buttons = ev.Buttons()
		if !pressed {
			return false, nil
		}
		x, y := ev.Position()
		row, col := y, x/2
		size := d.state.Life().Size()
		if row < size.H && col < size.W {
			return false, d.state.Toggle(row, col)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false, nil
}

func (d *Driver) handleRune(r rune) (bool, error) {
	var action ui.Action
	switch r {
	case 'q':
		return true, nil
	case 's':
		action = ui.ActionStart
	case 'p':
		action = ui.ActionStop
	case ' ':
		action = ui.ActionStart
		if d.state.Running() {
			action = ui.ActionStop
		}
	case 'n':
		action = ui.ActionStep
	case 'r':
		action = ui.ActionRandomize
	case 'c':
		action = ui.ActionClear
	default:
		return false, nil
	}
	if err := d.state.Apply(action); err != nil {
		return false, err
	}
	// The ticker follows the running flag.
	if d.state.Running() {
		d.ticker.Start()
	} else {
		d.ticker.Stop()
	}
	return false, nil
}

func (d *Driver) draw() {
	l := d.state.Life()
	size := l.Size()
	d.drawBoard(l)
	state := "stopped"
	if d.state.Running() {
		state = "running"
	}
	d.drawText(0, size.H, fmt.Sprintf("gen %d  alive %d  %s", l.Generation(), l.Population(), state))
	d.drawText(0, size.H+1, help)
	d.screen.Show()
}

func (d *Driver) drawText(x, y int, s string) {
	w, _ := d.screen.Size()
	for _, r := range s {
		if x >= w {
			break
		}
		d.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
	for ; x < w; x++ {
		d.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

func (d *Driver) drawBoard(sim core.Sim) {
	size := sim.Size()
	cells := sim.Cells()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			style := deadStyle
			if cells[row*size.W+col] != 0 {
				style = aliveStyle
			}
			d.screen.SetContent(col*2, row, ' ', nil, style)
			d.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}
}
