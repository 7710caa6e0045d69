package ui

import "image"

// Action is a user command issued through a button or key.
type Action int

const (
	ActionNone Action = iota
	ActionStartGame
	ActionStart
	ActionStop
	ActionStep
	ActionRandomize
	ActionClear
)

// Button is a labelled clickable rectangle in screen pixels.
type Button struct {
	Label  string
	Action Action
	Rect   image.Rectangle
}

// Contains reports whether the pixel lies inside the button.
func (b Button) Contains(x, y int) bool { return pointInRect(x, y, b.Rect) }

// Geometry of the window around the board.
const (
	MinBoardWidth  = 500
	MinHeight      = 480
	PanelWidth     = 140
	ButtonWidth    = 120
	ButtonHeight   = 30
	ButtonInterval = 30
	PanelMarginTop = 40

	StartButtonWidth  = 200
	StartButtonHeight = 50
	TitleWidth        = 300
	TitleHeight       = 240
	titleGap          = 20
)

// Layout maps between window pixels and board cells. Cells are squares of
// CellSize pixels separated by Gap pixels; the control panel sits to the right.
type Layout struct {
	Rows, Cols int
	CellSize   int
	Gap        int

	BoardWidth int
	Width      int
	Height     int

	Buttons []Button
	Start   Button
	Title   image.Rectangle
	Status  image.Point
}

// NewLayout computes the window geometry for a rows x cols board.
func NewLayout(rows, cols, cellSize, gap int) Layout {
	if cellSize <= 0 {
		cellSize = 1
	}
	if gap < 0 {
		gap = 0
	}
	pitch := cellSize + gap
	l := Layout{Rows: rows, Cols: cols, CellSize: cellSize, Gap: gap}
	l.BoardWidth = max(cols*pitch, MinBoardWidth)
	l.Width = l.BoardWidth + PanelWidth
	l.Height = max(rows*pitch, MinHeight)

	labels := []struct {
		text   string
		action Action
	}{
		{"Start evolve", ActionStart},
		{"Stop evolve", ActionStop},
		{"Evolve one step", ActionStep},
		{"Random initialize", ActionRandomize},
	}
	x := l.BoardWidth + (PanelWidth-ButtonWidth)/2
	for i, lb := range labels {
		y := PanelMarginTop + (ButtonHeight+ButtonInterval)*i
		l.Buttons = append(l.Buttons, Button{
			Label:  lb.text,
			Action: lb.action,
			Rect:   image.Rect(x, y, x+ButtonWidth, y+ButtonHeight),
		})
	}
	l.Status = image.Pt(x, PanelMarginTop+(ButtonHeight+ButtonInterval)*len(labels)+ButtonHeight/2)

	sx := (l.Width - StartButtonWidth) / 2
	sy := (l.Height-StartButtonHeight)/2 + 100
	l.Start = Button{
		Label:  "Start Game",
		Action: ActionStartGame,
		Rect:   image.Rect(sx, sy, sx+StartButtonWidth, sy+StartButtonHeight),
	}
	tx := (l.Width - TitleWidth) / 2
	ty := sy - TitleHeight - titleGap
	l.Title = image.Rect(tx, ty, tx+TitleWidth, ty+TitleHeight)
	return l
}

// ButtonAt returns the panel button under the pixel, if any.
func (l Layout) ButtonAt(x, y int) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// CellAt maps a pixel to the board cell drawn under it. Pixels in the gaps
// between cells, or outside the board, map to nothing.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	pitch := l.CellSize + l.Gap
	col, row = x/pitch, y/pitch
	if col >= l.Cols || row >= l.Rows {
		return 0, 0, false
	}
	if x%pitch >= l.CellSize || y%pitch >= l.CellSize {
		return 0, 0, false
	}
	return row, col, true
}

// CellRect returns the pixel rectangle a cell is drawn into.
func (l Layout) CellRect(row, col int) image.Rectangle {
	pitch := l.CellSize + l.Gap
	x, y := col*pitch, row*pitch
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
