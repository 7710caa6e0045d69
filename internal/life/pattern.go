package life

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePlaintext reads a pattern in the plaintext (.cells) format: lines
// starting with '!' are comments, '.' is a dead cell and 'O' or '*' a live
// one. Short rows are padded with dead cells.
func ParsePlaintext(r io.Reader) (*Grid, error) {
	var rows []string
	width := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(text, "!") {
			continue
		}
		for _, ch := range text {
			switch ch {
			case '.', 'O', '*':
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrBadPattern, line, ch)
			}
		}
		rows = append(rows, text)
		if len(text) > width {
			width = len(text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("life: read pattern: %w", err)
	}
	// Trailing blank lines carry no cells.
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	g, err := New(width, len(rows))
	if err != nil {
		return nil, fmt.Errorf("empty pattern: %w", err)
	}
	for y, text := range rows {
		for x := 0; x < len(text); x++ {
			if text[x] != '.' {
				g.cells[y*width+x] = 1
			}
		}
	}
	return g, nil
}

// MustParse parses an inline plaintext pattern and panics on error. It is
// intended for fixed patterns compiled into the program.
func MustParse(pattern string) *Grid {
	g, err := ParsePlaintext(strings.NewReader(strings.Trim(pattern, "\n")))
	if err != nil {
		panic(err)
	}
	return g
}

// Centered returns a width x height grid with p stamped in the middle.
func Centered(p *Grid, width, height int) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if err := g.Stamp(p, (height-p.h)/2, (width-p.w)/2); err != nil {
		return nil, err
	}
	return g, nil
}
