package life

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePlaintext(t *testing.T) {
	src := `!Name: Glider
!
.O
..O
OOO
`
	g, err := ParsePlaintext(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("size %dx%d, expected 3x3", g.Width(), g.Height())
	}
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for _, rc := range want {
		if v, _ := g.Get(rc[0], rc[1]); v != 1 {
			t.Fatalf("cell (%d,%d) dead, expected alive", rc[0], rc[1])
		}
	}
	if g.Population() != len(want) {
		t.Fatalf("population %d, expected %d", g.Population(), len(want))
	}
}

func TestParsePlaintextAcceptsAsterisks(t *testing.T) {
	a := MustParse("*.*")
	b := MustParse("O.O")
	if !a.Equal(b) {
		t.Fatal("'*' and 'O' should both mark live cells")
	}
}

func TestParsePlaintextErrors(t *testing.T) {
	if _, err := ParsePlaintext(strings.NewReader("!only a comment\n")); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("empty pattern err=%v, expected ErrInvalidDimension", err)
	}
	_, err := ParsePlaintext(strings.NewReader("..\n.x\n"))
	if !errors.Is(err, ErrBadPattern) {
		t.Fatalf("bad glyph err=%v, expected ErrBadPattern", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q should name the offending line", err)
	}
}

func TestCentered(t *testing.T) {
	g, err := Centered(MustParse("O"), 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := g.Get(2, 2); v != 1 || g.Population() != 1 {
		t.Fatalf("expected only the centre alive:\n%s", g)
	}
	if _, err := Centered(MustParse("OOOOOO"), 5, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("oversized pattern err=%v, expected ErrIndexOutOfRange", err)
	}
}
