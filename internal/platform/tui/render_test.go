package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/game"
)

func TestDrawWellLayout(t *testing.T) {
	s := core.NewScreen(60, 24)
	v := engine.PlayerView{
		Board:   game.NewStandardBoard(),
		Falling: game.NewPiece(game.VariantT),
	}

	// Settle an O piece in the bottom-left quarter of the well.
	g := game.NewPiece(game.VariantO).Geometry
	g.Translate(0, -18)
	v.Board.Add(g, game.VariantO.Color())

	drawWell(s, 10, 1, v, false, 0)

	// Frame corners.
	for _, c := range []struct {
		x, y int
		want rune
	}{
		{10, 1, '╔'}, {31, 1, '╗'}, {10, 22, '╚'}, {31, 22, '╝'},
	} {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("Frame at (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	// Settled stack: board (4, 0) maps to the bottom row, two columns
	// wide.
	cell := s.GetCell(19, 21)
	if cell.Rune != '█' || cell.Color != core.ColorYellow {
		t.Errorf("Stack cell = %+v, expected yellow block", cell)
	}
	if s.Get(20, 21) != '█' {
		t.Error("Stack cells should render two columns wide")
	}

	// Empty even columns carry the checkerboard dot.
	cell = s.GetCell(11, 21)
	if cell.Rune != '.' || cell.Color != core.ColorGray {
		t.Errorf("Checkerboard cell = %+v, expected gray dot", cell)
	}
	if s.Get(13, 21) != ' ' {
		t.Error("Odd empty columns should stay blank")
	}

	// Falling piece in its spawn rows near the top.
	cell = s.GetCell(21, 2)
	if cell.Rune != '█' || cell.Color != core.ColorMagenta {
		t.Errorf("Falling cell = %+v, expected magenta block", cell)
	}
}

func TestDrawWellGhostAndLocking(t *testing.T) {
	s := core.NewScreen(60, 24)
	v := engine.PlayerView{
		Board:   game.NewStandardBoard(),
		Falling: game.NewPiece(game.VariantT),
		Locking: true,
	}
	gh := v.Falling.Geometry
	gh.Translate(0, -18)
	v.Ghost = &gh

	drawWell(s, 10, 1, v, false, 0)

	// Ghost renders hollow at the drop target.
	cell := s.GetCell(19, 21)
	if cell.Rune != '░' || cell.Color != core.ColorMagenta {
		t.Errorf("Ghost cell = %+v, expected light shade", cell)
	}

	// A locking piece renders in the medium shade.
	if got := s.Get(21, 2); got != '▓' {
		t.Errorf("Locking cell = %q, expected medium shade", got)
	}
}

func TestDrawCellsSkipsHiddenRows(t *testing.T) {
	s := core.NewScreen(60, 24)

	// Cells lifted above the visible rows must not smear over the
	// frame area.
	g := game.NewPiece(game.VariantI).Geometry
	g.Translate(0, 2)
	drawCells(s, 10, 1, 20, g, '░', core.ColorRed)

	for x := 10; x < 32; x++ {
		if s.Get(x, 1) != ' ' {
			t.Fatalf("Hidden row leaked onto screen row 1 at x=%d", x)
		}
	}
}

func TestDrawWellPartyFrame(t *testing.T) {
	s := core.NewScreen(60, 24)
	v := engine.PlayerView{
		Board:   game.NewStandardBoard(),
		Falling: game.NewPiece(game.VariantT),
	}

	drawWell(s, 10, 1, v, true, 0)

	cell := s.GetCell(10, 1)
	if cell.Rune != '╔' {
		t.Errorf("Party frame corner = %q, expected corner glyph", cell.Rune)
	}
	if cell.Color < 16 || cell.Color > 231 {
		t.Errorf("Party frame color = %d, outside the 6x6x6 cube", cell.Color)
	}

	// The sweep changes hue along the border.
	if s.GetCell(11, 1).Color == s.GetCell(21, 1).Color {
		t.Error("Party frame should vary color along the perimeter")
	}
}

func TestDrawHold(t *testing.T) {
	s := core.NewScreen(60, 24)
	v := engine.PlayerView{
		Board:   game.NewStandardBoard(),
		Falling: game.NewPiece(game.VariantT),
	}

	drawHold(s, 12, 1, v)
	if s.Get(3, 2) != 'H' {
		t.Errorf("Hold label missing, got %q", s.Get(3, 2))
	}
	if s.Get(5, 4) != ' ' {
		t.Error("Empty hold slot should draw no piece")
	}

	h := game.VariantO
	v.Holding = &h
	v.CanHold = true
	drawHold(s, 12, 1, v)
	cell := s.GetCell(5, 4)
	if cell.Rune != '█' || cell.Color != core.ColorYellow {
		t.Errorf("Held piece cell = %+v, expected yellow block", cell)
	}

	// A spent hold renders gray until the next placement.
	s.Clear()
	v.CanHold = false
	drawHold(s, 12, 1, v)
	if got := s.GetCell(5, 4).Color; got != core.ColorGray {
		t.Errorf("Spent hold color = %d, expected gray", got)
	}
}

func TestDrawNextSlots(t *testing.T) {
	s := core.NewScreen(60, 24)

	drawNext(s, 10, 1, []game.Variant{game.VariantI, game.VariantO})

	if s.Get(33, 2) != 'N' {
		t.Errorf("Next label missing, got %q", s.Get(33, 2))
	}

	// First slot: the I piece on its spawn row.
	cell := s.GetCell(33, 5)
	if cell.Rune != '█' || cell.Color != core.ColorCyan {
		t.Errorf("First preview cell = %+v, expected cyan block", cell)
	}

	// Second slot sits three rows below the first.
	cell = s.GetCell(35, 7)
	if cell.Rune != '█' || cell.Color != core.ColorYellow {
		t.Errorf("Second preview cell = %+v, expected yellow block", cell)
	}
}

func TestDrawStats(t *testing.T) {
	s := core.NewScreen(60, 24)
	drawStats(s, 10, 1, game.NewScore(3))

	if !strings.Contains(s.Row(17), "SCORE: 0") {
		t.Errorf("Row 17 = %q, expected score line", s.Row(17))
	}
	if !strings.Contains(s.Row(18), "LEVEL: 3") {
		t.Errorf("Row 18 = %q, expected level line", s.Row(18))
	}
	if !strings.Contains(s.Row(19), "LINES: 0") {
		t.Errorf("Row 19 = %q, expected lines line", s.Row(19))
	}
}

func TestDrawStatsNarrow(t *testing.T) {
	s := core.NewScreen(60, 24)
	drawStatsNarrow(s, 12, 1, game.NewScore(1))

	if !strings.Contains(s.Row(9), "SCORE:") {
		t.Errorf("Row 9 = %q, expected score label", s.Row(9))
	}
	if !strings.Contains(s.Row(12), "LEVEL:") {
		t.Errorf("Row 12 = %q, expected level label", s.Row(12))
	}
	if !strings.Contains(s.Row(15), "LINES:") {
		t.Errorf("Row 15 = %q, expected lines label", s.Row(15))
	}
}

func TestRenderScreenPlainPassthrough(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ABCDE")
	s.DrawText(0, 1, "fghij")

	// Uncolored cells render without any styling applied.
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}
