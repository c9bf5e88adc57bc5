package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/game"
)

// Layout constants for the standard 10x20 well. Cells render two
// columns wide so the board reads roughly square.
const (
	wellWidth  = int(game.BoardWidth)*2 + 2 // cells plus the frame
	wellHeight = int(game.BoardHeight) + 2

	holdPanelWidth = 9  // "HOLD:" label and a piece left of the well
	sidePanelWidth = 12 // NEXT preview and stats right of the well

	// duelOffset separates the two wells so the local side panel and
	// the opponent frame never collide.
	duelOffset = wellWidth + sidePanelWidth
)

// colorStyles caches a lipgloss style per xterm-256 palette index.
var colorStyles = buildColorStyles()

func buildColorStyles() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	styles[0] = lipgloss.NewStyle()
	for i := 1; i < len(styles); i++ {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}

// drawWell draws one player's well at screen origin (ox, oy): frame,
// settled stack over a checkerboard, then ghost and falling piece.
// Rows waiting out the clear delay flash white.
func drawWell(s *core.Screen, ox, oy int, v engine.PlayerView, party bool, phase int) {
	bw, bh := int(v.Board.Width()), int(v.Board.Height())
	drawWellFrame(s, ox, oy, bw*2+2, bh+2, party, phase)

	flash := make(map[int]bool)
	if v.Clearing {
		for _, row := range v.Board.FullRows() {
			flash[row] = true
		}
	}

	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			x := ox + 1 + bx*2
			y := oy + bh - by
			if c := v.Board.At(int32(bx), int32(by)); c != core.ColorDefault {
				if flash[by] {
					c = core.ColorWhite
				}
				s.SetCell(x, y, '█', c)
				s.SetCell(x+1, y, '█', c)
			} else if bx%2 == 0 {
				s.SetCell(x, y, '.', core.ColorGray)
			}
		}
	}

	color := v.Falling.Variant.Color()
	if v.Ghost != nil {
		drawCells(s, ox, oy, bh, *v.Ghost, '░', color)
	}
	fallRune := '█'
	if v.Locking {
		fallRune = '▓'
	}
	drawCells(s, ox, oy, bh, v.Falling.Geometry, fallRune, color)
}

// drawCells paints one pose into the well, two columns per cell. Cells
// lifted above the visible rows are skipped rather than smeared over
// the frame.
func drawCells(s *core.Screen, ox, oy, bh int, g game.Geometry, r rune, c core.Color) {
	for _, p := range g.Cells {
		if p.Y < 0 || int(p.Y) >= bh {
			continue
		}
		x := ox + 1 + int(p.X)*2
		y := oy + bh - int(p.Y)
		s.SetCell(x, y, r, c)
		s.SetCell(x+1, y, r, c)
	}
}

// drawWellFrame draws the well border. In party mode each border cell
// takes one step of a spectrum sweep that circles the perimeter, with
// phase advancing every frame.
func drawWellFrame(s *core.Screen, ox, oy, w, h int, party bool, phase int) {
	if !party {
		s.DrawBox(core.NewRect(ox, oy, w, h), core.ColorDefault)
		return
	}

	per := 2*(w+h) - 4
	i := 0
	next := func() core.Color {
		c := core.SpectrumColor(i+phase, per)
		i++
		return c
	}

	for x := ox; x < ox+w; x++ {
		r := '═'
		if x == ox {
			r = '╔'
		} else if x == ox+w-1 {
			r = '╗'
		}
		s.SetCell(x, oy, r, next())
	}
	for y := oy + 1; y < oy+h-1; y++ {
		s.SetCell(ox+w-1, y, '║', next())
	}
	for x := ox + w - 1; x >= ox; x-- {
		r := '═'
		if x == ox+w-1 {
			r = '╝'
		} else if x == ox {
			r = '╚'
		}
		s.SetCell(x, oy+h-1, r, next())
	}
	for y := oy + h - 2; y > oy; y-- {
		s.SetCell(ox, y, '║', next())
	}
}

// drawHold draws the hold slot to the left of the well. The held piece
// renders in its spawn pose, shifted into the panel.
func drawHold(s *core.Screen, ox, oy int, v engine.PlayerView) {
	px := ox - holdPanelWidth
	s.DrawTextColor(px, oy+1, "HOLD:", core.ColorGray)
	if v.Holding == nil {
		return
	}

	c := v.Holding.Color()
	if !v.CanHold {
		c = core.ColorGray
	}
	pose := game.NewPiece(*v.Holding).Geometry
	for _, p := range pose.Cells {
		x := px + int(p.X-3)*2
		y := oy + 3 + int(game.BoardHeight-1-p.Y)
		s.SetCell(x, y, '█', c)
		s.SetCell(x+1, y, '█', c)
	}
}

// drawNext draws the upcoming pieces to the right of the well, one
// spawn pose per slot, three rows apart.
func drawNext(s *core.Screen, ox, oy int, preview []game.Variant) {
	px := ox + wellWidth + 1
	s.DrawTextColor(px, oy+1, "NEXT:", core.ColorGray)
	for i, v := range preview {
		c := v.Color()
		pose := game.NewPiece(v).Geometry
		for _, p := range pose.Cells {
			x := px + int(p.X-3)*2
			y := oy + 3 + i*3 + int(game.BoardHeight-1-p.Y)
			s.SetCell(x, y, '█', c)
			s.SetCell(x+1, y, '█', c)
		}
	}
}

// drawStats draws the score block under the NEXT preview.
func drawStats(s *core.Screen, ox, oy int, sc game.Score) {
	px := ox + wellWidth + 1
	s.DrawText(px, oy+16, fmt.Sprintf("SCORE: %d", sc.Points))
	s.DrawText(px, oy+17, fmt.Sprintf("LEVEL: %d", sc.Level))
	s.DrawText(px, oy+18, fmt.Sprintf("LINES: %d", sc.Lines))
}

// drawStatsNarrow stacks the score block under the hold slot. Duels
// use it because the opponent well occupies the right-hand side.
func drawStatsNarrow(s *core.Screen, ox, oy int, sc game.Score) {
	px := ox - holdPanelWidth
	s.DrawText(px, oy+8, "SCORE:")
	s.DrawText(px+1, oy+9, strconv.Itoa(sc.Points))
	s.DrawText(px, oy+11, "LEVEL:")
	s.DrawText(px+1, oy+12, strconv.Itoa(sc.Level))
	s.DrawText(px, oy+14, "LINES:")
	s.DrawText(px+1, oy+15, strconv.Itoa(sc.Lines))
}
