package game

import "github.com/vovakirdan/tui-tetris/internal/core"

// Standard well dimensions.
const (
	BoardWidth  int32 = 10
	BoardHeight int32 = 20
)

// Board is the well. Row 0 is the BOTTOM row and rows grow upward; a
// cell holds ColorDefault when empty. Garbage rows spliced in at the
// bottom may push storage beyond the visible height; cells shoved above
// the top stay in storage, out of play until lines clear below them.
type Board struct {
	width  int32
	height int32
	cells  [][]core.Color
}

// NewBoard creates an empty board with the given visible dimensions.
func NewBoard(width, height int32) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]core.Color, height)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// NewStandardBoard creates the regulation 10x20 well.
func NewStandardBoard() *Board {
	return NewBoard(BoardWidth, BoardHeight)
}

// Width returns the playfield width.
func (b *Board) Width() int32 {
	return b.width
}

// Height returns the visible playfield height.
func (b *Board) Height() int32 {
	return b.height
}

// At returns the color at (x, y), or ColorDefault when empty or out of
// bounds.
func (b *Board) At(x, y int32) core.Color {
	if x < 0 || x >= b.width || y < 0 || y >= int32(len(b.cells)) {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// occupied reports whether a storage cell holds a color.
func (b *Board) occupied(x, y int32) bool {
	return b.At(x, y) != core.ColorDefault
}

// Overlapping reports whether any cell of g lies outside the playfield
// or on an occupied cell. Cells above the visible top DO overlap.
func (b *Board) Overlapping(g Geometry) bool {
	for _, p := range g.Cells {
		if p.X < 0 || p.Y < 0 || p.X > b.width-1 || p.Y > b.height-1 || b.occupied(p.X, p.Y) {
			return true
		}
	}
	return false
}

// Intersects reports whether any cell of g coincides with an occupied
// cell, ignoring playfield bounds. Used to lift a piece clear of rows
// pushed up underneath it.
func (b *Board) Intersects(g Geometry) bool {
	for _, p := range g.Cells {
		if b.occupied(p.X, p.Y) {
			return true
		}
	}
	return false
}

// HittingBottom reports whether g rests on the floor or on stack cells.
func (b *Board) HittingBottom(g Geometry) bool {
	for _, p := range g.Cells {
		if p.Y == 0 || (p.Y < b.height && b.occupied(p.X, p.Y-1)) {
			return true
		}
	}
	return false
}

// HittingLeft reports whether g touches the left wall or stack cells to
// its left.
func (b *Board) HittingLeft(g Geometry) bool {
	for _, p := range g.Cells {
		if p.X == 0 || (p.Y < b.height && b.occupied(p.X-1, p.Y)) {
			return true
		}
	}
	return false
}

// HittingRight reports whether g touches the right wall or stack cells
// to its right.
func (b *Board) HittingRight(g Geometry) bool {
	for _, p := range g.Cells {
		if p.X == b.width-1 || (p.Y < b.height && b.occupied(p.X+1, p.Y)) {
			return true
		}
	}
	return false
}

// Add writes the piece into the well in the given color. Returns false
// without writing when any cell lies above the visible top: the top-out
// condition.
func (b *Board) Add(g Geometry, c core.Color) bool {
	for _, p := range g.Cells {
		if p.Y > b.height-1 {
			return false
		}
	}
	for _, p := range g.Cells {
		if p.X >= 0 && p.X < b.width && p.Y >= 0 {
			b.cells[p.Y][p.X] = c
		}
	}
	return true
}

// FullRows returns the indexes of completely occupied rows, bottom up.
func (b *Board) FullRows() []int {
	var full []int
	for y, row := range b.cells {
		filled := true
		for _, c := range row {
			if c == core.ColorDefault {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, y)
		}
	}
	return full
}

// ClearLines removes the given rows, keeps the relative order of the
// survivors, and appends that many empty rows at the top.
func (b *Board) ClearLines(rows []int) {
	if len(rows) == 0 {
		return
	}
	clearing := make(map[int]bool, len(rows))
	for _, y := range rows {
		clearing[y] = true
	}

	kept := b.cells[:0]
	for y, row := range b.cells {
		if !clearing[y] {
			kept = append(kept, row)
		}
	}
	b.cells = kept
	for range rows {
		b.cells = append(b.cells, make([]core.Color, b.width))
	}
}

// AddGarbage splices count identical garbage rows at the bottom: all
// white except one hole column. Existing content shifts upward.
func (b *Board) AddGarbage(count int, hole int32) {
	if count <= 0 {
		return
	}
	garbage := make([][]core.Color, count)
	for i := range garbage {
		row := make([]core.Color, b.width)
		for x := range row {
			if int32(x) != hole {
				row[x] = core.ColorWhite
			}
		}
		garbage[i] = row
	}
	b.cells = append(garbage, b.cells...)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{width: b.width, height: b.height}
	c.cells = make([][]core.Color, len(b.cells))
	for y, row := range b.cells {
		c.cells[y] = make([]core.Color, len(row))
		copy(c.cells[y], row)
	}
	return c
}

// BottomGap returns the number of completely empty rows beneath the
// lowest occupied cell, or the full storage height for an empty well.
func (b *Board) BottomGap() int {
	for y, row := range b.cells {
		for _, c := range row {
			if c != core.ColorDefault {
				return y
			}
		}
	}
	return len(b.cells)
}

// Empty reports whether no cell holds a color. A clear that empties the
// well is a perfect clear.
func (b *Board) Empty() bool {
	for _, row := range b.cells {
		for _, c := range row {
			if c != core.ColorDefault {
				return false
			}
		}
	}
	return true
}
