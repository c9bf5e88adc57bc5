// Package game implements the falling-block rules: piece geometry, the
// well, the seeded bag, rotation with kick tables, scoring, garbage and
// the per-player state machine. It has no rendering or transport
// dependencies so the whole rule set is testable in isolation.
package game

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Facing is the orientation of a piece: the number of clockwise quarter
// turns from its spawn pose.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
)

func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// CW returns the facing after one clockwise quarter turn.
func (f Facing) CW() Facing {
	return (f + 1) % 4
}

// CCW returns the facing after one counter-clockwise quarter turn.
func (f Facing) CCW() Facing {
	return (f + 3) % 4
}

// Point is a cell coordinate on the well. X grows rightward, Y grows
// upward; row 0 is the bottom of the well.
type Point struct {
	X, Y int32
}

// Geometry is the full spatial state of a piece: its four cells, the
// pivot all rotation happens around, and the current facing. Cell order
// is stable so the wire form is byte-for-byte reproducible.
type Geometry struct {
	Cells  [4]Point
	Center Point
	Facing Facing
}

// GeometryLen is the encoded size of a Geometry: a facing byte, the
// pivot, and four cells as little-endian int32 pairs.
const GeometryLen = 1 + 4*2 + 4*4*2

// Errors returned by DecodeGeometry for malformed input.
var (
	ErrGeometryLen = errors.New("geometry: not enough bytes")
	ErrBadFacing   = errors.New("geometry: invalid facing byte")
)

// Translate moves every cell and the pivot by (dx, dy).
func (g *Geometry) Translate(dx, dy int32) {
	for i := range g.Cells {
		g.Cells[i].X += dx
		g.Cells[i].Y += dy
	}
	g.Center.X += dx
	g.Center.Y += dy
}

// RotateCW turns the piece a quarter turn clockwise around its pivot.
func (g *Geometry) RotateCW() {
	cx, cy := g.Center.X, g.Center.Y
	for i, p := range g.Cells {
		g.Cells[i] = Point{X: cx + (p.Y - cy), Y: cy - (p.X - cx)}
	}
	g.Facing = g.Facing.CW()
}

// RotateCCW turns the piece a quarter turn counter-clockwise around its pivot.
func (g *Geometry) RotateCCW() {
	cx, cy := g.Center.X, g.Center.Y
	for i, p := range g.Cells {
		g.Cells[i] = Point{X: cx - (p.Y - cy), Y: cy + (p.X - cx)}
	}
	g.Facing = g.Facing.CCW()
}

// AppendBinary appends the wire form of the geometry to b.
func (g Geometry) AppendBinary(b []byte) []byte {
	b = append(b, byte(g.Facing))
	b = binary.LittleEndian.AppendUint32(b, uint32(g.Center.X))
	b = binary.LittleEndian.AppendUint32(b, uint32(g.Center.Y))
	for _, p := range g.Cells {
		b = binary.LittleEndian.AppendUint32(b, uint32(p.X))
		b = binary.LittleEndian.AppendUint32(b, uint32(p.Y))
	}
	return b
}

// DecodeGeometry parses the wire form produced by AppendBinary. Trailing
// bytes beyond GeometryLen are ignored so callers can pass a whole frame
// payload.
func DecodeGeometry(b []byte) (Geometry, error) {
	if len(b) < GeometryLen {
		return Geometry{}, fmt.Errorf("%w: got %d, want %d", ErrGeometryLen, len(b), GeometryLen)
	}
	if b[0] > byte(West) {
		return Geometry{}, fmt.Errorf("%w: %d", ErrBadFacing, b[0])
	}

	var g Geometry
	g.Facing = Facing(b[0])
	g.Center.X = int32(binary.LittleEndian.Uint32(b[1:]))
	g.Center.Y = int32(binary.LittleEndian.Uint32(b[5:]))
	off := 9
	for i := range g.Cells {
		g.Cells[i].X = int32(binary.LittleEndian.Uint32(b[off:]))
		g.Cells[i].Y = int32(binary.LittleEndian.Uint32(b[off+4:]))
		off += 8
	}
	return g, nil
}
