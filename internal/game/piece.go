package game

import "github.com/vovakirdan/tui-tetris/internal/core"

// Variant identifies one of the seven tetrominoes.
type Variant uint8

const (
	VariantI Variant = iota
	VariantJ
	VariantL
	VariantO
	VariantS
	VariantT
	VariantZ
)

// NumVariants is the size of the piece catalog.
const NumVariants = 7

func (v Variant) String() string {
	switch v {
	case VariantI:
		return "I"
	case VariantJ:
		return "J"
	case VariantL:
		return "L"
	case VariantO:
		return "O"
	case VariantS:
		return "S"
	case VariantT:
		return "T"
	case VariantZ:
		return "Z"
	}
	return "?"
}

// Color returns the variant's display color.
func (v Variant) Color() core.Color {
	switch v {
	case VariantI:
		return core.ColorCyan
	case VariantJ:
		return core.ColorBlue
	case VariantL:
		return core.ColorOrange
	case VariantO:
		return core.ColorYellow
	case VariantS:
		return core.ColorGreen
	case VariantT:
		return core.ColorMagenta
	case VariantZ:
		return core.ColorRed
	}
	return core.ColorWhite
}

// spawnPoses holds the canonical spawn geometry of every variant: the
// pose a piece has when it enters the well at the top, facing north.
// Hold stores this pose too, never the current rotation.
var spawnPoses = [NumVariants]Geometry{
	VariantI: {
		Cells:  [4]Point{{3, 18}, {4, 18}, {5, 18}, {6, 18}},
		Center: Point{4, 18},
	},
	VariantJ: {
		Cells:  [4]Point{{4, 19}, {4, 18}, {5, 18}, {6, 18}},
		Center: Point{5, 18},
	},
	VariantL: {
		Cells:  [4]Point{{4, 18}, {5, 18}, {6, 18}, {6, 19}},
		Center: Point{5, 18},
	},
	VariantO: {
		Cells:  [4]Point{{4, 18}, {4, 19}, {5, 18}, {5, 19}},
		Center: Point{4, 18},
	},
	VariantS: {
		Cells:  [4]Point{{4, 18}, {5, 18}, {5, 19}, {6, 19}},
		Center: Point{5, 18},
	},
	VariantT: {
		Cells:  [4]Point{{4, 18}, {5, 18}, {5, 19}, {6, 18}},
		Center: Point{5, 18},
	},
	VariantZ: {
		Cells:  [4]Point{{4, 19}, {5, 19}, {5, 18}, {6, 18}},
		Center: Point{5, 18},
	},
}

// Piece is a variant plus its current spatial state in the well.
type Piece struct {
	Variant  Variant
	Geometry Geometry
}

// NewPiece returns a fresh piece in its canonical spawn pose.
func NewPiece(v Variant) Piece {
	return Piece{Variant: v, Geometry: spawnPoses[v]}
}
