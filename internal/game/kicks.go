package game

// Kick offset tables, one row of five candidates per facing. A rotation
// from facing a to facing b tries, for i in order, the translation
// -(table[b][i] - table[a][i]) and takes the first pose that does not
// overlap. The try order is part of the contract: wall kicks and floor
// kicks resolve the same way on both peers.

var jlstzOffsets = [4][5]Point{
	North: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	East:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	South: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	West:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

var iOffsets = [4][5]Point{
	North: {{0, 0}, {-1, 0}, {2, 0}, {-1, 0}, {2, 0}},
	East:  {{-1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, -2}},
	South: {{-1, 1}, {1, 1}, {-2, 1}, {1, 0}, {-2, 0}},
	West:  {{0, 1}, {0, 1}, {0, 1}, {0, -1}, {0, 2}},
}

// The O piece never kicks; its table only cancels the pivot wobble so
// rotation leaves it visually in place.
var oOffsets = [4][5]Point{
	North: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	East:  {{0, -1}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	South: {{-1, -1}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	West:  {{-1, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
}

// offsetsFor returns the kick table for a variant.
func offsetsFor(v Variant) *[4][5]Point {
	switch v {
	case VariantI:
		return &iOffsets
	case VariantO:
		return &oOffsets
	default:
		return &jlstzOffsets
	}
}
