package game

// Agent autoplays a board in party mode. It enumerates resting poses
// for the current piece, scores each on a copy of the well, and steers
// toward the best one action per tick, driving the same public
// operations a human player uses.
type Agent struct {
	goal *Piece
}

// NewAgent creates an idle agent; it picks its first goal on the first
// Step.
func NewAgent() *Agent {
	return &Agent{}
}

// validPlay reports whether g is a legal resting pose.
func validPlay(b *Board, g Geometry) bool {
	return !b.Overlapping(g) && b.HittingBottom(g)
}

// scan enumerates candidate resting poses for the falling piece: a
// fresh canonical piece normalized toward the origin, swept across the
// well in a zigzag with all four rotations tried at every stop.
// Out-of-bounds poses fall out via the overlap check.
func scan(p *Player) []Piece {
	piece := NewPiece(p.Falling.Variant)
	for piece.Geometry.Center.Y > 0 {
		piece.Geometry.Translate(0, -1)
	}
	for piece.Geometry.Center.X > 0 {
		piece.Geometry.Translate(-1, 0)
	}

	var valid []Piece
	span := int(p.Board.Height())
	for i := 0; i < span; i++ {
		for j := 0; j < span; j++ {
			for range 4 {
				piece.Geometry.RotateCW()
				if validPlay(p.Board, piece.Geometry) {
					valid = append(valid, piece)
				}
			}
			if i%2 == 0 {
				piece.Geometry.Translate(1, 0)
			} else {
				piece.Geometry.Translate(-1, 0)
			}
		}
		piece.Geometry.Translate(0, 1)
	}
	return valid
}

// Evaluate rescans the well and picks a new goal pose for the current
// falling piece: the candidate whose resulting board has the most
// completed rows, preferring the earliest scanned on ties. A well with
// no legal resting pose leaves the agent idle until the board changes.
func (a *Agent) Evaluate(p *Player) {
	a.goal = nil
	best := -1
	for _, play := range scan(p) {
		board := p.Board.Clone()
		board.Add(play.Geometry, play.Variant.Color())
		score := len(board.FullRows()) + board.BottomGap()
		if score > best {
			best = score
			goal := play
			a.goal = &goal
		}
	}
}

// Step advances one control action toward the goal: align the facing
// first, then the column, then hard drop and plan for the next piece.
func (a *Agent) Step(p *Player) Effect {
	if a.goal == nil {
		a.Evaluate(p)
		if a.goal == nil {
			return Effect{}
		}
	}

	switch {
	case p.Falling.Geometry.Facing != a.goal.Geometry.Facing:
		return p.Rotate(true)
	case p.Falling.Geometry.Center.X > a.goal.Geometry.Center.X:
		return p.Shift(Left)
	case p.Falling.Geometry.Center.X < a.goal.Geometry.Center.X:
		return p.Shift(Right)
	default:
		eff := p.HardDrop()
		a.Evaluate(p)
		return eff
	}
}
