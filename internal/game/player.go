package game

import "math/rand"

// garbageSeedSalt derives the garbage hole stream from the player seed.
// Hole draws must not advance the bag RNG: the opponent replays our
// clears at different points in its own piece sequence, and the piece
// sequences have to stay identical on both peers.
const garbageSeedSalt = 0x9E3779B97F4A7C15

// Direction is a horizontal shift direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// Effect reports what a player operation did so the session can arm
// timers and emit wire frames. The player itself never touches a clock.
type Effect struct {
	Moved     bool      // falling geometry changed; worth a position frame
	RearmLock bool      // the movement earned another lock delay
	Placed    bool      // the piece was committed to the well
	Marked    bool      // full rows are flashing; arm the clear delay
	DidClear  bool      // the commit interrupted a flash and settled it
	Cleared   ClearKind // the settled clear, set when DidClear
	Placement Geometry  // committed pose, set when Placed
}

// Player is one participant's complete game state: the well, the
// dealer, the falling piece and its ghost, the hold slot, and scoring.
// Operations are pure state transitions; durations live in the session,
// which calls Place and LineClear when its timers fire.
type Player struct {
	Board   *Board
	Falling Piece
	Ghost   *Geometry // falling piece descended to rest; nil when buried
	Holding *Variant  // hold slot, always the canonical pose
	Score   Score

	bag     *Bag
	garbage *rand.Rand

	canHold     bool
	locking     bool // resting on support since the last gravity step
	clearing    bool // full rows flashing, clear delay running
	pendingSpin bool // the flashing clear came from a T-spin
	lockResets  int
	lastRotate  bool // last successful action was a rotation
	lost        bool
}

// NewPlayer creates a player from a shared 64-bit seed. The bag and the
// garbage hole draws use independent streams derived from that seed.
func NewPlayer(startLevel int, seed uint64) *Player {
	p := &Player{
		Board:   NewStandardBoard(),
		bag:     NewBag(seed),
		garbage: rand.New(rand.NewSource(int64(seed ^ garbageSeedSalt))),
		Score:   NewScore(startLevel),
		canHold: true,
	}
	p.spawn(p.bag.Next())
	return p
}

// Locking reports whether the piece is resting and the lock delay
// applies.
func (p *Player) Locking() bool { return p.locking }

// Clearing reports whether full rows are flashing and the clear delay
// applies. The flashing rows themselves are Board.FullRows.
func (p *Player) Clearing() bool { return p.clearing }

// Lost reports whether the player has topped out or forfeited.
func (p *Player) Lost() bool { return p.lost }

// CanHold reports whether the hold slot is available for the current
// piece.
func (p *Player) CanHold() bool { return p.canHold }

// Preview returns the upcoming variants, soonest first.
func (p *Player) Preview() []Variant { return p.bag.Preview() }

// Forfeit marks the player as lost. Leaving the session counts as a
// top-out for result purposes.
func (p *Player) Forfeit() { p.lost = true }

// spawn adopts a fresh piece, lifting it clear of any stack cells
// already occupying its spawn rows.
func (p *Player) spawn(piece Piece) {
	p.Falling = piece
	p.liftClear()
	p.updateGhost()
}

// liftClear raises the falling piece out of stack cells underneath it,
// after a spawn onto a crowded well or a garbage push from below.
func (p *Player) liftClear() {
	for p.Board.Intersects(p.Falling.Geometry) {
		p.Falling.Geometry.Translate(0, 1)
	}
}

// updateGhost recomputes the resting shadow of the falling piece.
func (p *Player) updateGhost() {
	g := p.Falling.Geometry
	for !p.Board.HittingBottom(g) {
		g.Translate(0, -1)
	}
	if p.Board.Overlapping(g) {
		p.Ghost = nil
	} else {
		p.Ghost = &g
	}
}

// forcePlace commits the piece when the lock-reset cap has been
// exhausted and another nudge arrives.
func (p *Player) forcePlace() (Effect, bool) {
	if p.locking && p.lockResets >= LockResetLimit {
		eff := p.Place()
		if eff.Placed {
			return eff, true
		}
	}
	return Effect{}, false
}

// Shift moves the falling piece one column. While the piece is locking,
// each successful shift spends one lock reset; at the cap the piece is
// placed instead. Even a blocked attempt clears the rotation flag.
func (p *Player) Shift(dir Direction) Effect {
	if p.lost {
		return Effect{}
	}
	if eff, placed := p.forcePlace(); placed {
		return eff
	}

	p.lastRotate = false

	blocked := p.Board.HittingLeft(p.Falling.Geometry)
	dx := int32(-1)
	if dir == Right {
		blocked = p.Board.HittingRight(p.Falling.Geometry)
		dx = 1
	}
	if blocked {
		return Effect{}
	}

	p.Falling.Geometry.Translate(dx, 0)
	if p.locking {
		p.lockResets++
	}
	p.updateGhost()
	return Effect{Moved: true, RearmLock: p.lockResets < LockResetLimit}
}

// Rotate turns the falling piece a quarter turn, kicking through the
// variant's offset table: the first of five candidate translations that
// does not overlap wins, and the try order is part of the contract.
// Success sets the rotation flag and, while locking, spends a lock
// reset like Shift does.
func (p *Player) Rotate(cw bool) Effect {
	if p.lost {
		return Effect{}
	}
	if eff, placed := p.forcePlace(); placed {
		return eff
	}

	rotated := p.Falling.Geometry
	if cw {
		rotated.RotateCW()
	} else {
		rotated.RotateCCW()
	}

	table := offsetsFor(p.Falling.Variant)
	from, to := p.Falling.Geometry.Facing, rotated.Facing

	for i := range table[to] {
		ox := table[to][i].X - table[from][i].X
		oy := table[to][i].Y - table[from][i].Y

		rotated.Translate(-ox, -oy)
		if !p.Board.Overlapping(rotated) {
			p.Falling.Geometry = rotated
			if p.locking {
				p.lockResets++
			}
			p.updateGhost()
			p.lastRotate = true
			return Effect{Moved: true, RearmLock: p.lockResets < LockResetLimit}
		}
		rotated.Translate(ox, oy)
	}

	return Effect{}
}

// Drop applies one gravity step. A successful step refunds the lock
// resets; either way the locking state is recomputed from where the
// piece now sits. Gravity does not clear the rotation flag, so a
// rotation into a slot still counts as a T-spin after the final drop.
func (p *Player) Drop() Effect {
	if p.lost {
		return Effect{}
	}
	var eff Effect
	if !p.Board.HittingBottom(p.Falling.Geometry) {
		p.Falling.Geometry.Translate(0, -1)
		p.lockResets = 0
		eff = Effect{Moved: true, RearmLock: true}
	}
	p.locking = p.Board.HittingBottom(p.Falling.Geometry)
	return eff
}

// SoftDrop is a player-driven gravity step scoring one point per row
// descended.
func (p *Player) SoftDrop() Effect {
	eff := p.Drop()
	if eff.Moved {
		p.Score.Points++
	}
	return eff
}

// HardDrop sends the piece straight to its resting position, two points
// per row, and places it immediately.
func (p *Player) HardDrop() Effect {
	if p.lost {
		return Effect{}
	}
	for !p.Board.HittingBottom(p.Falling.Geometry) {
		p.Falling.Geometry.Translate(0, -1)
		p.Score.Points += 2
	}
	return p.Place()
}

// Place commits the falling piece to the well. It is a no-op unless the
// piece is resting, which makes it safe to call from every forced-place
// path. A commit that lands while earlier rows still flash settles that
// clear first, so each placement's rows classify on their own; the
// settled kind rides out on the effect. The T-spin qualification is
// captured here, against the piece being placed, and consumed when the
// clear resolves.
func (p *Player) Place() Effect {
	if p.lost || !p.Board.HittingBottom(p.Falling.Geometry) {
		return Effect{}
	}

	var eff Effect
	if p.clearing {
		if kind, ok := p.LineClear(); ok {
			eff.DidClear = true
			eff.Cleared = kind
		}
	}

	placed := p.Falling.Geometry
	spin := p.tSpinCheck()

	if !p.Board.Add(placed, p.Falling.Variant.Color()) {
		p.lost = true
		return eff
	}

	p.markClear(spin)

	p.spawn(p.bag.Next())
	p.locking = false
	p.canHold = true
	p.lastRotate = false
	p.lockResets = 0

	eff.Placed = true
	eff.Marked = p.clearing
	eff.Placement = placed
	return eff
}

// markClear arms or resets the clearing state after a placement. A
// placement that completes no rows breaks the combo chain.
func (p *Player) markClear(spin bool) {
	if len(p.Board.FullRows()) == 0 {
		p.clearing = false
		p.pendingSpin = false
		p.Score.Combo = -1
		return
	}
	p.clearing = true
	p.pendingSpin = spin
}

// Hold swaps the falling piece with the hold slot, drawing from the bag
// when the slot is empty. The swapped-out piece is stored in its
// canonical pose. Hold stays disabled until the next placement.
func (p *Player) Hold() Effect {
	if p.lost || !p.canHold {
		return Effect{}
	}

	var swap Piece
	if p.Holding != nil {
		swap = NewPiece(*p.Holding)
	} else {
		swap = p.bag.Next()
	}

	held := p.Falling.Variant
	p.Holding = &held
	p.Falling = swap
	p.liftClear()
	p.canHold = false
	p.lastRotate = false
	p.updateGhost()

	return Effect{Moved: true}
}

// LineClear resolves the flashing rows when the clear delay fires:
// removes them, classifies the clear against the post-removal well, and
// applies scoring. The returned kind is what the session converts into
// garbage for the opponent; ok is false when no clear was pending.
func (p *Player) LineClear() (kind ClearKind, ok bool) {
	if !p.clearing {
		return 0, false
	}

	full := p.Board.FullRows()
	p.Board.ClearLines(full)
	kind = ClassifyClear(len(full), p.Board.Empty(), p.pendingSpin)
	p.Score.ScoreClear(kind)

	p.clearing = false
	p.pendingSpin = false
	p.updateGhost()
	return kind, true
}

// AddGarbage applies an opponent clear: a burst of garbage rows sharing
// one hole column, spliced under the stack. The hole comes from the
// dedicated garbage stream, and the falling piece is lifted back out of
// the stack if the push buried it.
func (p *Player) AddGarbage(kind ClearKind) {
	count := kind.GarbageLines()
	if count == 0 {
		return
	}
	hole := int32(p.garbage.Intn(int(p.Board.Width())))
	p.Board.AddGarbage(count, hole)
	p.liftClear()
	p.updateGhost()
}

// SetFallingGeometry adopts a position report for a mirrored remote
// player. Commits arrive separately as placements; this only moves the
// piece. The rotation flag is inferred from the motion so a mirrored
// placement classifies spins the same way the sender did: a facing
// change is a rotation, lateral motion clears the flag like a shift,
// and straight descent preserves it like gravity.
func (p *Player) SetFallingGeometry(g Geometry) {
	old := p.Falling.Geometry
	p.Falling.Geometry = g
	switch {
	case g.Facing != old.Facing:
		p.lastRotate = true
	case g.Center.X != old.Center.X:
		p.lastRotate = false
	}
	p.updateGhost()
	p.locking = p.Board.HittingBottom(g)
}

// tSpinCheck reports whether placing the current piece qualifies as a
// T-spin: a T whose last successful action was a rotation, with at
// least three of the four diagonal corners around its pivot occupied or
// out of bounds.
func (p *Player) tSpinCheck() bool {
	if !p.lastRotate || p.Falling.Variant != VariantT {
		return false
	}
	c := p.Falling.Geometry.Center
	occupied := 0
	for _, d := range [4]Point{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		x, y := c.X+d.X, c.Y+d.Y
		if x < 0 || x >= p.Board.Width() || y < 0 || y >= p.Board.Height() || p.Board.occupied(x, y) {
			occupied++
		}
	}
	return occupied >= 3
}
