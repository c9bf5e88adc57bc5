package engine

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/game"
)

// Event is an engine notification to the presentation layer: one of
// FrameEvent, RTTEvent or DoneEvent.
type Event interface {
	event()
}

// FrameEvent carries a fresh snapshot for rendering.
type FrameEvent struct {
	Snapshot Snapshot
}

func (FrameEvent) event() {}

// RTTEvent reports a measured round trip to the peer.
type RTTEvent struct {
	RTT time.Duration
}

func (RTTEvent) event() {}

// DoneEvent is the terminal event: the session is over and the loop
// has stopped.
type DoneEvent struct {
	Result Result
}

func (DoneEvent) event() {}

// EndReason describes why a session ended.
type EndReason int

const (
	// EndReasonCompleted means somebody's well filled up, or the
	// local player forfeited by quitting.
	EndReasonCompleted EndReason = iota

	// EndReasonDisconnect means the peer link died mid-game.
	EndReasonDisconnect
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndReasonCompleted:
		return "Game over"
	case EndReasonDisconnect:
		return "Opponent disconnected"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a finished session.
type Result struct {
	Reason   EndReason
	LocalWon bool // meaningful only when Remote is set
	Local    game.Score
	Remote   *game.Score // nil outside versus sessions
}

// PlayerView is one participant's drawable state, detached from the
// live player so the renderer can read it on its own goroutine.
type PlayerView struct {
	Board    *game.Board
	Falling  game.Piece
	Ghost    *game.Geometry
	Holding  *game.Variant
	Preview  []game.Variant
	Score    game.Score
	Locking  bool
	Clearing bool
	CanHold  bool
	Lost     bool
}

// Snapshot is one frame's complete drawable state.
type Snapshot struct {
	Local  PlayerView
	Remote *PlayerView // nil outside versus sessions
}

// viewOf detaches a player's state for rendering.
func viewOf(p *game.Player) PlayerView {
	v := PlayerView{
		Board:    p.Board.Clone(),
		Falling:  p.Falling,
		Preview:  p.Preview(),
		Score:    p.Score,
		Locking:  p.Locking(),
		Clearing: p.Clearing(),
		CanHold:  p.CanHold(),
		Lost:     p.Lost(),
	}
	if p.Ghost != nil {
		g := *p.Ghost
		v.Ghost = &g
	}
	if p.Holding != nil {
		h := *p.Holding
		v.Holding = &h
	}
	return v
}
