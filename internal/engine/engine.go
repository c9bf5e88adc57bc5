// Package engine runs one game session as a single control loop: it
// multiplexes player input, the lock/clear/gravity timers, and the
// peer link, and it is the only goroutine that mutates the players.
// The local player is driven by input and local timers, the remote
// mirror only by received frames, so the two never share a code path.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
	"github.com/vovakirdan/tui-tetris/internal/netplay"
)

const (
	// frameInterval is the default render snapshot pace.
	frameInterval = time.Second / 30
	// agentInterval paces autoplayer steps, slow enough to watch.
	agentInterval = 120 * time.Millisecond
	// inputBuffer sizes the input channel; bursts beyond it are
	// dropped rather than blocking the sender.
	inputBuffer = 64
)

// Caps selects what a session is wired to: nothing for single player,
// Remote for a duel, Agent for the party autoplayer.
type Caps struct {
	Remote bool // a mirrored peer is attached over the wire
	Agent  bool // the autoplayer drives the local side
}

// Config assembles a session.
type Config struct {
	Caps       Caps
	StartLevel int
	LocalSeed  uint64
	RemoteSeed uint64        // bag seed of the mirrored peer
	Conn       *netplay.Conn // required when Caps.Remote
	FrameRate  int           // render snapshots per second; 0 means 30
	Logger     *log.Logger
}

// Engine owns a running session. Construct with New, feed it through
// Input, render from Events, and start the loop with Run.
type Engine struct {
	logger *log.Logger
	caps   Caps

	local  *game.Player
	remote *game.Player
	agent  *game.Agent
	conn   *netplay.Conn

	frameEvery time.Duration

	inputs chan core.Action
	feed   *Feed

	done     chan struct{}
	doneOnce sync.Once
}

// New builds a session from its configuration. Run starts it.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	frameEvery := frameInterval
	if cfg.FrameRate > 0 {
		frameEvery = time.Second / time.Duration(cfg.FrameRate)
	}
	e := &Engine{
		logger:     logger,
		caps:       cfg.Caps,
		local:      game.NewPlayer(cfg.StartLevel, cfg.LocalSeed),
		conn:       cfg.Conn,
		frameEvery: frameEvery,
		inputs:     make(chan core.Action, inputBuffer),
		feed:       NewFeed(inputBuffer),
		done:       make(chan struct{}),
	}
	if cfg.Caps.Remote {
		e.remote = game.NewPlayer(cfg.StartLevel, cfg.RemoteSeed)
	}
	if cfg.Caps.Agent {
		e.agent = game.NewAgent()
	}
	return e
}

// Input queues a player action. Non-blocking; an overflowing burst is
// dropped.
func (e *Engine) Input(a core.Action) {
	select {
	case e.inputs <- a:
	default:
	}
}

// Events is the feed the presentation layer renders from.
func (e *Engine) Events() <-chan Event {
	return e.feed.Events()
}

// Done closes when the session has stopped.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Stop ends the session from outside the loop. Safe on every path.
func (e *Engine) Stop() {
	e.doneOnce.Do(func() {
		close(e.done)
	})
}

// Run drives the session until somebody loses, the peer vanishes, or
// Stop is called. The result reaches the feed first, then the
// callback.
func (e *Engine) Run(onComplete func(Result)) {
	defer e.Stop()
	defer e.feed.Close()
	if e.conn != nil {
		defer e.conn.Close()
	}

	level := e.local.Score.Level
	gravity := time.NewTicker(game.DropInterval(level))
	defer gravity.Stop()

	frames := time.NewTicker(e.frameEvery)
	defer frames.Stop()

	lock := newDelay()
	localClear := newDelay()
	remoteClear := newDelay()

	// Absent capabilities leave these channels nil, so their select
	// arms never fire.
	var pings <-chan time.Time
	var agentSteps <-chan time.Time
	var reliable <-chan netplay.Message
	var positions <-chan game.Geometry
	var connErrs <-chan error

	if e.caps.Remote {
		pt := time.NewTicker(netplay.PingInterval)
		defer pt.Stop()
		pings = pt.C
		reliable = e.conn.Reliable()
		positions = e.conn.Positions()
		connErrs = e.conn.Err()
	}
	if e.caps.Agent {
		at := time.NewTicker(agentInterval)
		defer at.Stop()
		agentSteps = at.C
	}

	for {
		select {
		case a := <-e.inputs:
			e.handleAction(a, lock, localClear)

		case <-lock.C():
			// Stale fires are possible; the flag decides.
			lock.armed = false
			if e.local.Locking() {
				e.applyLocal(e.local.Place(), lock, localClear)
			}

		case <-localClear.C():
			localClear.armed = false
			if kind, ok := e.local.LineClear(); ok {
				e.logger.Debug("clear resolved", "kind", kind)
				if e.remote != nil {
					e.remote.AddGarbage(kind)
				}
			}

		case <-remoteClear.C():
			remoteClear.armed = false
			if e.remote != nil {
				if kind, ok := e.remote.LineClear(); ok {
					e.local.AddGarbage(kind)
				}
			}

		case <-gravity.C:
			e.applyLocal(e.local.Drop(), lock, localClear)
			if e.remote != nil {
				// Cosmetic descent between reports; frames from the
				// peer stay authoritative.
				e.remote.Drop()
			}

		case <-frames.C:
			e.feed.Send(FrameEvent{Snapshot: e.snapshot()})

		case <-pings:
			if err := e.conn.SendPing(); err != nil {
				e.logger.Debug("ping send", "err", err)
			}

		case <-agentSteps:
			e.applyLocal(e.agent.Step(e.local), lock, localClear)

		case m := <-reliable:
			e.handleMessage(m, remoteClear)

		case g := <-positions:
			e.remote.SetFallingGeometry(g)

		case err := <-connErrs:
			e.logger.Error("peer link failed", "err", err)
			e.finish(EndReasonDisconnect, onComplete)
			return

		case <-e.done:
			return
		}

		if e.local.Lost() || (e.remote != nil && e.remote.Lost()) {
			e.finish(EndReasonCompleted, onComplete)
			return
		}
		if l := e.local.Score.Level; l != level {
			level = l
			gravity.Reset(game.DropInterval(l))
			e.logger.Info("level up", "level", l)
		}
	}
}

// handleAction turns one input into a player operation.
func (e *Engine) handleAction(a core.Action, lock, localClear *delay) {
	var eff game.Effect
	switch a {
	case core.ActionQuit:
		e.local.Forfeit()
		return
	case core.ActionMoveLeft:
		eff = e.local.Shift(game.Left)
	case core.ActionMoveRight:
		eff = e.local.Shift(game.Right)
	case core.ActionRotateCW:
		eff = e.local.Rotate(true)
	case core.ActionRotateCCW:
		eff = e.local.Rotate(false)
	case core.ActionSoftDrop:
		eff = e.local.SoftDrop()
	case core.ActionHardDrop:
		eff = e.local.HardDrop()
	case core.ActionHold:
		eff = e.local.Hold()
		if eff.Moved && e.conn != nil {
			if err := e.conn.SendHold(); err != nil {
				e.logger.Debug("hold send", "err", err)
			}
		}
	default:
		return
	}
	e.applyLocal(eff, lock, localClear)
}

// applyLocal reconciles timers and wire traffic with what a local
// operation did. It serves input, gravity, agent and forced-place
// paths alike.
func (e *Engine) applyLocal(eff game.Effect, lock, localClear *delay) {
	if eff.DidClear {
		// The commit settled the flashing rows itself; the attack
		// still crosses over.
		localClear.disarm()
		if e.remote != nil {
			e.remote.AddGarbage(eff.Cleared)
		}
	}

	if eff.Placed {
		lock.disarm()
		if eff.Marked {
			localClear.arm(game.LineClearDelay)
		}
		if e.conn != nil {
			if err := e.conn.SendPlace(eff.Placement); err != nil {
				e.logger.Debug("place send", "err", err)
			}
		}
		return
	}

	if eff.Moved && e.conn != nil {
		if err := e.conn.SendPos(e.local.Falling.Geometry); err != nil {
			e.logger.Debug("position send", "err", err)
		}
	}

	if !e.local.Locking() {
		lock.disarm()
		return
	}
	if eff.RearmLock || !lock.armed {
		lock.arm(game.LockDelay)
	}
}

// handleMessage applies one reliable frame to the remote mirror.
func (e *Engine) handleMessage(m netplay.Message, remoteClear *delay) {
	switch v := m.(type) {
	case netplay.Place:
		// The sender's final pose is authoritative; the identical
		// commit machinery then runs on the mirror.
		e.remote.SetFallingGeometry(v.Geometry)
		eff := e.remote.Place()
		if eff.DidClear {
			remoteClear.disarm()
			e.local.AddGarbage(eff.Cleared)
		}
		if eff.Marked {
			remoteClear.arm(game.LineClearDelay)
		}
	case netplay.Hold:
		e.remote.Hold()
	case netplay.Ping:
		if err := e.conn.SendPong(v); err != nil {
			e.logger.Debug("pong send", "err", err)
		}
	case netplay.Pong:
		rtt := time.Duration(time.Now().UnixMilli()-v.SentAt) * time.Millisecond
		e.feed.Send(RTTEvent{RTT: rtt})
	default:
		e.logger.Debug("ignoring frame", "msg", fmt.Sprintf("%T", m))
	}
}

// finish emits the terminal result.
func (e *Engine) finish(reason EndReason, onComplete func(Result)) {
	res := Result{Reason: reason, Local: e.local.Score}
	if e.remote != nil {
		s := e.remote.Score
		res.Remote = &s
		res.LocalWon = !e.local.Lost()
	}
	e.logger.Info("session over", "reason", reason, "points", res.Local.Points, "lines", res.Local.Lines)
	e.feed.Send(DoneEvent{Result: res})
	if onComplete != nil {
		onComplete(res)
	}
}

// snapshot detaches both players' drawable state.
func (e *Engine) snapshot() Snapshot {
	s := Snapshot{Local: viewOf(e.local)}
	if e.remote != nil {
		v := viewOf(e.remote)
		s.Remote = &v
	}
	return s
}
