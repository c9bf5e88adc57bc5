package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// engineMsg wraps one engine event for the Bubble Tea loop.
type engineMsg struct {
	evt engine.Event
}

// engineStoppedMsg reports that the engine shut down without a result,
// which happens when something outside the UI stops it.
type engineStoppedMsg struct{}

// waitForEvent returns a command that blocks on the next engine event.
// The model re-issues it after each delivery, one in flight at a time.
func waitForEvent(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-eng.Events():
			return engineMsg{evt: evt}
		case <-eng.Done():
			// The final DoneEvent may already be queued behind the
			// shutdown signal; prefer it over reporting a bare stop.
			select {
			case evt := <-eng.Events():
				return engineMsg{evt: evt}
			default:
				return engineStoppedMsg{}
			}
		}
	}
}

// ModelOptions selects the presentation for one session.
type ModelOptions struct {
	Runtime core.RuntimeConfig // terminal size; zero fields fall back to defaults
	Party   bool
	Debug   bool
	Restart func() *engine.Engine // builds a replacement session; nil disables replay
}

// Model is the Bubble Tea model for one game session. It owns the
// screen buffer and a running engine, renders snapshots as they
// arrive, and switches to a summary screen when the session ends.
type Model struct {
	app   config.Config
	keys  GameKeyMap
	sKeys SummaryKeyMap
	help  help.Model

	eng     *engine.Engine
	restart func() *engine.Engine

	party bool
	debug bool

	screen *core.Screen
	width  int
	height int

	snap     engine.Snapshot
	haveSnap bool
	rtt      time.Duration
	phase    int
	frames   int
	fps      int

	result   *engine.Result
	summary  summaryView
	quitting bool
}

// NewModel builds the model for a constructed engine. The engine must
// not be running yet; Init starts it.
func NewModel(eng *engine.Engine, app config.Config, opts ModelOptions) (Model, error) {
	keys, err := NewGameKeyMap(app.Controls)
	if err != nil {
		return Model{}, err
	}
	sKeys, err := newSummaryKeyMap(app.Controls.Quit, opts.Restart != nil)
	if err != nil {
		return Model{}, err
	}

	rc := opts.Runtime
	def := core.DefaultRuntimeConfig()
	if rc.ScreenW <= 0 {
		rc.ScreenW = def.ScreenW
	}
	if rc.ScreenH <= 0 {
		rc.ScreenH = def.ScreenH
	}

	return Model{
		app:     app,
		keys:    keys,
		sKeys:   sKeys,
		help:    help.New(),
		eng:     eng,
		restart: opts.Restart,
		party:   opts.Party,
		debug:   opts.Debug,
		// One screen row is reserved for the help footer.
		screen: core.NewScreen(rc.ScreenW, max(1, rc.ScreenH-1)),
		width:  rc.ScreenW,
		height: rc.ScreenH,
	}, nil
}

// Init starts the engine loop and the event pump.
func (m Model) Init() tea.Cmd {
	go m.eng.Run(nil)
	return tea.Batch(waitForEvent(m.eng), tickCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case engineMsg:
		return m.handleEngine(msg.evt)

	case engineStoppedMsg:
		if m.result == nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		m.fps, m.frames = m.frames, 0
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always exits immediately, without the summary screen.
	if msg.String() == "ctrl+c" {
		m.eng.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if m.result != nil {
		return m.handleSummaryKey(msg)
	}

	if a := m.keys.MapKey(msg); a != core.ActionNone {
		m.eng.Input(a)
	}
	return m, nil
}

// handleSummaryKey processes input on the end-of-game screen.
func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.sKeys.Restart):
		if m.restart == nil {
			return m, nil
		}
		m.eng = m.restart()
		m.result = nil
		m.haveSnap = false
		m.rtt = 0
		go m.eng.Run(nil)
		return m, waitForEvent(m.eng)

	case key.Matches(msg, m.sKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleEngine folds one engine event into the model.
func (m Model) handleEngine(evt engine.Event) (tea.Model, tea.Cmd) {
	switch evt := evt.(type) {
	case engine.FrameEvent:
		m.snap = evt.Snapshot
		m.haveSnap = true
		m.frames++
		m.phase++

	case engine.RTTEvent:
		m.rtt = evt.RTT

	case engine.DoneEvent:
		r := evt.Result
		m.result = &r
		m.summary = newSummaryView(r)
		// The feed is finished; stop pumping it.
		return m, nil
	}

	return m, waitForEvent(m.eng)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.result != nil {
		return m.viewSummary()
	}
	if !m.haveSnap {
		return ""
	}

	m.renderFrame()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// renderFrame redraws the screen buffer from the latest snapshot. The
// local well is centered; in a duel both wells are shifted left so the
// opponent fits, with the score stacked beside the hold slot instead
// of beside the preview.
func (m Model) renderFrame() {
	m.screen.Clear()

	ox := m.width/2 - wellWidth/2
	if m.snap.Remote != nil {
		if limit := m.width - duelOffset - wellWidth; ox > limit {
			ox = limit
		}
	}
	if ox < holdPanelWidth+1 {
		ox = holdPanelWidth + 1
	}
	const oy = 1

	m.screen.DrawTextColor(ox+wellWidth/2-3, 0, "TETRIS", core.ColorWhite)
	drawWell(m.screen, ox, oy, m.snap.Local, m.party, m.phase)
	drawHold(m.screen, ox, oy, m.snap.Local)
	drawNext(m.screen, ox, oy, m.snap.Local.Preview)

	if m.snap.Remote != nil {
		drawStatsNarrow(m.screen, ox, oy, m.snap.Local.Score)

		rx := ox + duelOffset
		caption := "OPPONENT"
		if m.rtt > 0 {
			caption = fmt.Sprintf("OPPONENT %dms", m.rtt.Milliseconds())
		}
		m.screen.DrawTextColor(rx, 0, caption, core.ColorGray)
		drawWell(m.screen, rx, oy, *m.snap.Remote, m.party, m.phase)
	} else {
		drawStats(m.screen, ox, oy, m.snap.Local.Score)
	}

	if m.debug {
		m.screen.DrawText(0, 0, fmt.Sprintf("%d fps", m.fps))
	}
}

// Run drives a full session in the calling terminal: it wraps the
// model in a Bubble Tea program on the alternate screen and blocks
// until the player leaves.
func Run(eng *engine.Engine, app config.Config, opts ModelOptions) error {
	model, err := NewModel(eng, app, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
