package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ManuelC292/SnakeIA/internal/config"
	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/game"
	"github.com/ManuelC292/SnakeIA/internal/render"
	"github.com/ManuelC292/SnakeIA/internal/replay"
)

// Options configures a terminal session.
type Options struct {
	Config config.Config
	Seed   int64 // 0 picks one from the clock

	// Record captures inputs so the session can be saved as a replay.
	Record bool
	// Watch plays a recording back instead of reading the keyboard.
	Watch *replay.Recording

	Logger        *log.Logger
	ScreenshotDir string
	Width, Height int // initial terminal size
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	session  *game.Session
	sched    *scheduler
	recorder *replay.Recorder
	watch    *replay.Recording
	feed     *replay.Feed

	screen   *core.Screen
	layout   render.Options
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	notice   string
	finished bool
	quitting bool
}

// NewModel builds a session from opts and wraps it in a model.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	sched := &scheduler{}
	m := Model{
		sched:   sched,
		screen:  core.NewScreen(opts.Width, opts.Height),
		layout:  render.Options{CellWidth: opts.Config.Grid.CellWidth, Help: true},
		keys:    DefaultKeyMap(),
		help:    newHelp(),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
	}

	if opts.Watch != nil {
		s, err := replay.NewSession(*opts.Watch, sched)
		if err != nil {
			return Model{}, err
		}
		m.session = s
		m.watch = opts.Watch
		m.feed = replay.NewFeed(opts.Watch.Inputs)
		m.keys = watchKeyMap(m.keys)
	} else {
		sp, err := opts.Config.Spawner()
		if err != nil {
			return Model{}, fmt.Errorf("tui: %w", err)
		}
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		m.session = game.NewSession(opts.Config.Settings(),
			game.WithSeed(seed),
			game.WithSpawner(sp),
			game.WithScheduler(sched),
		)
		if opts.Record {
			m.recorder = replay.NewRecorder(m.session, opts.Config)
		}
	}

	m.session.OnEvent(m.logEvent)
	return m, nil
}

func newHelp() help.Model {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles.ShortKey = plain
	h.Styles.ShortDesc = plain
	h.Styles.ShortSeparator = plain
	h.Styles.Ellipsis = plain
	return h
}

func (m Model) logEvent(e game.Event) {
	switch e {
	case game.EventAte:
		m.logger.Debug("food eaten", "score", m.session.Score(), "interval_ms", m.session.IntervalMs())
	case game.EventCollided:
		m.logger.Info("game over", "score", m.session.Score(), "length", m.session.Len(), "clock", m.session.Clock())
	case game.EventRestarted:
		m.logger.Info("restarted", "clock", m.session.Clock())
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.feed != nil {
		m.feed.Apply(m.session)
	}
	m.session.Start()
	m.logger.Info("session started", "seed", m.session.Seed(), "watch", m.watch != nil)
	return m.sched.flush()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.notice = m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	switch a {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.sched.Cancel()
		return m, tea.Quit
	}

	m.notice = ""
	if m.recorder != nil {
		m.recorder.Record(a)
	}
	m.session.OnKey(a)
	return m, m.sched.flush()
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.handle(msg) || m.watch == nil {
		return m, m.sched.flush()
	}

	m.feed.Apply(m.session)
	if m.session.Clock() >= m.watch.Ticks {
		m.sched.Cancel()
		m.finished = true
		m.logger.Info("replay finished", "id", m.watch.ID, "clock", m.session.Clock())
	}
	return m, m.sched.flush()
}

// saveScreenshot writes the current board as plain text and returns a
// one-line status for the footer.
func (m Model) saveScreenshot() string {
	render.Draw(m.screen, m.session.Snapshot(), m.layout)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Error("screenshot failed", "err", err)
			return "screenshot failed"
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	path, err := writeScreenshot(dir, m.screen, time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

func writeScreenshot(dir string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	render.Draw(m.screen, snap, m.layout)
	m.drawFooter(snap)
	return RenderScreen(m.screen)
}

// drawFooter fills the line the layout reserves under the status bar.
func (m Model) drawFooter(snap game.Snapshot) {
	w, h := render.RequiredSize(snap.Grid, m.layout)
	if m.screen.Width() < w || m.screen.Height() < h {
		return
	}
	ox, oy := render.Origin(m.screen, snap.Grid, m.layout)
	y := oy + h - 1

	text := m.help.ShortHelpView(m.keys.ShortHelp())
	switch {
	case m.notice != "":
		text = m.notice
	case m.watch != nil:
		text = fmt.Sprintf("replay %s  tick %d/%d", shortID(m.watch.ID), snap.Clock, m.watch.Ticks)
		if m.finished {
			text += "  (end)"
		}
		text += "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	m.screen.DrawTextStyled(ox, y, truncate(text, w), core.ColorGray, core.ColorDefault)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s
}

// Recording returns the inputs captured so far, or false when the model was
// not recording.
func (m Model) Recording() (replay.Recording, bool) {
	if m.recorder == nil {
		return replay.Recording{}, false
	}
	return m.recorder.Finish(), true
}

// Session exposes the running session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program and returns the final model.
func Run(opts Options) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Model{}, errors.New("tui: unexpected model type")
	}
	return m, nil
}
