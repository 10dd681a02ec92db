package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelC292/SnakeIA/internal/config"
	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/game"
	"github.com/ManuelC292/SnakeIA/internal/replay"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Config == (config.Config{}) {
		opts.Config = config.Default()
	}
	opts.Logger = log.New(io.Discard)
	opts.Width, opts.Height = 80, 30
	m, err := NewModel(opts)
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg{Gen: m.sched.Generation()})
	return m
}

func TestModelInitArmsTicker(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})

	require.NotNil(t, m.Init())
	assert.True(t, m.sched.Active())
	assert.Equal(t, 200*time.Millisecond, m.sched.Interval())
}

func TestModelTicksAdvanceSession(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})
	m.Init()

	head := m.Session().Snapshot().Head()
	m = tick(t, m)

	assert.Equal(t, uint64(1), m.Session().Clock())
	assert.Equal(t, head.Step(core.DirRight), m.Session().Snapshot().Head())
}

func TestModelIgnoresStaleTick(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})
	m.Init()

	m, _ = update(t, m, TickMsg{Gen: m.sched.Generation() + 7})
	assert.Equal(t, uint64(0), m.Session().Clock())
}

func TestModelKeysSteerAndRecord(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1, Record: true})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, core.DirDown, m.Session().Direction())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, core.DirDown, m.Session().Direction(), "reverse is refused")

	m = tick(t, m)
	m, _ = update(t, m, runeKey('a'))

	rec, ok := m.Recording()
	require.True(t, ok)
	assert.Equal(t, []replay.Input{
		{Tick: 0, Action: core.ActionDown},
		{Tick: 0, Action: core.ActionUp},
		{Tick: 1, Action: core.ActionLeft},
	}, rec.Inputs)
	assert.Equal(t, uint64(1), rec.Ticks)
	assert.Equal(t, int64(1), rec.Seed)
}

func TestModelWithoutRecording(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})
	_, ok := m.Recording()
	assert.False(t, ok)
}

func TestModelRestartRearms(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})
	m.Init()

	for m.Session().Running() {
		m = tick(t, m)
	}
	assert.False(t, m.sched.Active())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.sched.Active())
	assert.Equal(t, game.StatePlaying, m.Session().State())
	assert.Equal(t, 0, m.Session().Score())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.sched.Active())
	assert.Empty(t, m.View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})
	m.Init()

	view := m.View()
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "restart")
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t, Options{Seed: 1})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 5})

	assert.Contains(t, m.View(), "too small")
}

func TestModelWatchReplaysInputs(t *testing.T) {
	rec := replay.Recording{
		ID:     "6b1f0c3e-replay",
		Seed:   5,
		Config: config.Default(),
		Inputs: []replay.Input{
			{Tick: 0, Action: core.ActionDown},
			{Tick: 2, Action: core.ActionLeft},
		},
		Ticks: 4,
	}
	m := newTestModel(t, Options{Watch: &rec})
	m.Init()
	assert.Equal(t, core.DirDown, m.Session().Direction())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, core.DirDown, m.Session().Direction(), "keyboard steering is off")

	for range 2 {
		m = tick(t, m)
	}
	assert.Equal(t, core.DirLeft, m.Session().Direction())

	for range 2 {
		m = tick(t, m)
	}
	assert.True(t, m.finished)
	assert.False(t, m.sched.Active())
	assert.Contains(t, m.View(), "(end)")

	want, err := replay.Play(rec)
	require.NoError(t, err)
	assert.Equal(t, want.Final.Snake, m.Session().Snapshot().Snake)
}

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	path, err := writeScreenshot(dir, s, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "snake_20240506_070809.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab  \n    \n", string(data))
	assert.True(t, strings.HasPrefix(path, dir))
}
