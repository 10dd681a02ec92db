// Package tui runs a snake session in the terminal with Bubble Tea.
// It owns the event loop: key presses, tick delivery and drawing all happen
// on Bubble Tea's update goroutine, so the session needs no locking.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ManuelC292/SnakeIA/internal/loop"
)

// TickMsg is sent when a scheduled period elapses. Gen identifies the arming
// that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

func tickCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// scheduler adapts loop.Timeline to Bubble Tea. Each arming queues one
// tea.Tick command; the model collects it with flush after every update.
type scheduler struct {
	loop.Timeline
	pending tea.Cmd
}

func (s *scheduler) Schedule(d time.Duration, fn func()) {
	s.pending = tickCmd(s.Timeline.Schedule(d, fn), d)
}

func (s *scheduler) Reschedule(d time.Duration) {
	if gen, ok := s.Timeline.Reschedule(d); ok {
		s.pending = tickCmd(gen, d)
	}
}

func (s *scheduler) Cancel() {
	s.Timeline.Cancel()
	s.pending = nil
}

// handle delivers a tick and reports whether the callback ran.
func (s *scheduler) handle(msg TickMsg) bool {
	before := s.Fires()
	if s.Fire(msg.Gen) {
		s.pending = tickCmd(msg.Gen, s.Interval())
	}
	return s.Fires() > before
}

// flush returns the command queued since the last flush, if any.
func (s *scheduler) flush() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}
