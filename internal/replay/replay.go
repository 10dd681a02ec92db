// Package replay records the inputs of a play-through and plays them back.
//
// A session is deterministic given its seed, configuration and the clock
// value at which each input arrived, so a recording stores only those.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ManuelC292/SnakeIA/internal/config"
	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/game"
	"github.com/ManuelC292/SnakeIA/internal/loop"
	"github.com/ManuelC292/SnakeIA/internal/storage"
)

// ErrStalled is returned when a recording waits for an input at a clock
// value the session can no longer reach.
var ErrStalled = errors.New("replay: recording stalled")

// Input is an action applied after the session clock reached Tick.
type Input struct {
	Tick   uint64
	Action core.Action
}

// Recording is everything needed to reproduce a session.
type Recording struct {
	ID        string
	Seed      int64
	Config    config.Config
	Inputs    []Input
	Ticks     uint64 // session clock when recording stopped
	CreatedAt time.Time
}

// Recorder captures the inputs applied to a session.
type Recorder struct {
	session *game.Session
	rec     Recording
}

// NewRecorder starts a recording for s, which must have been built from cfg.
func NewRecorder(s *game.Session, cfg config.Config) *Recorder {
	return &Recorder{
		session: s,
		rec: Recording{
			ID:     uuid.NewString(),
			Seed:   s.Seed(),
			Config: cfg,
		},
	}
}

// Record notes that action a is about to be applied at the session's
// current clock. Quit and no-op actions are not recorded.
func (r *Recorder) Record(a core.Action) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}
	r.rec.Inputs = append(r.rec.Inputs, Input{Tick: r.session.Clock(), Action: a})
}

// Finish stamps the final clock and returns the recording.
func (r *Recorder) Finish() Recording {
	r.rec.Ticks = r.session.Clock()
	r.rec.CreatedAt = time.Now()
	return r.rec
}

// Feed hands recorded inputs to a session as its clock advances.
type Feed struct {
	inputs []Input
	next   int
}

// NewFeed returns a feed over inputs, which must be in recording order.
func NewFeed(inputs []Input) *Feed {
	return &Feed{inputs: inputs}
}

// Apply sends every input due at or before the session's clock and returns
// how many were applied.
func (f *Feed) Apply(s *game.Session) int {
	n := 0
	for f.next < len(f.inputs) && f.inputs[f.next].Tick <= s.Clock() {
		s.OnKey(f.inputs[f.next].Action)
		f.next++
		n++
	}
	return n
}

// Done reports whether every input has been applied.
func (f *Feed) Done() bool {
	return f.next >= len(f.inputs)
}

// NewSession builds a fresh session matching the recording, driven by sched.
func NewSession(rec Recording, sched game.Scheduler) (*game.Session, error) {
	sp, err := rec.Config.Spawner()
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return game.NewSession(rec.Config.Settings(),
		game.WithSeed(rec.Seed),
		game.WithSpawner(sp),
		game.WithScheduler(sched),
	), nil
}

// Result is the outcome of a headless playback.
type Result struct {
	Final    game.Snapshot
	Restarts int
	Elapsed  time.Duration // wall time the session took when it was played
}

// Play reruns a recording without a terminal and returns the final state.
func Play(rec Recording) (Result, error) {
	sched := loop.NewManual()
	s, err := NewSession(rec, sched)
	if err != nil {
		return Result{}, err
	}

	var res Result
	s.OnEvent(func(e game.Event) {
		if e == game.EventRestarted {
			res.Restarts++
		}
	})

	feed := NewFeed(rec.Inputs)
	s.Start()
	for {
		feed.Apply(s)
		if s.Clock() >= rec.Ticks {
			break
		}
		if !sched.Advance() {
			if feed.Done() {
				break
			}
			return Result{}, fmt.Errorf("%w: session over at tick %d, next input at tick %d",
				ErrStalled, s.Clock(), rec.Inputs[feed.next].Tick)
		}
	}

	res.Final = s.Snapshot()
	res.Elapsed = sched.Elapsed()
	return res, nil
}

// ToRecord converts a recording for the journal.
func ToRecord(rec Recording) (storage.ReplayRecord, error) {
	cfgYAML, err := config.Marshal(rec.Config)
	if err != nil {
		return storage.ReplayRecord{}, fmt.Errorf("replay: %w", err)
	}
	out := storage.ReplayRecord{
		ID:         rec.ID,
		Seed:       rec.Seed,
		ConfigYAML: string(cfgYAML),
		Ticks:      rec.Ticks,
		CreatedAt:  rec.CreatedAt,
		Inputs:     make([]storage.InputRow, len(rec.Inputs)),
	}
	for i, in := range rec.Inputs {
		out.Inputs[i] = storage.InputRow{Tick: in.Tick, Action: in.Action.String()}
	}
	return out, nil
}

// FromRecord converts a journal entry back to a recording.
func FromRecord(r storage.ReplayRecord) (Recording, error) {
	cfg := config.Default()
	if err := yaml.Unmarshal([]byte(r.ConfigYAML), &cfg); err != nil {
		return Recording{}, fmt.Errorf("replay: bad config in %s: %w", r.ID, err)
	}
	if err := cfg.Validate(); err != nil {
		return Recording{}, fmt.Errorf("replay: %s: %w", r.ID, err)
	}

	rec := Recording{
		ID:        r.ID,
		Seed:      r.Seed,
		Config:    cfg,
		Ticks:     r.Ticks,
		CreatedAt: r.CreatedAt,
		Inputs:    make([]Input, 0, len(r.Inputs)),
	}
	for _, in := range r.Inputs {
		a := core.ParseAction(in.Action)
		if a == core.ActionNone {
			return Recording{}, fmt.Errorf("replay: %s: unknown action %q", r.ID, in.Action)
		}
		rec.Inputs = append(rec.Inputs, Input{Tick: in.Tick, Action: a})
	}
	return rec, nil
}

// Save writes a recording to the journal.
func Save(store *storage.Store, rec Recording) error {
	r, err := ToRecord(rec)
	if err != nil {
		return err
	}
	return store.SaveReplay(r)
}

// Load reads a recording from the journal by id or unique id prefix.
func Load(store *storage.Store, idPrefix string) (Recording, error) {
	r, err := store.LoadReplay(idPrefix)
	if err != nil {
		return Recording{}, err
	}
	return FromRecord(r)
}
