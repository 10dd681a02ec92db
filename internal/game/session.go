// Package game implements the snake simulation: the body model, food
// placement, collision checks and the session state machine driven by a
// periodic tick. It has no terminal or timer dependencies.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/ManuelC292/SnakeIA/internal/core"
)

// Baseline tuning.
const (
	InitialIntervalMs = 200.0
	SpeedMultiplier   = 0.9
	StartLength       = 3
)

// Settings holds the parameters fixed for the lifetime of a Session.
type Settings struct {
	Grid            core.Grid
	InitialInterval float64 // milliseconds between ticks at start
	SpeedMultiplier float64 // applied to the interval after every food
	MinInterval     float64 // floor for the interval; 0 disables it
	StartLength     int
}

// DefaultSettings returns the baseline game: 20x20 board, 200ms ticks,
// 10% faster per food, no floor, three segments.
func DefaultSettings() Settings {
	return Settings{
		Grid:            core.DefaultGrid(),
		InitialInterval: InitialIntervalMs,
		SpeedMultiplier: SpeedMultiplier,
		StartLength:     StartLength,
	}
}

// State is the session's state machine position.
type State string

const (
	StatePlaying State = "playing"
	StateOver    State = "over"
)

// Event describes what a transition did.
type Event int

const (
	EventNone      Event = iota // tick while over; nothing changed
	EventMoved                  // snake advanced one cell
	EventAte                    // snake advanced onto food and grew
	EventCollided               // snake hit a wall or itself; session over
	EventRestarted              // session reset to the start configuration
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithSeed seeds the session's random source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithSpawner replaces the food placement strategy.
func WithSpawner(sp Spawner) Option {
	return func(s *Session) {
		if sp != nil {
			s.spawner = sp
		}
	}
}

// WithScheduler attaches the tick source.
func WithScheduler(sc Scheduler) Option {
	return func(s *Session) {
		if sc != nil {
			s.scheduler = sc
		}
	}
}

// Session is the complete mutable state of one play-through. All methods
// must be called from a single goroutine: the event loop that also delivers
// ticks.
type Session struct {
	settings  Settings
	seed      int64
	rng       *rand.Rand
	spawner   Spawner
	scheduler Scheduler
	listeners []func(Event)

	body      *Body
	food      core.Cell
	direction core.Direction
	running   bool
	gameOver  bool
	score     int
	interval  float64
	ticks     uint64 // ticks in this play-through
	clock     uint64 // ticks since the session was created, across restarts
	spawns    int
}

// NewSession creates a session in the playing state. The scheduler is not
// armed until Start.
func NewSession(settings Settings, opts ...Option) *Session {
	s := &Session{
		settings:  settings,
		spawner:   UniformSpawner{},
		scheduler: nopScheduler{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	s.reset()
	return s
}

// reset puts the session into its start configuration.
func (s *Session) reset() {
	s.body = StartingBody(s.settings.Grid, s.settings.StartLength)
	s.spawnFood()
	s.direction = core.DirRight
	s.running = true
	s.gameOver = false
	s.interval = s.settings.InitialInterval
	s.score = 0
	s.ticks = 0
}

// OnEvent registers fn to be called after every transition.
func (s *Session) OnEvent(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) emit(e Event) Event {
	for _, fn := range s.listeners {
		fn(e)
	}
	return e
}

// Start arms the scheduler at the current interval.
func (s *Session) Start() {
	if s.running {
		s.scheduler.Schedule(s.Interval(), s.fire)
	}
}

func (s *Session) fire() {
	s.Tick()
}

// Tick advances the simulation by one step.
func (s *Session) Tick() Event {
	if !s.running {
		return EventNone
	}
	s.ticks++
	s.clock++

	s.body.ShiftForward(s.direction)

	if IsColliding(s.body, s.settings.Grid) {
		s.running = false
		s.gameOver = true
		s.scheduler.Cancel()
		return s.emit(EventCollided)
	}

	if IsEatingFood(s.body, s.food) {
		s.body.Grow()
		s.spawnFood()
		s.score++
		s.interval = s.nextInterval()
		s.scheduler.Reschedule(s.Interval())
		return s.emit(EventAte)
	}

	return s.emit(EventMoved)
}

func (s *Session) nextInterval() float64 {
	next := s.interval * s.settings.SpeedMultiplier
	if s.settings.MinInterval > 0 && next < s.settings.MinInterval {
		next = s.settings.MinInterval
	}
	return next
}

func (s *Session) spawnFood() {
	s.food = s.spawner.Spawn(s.rng, s.settings.Grid, s.body)
	s.spawns++
}

// SetDirection changes the heading used by the next tick. The exact reverse
// of the current heading is refused. Changes are accepted after game over
// too; they only matter once the session restarts.
func (s *Session) SetDirection(d core.Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Restart resets the session to its start configuration and re-arms the
// scheduler at the initial interval.
func (s *Session) Restart() {
	s.reset()
	s.scheduler.Schedule(s.Interval(), s.fire)
	s.emit(EventRestarted)
}

// OnKey applies one input action. Steering actions go to SetDirection;
// Confirm restarts a finished session. It reports whether the action
// changed anything.
func (s *Session) OnKey(a core.Action) bool {
	if d, ok := a.Direction(); ok {
		return s.SetDirection(d)
	}
	if a == core.ActionConfirm && s.gameOver {
		s.Restart()
		return true
	}
	return false
}

// State returns the state machine position.
func (s *Session) State() State {
	if s.gameOver {
		return StateOver
	}
	return StatePlaying
}

// Running reports whether ticks still advance the snake.
func (s *Session) Running() bool { return s.running }

// GameOver reports whether the session ended on a collision.
func (s *Session) GameOver() bool { return s.gameOver }

// Score returns the food eaten in this play-through.
func (s *Session) Score() int { return s.score }

// Direction returns the heading for the next tick.
func (s *Session) Direction() core.Direction { return s.direction }

// Food returns the current food cell.
func (s *Session) Food() core.Cell { return s.food }

// Len returns the snake's length.
func (s *Session) Len() int { return s.body.Len() }

// Clock returns the number of ticks processed since the session was created.
func (s *Session) Clock() uint64 { return s.clock }

// Seed returns the seed of the session's random source.
func (s *Session) Seed() int64 { return s.seed }

// Settings returns the session's fixed parameters.
func (s *Session) Settings() Settings { return s.settings }

// IntervalMs returns the current tick interval in milliseconds.
func (s *Session) IntervalMs() float64 { return s.interval }

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration {
	return msToDuration(s.interval)
}

// Speed returns ticks per second, rounded, for display.
func (s *Session) Speed() int {
	return speedOf(s.interval)
}

func speedOf(intervalMs float64) int {
	return int(math.Round(1000 / intervalMs))
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
