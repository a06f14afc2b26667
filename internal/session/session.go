// Package session drives one game of Life: it owns the current grid, advances
// it on a throttled frame loop, applies pointer input and tracks the score.
//
// A Session is not safe for concurrent use. Frontends call Frame from their
// display refresh and deliver input on the same goroutine, which is what
// keeps a tick atomic with respect to input and to other ticks.
package session

import (
	"io"
	"log"
	"time"

	"conway/internal/core"
	"conway/internal/leaderboard"
	"conway/internal/life"
)

// State is the animation state of a session.
type State int

const (
	// Running schedules a tick after each completed one.
	Running State = iota
	// Paused schedules nothing until resumed.
	Paused
	// Won means the board went extinct; only a reset restarts ticking.
	Won
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case Paused:
		return "PAUSED"
	case Won:
		return "WON"
	default:
		return "RUNNING"
	}
}

// Session is the controller for one board.
type Session struct {
	cfg    Config
	engine *life.Engine
	sched  *core.Scheduler
	rng    *core.RNG
	seed   core.SeedFunc
	sink   RenderSink
	log    *log.Logger

	grid       core.Grid
	state      State
	mode       leaderboard.Mode
	clicks     int
	generation int
	alive      int
	startTime  time.Time
	wonAt      time.Time

	skipped     int
	sinkFailing bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes lifecycle messages to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSink attaches the render target at construction.
func WithSink(sink RenderSink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithSeedFunc replaces the random seeder used for every new board.
func WithSeedFunc(seed core.SeedFunc) Option {
	return func(s *Session) { s.seed = seed }
}

// New validates cfg and constructs a Session. Call Start before the first
// frame.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:    cfg,
		engine: life.NewEngine(life.WithBasis(cfg.Basis), life.WithWorkers(cfg.Workers)),
		sched:  core.NewScheduler(cfg.Interval),
		rng:    core.NewRNG(seed),
		log:    log.New(io.Discard, "", 0),
		mode:   cfg.Mode,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == nil {
		s.seed = s.rng.Seeder(cfg.Density)
	}
	size := cfg.GridSize()
	s.grid = core.NewGrid(size.W, size.H, nil)
	return s, nil
}

// Start creates the first board and schedules the first tick.
func (s *Session) Start(now time.Time) {
	s.restart(now)
	s.log.Printf("[session] start %dx%d, %d alive", s.grid.Width(), s.grid.Height(), s.alive)
}

// Reset replaces the board with a fresh random one, clears the click counter
// and start time, and resumes ticking whatever the current state.
func (s *Session) Reset(now time.Time) {
	prev := s.state
	s.restart(now)
	s.log.Printf("[session] reset from %s, %d alive", prev, s.alive)
}

func (s *Session) restart(now time.Time) {
	s.sched.Cancel()
	size := s.cfg.GridSize()
	s.grid = core.NewGrid(size.W, size.H, s.seed)
	s.alive = s.grid.CountAlive()
	s.clicks = 0
	s.generation = 0
	s.startTime = now
	s.wonAt = time.Time{}
	s.state = Running
	s.render()
	s.sched.Schedule(now, 0)
}

// Frame is the display refresh callback. It runs at most one tick, and only
// when one is due. It reports whether a tick ran.
func (s *Session) Frame(now time.Time) bool {
	if s.state != Running {
		return false
	}
	if _, ok := s.sched.Due(now); !ok {
		return false
	}
	s.tick(now)
	return true
}

func (s *Session) tick(now time.Time) {
	res := s.engine.Step(s.grid)
	s.grid = res.Grid
	s.alive = res.Alive
	s.generation++
	s.render()

	if life.HasWon(res) {
		s.sched.Cancel()
		s.state = Won
		s.wonAt = now
		s.log.Printf("[session] won after %d generations, %d clicks", s.generation, s.clicks)
		return
	}
	s.sched.ScheduleNext(now)
}

// TogglePause switches between Running and Paused. Resuming continues from the
// current grid one interval later. It has no effect once the game is won.
func (s *Session) TogglePause(now time.Time) State {
	switch s.state {
	case Running:
		s.sched.Cancel()
		s.state = Paused
		s.log.Printf("[session] paused at generation %d", s.generation)
	case Paused:
		s.state = Running
		s.sched.ScheduleNext(now)
		s.log.Printf("[session] resumed at generation %d", s.generation)
	}
	return s.state
}

// Pointer handles a click at device pixel (px, py) on a surface whose
// top-left corner is origin. A click inside the board paints that cell alive,
// counts the click and re-renders immediately. Clicks outside are ignored.
func (s *Session) Pointer(px, py float64, origin Point) (core.Coord, bool) {
	c, ok := PointerToCoord(px, py, origin, s.cfg.Resolution, s.grid.Size())
	if !ok {
		return core.Coord{}, false
	}
	wasAlive := s.grid.At(c.X, c.Y) == core.Alive
	next, err := s.grid.SetCell(c.X, c.Y, core.Alive)
	if err != nil {
		s.log.Printf("[session] pointer: %v", err)
		return core.Coord{}, false
	}
	if !wasAlive {
		s.alive++
	}
	s.grid = next
	s.clicks++
	s.render()
	return c, true
}

// ToggleMode switches between click and time scoring.
func (s *Session) ToggleMode() leaderboard.Mode {
	s.mode = s.mode.Toggle()
	return s.mode
}

// AttachSink sets the render target. Nil detaches it; frames are then skipped
// while the simulation keeps advancing.
func (s *Session) AttachSink(sink RenderSink) {
	s.sink = sink
	s.sinkFailing = false
}

// Redraw renders the current grid without advancing it.
func (s *Session) Redraw() { s.render() }

func (s *Session) render() {
	if s.sink == nil {
		s.skipped++
		return
	}
	if err := s.sink.Render(s.grid, s.cfg.BoardWidth, s.cfg.BoardHeight, s.cfg.Resolution); err != nil {
		s.skipped++
		if !s.sinkFailing {
			s.log.Printf("[session] render skipped: %v", err)
		}
		s.sinkFailing = true
		return
	}
	s.sinkFailing = false
}

// Grid returns the current board snapshot.
func (s *Session) Grid() core.Grid { return s.grid }

// State returns the animation state.
func (s *Session) State() State { return s.state }

// Clicks returns the number of accepted clicks since the last reset.
func (s *Session) Clicks() int { return s.clicks }

// Generation returns the number of ticks since the last reset.
func (s *Session) Generation() int { return s.generation }

// Mode returns the scoring mode.
func (s *Session) Mode() leaderboard.Mode { return s.mode }

// Config returns the session settings.
func (s *Session) Config() Config { return s.cfg }

// Elapsed returns the time since the last reset, frozen at the winning tick.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.state == Won {
		return s.wonAt.Sub(s.startTime)
	}
	return now.Sub(s.startTime)
}

// Score returns the current score in the active mode.
func (s *Session) Score(now time.Time) float64 {
	if s.mode == leaderboard.Time {
		return s.Elapsed(now).Seconds()
	}
	return float64(s.clicks)
}
