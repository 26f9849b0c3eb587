package model

import (
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-huelife/hue"
	"github.com/sheikhrachel/go-huelife/rules"
	"github.com/sheikhrachel/go-huelife/utils"
)

const (
	// DefaultTickInterval is the time between generations
	DefaultTickInterval = 100 * time.Millisecond
	// DefaultGliderInterval is the time between glider injections
	DefaultGliderInterval = 500 * time.Millisecond

	// historySize is the number of past generation hashes kept for cycle detection
	historySize = 5
	// cycleLength is the longest period reported as stagnation
	cycleLength = 3
)

// ErrInvalidInterval is returned for non-positive tick or glider intervals
var ErrInvalidInterval = errors.New("interval must be positive")

// Option configures an Automaton at construction
type Option func(*settings)

type settings struct {
	tickInterval   time.Duration
	gliderInterval time.Duration
	rng            *rand.Rand
	logger         *log.Logger
	clock          func() time.Time
	parallel       bool
	pool           *GridPool
}

// WithTickInterval sets the time between generations
func WithTickInterval(d time.Duration) Option {
	return func(s *settings) { s.tickInterval = d }
}

// WithGliderInterval sets the time between glider injections
func WithGliderInterval(d time.Duration) Option {
	return func(s *settings) { s.gliderInterval = d }
}

// WithRand makes the automaton draw all randomness from rng
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}

// WithSeed seeds the automaton's random source
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = newRand(seed) }
}

// WithLogger routes engine logs to logger
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithClock replaces time.Now for Update
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}

// WithParallel computes generations in parallel row bands
func WithParallel(parallel bool) Option {
	return func(s *settings) { s.parallel = parallel }
}

// WithPool recycles generation buffers through pool
func WithPool(pool *GridPool) Option {
	return func(s *settings) { s.pool = pool }
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
}

/*
Automaton runs a colored Game of Life on a mirror-padded grid.

It advances one generation every tick interval and drops a glider into an
empty region every glider interval, both measured in elapsed time rather than
frames. It is not safe for concurrent use: callers serialize Update, Step,
InjectGlider and Resize on one instance.
*/
type Automaton struct {
	settings
	grid  *Grid
	rules rules.RuleSet

	stepTimer   *intervalTimer
	gliderTimer *intervalTimer
	lastUpdate  time.Time

	generation    int
	history       []string
	stagnantSteps int
	stats         *utils.Stats
}

// NewAutomaton creates an automaton with a random initial grid
func NewAutomaton(width, height int, rs rules.RuleSet, opts ...Option) (*Automaton, error) {
	s := settings{
		tickInterval:   DefaultTickInterval,
		gliderInterval: DefaultGliderInterval,
		logger:         log.New(io.Discard, "", 0),
		clock:          time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.tickInterval <= 0 || s.gliderInterval <= 0 {
		return nil, errors.Wrapf(ErrInvalidInterval, "[NewAutomaton] tick %v, glider %v", s.tickInterval, s.gliderInterval)
	}
	if s.rng == nil {
		s.rng = newRand(time.Now().UnixNano())
	}

	a := &Automaton{
		settings:    s,
		rules:       rs,
		stepTimer:   newIntervalTimer(s.tickInterval),
		gliderTimer: newIntervalTimer(s.gliderInterval),
	}
	if err := a.reinitialize(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewAutomaton]")
	}
	return a, nil
}

// reinitialize replaces all per-run state with a fresh random grid
func (a *Automaton) reinitialize(width, height int) error {
	grid, err := NewGrid(width, height)
	if err != nil {
		return err
	}
	GridToPool(a.grid, a.pool)
	a.grid = grid
	a.grid.Randomize(a.rng)

	a.stepTimer.reset()
	a.gliderTimer.reset()
	a.lastUpdate = time.Time{}
	a.generation = 0
	a.history = nil
	a.stagnantSteps = 0
	a.stats = utils.NewStats()
	a.stats.Population = a.grid.CountLivingCells()

	a.logger.Printf("grid initialized size:(%d, %d) rule: %s density: %d",
		width, height, a.rules, a.stats.Population)
	return nil
}

// Resize discards the grid and starts over at the new size with the same rules.
// The new grid is drawn from the automaton's existing random stream rather than
// a fresh seed, so a seeded run stays reproducible across the same sequence of
// resizes. An invalid size leaves the automaton unchanged.
func (a *Automaton) Resize(width, height int) error {
	return errors.Wrap(a.reinitialize(width, height), "[Resize]")
}

// Update advances both timers by the wall-clock time since the previous call
func (a *Automaton) Update() (stepped, injected bool) {
	now := a.clock()
	if a.lastUpdate.IsZero() {
		a.lastUpdate = now
	}
	elapsed := now.Sub(a.lastUpdate)
	a.lastUpdate = now
	return a.Advance(elapsed)
}

// Advance adds elapsed to both timers and runs whichever actions are due,
// the generation step first. Each action runs at most once per call.
func (a *Automaton) Advance(elapsed time.Duration) (stepped, injected bool) {
	if a.stepTimer.advance(elapsed) {
		a.Step()
		stepped = true
	}
	if a.gliderTimer.advance(elapsed) {
		injected = a.InjectGlider()
	}
	return
}

// Step replaces the grid with its next generation
func (a *Automaton) Step() {
	start := time.Now()
	next := a.grid.NextGeneration(a.rules, a.pool, a.parallel)

	prev := a.grid
	a.grid = next
	GridToPool(prev, a.pool)

	a.generation++
	a.recordHistory()
	a.stats.Update(a.generation, a.grid.CountLivingCells(), time.Since(start))
}

// recordHistory hashes the current generation and checks it against recent ones
func (a *Automaton) recordHistory() {
	hash := a.grid.GetGridHash()

	repeated := false
	for i := len(a.history) - 1; i >= 0 && i >= len(a.history)-cycleLength; i-- {
		if a.history[i] == hash {
			repeated = true
			break
		}
	}
	if repeated {
		a.stagnantSteps++
	} else {
		a.stagnantSteps = 0
	}

	a.history = append(a.history, hash)

	// Keep only the most recent states to detect cycles
	if len(a.history) > historySize {
		a.history = a.history[1:]
	}
}

// InjectGlider stamps one random glider into a random empty region.
// It reports false and leaves the grid unchanged when no region is empty.
func (a *Automaton) InjectGlider() bool {
	row, col, ok := a.grid.InjectGlider(a.rng)
	a.stats.RecordGlider(ok)
	if !ok {
		a.logger.Printf("glider skipped: no empty %dx%d region in %dx%d grid",
			gliderRegion, gliderRegion, a.grid.width, a.grid.height)
		return false
	}
	a.stats.Population = a.grid.CountLivingCells()
	a.logger.Printf("glider placed at (%d, %d)", row, col)
	return true
}

// Colors returns every cell's optional color in row-major order
func (a *Automaton) Colors() []hue.NullColor {
	colors := make([]hue.NullColor, len(a.grid.cells))
	if err := a.grid.ColorsInto(colors); err != nil {
		// colors is sized from the grid itself
		panic(err)
	}
	return colors
}

// ColorsInto fills dst, which must hold exactly Width()*Height() entries
func (a *Automaton) ColorsInto(dst []hue.NullColor) error {
	return a.grid.ColorsInto(dst)
}

// IsStagnant reports whether the latest generation repeats one of the previous three
func (a *Automaton) IsStagnant() bool {
	return a.stagnantSteps > 0
}

// StagnantSteps returns the number of consecutive repeating generations
func (a *Automaton) StagnantSteps() int {
	return a.stagnantSteps
}

// Cell returns the cell at row, col
func (a *Automaton) Cell(row, col int) rules.Cell {
	return a.grid.Get(row, col)
}

// Width returns the number of columns
func (a *Automaton) Width() int { return a.grid.width }

// Height returns the number of rows
func (a *Automaton) Height() int { return a.grid.height }

// RuleSet returns the birth/survival rule, which survives Resize
func (a *Automaton) RuleSet() rules.RuleSet { return a.rules }

// Generation returns the number of steps since construction or the last Resize
func (a *Automaton) Generation() int { return a.generation }

func (a *Automaton) Population() int { return a.stats.Population }

// Stats returns a copy of the run statistics
func (a *Automaton) Stats() utils.Stats { return *a.stats }

func (a *Automaton) TickInterval() time.Duration { return a.tickInterval }

func (a *Automaton) GliderInterval() time.Duration { return a.gliderInterval }
