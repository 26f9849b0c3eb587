package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-huelife/hue"
	"github.com/sheikhrachel/go-huelife/rules"
)

var (
	// ErrInvalidSize is returned for grids that are not strictly positive in both dimensions
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrSizeMismatch is returned when a color buffer does not match the grid
	ErrSizeMismatch = errors.New("color buffer does not match grid size")
)

// Grid is a fixed-size board of colored cells stored row-major
type Grid struct {
	width  int
	height int
	cells  []rules.Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if err := validateSize(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]rules.Cell, width*height),
	}, nil
}

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidSize, "got %dx%d", width, height)
	}
	return nil
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	if cap(g.cells) < width*height {
		g.cells = make([]rules.Cell, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = rules.Dead()
	}
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Set replaces the cell at row, col. Out of range coordinates are ignored.
func (g *Grid) Set(row, col int, cell rules.Cell) {
	if g.inBounds(row, col) {
		g.cells[g.index(row, col)] = cell
	}
}

// Get returns the cell at row, col, dead when out of range
func (g *Grid) Get(row, col int) rules.Cell {
	if !g.inBounds(row, col) {
		return rules.Dead()
	}
	return g.cells[g.index(row, col)]
}

// Randomize makes each cell alive with a random hue or dead, with equal probability
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cells {
		if rng.IntN(2) == 1 {
			g.cells[i] = rules.Alive(hue.Random(rng))
			continue
		}
		g.cells[i] = rules.Dead()
	}
}

// NextGenerationParallel computes the next generation in row bands, one per CPU
func (g *Grid) NextGenerationParallel(rs rules.RuleSet, pool *GridPool) *Grid {
	next := g.blank(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.nextRows(next, rs, startRow, endRow)
			return nil
		})
	}

	// workers never fail; Wait is the join point before the swap
	_ = eg.Wait()

	return next
}

// NextGenerationSerial computes the next generation on the calling goroutine
func (g *Grid) NextGenerationSerial(rs rules.RuleSet, pool *GridPool) *Grid {
	next := g.blank(pool)
	g.nextRows(next, rs, 0, g.height)
	return next
}

// NextGeneration calculates the next generation. g is never modified.
func (g *Grid) NextGeneration(rs rules.RuleSet, pool *GridPool, parallel bool) *Grid {
	if parallel {
		return g.NextGenerationParallel(rs, pool)
	}
	return g.NextGenerationSerial(rs, pool)
}

// nextRows writes rows [startRow, endRow) of the next generation into next
func (g *Grid) nextRows(next *Grid, rs rules.RuleSet, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < g.width; col++ {
			idx := g.index(row, col)
			next.cells[idx] = rules.Transition(g.cells[idx], g.Neighbors(row, col), rs)
		}
	}
}

func (g *Grid) blank(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return &Grid{width: g.width, height: g.height, cells: make([]rules.Cell, len(g.cells))}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.Alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the live/dead pattern, ignoring colors
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		if c.Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ColorsInto writes every cell's optional color to dst in row-major order
func (g *Grid) ColorsInto(dst []hue.NullColor) error {
	if len(dst) != len(g.cells) {
		return errors.Wrapf(ErrSizeMismatch, "[ColorsInto] buffer has %d entries, grid %dx%d has %d",
			len(dst), g.width, g.height, len(g.cells))
	}
	for i, c := range g.cells {
		dst[i] = c.NullColor()
	}
	return nil
}
