package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-huelife/hue"
	"github.com/sheikhrachel/go-huelife/rules"
)

const (
	// gliderSize is the side of a glider pattern
	gliderSize = 3
	// gliderRegion is a glider plus a one-cell dead margin on every side
	gliderRegion = gliderSize + 2
)

type pattern [gliderSize][gliderSize]bool

// gliders holds one glider per heading: south-east, south-west, north-west, north-east
var gliders = [...]pattern{
	{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	},
	{
		{false, true, false},
		{true, false, false},
		{true, true, true},
	},
	{
		{true, true, true},
		{true, false, false},
		{false, true, false},
	},
	{
		{true, true, true},
		{false, false, true},
		{false, true, false},
	},
}

// isEmptyRegion reports whether the gliderRegion square at row, col is entirely dead
func (g *Grid) isEmptyRegion(row, col int) bool {
	for r := row; r < row+gliderRegion; r++ {
		for c := col; c < col+gliderRegion; c++ {
			if g.cells[g.index(r, c)].Alive {
				return false
			}
		}
	}
	return true
}

// FindEmptyRegion visits every gliderRegion-sized square in random order and
// returns the top-left corner of the first one with no live cells
func (g *Grid) FindEmptyRegion(rng *rand.Rand) (row, col int, ok bool) {
	rows := g.height - gliderRegion + 1
	cols := g.width - gliderRegion + 1
	if rows <= 0 || cols <= 0 {
		return 0, 0, false
	}

	for _, i := range rng.Perm(rows * cols) {
		row, col = i/cols, i%cols
		if g.isEmptyRegion(row, col) {
			return row, col, true
		}
	}
	return 0, 0, false
}

// AddGlider stamps p with its top-left at row, col, each live cell getting its own random hue
func (g *Grid) AddGlider(row, col int, p pattern, rng *rand.Rand) {
	for y, line := range p {
		for x, alive := range line {
			if alive {
				g.Set(row+y, col+x, rules.Alive(hue.Random(rng)))
				continue
			}
			g.Set(row+y, col+x, rules.Dead())
		}
	}
}

// InjectGlider places a randomly chosen glider in the middle of a random empty
// region. It reports false, leaving the grid untouched, when no region is empty.
func (g *Grid) InjectGlider(rng *rand.Rand) (row, col int, ok bool) {
	row, col, ok = g.FindEmptyRegion(rng)
	if !ok {
		return 0, 0, false
	}
	g.AddGlider(row+1, col+1, gliders[rng.IntN(len(gliders))], rng)
	return row + 1, col + 1, true
}
