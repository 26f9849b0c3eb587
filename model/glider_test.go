package model

import (
	"math/rand/v2"
	"testing"

	"github.com/sheikhrachel/go-huelife/rules"
)

func fill(g *Grid) {
	for i := range g.cells {
		g.cells[i] = alive(float64(i % 360))
	}
}

func TestInjectGliderFullGrid(t *testing.T) {
	g := mustGrid(t, 12, 9)
	fill(g)
	before := append([]rules.Cell(nil), g.cells...)

	if _, _, ok := g.InjectGlider(rand.New(rand.NewPCG(1, 1))); ok {
		t.Fatal("injected into a full grid")
	}
	for i := range before {
		if g.cells[i] != before[i] {
			t.Fatalf("cell %d changed", i)
		}
	}
}

func TestInjectGliderTooSmall(t *testing.T) {
	g := mustGrid(t, 4, 10)
	if _, _, ok := g.InjectGlider(rand.New(rand.NewPCG(1, 1))); ok {
		t.Fatal("injected into a grid narrower than a glider region")
	}
	if g.CountLivingCells() != 0 {
		t.Fatal("grid changed")
	}
}

func TestInjectGliderFindsOnlyHole(t *testing.T) {
	g := mustGrid(t, 12, 12)
	fill(g)
	for row := 4; row < 4+gliderRegion; row++ {
		for col := 6; col < 6+gliderRegion; col++ {
			g.Set(row, col, rules.Dead())
		}
	}

	row, col, ok := g.InjectGlider(rand.New(rand.NewPCG(9, 9)))
	if !ok {
		t.Fatal("hole not found")
	}
	if row != 5 || col != 7 {
		t.Fatalf("glider at (%d,%d), want (5,7)", row, col)
	}

	living := 0
	for r := 4; r < 4+gliderRegion; r++ {
		for c := 6; c < 6+gliderRegion; c++ {
			onBorder := r == 4 || r == 8 || c == 6 || c == 10
			cell := g.Get(r, c)
			if onBorder && cell.Alive {
				t.Fatalf("margin cell (%d,%d) alive", r, c)
			}
			if cell.Alive {
				living++
				if cell.Color.S != 1 || cell.Color.V != 1 {
					t.Fatalf("glider cell color %+v", cell.Color)
				}
			}
		}
	}
	if living != 5 {
		t.Fatalf("glider has %d live cells, want 5", living)
	}
}

func TestInjectGliderLocationIsRandomized(t *testing.T) {
	seen := map[[2]int]bool{}
	for seed := uint64(0); seed < 20; seed++ {
		g := mustGrid(t, 30, 30)
		row, col, ok := g.InjectGlider(rand.New(rand.NewPCG(seed, seed)))
		if !ok {
			t.Fatal("empty grid rejected a glider")
		}
		seen[[2]int{row, col}] = true
	}
	if len(seen) < 2 {
		t.Fatalf("20 seeds placed gliders at %d distinct spots", len(seen))
	}
}

func TestGliderPatternsAreGliders(t *testing.T) {
	for i, p := range gliders {
		g := mustGrid(t, 9, 9)
		g.AddGlider(3, 3, p, rand.New(rand.NewPCG(1, 2)))
		start := g.CountLivingCells()
		if start != 5 {
			t.Fatalf("pattern %d has %d cells", i, start)
		}
		// a glider repeats its shape every four generations
		for gen := 0; gen < 4; gen++ {
			g = g.NextGenerationSerial(rules.Conway, nil)
		}
		if got := g.CountLivingCells(); got != 5 {
			t.Errorf("pattern %d has %d cells after 4 generations, want 5", i, got)
		}
	}
}
