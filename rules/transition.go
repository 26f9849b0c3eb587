package rules

import "github.com/sheikhrachel/go-huelife/hue"

/*
Transition computes the next state of center from its eight neighbors.

A live center survives, keeping its color, when its live-neighbor count is in
rs.Survival. A dead center is born when the count is in rs.Birth, taking the
circular mean of its live neighbors' hues. Birth over zero live neighbors
(a rule containing B0) leaves the cell dead: there is no hue to inherit.
*/
func Transition(center Cell, neighbors [MaxNeighbors]Cell, rs RuleSet) Cell {
	if center.Alive {
		if rs.Survival.Contains(countAlive(neighbors)) {
			return center
		}
		return Dead()
	}

	var (
		parents [MaxNeighbors]hue.Color
		n       int
	)
	for _, c := range neighbors {
		if c.Alive {
			parents[n] = c.Color
			n++
		}
	}

	if !rs.Birth.Contains(n) {
		return Dead()
	}
	mixed, ok := hue.Mix(parents[:n])
	if !ok {
		return Dead()
	}
	return Alive(mixed)
}

func countAlive(neighbors [MaxNeighbors]Cell) (count int) {
	for _, c := range neighbors {
		if c.Alive {
			count++
		}
	}
	return
}
