package model

import "github.com/sheikhrachel/go-huelife/rules"

// mooreOffsets lists the neighborhood row-major over the 3x3 window, center excluded
var mooreOffsets = [rules.MaxNeighbors][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// mirror reflects an index one step outside [0, dim) back inside it
func mirror(i, dim int) int {
	switch {
	case i < 0:
		return -i - 1
	case i >= dim:
		return 2*dim - i - 1
	default:
		return i
	}
}

/*
Neighbors returns the eight Moore neighbors of row, col in mooreOffsets order.

Edges are mirror-padded: a coordinate one step past the border reads the cell
on the border itself, so every cell, corners included, sees a full
neighborhood. The grid is only read, so disjoint cells may be queried
concurrently.
*/
func (g *Grid) Neighbors(row, col int) (n [rules.MaxNeighbors]rules.Cell) {
	for i, off := range mooreOffsets {
		r := mirror(row+off[0], g.height)
		c := mirror(col+off[1], g.width)
		n[i] = g.cells[g.index(r, c)]
	}
	return
}
