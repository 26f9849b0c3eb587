package rules

import "github.com/sheikhrachel/go-huelife/hue"

// Cell is either dead or alive with a color. The zero value is a dead cell.
type Cell struct {
	Alive bool
	Color hue.Color
}

// Dead returns a dead cell
func Dead() Cell {
	return Cell{}
}

// Alive returns a live cell carrying c
func Alive(c hue.Color) Cell {
	return Cell{Alive: true, Color: c}
}

// NullColor converts the cell to the optional color handed to renderers
func (c Cell) NullColor() hue.NullColor {
	if !c.Alive {
		return hue.NullColor{}
	}
	return hue.NullColor{Color: c.Color, Valid: true}
}
