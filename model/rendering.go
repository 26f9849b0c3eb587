package model

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-huelife/hue"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// TerminalRenderer prints a frame as rows of two-column blocks, colored with
// the xterm 256-color palette when Colorize is set
type TerminalRenderer struct {
	Out      io.Writer
	Colorize bool
	Palette  hue.Palette

	buf []hue.NullColor
}

// Display renders the automaton's current generation
func (r *TerminalRenderer) Display(a *Automaton) error {
	if size := a.Width() * a.Height(); len(r.buf) != size {
		r.buf = make([]hue.NullColor, size)
	}
	if err := a.ColorsInto(r.buf); err != nil {
		return errors.Wrap(err, "[Display]")
	}

	w := bufio.NewWriter(r.Out)
	for row := 0; row < a.Height(); row++ {
		for _, c := range r.buf[row*a.Width() : (row+1)*a.Width()] {
			w.WriteString(r.cell(c))
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write frame")
}

func (r *TerminalRenderer) cell(c hue.NullColor) string {
	switch {
	case !c.Valid:
		return gridPosEmpty
	case !r.Colorize:
		return gridPosBlock
	default:
		red, green, blue := r.Palette.RGB(c.Color)
		return aurora.BgIndex(hue.Cube256(red, green, blue), gridPosEmpty).String()
	}
}
