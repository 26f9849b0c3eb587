package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-huelife/hue"
	"github.com/sheikhrachel/go-huelife/model"
	"github.com/sheikhrachel/go-huelife/utils"
)

// frameInterval is the redraw rate; the automaton keeps its own tick intervals
const frameInterval = time.Second / 60

// pollEvents forwards screen events until the screen is finalized or quit closes
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// gridSize picks the automaton size: the configured one, else the whole screen
func gridSize(config utils.Config, screen tcell.Screen) (int, int) {
	width, height := screen.Size()
	if config.Width > 0 {
		width = config.Width
	}
	if config.Height > 0 {
		height = config.Height
	}
	return width, height
}

// resizeToScreen restarts the automaton at the size the screen now calls for.
// It reports false when that size is unchanged or invalid, keeping the grid.
func resizeToScreen(automaton *model.Automaton, config utils.Config, screen tcell.Screen, logger *log.Logger) bool {
	width, height := gridSize(config, screen)
	if width == automaton.Width() && height == automaton.Height() {
		return false
	}
	if err := automaton.Resize(width, height); err != nil {
		logger.Printf("resize to %dx%d ignored: %v", width, height, err)
		return false
	}
	return true
}

// drawFrame paints one terminal cell per grid cell; dead cells are left blank
func drawFrame(screen tcell.Screen, colors []hue.NullColor, width int, palette hue.Palette) {
	for i, c := range colors {
		style := tcell.StyleDefault
		if c.Valid {
			r, g, b := palette.RGB(c.Color)
			style = style.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		}
		screen.SetContent(i%width, i/width, ' ', nil, style)
	}
	screen.Show()
}

// runInteractive drives the automaton from a tcell screen until Esc, q or Ctrl-C
func runInteractive(config utils.Config, logger *log.Logger) error {
	palette, err := hue.ParsePalette(config.Palette)
	if err != nil {
		return errors.Wrap(err, "[runInteractive]")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] failed to initialize screen")
	}
	defer screen.Fini()
	screen.Clear()

	width, height := gridSize(config, screen)
	automaton, err := initializeGame(config, logger, width, height)
	if err != nil {
		return err
	}
	colors := make([]hue.NullColor, width*height)

	var (
		events = make(chan tcell.Event, 16)
		quit   = make(chan struct{})
		ticker = time.NewTicker(frameInterval)
	)
	defer ticker.Stop()
	defer close(quit)
	go pollEvents(screen, events, quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				if resizeToScreen(automaton, config, screen, logger) {
					screen.Clear()
				}
				screen.Sync()
			}

		case <-ticker.C:
			if stepped, _ := automaton.Update(); stepped {
				if restart, reason := checkRestartConditions(automaton, config); restart {
					if err := restartGame(automaton, logger, reason); err != nil {
						return err
					}
				}
			}

			if err := automaton.ColorsInto(colors); err != nil {
				// the screen and the engine disagree on size; repaint at the engine's size
				logger.Printf("frame skipped: %v", err)
				colors = make([]hue.NullColor, automaton.Width()*automaton.Height())
				continue
			}
			drawFrame(screen, colors, automaton.Width(), palette)
		}
	}
}
