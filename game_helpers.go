package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-huelife/hue"
	"github.com/sheikhrachel/go-huelife/model"
	"github.com/sheikhrachel/go-huelife/utils"
)

// initializeGame builds the automaton described by config at the given size
func initializeGame(config utils.Config, logger *log.Logger, width, height int) (*model.Automaton, error) {
	rs, err := config.RuleSet()
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	opts := []model.Option{
		model.WithTickInterval(config.TickInterval),
		model.WithGliderInterval(config.GliderInterval),
		model.WithParallel(config.UseParallel),
		model.WithLogger(logger),
	}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}

	automaton, err := model.NewAutomaton(width, height, rs, opts...)
	return automaton, errors.Wrap(err, "[initializeGame]")
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, automaton *model.Automaton) {
	fmt.Fprintf(w, "Rule: %s | Tick: %v | Glider every: %v | Parallel: %v, Memory Pool: %v\n",
		automaton.RuleSet(), automaton.TickInterval(), automaton.GliderInterval(),
		config.UseParallel, config.UseMemoryPool)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n",
		automaton.Width(), automaton.Height(), automaton.Population())
}

// statusLine summarises the current generation
func statusLine(automaton *model.Automaton) string {
	stats := automaton.Stats()
	density := float64(stats.Population) / float64(automaton.Width()*automaton.Height()) * 100

	status := "Active"
	if automaton.IsStagnant() {
		status = fmt.Sprintf("Stagnant (%d)", automaton.StagnantSteps())
	}
	if stats.Population == 0 {
		status = "Extinct"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Gliders: %d (skipped %d) | %s",
		automaton.Generation(), stats.Population, density,
		stats.GlidersInjected, stats.GlidersSkipped, status)
}

// performanceLine reports throughput since the current run started
func performanceLine(automaton *model.Automaton) string {
	stats := automaton.Stats()
	return fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Last step: %v",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.LastStepDuration)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(automaton *model.Automaton, config utils.Config) (bool, string) {
	if !config.AutoRestart {
		return false, ""
	}
	if automaton.Population() == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && automaton.StagnantSteps() >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the automaton at its current size
func restartGame(automaton *model.Automaton, logger *log.Logger, reason string) error {
	logger.Printf("restarting due to %s after %d generations (%s)",
		reason, automaton.Generation(), performanceLine(automaton))
	return errors.Wrap(automaton.Resize(automaton.Width(), automaton.Height()), "[restartGame]")
}

// runHeadless advances the automaton in simulated time, one tick interval per
// generation, then prints the final generation
func runHeadless(config utils.Config, logger *log.Logger, out io.Writer) error {
	palette, err := hue.ParsePalette(config.Palette)
	if err != nil {
		return errors.Wrap(err, "[runHeadless]")
	}

	automaton, err := initializeGame(config, logger, config.Width, config.Height)
	if err != nil {
		return err
	}
	displayGameInfo(out, config, automaton)

	start := time.Now()
	for step := 0; step < config.Generations; step++ {
		automaton.Advance(config.TickInterval)

		if restart, reason := checkRestartConditions(automaton, config); restart && step < config.Generations-1 {
			generation := automaton.Generation()
			if err = restartGame(automaton, logger, reason); err != nil {
				return err
			}
			fmt.Fprintf(out, "Restarted at generation %d: %s\n", generation, reason)
		}
	}

	renderer := &model.TerminalRenderer{Out: out, Colorize: true, Palette: palette}
	if err = renderer.Display(automaton); err != nil {
		return err
	}
	fmt.Fprintln(out, statusLine(automaton))
	fmt.Fprintf(out, "Runtime: %.2fs | %s\n", time.Since(start).Seconds(), performanceLine(automaton))
	return nil
}
