package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-huelife/rules"
	"github.com/sheikhrachel/go-huelife/utils"
)

const defaultConfigPath = "config.json"

// cliOptions holds flag values; zero values mean "not given on the command line"
type cliOptions struct {
	configPath     string
	width          int
	height         int
	rule           string
	tickInterval   time.Duration
	gliderInterval time.Duration
	seed           int64
	generations    int
	palette        string
	logFile        string
	headless       bool
	serial         bool
	noRestart      bool
}

func parseFlags() cliOptions {
	opts := cliOptions{configPath: defaultConfigPath}

	flaggy.SetName("huelife")
	flaggy.SetDescription("A colored Game of Life where newborn cells mix their parents' hues")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&opts.configPath, "c", "config", "JSON configuration file")
	flaggy.Int(&opts.width, "x", "width", "Grid width (default: terminal width)")
	flaggy.Int(&opts.height, "y", "height", "Grid height (default: terminal height)")
	flaggy.String(&opts.rule, "r", "rule", "Rule in B/S notation or a preset ["+strings.Join(rules.Presets(), "|")+"]")
	flaggy.Duration(&opts.tickInterval, "t", "tick", "Interval between generations, e.g. 100ms")
	flaggy.Duration(&opts.gliderInterval, "g", "glider", "Interval between glider injections, e.g. 500ms")
	flaggy.Int64(&opts.seed, "s", "seed", "Random seed (default: wall clock)")
	flaggy.Int(&opts.generations, "n", "generations", "Generations to run in headless mode")
	flaggy.String(&opts.palette, "p", "palette", "Color palette [hsv|hsluv]")
	flaggy.String(&opts.logFile, "l", "log", "Write engine logs to this file")
	flaggy.Bool(&opts.headless, "H", "headless", "Run without a screen and print the final generation")
	flaggy.Bool(&opts.serial, "", "serial", "Compute generations on one goroutine")
	flaggy.Bool(&opts.noRestart, "", "no-restart", "Do not reseed when the grid dies out or stagnates")

	flaggy.Parse()
	return opts
}

// loadConfig reads the config file, falling back to defaults when the default file is absent
func loadConfig(opts cliOptions) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		if opts.configPath != defaultConfigPath || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	if opts.width != 0 {
		config.Width = opts.width
	}
	if opts.height != 0 {
		config.Height = opts.height
	}
	if opts.rule != "" {
		config.Rule = opts.rule
	}
	if opts.tickInterval != 0 {
		config.TickInterval = opts.tickInterval
	}
	if opts.gliderInterval != 0 {
		config.GliderInterval = opts.gliderInterval
	}
	if opts.seed != 0 {
		config.Seed = opts.seed
	}
	if opts.generations != 0 {
		config.Generations = opts.generations
	}
	if opts.palette != "" {
		config.Palette = opts.palette
	}
	if opts.logFile != "" {
		config.LogFile = opts.logFile
	}
	config.Headless = config.Headless || opts.headless
	config.UseParallel = config.UseParallel && !opts.serial
	config.AutoRestart = config.AutoRestart && !opts.noRestart

	return config, errors.Wrap(config.Validate(), "[loadConfig]")
}

// newLogger sends engine logs to the configured file, or stderr in headless mode.
// Interactive mode without a log file discards them so the screen stays clean.
func newLogger(config utils.Config) (*log.Logger, io.Closer, error) {
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[newLogger] failed to open log file: %+v", config.LogFile)
		}
		return log.New(f, "huelife ", log.LstdFlags), f, nil
	}
	if config.Headless {
		return log.New(os.Stderr, "huelife ", log.LstdFlags), io.NopCloser(nil), nil
	}
	return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
}

func run() error {
	config, err := loadConfig(parseFlags())
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(config)
	if err != nil {
		return err
	}
	defer closer.Close()

	if config.Headless {
		return runHeadless(config, logger, os.Stdout)
	}
	return runInteractive(config, logger)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "huelife: %v\n", err)
		os.Exit(1)
	}
}
