package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-huelife/rules"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.TickInterval != 100*time.Millisecond || cfg.GliderInterval != 500*time.Millisecond {
		t.Fatalf("intervals = %v/%v", cfg.TickInterval, cfg.GliderInterval)
	}
	rs, err := cfg.RuleSet()
	if err != nil || rs != rules.Conway {
		t.Fatalf("default rule = %v, %v", rs, err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 80, "height": 24, "rule": "highlife", "glider_interval": 2000000000}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 24 || cfg.Rule != "highlife" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.GliderInterval != 2*time.Second {
		t.Fatalf("glider interval = %v", cfg.GliderInterval)
	}
	if cfg.TickInterval != DefaultConfig().TickInterval {
		t.Fatalf("tick interval lost its default: %v", cfg.TickInterval)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Error("truncated JSON accepted")
	}
}

func TestLoadConfigDefersValidation(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"headless": true, "tick_interval": 0}`))
	if err != nil {
		t.Fatalf("incomplete file rejected on load: %v", err)
	}
	if err = cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative width":     func(c *Config) { c.Width = -1 },
		"headless no size":   func(c *Config) { c.Headless = true },
		"zero glider":        func(c *Config) { c.GliderInterval = 0 },
		"negative threshold": func(c *Config) { c.StagnationThreshold = -3 },
		"negative gens":      func(c *Config) { c.Generations = -1 },
		"bad rule":           func(c *Config) { c.Rule = "B9/S1" },
		"bad palette":        func(c *Config) { c.Palette = "sepia" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}

	cfg := DefaultConfig()
	cfg.Headless, cfg.Width, cfg.Height = true, 10, 10
	if err := cfg.Validate(); err != nil {
		t.Errorf("headless with size rejected: %v", err)
	}
}
