package rules

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in       string
		birth    []int
		survival []int
	}{
		{"B3/S23", []int{3}, []int{2, 3}},
		{"b36/s23", []int{3, 6}, []int{2, 3}},
		{"S23/B3", []int{3}, []int{2, 3}},
		{"23/3", []int{3}, []int{2, 3}},
		{"B2/S", []int{2}, []int{}},
		{"highlife", []int{3, 6}, []int{2, 3}},
		{" DayNight ", []int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8}},
	}
	for _, c := range cases {
		rs, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if got := rs.Birth.Counts(); !reflect.DeepEqual(got, c.birth) {
			t.Errorf("Parse(%q) birth = %v, want %v", c.in, got, c.birth)
		}
		if got := rs.Survival.Counts(); !reflect.DeepEqual(got, c.survival) {
			t.Errorf("Parse(%q) survival = %v, want %v", c.in, got, c.survival)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S2/S3", "B9/S23", "B3/S2x", "B3/B3", "B3/23"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) accepted", in)
		}
	}
	if _, err := Parse("B9/S23"); !errors.Is(err, ErrNeighborCount) {
		t.Errorf("Parse(B9/S23) err = %v, want ErrNeighborCount", err)
	}
}

func TestRuleSetString(t *testing.T) {
	if got := Conway.String(); got != "B3/S23" {
		t.Fatalf("Conway = %q", got)
	}
	for _, name := range Presets() {
		rs, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		back, err := Parse(rs.String())
		if err != nil || back != rs {
			t.Errorf("%s: %q parsed back to %v, %v", name, rs.String(), back, err)
		}
	}
}

func TestNewRuleSetDuplicates(t *testing.T) {
	rs, err := NewRuleSet([]int{3, 3, 3}, []int{2, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	if rs != Conway {
		t.Fatalf("NewRuleSet with duplicates = %v, want %v", rs, Conway)
	}
	if _, err := NewRuleSet([]int{-1}, nil); !errors.Is(err, ErrNeighborCount) {
		t.Fatalf("negative count err = %v", err)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := Preset("brians-brain"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v", err)
	}
}
