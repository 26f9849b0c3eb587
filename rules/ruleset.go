package rules

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the size of the Moore neighborhood
const MaxNeighbors = 8

var (
	// ErrNeighborCount is returned for counts outside [0, 8]
	ErrNeighborCount = errors.New("neighbor count out of range")
	// ErrRuleString is returned when a rule string cannot be parsed
	ErrRuleString = errors.New("malformed rule string")
	// ErrUnknownPreset is returned by Preset for unknown names
	ErrUnknownPreset = errors.New("unknown rule preset")
)

// NeighborSet is a set of live-neighbor counts, bit n set meaning count n is a member
type NeighborSet uint16

// NewNeighborSet builds a set from counts. Duplicates are ignored.
func NewNeighborSet(counts ...int) (NeighborSet, error) {
	var s NeighborSet
	for _, n := range counts {
		if n < 0 || n > MaxNeighbors {
			return 0, errors.Wrapf(ErrNeighborCount, "[NewNeighborSet] %d", n)
		}
		s |= 1 << uint(n)
	}
	return s, nil
}

// Contains reports whether count n is in the set
func (s NeighborSet) Contains(n int) bool {
	if n < 0 || n > MaxNeighbors {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// Counts returns the members in ascending order
func (s NeighborSet) Counts() []int {
	counts := make([]int, 0, MaxNeighbors+1)
	for n := 0; n <= MaxNeighbors; n++ {
		if s.Contains(n) {
			counts = append(counts, n)
		}
	}
	return counts
}

func (s NeighborSet) String() string {
	var sb strings.Builder
	for _, n := range s.Counts() {
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// RuleSet holds the neighbor counts at which dead cells are born and live cells survive
type RuleSet struct {
	Birth    NeighborSet
	Survival NeighborSet
}

// NewRuleSet builds a RuleSet from birth and survival counts in [0, 8]
func NewRuleSet(birth, survival []int) (RuleSet, error) {
	b, err := NewNeighborSet(birth...)
	if err != nil {
		return RuleSet{}, errors.Wrap(err, "[NewRuleSet] birth")
	}
	s, err := NewNeighborSet(survival...)
	if err != nil {
		return RuleSet{}, errors.Wrap(err, "[NewRuleSet] survival")
	}
	return RuleSet{Birth: b, Survival: s}, nil
}

// String renders the rule in B/S notation, e.g. B3/S23
func (rs RuleSet) String() string {
	return "B" + rs.Birth.String() + "/S" + rs.Survival.String()
}

// Conway is the standard B3/S23 rule
var Conway = RuleSet{Birth: 1 << 3, Survival: 1<<2 | 1<<3}

var presets = map[string]string{
	"conway":           "B3/S23",
	"highlife":         "B36/S23",
	"seeds":            "B2/S",
	"daynight":         "B3678/S34678",
	"lifewithoutdeath": "B3/S012345678",
}

// Presets returns the names of the built-in rules, sorted
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a built-in rule by name
func Preset(name string) (RuleSet, error) {
	rule, ok := presets[strings.ToLower(name)]
	if !ok {
		return RuleSet{}, errors.Wrapf(ErrUnknownPreset, "[Preset] %q", name)
	}
	return Parse(rule)
}

/*
Parse reads a rule in B/S notation ("B3/S23", "s23/b3") or the older
survival/birth digit form ("23/3"). A preset name is also accepted.
*/
func Parse(rule string) (RuleSet, error) {
	rule = strings.TrimSpace(rule)
	if _, ok := presets[strings.ToLower(rule)]; ok {
		return Preset(rule)
	}

	parts := strings.Split(rule, "/")
	if len(parts) != 2 {
		return RuleSet{}, errors.Wrapf(ErrRuleString, "[Parse] %q: expected exactly one '/'", rule)
	}

	var (
		rs                 RuleSet
		haveBirth, haveSur bool
	)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		prefix := ""
		if part != "" {
			prefix = strings.ToUpper(part[:1])
		}

		var target *NeighborSet
		switch {
		case prefix == "B" && !haveBirth:
			target, haveBirth = &rs.Birth, true
			part = part[1:]
		case prefix == "S" && !haveSur:
			target, haveSur = &rs.Survival, true
			part = part[1:]
		case prefix == "B" || prefix == "S":
			return RuleSet{}, errors.Wrapf(ErrRuleString, "[Parse] %q: repeated %s section", rule, prefix)
		case i == 0 && !haveSur:
			target, haveSur = &rs.Survival, true
		case i == 1 && !haveBirth:
			target, haveBirth = &rs.Birth, true
		default:
			return RuleSet{}, errors.Wrapf(ErrRuleString, "[Parse] %q: mixed notation", rule)
		}

		set, err := parseDigits(part)
		if err != nil {
			return RuleSet{}, errors.Wrapf(err, "[Parse] %q", rule)
		}
		*target = set
	}

	return rs, nil
}

func parseDigits(digits string) (NeighborSet, error) {
	counts := make([]int, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrRuleString, "unexpected %q", r)
		}
		counts = append(counts, int(r-'0'))
	}
	return NewNeighborSet(counts...)
}
