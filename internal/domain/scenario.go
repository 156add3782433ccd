package domain

import (
	"fmt"
)

// ScenarioKind identifies an occupancy scenario
type ScenarioKind string

const (
	ScenarioReduced ScenarioKind = "reduced"
	ScenarioMedium  ScenarioKind = "medium"
	ScenarioHigh    ScenarioKind = "high"
)

// ScenarioKinds is the canonical comparison order
var ScenarioKinds = []ScenarioKind{ScenarioReduced, ScenarioMedium, ScenarioHigh}

// Valid reports whether k is a known scenario kind
func (k ScenarioKind) Valid() bool {
	switch k {
	case ScenarioReduced, ScenarioMedium, ScenarioHigh:
		return true
	}
	return false
}

// ParseScenarioKind converts a user supplied id into a ScenarioKind
func ParseScenarioKind(s string) (ScenarioKind, error) {
	k := ScenarioKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownScenario, s)
	}
	return k, nil
}

// OccupancyScenario describes an assumed occupancy band
type OccupancyScenario struct {
	Kind         ScenarioKind `yaml:"kind" json:"kind"`
	DisplayName  string       `yaml:"display_name" json:"displayName"`
	OccupancyMin float64      `yaml:"occupancy_min" json:"occupancyMin"`
	OccupancyMax float64      `yaml:"occupancy_max" json:"occupancyMax"`
}

// Midpoint returns the representative occupancy rate of the band
func (s OccupancyScenario) Midpoint() float64 {
	return (s.OccupancyMin + s.OccupancyMax) / 2
}

// RangeLabel renders the band as "50% - 75%"
func (s OccupancyScenario) RangeLabel() string {
	return fmt.Sprintf("%.0f%% - %.0f%%", s.OccupancyMin*100, s.OccupancyMax*100)
}

// Validate enforces 0 <= min <= max <= 1
func (s OccupancyScenario) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownScenario, s.Kind)
	}
	if s.OccupancyMin < 0 || s.OccupancyMax > 1 || s.OccupancyMin > s.OccupancyMax {
		return fmt.Errorf("scenario %s: occupancy band %.2f-%.2f must satisfy 0 <= min <= max <= 1",
			s.Kind, s.OccupancyMin, s.OccupancyMax)
	}
	return nil
}

// ScenarioCatalog holds the occupancy scenarios keyed by kind
type ScenarioCatalog struct {
	scenarios map[ScenarioKind]OccupancyScenario
}

// NewScenarioCatalog builds a catalog; every scenario kind must be present exactly once
func NewScenarioCatalog(scenarios ...OccupancyScenario) (*ScenarioCatalog, error) {
	c := &ScenarioCatalog{scenarios: make(map[ScenarioKind]OccupancyScenario, len(scenarios))}
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.scenarios[s.Kind]; dup {
			return nil, fmt.Errorf("%w: duplicate scenario %s", ErrInvalidConfig, s.Kind)
		}
		c.scenarios[s.Kind] = s
	}
	for _, k := range ScenarioKinds {
		if _, ok := c.scenarios[k]; !ok {
			return nil, fmt.Errorf("%w: scenario %s is not defined", ErrInvalidConfig, k)
		}
	}
	return c, nil
}

// Get returns the scenario for kind
func (c *ScenarioCatalog) Get(kind ScenarioKind) (OccupancyScenario, bool) {
	s, ok := c.scenarios[kind]
	return s, ok
}

// List returns the scenarios in canonical order (reduced, medium, high)
func (c *ScenarioCatalog) List() []OccupancyScenario {
	out := make([]OccupancyScenario, 0, len(ScenarioKinds))
	for _, k := range ScenarioKinds {
		out = append(out, c.scenarios[k])
	}
	return out
}
