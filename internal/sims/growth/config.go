package growth

import (
	"math"
	"strconv"
	"strings"
)

// DeviationMode selects how the deviance is applied to a split angle.
type DeviationMode uint8

const (
	// DeviationBinary applies the full deviance or none, gated by
	// DeviationProbability.
	DeviationBinary DeviationMode = iota
	// DeviationContinuous draws a uniform offset from the deviance range.
	DeviationContinuous
)

var deviationModeNames = []string{"binary", "continuous"}

func (m DeviationMode) String() string {
	if int(m) < len(deviationModeNames) {
		return deviationModeNames[m]
	}
	return "DeviationMode(" + strconv.Itoa(int(m)) + ")"
}

// SplitMode selects the geometry of the two children created by a split.
type SplitMode uint8

const (
	// SplitSymmetric places the children either side of the parent heading.
	SplitSymmetric SplitMode = iota
	// SplitPrimarySecondary sends the children in opposite directions along
	// one line turned away from the parent heading.
	SplitPrimarySecondary
)

var splitModeNames = []string{"symmetric", "primary-secondary"}

func (m SplitMode) String() string {
	if int(m) < len(splitModeNames) {
		return splitModeNames[m]
	}
	return "SplitMode(" + strconv.Itoa(int(m)) + ")"
}

// CollisionPolicy selects which hit stops a ray when its step crosses several
// segments.
type CollisionPolicy uint8

const (
	// CollideFirst takes the first hit in candidate order.
	CollideFirst CollisionPolicy = iota
	// CollideNearest takes the hit closest to where the step began.
	CollideNearest
)

var collisionPolicyNames = []string{"first", "nearest"}

func (p CollisionPolicy) String() string {
	if int(p) < len(collisionPolicyNames) {
		return collisionPolicyNames[p]
	}
	return "CollisionPolicy(" + strconv.Itoa(int(p)) + ")"
}

func parseName(names []string, aliases map[string]int, v string) (int, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, n := range names {
		if v == n {
			return i, true
		}
	}
	if i, ok := aliases[v]; ok {
		return i, true
	}
	if i, err := strconv.Atoi(v); err == nil && i >= 0 && i < len(names) {
		return i, true
	}
	return 0, false
}

// ParseDeviationMode accepts a mode name or index.
func ParseDeviationMode(v string) (DeviationMode, bool) {
	i, ok := parseName(deviationModeNames, map[string]int{"boolean": 0, "smooth": 1}, v)
	return DeviationMode(i), ok
}

// ParseSplitMode accepts a mode name or index.
func ParseSplitMode(v string) (SplitMode, bool) {
	i, ok := parseName(splitModeNames, map[string]int{"y": 0, "cross": 1}, v)
	return SplitMode(i), ok
}

// ParseCollisionPolicy accepts a policy name or index.
func ParseCollisionPolicy(v string) (CollisionPolicy, bool) {
	i, ok := parseName(collisionPolicyNames, nil, v)
	return CollisionPolicy(i), ok
}

// Params holds the knobs read when a run starts.
type Params struct {
	// Density scales the per micro-step split chance (Density/40).
	Density float64
	// Angle is the base split angle in degrees.
	Angle float64
	// Deviance is the largest angular deviation in degrees.
	Deviance float64
	// DeviationProbability is the percent chance that binary mode deviates.
	DeviationProbability float64

	DeviationMode   DeviationMode
	SplitMode       SplitMode
	CollisionPolicy CollisionPolicy
}

// Config controls the drawing area and the run parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	// MicroSteps is the number of sub-steps per tick.
	MicroSteps int
	// Speed is the distance a tip travels per micro-step.
	Speed float64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Seed:       1,
		MicroSteps: 10,
		Speed:      1,
		Params: Params{
			Density:              1,
			Angle:                90,
			Deviance:             45,
			DeviationProbability: 1,
			DeviationMode:        DeviationBinary,
			SplitMode:            SplitSymmetric,
			CollisionPolicy:      CollideFirst,
		},
	}
}

const (
	minMicroSteps = 1
	maxMicroSteps = 100
)

// floatKeys lists the float options in the order FromMap applies them.
var floatKeys = []string{"speed", "density", "angle", "deviance", "deviation_probability"}

// floatRanges holds the inclusive bounds of every float option.
var floatRanges = map[string][2]float64{
	"speed":                 {0.25, 10},
	"density":               {0.1, 3},
	"angle":                 {1, 180},
	"deviance":              {0, 180},
	"deviation_probability": {0, 100},
}

func clampParam(key string, v float64) float64 {
	r := floatRanges[key]
	return min(max(v, r[0]), r[1])
}

// floatField returns the config field behind a float option, or nil.
func (c *Config) floatField(key string) *float64 {
	switch key {
	case "speed":
		return &c.Speed
	case "density":
		return &c.Params.Density
	case "angle":
		return &c.Params.Angle
	case "deviance":
		return &c.Params.Deviance
	case "deviation_probability":
		return &c.Params.DeviationProbability
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values leave the default in place; numbers are clamped to the
// same ranges the parameter setters use.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["micro_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MicroSteps = min(max(parsed, minMicroSteps), maxMicroSteps)
		}
	}
	for _, key := range floatKeys {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(parsed) {
			*c.floatField(key) = clampParam(key, parsed)
		}
	}
	if v, ok := cfg["deviation_mode"]; ok {
		if parsed, ok := ParseDeviationMode(v); ok {
			c.Params.DeviationMode = parsed
		}
	}
	if v, ok := cfg["split_mode"]; ok {
		if parsed, ok := ParseSplitMode(v); ok {
			c.Params.SplitMode = parsed
		}
	}
	if v, ok := cfg["collision_policy"]; ok {
		if parsed, ok := ParseCollisionPolicy(v); ok {
			c.Params.CollisionPolicy = parsed
		}
	}
	return c
}
