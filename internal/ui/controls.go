package ui

import (
	"math"
	"strconv"
	"strings"

	"raytree/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statusProvider interface {
	Status() string
}

// control is one row of the panel. Numeric controls hold their value, enum
// controls the option index.
type control struct {
	def   core.ParameterControl
	value float64
	known bool
}

// label formats the value for display.
func (c control) label() string {
	if !c.known {
		return "--"
	}
	switch c.def.Type {
	case core.ParamTypeEnum:
		i := int(c.value)
		if i < 0 || i >= len(c.def.Options) {
			return "--"
		}
		return c.def.Options[i]
	case core.ParamTypeInt:
		return strconv.Itoa(int(c.value))
	}
	// Show as many decimals as the step has.
	digits := 0
	step := strconv.FormatFloat(c.def.Step, 'f', -1, 64)
	if _, frac, ok := strings.Cut(step, "."); ok {
		digits = len(frac)
	}
	return strconv.FormatFloat(c.value, 'f', digits, 64)
}

// next returns the value one step in direction dir and whether it differs
// from the current one. Numeric values stop at the bounds, enums wrap.
func (c control) next(dir int) (float64, bool) {
	if !c.known || dir == 0 {
		return c.value, false
	}
	if c.def.Type == core.ParamTypeEnum {
		n := len(c.def.Options)
		if n < 2 {
			return c.value, false
		}
		return float64(((int(c.value)+dir)%n + n) % n), true
	}
	step := c.def.Step
	if step <= 0 {
		step = 1
	}
	v := c.value + float64(dir)*step
	if c.def.HasMin {
		v = math.Max(v, c.def.Min)
	}
	if c.def.HasMax {
		v = math.Min(v, c.def.Max)
	}
	if c.def.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	return v, math.Abs(v-c.value) > 1e-9
}

// controls mirrors the adjustable parameters of a sim and writes changes
// back through its setters.
type controls struct {
	sim    core.Sim
	rows   []control
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

func newControls(sim core.Sim) *controls {
	c := &controls{sim: sim}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, def := range provider.ParameterControls() {
			c.rows = append(c.rows, control{def: def})
		}
	}
	c.ints, _ = sim.(core.IntParameterSetter)
	c.floats, _ = sim.(core.FloatParameterSetter)
	return c
}

// refresh reads the current values from the sim's parameter snapshot.
func (c *controls) refresh() {
	provider, ok := c.sim.(parameterProvider)
	if !ok {
		return
	}
	values := map[string]string{}
	for _, group := range provider.Parameters().Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	for i := range c.rows {
		row := &c.rows[i]
		v, err := strconv.ParseFloat(values[row.def.Key], 64)
		row.value, row.known = v, err == nil
	}
}

// canAdjust reports whether row i would change when stepped in dir.
func (c *controls) canAdjust(i, dir int) bool {
	if i < 0 || i >= len(c.rows) || !c.hasSetter(c.rows[i].def.Type) {
		return false
	}
	_, ok := c.rows[i].next(dir)
	return ok
}

// adjust steps row i in dir and reports whether the sim accepted it.
func (c *controls) adjust(i, dir int) bool {
	if !c.canAdjust(i, dir) {
		return false
	}
	row := &c.rows[i]
	v, _ := row.next(dir)
	var accepted bool
	if row.def.Type == core.ParamTypeFloat {
		accepted = c.floats.SetFloatParameter(row.def.Key, v)
	} else {
		accepted = c.ints.SetIntParameter(row.def.Key, int(v))
	}
	if accepted {
		row.value = v
	}
	return accepted
}

func (c *controls) hasSetter(t core.ParamType) bool {
	switch t {
	case core.ParamTypeFloat:
		return c.floats != nil
	case core.ParamTypeInt, core.ParamTypeEnum:
		return c.ints != nil
	}
	return false
}

func (c *controls) status() string {
	if provider, ok := c.sim.(statusProvider); ok {
		return provider.Status()
	}
	return ""
}
