package growth

import (
	"math"
	"strconv"

	"raytree/internal/core"
)

// Parameters reports the configuration the next Reset will use.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("micro_steps", "Micro steps", w.cfg.MicroSteps),
				floatParam("speed", "Speed", w.cfg.Speed),
			},
		},
		{
			Name: "Splitting",
			Params: []core.Parameter{
				floatParam("density", "Density", params.Density),
				floatParam("angle", "Angle", params.Angle),
				enumParam("split_mode", "Split mode", int(params.SplitMode), params.SplitMode.String()),
			},
		},
		{
			Name: "Deviation",
			Params: []core.Parameter{
				floatParam("deviance", "Deviance", params.Deviance),
				floatParam("deviation_probability", "Deviation %", params.DeviationProbability),
				enumParam("deviation_mode", "Deviation mode", int(params.DeviationMode), params.DeviationMode.String()),
			},
		},
		{
			Name: "Collision",
			Params: []core.Parameter{
				enumParam("collision_policy", "Collision", int(params.CollisionPolicy), params.CollisionPolicy.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl("density", "Density", 0.1),
		floatControl("angle", "Angle", 5),
		floatControl("deviance", "Deviance", 5),
		floatControl("deviation_probability", "Deviation %", 1),
		{Key: "deviation_mode", Label: "Deviation mode", Type: core.ParamTypeEnum, Options: deviationModeNames},
		{Key: "split_mode", Label: "Split mode", Type: core.ParamTypeEnum, Options: splitModeNames},
		{Key: "collision_policy", Label: "Collision", Type: core.ParamTypeEnum, Options: collisionPolicyNames},
		intControl("micro_steps", "Micro steps", 1, minMicroSteps, maxMicroSteps),
		floatControl("speed", "Speed", 0.25),
	}
}

// SetFloatParameter updates a float value, clamping it to the control range.
// The change takes effect on the next Reset.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	field := w.cfg.floatField(key)
	if field == nil {
		return false
	}
	*field = clampParam(key, value)
	return true
}

// SetIntParameter updates an integer or enum value. Enum values outside the
// option range are rejected.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "micro_steps":
		w.cfg.MicroSteps = min(max(value, minMicroSteps), maxMicroSteps)
	case "deviation_mode":
		if value < 0 || value >= len(deviationModeNames) {
			return false
		}
		w.cfg.Params.DeviationMode = DeviationMode(value)
	case "split_mode":
		if value < 0 || value >= len(splitModeNames) {
			return false
		}
		w.cfg.Params.SplitMode = SplitMode(value)
	case "collision_policy":
		if value < 0 || value >= len(collisionPolicyNames) {
			return false
		}
		w.cfg.Params.CollisionPolicy = CollisionPolicy(value)
	default:
		return false
	}
	return true
}

func floatControl(key, label string, step float64) core.ParameterControl {
	r := floatRanges[key]
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeFloat,
		Step: step, Min: r[0], Max: r[1], HasMin: true, HasMax: true,
	}
}

func intControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeInt,
		Step: step, Min: lo, Max: hi, HasMin: true, HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

// enumParam stores the option index as the value and the name as the
// description.
func enumParam(key, label string, index int, name string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeEnum,
		Value:       strconv.Itoa(index),
		Description: name,
	}
}
