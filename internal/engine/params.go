package engine

import (
	"strconv"
	"time"

	"adaptive-life/internal/core"
)

// Parameters reports the engine state and tunables for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	cols, _ := e.board.Cols()
	rows, _ := e.board.Rows()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				extentParam("cols", "Columns", cols),
				extentParam("rows", "Rows", rows),
				stringParam("backend", "Backend", e.kind.String()),
				intParam("population", "Population", e.board.Population()),
				intParam("slots", "Allocated", e.board.Slots()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				stringParam("iteration", "Iteration", strconv.FormatUint(e.iteration, 10)),
				floatParam("density", "Density", e.density),
				stringParam("last_batch", "Last batch", e.lastBatchTime.Round(time.Microsecond).String()),
			},
		},
		{
			Name: "Switching",
			Params: []core.Parameter{
				boolParam("adaptive", "Adaptive", e.cfg.Adaptive),
				floatParam("density_threshold", "Density threshold", e.cfg.DensityThreshold),
				intParam("switch_inertia", "Switch inertia", e.cfg.SwitchInertia),
				intParam("since_switch", "Since switch", e.sinceSwitch),
				intParam("cleanup_interval", "Cleanup interval", e.cfg.CleanupInterval),
			},
		},
	}}
}

func extentParam(key, label string, n int) core.Parameter {
	if n == 0 {
		return stringParam(key, label, "inf")
	}
	return intParam(key, label, n)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 4, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
