// Package transform provides workloads that map input signals to output
// signals, with and without retained state.
package transform

import (
	"math"

	"github.com/robotick-labs/robotick/tick"
)

// LowPassFilterConfig configures the response of a LowPassFilter.
type LowPassFilterConfig struct {
	// TauSeconds is the time constant in seconds. Smaller = faster response
	// (less smoothing). Typical range: 0.05 .. 1.0.
	TauSeconds float64

	// MinTauSeconds guards against numeric issues when the time constant is
	// tiny or zero.
	MinTauSeconds float64
}

// LowPassFilterInputs are the per-tick inputs of a LowPassFilter.
type LowPassFilterInputs struct {
	Value float64 // raw signal
	Reset bool    // when true, snap the output to Value this tick
}

// LowPassFilterOutputs hold the filtered signal. Result doubles as the
// retained filter state between ticks.
type LowPassFilterOutputs struct {
	Result float64
}

// LowPassFilter maintains an exponentially smoothed estimate of a scalar
// input signal. The blend factor is derived from the elapsed time of each
// tick, alpha = 1 - exp(-dt/tau), so the time-domain response stays the
// same no matter how fast the engine ticks.
type LowPassFilter struct {
	*tick.WorkloadBase

	Config  LowPassFilterConfig
	Inputs  LowPassFilterInputs
	Outputs LowPassFilterOutputs
}

// NewLowPassFilter creates a LowPassFilter with the default time constant
// of 0.25s.
func NewLowPassFilter(name string) *LowPassFilter {
	f := &LowPassFilter{
		WorkloadBase: tick.NewWorkloadBase(name),
	}
	f.Config.TauSeconds = 0.25
	f.Config.MinTauSeconds = 1e-4

	return f
}

// Tick performs one smoothing step.
func (f *LowPassFilter) Tick(ti tick.TickInfo) {
	dt := float64(ti.DeltaTime)

	tau := f.Config.TauSeconds
	if tau < f.Config.MinTauSeconds {
		tau = f.Config.MinTauSeconds
	}

	// Under a degenerate dt (first tick, paused clock) the state must stay
	// frozen rather than stepping across an interval that never elapsed.
	alpha := 0.0
	if dt > 0 {
		alpha = 1.0 - math.Exp(-dt/tau)
		if alpha < 0 {
			alpha = 0
		} else if alpha > 1 {
			alpha = 1
		}
	}

	if f.Inputs.Reset {
		f.Outputs.Result = f.Inputs.Value // hard snap
		return
	}

	f.Outputs.Result += alpha * (f.Inputs.Value - f.Outputs.Result)
}
