package transform

import "github.com/robotick-labs/robotick/tick"

// WeightedSumInputs are the per-tick inputs of a WeightedSum. The weights
// live in Inputs rather than Config so upstream producers can retune the
// mix while ticking.
type WeightedSumInputs struct {
	A float64
	B float64

	WeightA float64
	WeightB float64
}

// WeightedSumOutputs hold the mixed value.
type WeightedSumOutputs struct {
	Result float64
}

// WeightedSum blends two scalar inputs: Result = A*WeightA + B*WeightB.
type WeightedSum struct {
	*tick.WorkloadBase

	Inputs  WeightedSumInputs
	Outputs WeightedSumOutputs
}

// NewWeightedSum creates a WeightedSum that defaults to an even mix.
func NewWeightedSum(name string) *WeightedSum {
	w := &WeightedSum{
		WorkloadBase: tick.NewWorkloadBase(name),
	}
	w.Inputs.WeightA = 0.5
	w.Inputs.WeightB = 0.5

	return w
}

// Tick recomputes the mix.
func (w *WeightedSum) Tick(_ tick.TickInfo) {
	w.Outputs.Result = w.Inputs.A*w.Inputs.WeightA + w.Inputs.B*w.Inputs.WeightB
}
