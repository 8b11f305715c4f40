package transform

import "github.com/robotick-labs/robotick/tick"

// BoolToFloatConfig maps each boolean state to the float it should emit.
type BoolToFloatConfig struct {
	ValueWhenTrue  float64
	ValueWhenFalse float64
}

// BoolToFloatInputs are the per-tick inputs of a BoolToFloat.
type BoolToFloatInputs struct {
	BoolValue bool
}

// BoolToFloatOutputs hold the mapped value.
type BoolToFloatOutputs struct {
	FloatValue float64
}

// BoolToFloat maps a boolean input to one of two configured float values.
// The mapping is pure: the output depends on nothing but the current
// Config and Inputs.
type BoolToFloat struct {
	*tick.WorkloadBase

	Config  BoolToFloatConfig
	Inputs  BoolToFloatInputs
	Outputs BoolToFloatOutputs
}

// NewBoolToFloat creates a BoolToFloat that maps true to 1 and false to 0.
func NewBoolToFloat(name string) *BoolToFloat {
	w := &BoolToFloat{
		WorkloadBase: tick.NewWorkloadBase(name),
	}
	w.Config.ValueWhenTrue = 1.0
	w.Config.ValueWhenFalse = 0.0

	return w
}

func (w *BoolToFloat) evaluate() {
	if w.Inputs.BoolValue {
		w.Outputs.FloatValue = w.Config.ValueWhenTrue
		return
	}

	w.Outputs.FloatValue = w.Config.ValueWhenFalse
}

// Start primes the output from the current input so downstream consumers
// never observe the zero value.
func (w *BoolToFloat) Start() {
	w.evaluate()
}

// Tick recomputes the output.
func (w *BoolToFloat) Tick(_ tick.TickInfo) {
	w.evaluate()
}
