package examples

import (
	"fmt"

	"github.com/robotick-labs/robotick/tick"
)

// HelloStatus reports whether the sum hit the magic value.
type HelloStatus int

// The possible HelloStatus values.
const (
	HelloStatusNormal HelloStatus = iota
	HelloStatusMagic
)

// HelloConfig configures a Hello.
type HelloConfig struct {
	Multiplier float64
}

// HelloInputs are the per-tick inputs of a Hello.
type HelloInputs struct {
	A float64
	B float64
}

// HelloOutputs hold the scaled sum and a human-readable message.
type HelloOutputs struct {
	Sum     float64
	Message string
	Status  HelloStatus
}

// Hello sums its two inputs, scales them, and reports a message. It is the
// first workload a new user wires up.
type Hello struct {
	*tick.WorkloadBase

	Config  HelloConfig
	Inputs  HelloInputs
	Outputs HelloOutputs
}

// NewHello creates a Hello with a unit multiplier.
func NewHello(name string) *Hello {
	h := &Hello{
		WorkloadBase: tick.NewWorkloadBase(name),
	}
	h.Config.Multiplier = 1.0
	h.Outputs.Message = "Waiting..."

	return h
}

// Tick recomputes the sum.
func (h *Hello) Tick(_ tick.TickInfo) {
	h.Outputs.Sum = (h.Inputs.A + h.Inputs.B) * h.Config.Multiplier

	if h.Outputs.Sum == 42.0 {
		h.Outputs.Message = "The Answer!"
		h.Outputs.Status = HelloStatusMagic
		return
	}

	h.Outputs.Message = fmt.Sprintf("Sum = %.2f", h.Outputs.Sum)
	h.Outputs.Status = HelloStatusNormal
}
