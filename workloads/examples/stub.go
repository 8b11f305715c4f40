// Package examples provides minimal workloads that demonstrate the
// workload contract without doing real work.
package examples

import "github.com/robotick-labs/robotick/tick"

// Stub is a minimal no-op workload used as a stand-in during development
// and for exercising the engine independent of real workload logic. It has
// empty Config, Inputs, and Outputs blocks.
type Stub struct {
	*tick.WorkloadBase
}

// NewStub creates a Stub.
func NewStub(name string) *Stub {
	return &Stub{
		WorkloadBase: tick.NewWorkloadBase(name),
	}
}

// Tick does nothing.
func (s *Stub) Tick(_ tick.TickInfo) {
}
