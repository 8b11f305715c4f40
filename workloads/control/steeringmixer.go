// Package control provides workloads that turn command signals into
// actuator outputs.
package control

import "github.com/robotick-labs/robotick/tick"

// SteeringMixerConfig configures a SteeringMixer.
type SteeringMixerConfig struct {
	// MaxSpeedDifferential is how much of the angular speed command is
	// applied as a left/right motor difference.
	MaxSpeedDifferential float64

	PowerScaleBoth  float64
	PowerScaleLeft  float64
	PowerScaleRight float64

	// PowerSeekRate limits how fast the motor outputs may change, in output
	// units per second. A value <= 0 means instant snap (no seeking).
	PowerSeekRate float64
}

// SteeringMixerInputs are the per-tick command inputs.
type SteeringMixerInputs struct {
	Speed        float64
	AngularSpeed float64
}

// SteeringMixerOutputs hold the motor commands. When seeking is enabled
// they are also the retained slew state.
type SteeringMixerOutputs struct {
	LeftMotor  float64
	RightMotor float64
}

// SteeringMixer mixes a forward speed command and an angular speed command
// into differential-drive motor outputs.
//
// Right-handed Z-up yaw convention: positive angular speed is a positive
// yaw about +Z, i.e. a left turn from top view, so the right motor runs
// faster than the left.
type SteeringMixer struct {
	*tick.WorkloadBase

	Config  SteeringMixerConfig
	Inputs  SteeringMixerInputs
	Outputs SteeringMixerOutputs
}

// NewSteeringMixer creates a SteeringMixer with unit power scales and
// instant-snap output.
func NewSteeringMixer(name string) *SteeringMixer {
	m := &SteeringMixer{
		WorkloadBase: tick.NewWorkloadBase(name),
	}
	m.Config.MaxSpeedDifferential = 0.4
	m.Config.PowerScaleBoth = 1.0
	m.Config.PowerScaleLeft = 1.0
	m.Config.PowerScaleRight = 1.0
	m.Config.PowerSeekRate = -1.0

	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Tick recomputes the motor outputs.
func (m *SteeringMixer) Tick(ti tick.TickInfo) {
	speed := m.Inputs.Speed
	turn := m.Inputs.AngularSpeed

	left := speed - turn*m.Config.MaxSpeedDifferential
	right := speed + turn*m.Config.MaxSpeedDifferential

	left = clamp(left, -1, 1)
	right = clamp(right, -1, 1)

	left *= m.Config.PowerScaleBoth * m.Config.PowerScaleLeft
	right *= m.Config.PowerScaleBoth * m.Config.PowerScaleRight

	if m.Config.PowerSeekRate <= 0 {
		m.Outputs.LeftMotor = left
		m.Outputs.RightMotor = right
		return
	}

	maxDelta := m.Config.PowerSeekRate * float64(ti.DeltaTime)
	m.Outputs.LeftMotor = seekTowards(m.Outputs.LeftMotor, left, maxDelta)
	m.Outputs.RightMotor = seekTowards(m.Outputs.RightMotor, right, maxDelta)
}

// seekTowards moves current toward target by at most maxDelta.
func seekTowards(current, target, maxDelta float64) float64 {
	delta := target - current
	if delta > maxDelta {
		return current + maxDelta
	}
	if delta < -maxDelta {
		return current - maxDelta
	}

	return target
}
