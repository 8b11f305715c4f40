package transform

import (
	"math"

	"github.com/robotick-labs/robotick/tick"
)

// Quat is a unit-length-intended quaternion in WXYZ order.
type Quat struct {
	W float64
	X float64
	Y float64
	Z float64
}

// Normalized returns the quaternion scaled to unit length. The zero
// quaternion normalizes to identity.
func (q Quat) Normalized() Quat {
	n := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if n == 0 {
		return Quat{W: 1}
	}

	return Quat{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// QuatToEulerConfig remaps which computed angle feeds each output.
// 0: roll, 1: pitch, 2: yaw. Out-of-range indices are clamped.
type QuatToEulerConfig struct {
	OutputRollSource  int
	OutputPitchSource int
	OutputYawSource   int
}

// QuatToEulerInputs are the per-tick inputs of a QuatToEuler.
type QuatToEulerInputs struct {
	Quat Quat
}

// QuatToEulerOutputs hold the Euler angles in radians.
type QuatToEulerOutputs struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// QuatToEuler converts an orientation quaternion to Euler angles using the
// standard aerospace convention (ZYX extrinsic / XYZ intrinsic).
type QuatToEuler struct {
	*tick.WorkloadBase

	Config  QuatToEulerConfig
	Inputs  QuatToEulerInputs
	Outputs QuatToEulerOutputs
}

// NewQuatToEuler creates a QuatToEuler with the identity output mapping.
func NewQuatToEuler(name string) *QuatToEuler {
	w := &QuatToEuler{
		WorkloadBase: tick.NewWorkloadBase(name),
	}
	w.Config.OutputRollSource = 0
	w.Config.OutputPitchSource = 1
	w.Config.OutputYawSource = 2

	return w
}

func clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > 2 {
		return 2
	}

	return index
}

// Tick recomputes the Euler angles.
func (w *QuatToEuler) Tick(_ tick.TickInfo) {
	q := w.Inputs.Quat.Normalized()

	sinrCosp := 2.0 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1.0 - 2.0*(q.X*q.X+q.Y*q.Y)
	roll := math.Atan2(sinrCosp, cosrCosp)

	// Clamp to handle gimbal lock at pitch = ±90°.
	sinp := 2.0 * (q.W*q.Y - q.Z*q.X)
	if sinp < -1 {
		sinp = -1
	} else if sinp > 1 {
		sinp = 1
	}
	pitch := math.Asin(sinp)

	sinyCosp := 2.0 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1.0 - 2.0*(q.Y*q.Y+q.Z*q.Z)
	yaw := math.Atan2(sinyCosp, cosyCosp)

	angles := [3]float64{roll, pitch, yaw}
	w.Outputs.Roll = angles[clampIndex(w.Config.OutputRollSource)]
	w.Outputs.Pitch = angles[clampIndex(w.Config.OutputPitchSource)]
	w.Outputs.Yaw = angles[clampIndex(w.Config.OutputYawSource)]
}
