package tick

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Workload is a unit of per-tick computation. Each concrete workload
// carries up to three exported data blocks:
//
//   - Config: parameters assigned once before the engine runs, immutable
//     during ticking.
//   - Inputs: written by the engine or upstream producers before a tick,
//     read-only to the workload.
//   - Outputs: written by the workload during its tick, read-only to
//     downstream consumers afterward.
//
// The three blocks are disjoint. A workload never initiates calls; the
// engine drives it.
type Workload interface {
	Named
	Hookable

	// Tick updates the Outputs block from the Config and Inputs blocks. It
	// must complete synchronously and must tolerate a zero DeltaTime.
	Tick(ti TickInfo)
}

// A Starter is a workload that wants a one-time priming call before its
// first tick, typically to pre-populate Outputs from the current Inputs.
// Workloads that do not implement Starter are not primed.
type Starter interface {
	Start()
}

// WorkloadBase provides the name, ID, and hookability that concrete
// workloads embed.
type WorkloadBase struct {
	HookableBase

	id   string
	name string
}

// NewWorkloadBase creates a new WorkloadBase.
func NewWorkloadBase(name string) *WorkloadBase {
	b := new(WorkloadBase)
	b.id = GetIDGenerator().Generate()
	b.name = name

	return b
}

// Name returns the name of the workload.
func (b *WorkloadBase) Name() string {
	return b.name
}

// ID returns the unique ID of the workload within the current run.
func (b *WorkloadBase) ID() string {
	return b.id
}
