package tick

// A RunEndHandler is a handler that is called after the engine finishes a
// run.
type RunEndHandler interface {
	Handle(now VTimeInSec)
}

// An Engine owns the tick loop. It holds the workloads, computes the
// elapsed time of each cycle, and invokes every workload once per cycle.
// Workloads never see the engine; they only see the TickInfo it hands
// them.
type Engine interface {
	Hookable
	TimeTeller

	// RegisterWorkload adds a workload to the tick loop. Workloads tick in
	// registration order. Registration is not allowed while running.
	RegisterWorkload(w Workload)

	// TickCount returns the number of ticks completed so far.
	TickCount() uint64

	// RunTicks advances the engine by n ticks.
	RunTicks(n uint64) error

	// RunFor advances the engine until the given duration has elapsed.
	RunFor(d VTimeInSec) error

	// Pause will pause the run until Continue is called.
	Pause()

	// Continue will continue a paused run.
	Continue()

	// RegisterRunEndHandler registers a handler that performs some actions
	// after a run is finished.
	RegisterRunEndHandler(handler RunEndHandler)

	// Finished invokes all the registered RunEndHandler.
	Finished()
}
