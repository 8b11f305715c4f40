package tick

// VTimeInSec defines time in the unit of second.
type VTimeInSec float64

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// TickInfo carries the timing information of one tick. It is owned by the
// engine and is valid for exactly one invocation.
type TickInfo struct {
	// Time is the absolute engine time at which the tick runs.
	Time VTimeInSec

	// DeltaTime is the time elapsed since the previous tick of the same
	// workload. It is never negative. It is exactly zero on the first tick
	// and whenever the clock did not advance.
	DeltaTime VTimeInSec

	// TickCount is the number of ticks completed before this one.
	TickCount uint64
}
