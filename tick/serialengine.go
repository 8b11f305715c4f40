package tick

import (
	"log"
	"sync"
)

// A SerialEngine is an Engine that ticks all its workloads one after
// another at a fixed frequency.
type SerialEngine struct {
	HookableBase

	freq Freq

	timeLock  sync.RWMutex
	time      VTimeInSec
	tickCount uint64

	workloads []Workload
	started   bool

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex

	runEndHandlers []RunEndHandler
}

// NewSerialEngine creates a SerialEngine that ticks at the given frequency.
func NewSerialEngine(freq Freq) *SerialEngine {
	if freq <= 0 {
		log.Panic("engine frequency must be positive")
	}

	e := new(SerialEngine)
	e.freq = freq

	return e
}

// Freq returns the tick frequency of the engine.
func (e *SerialEngine) Freq() Freq {
	return e.freq
}

// RegisterWorkload adds a workload to the tick loop.
func (e *SerialEngine) RegisterWorkload(w Workload) {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	if e.started {
		log.Panic("cannot register a workload after the engine has started")
	}

	for _, registered := range e.workloads {
		if registered.Name() == w.Name() {
			log.Panicf("workload %s already registered", w.Name())
		}
	}

	e.workloads = append(e.workloads, w)
}

// Workloads returns the registered workloads in registration order.
func (e *SerialEngine) Workloads() []Workload {
	return e.workloads
}

func (e *SerialEngine) readNow() VTimeInSec {
	e.timeLock.RLock()
	t := e.time
	e.timeLock.RUnlock()
	return t
}

// RunTicks advances the engine by n ticks.
func (e *SerialEngine) RunTicks(n uint64) error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	e.startIfNotStarted()

	for i := uint64(0); i < n; i++ {
		e.runOneTick()
	}

	return nil
}

// RunFor advances the engine until the given duration has elapsed from the
// current time.
func (e *SerialEngine) RunFor(d VTimeInSec) error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	e.startIfNotStarted()

	end := e.readNow() + d
	for e.readNow() < end {
		e.runOneTick()
	}

	return nil
}

// startIfNotStarted primes every workload that implements Starter. Priming
// happens exactly once, before the first tick of the first run.
func (e *SerialEngine) startIfNotStarted() {
	if e.started {
		return
	}
	e.started = true

	for _, w := range e.workloads {
		starter, ok := w.(Starter)
		if !ok {
			continue
		}

		hookCtx := HookCtx{
			Domain: e,
			Pos:    HookPosWorkloadStart,
			Detail: w,
		}
		starter.Start()
		e.InvokeHook(hookCtx)
	}
}

// runOneTick invokes every workload once. The first tick of a run carries a
// zero DeltaTime so that time-integrating workloads do not step across an
// interval that never elapsed.
func (e *SerialEngine) runOneTick() {
	e.pauseLock.Lock()
	defer e.pauseLock.Unlock()

	now := e.readNow()

	ti := TickInfo{
		Time:      now,
		DeltaTime: e.freq.Period(),
		TickCount: e.tickCount,
	}
	if e.tickCount == 0 {
		ti.DeltaTime = 0
	}

	for _, w := range e.workloads {
		hookCtx := HookCtx{
			Domain: e,
			Pos:    HookPosBeforeTick,
			Item:   ti,
			Detail: w,
		}
		e.InvokeHook(hookCtx)

		w.Tick(ti)

		hookCtx.Pos = HookPosAfterTick
		e.InvokeHook(hookCtx)
	}

	e.timeLock.Lock()
	e.tickCount++
	e.time = e.freq.NextTick(now)
	e.timeLock.Unlock()
}

// Pause prevents the SerialEngine from triggering more ticks.
func (e *SerialEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows the SerialEngine to trigger more ticks.
func (e *SerialEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}

// CurrentTime returns the current time at which the engine is at.
func (e *SerialEngine) CurrentTime() VTimeInSec {
	return e.readNow()
}

// TickCount returns the number of completed ticks.
func (e *SerialEngine) TickCount() uint64 {
	e.timeLock.RLock()
	c := e.tickCount
	e.timeLock.RUnlock()
	return c
}

// RegisterRunEndHandler registers a handler to be called after a run ends.
func (e *SerialEngine) RegisterRunEndHandler(handler RunEndHandler) {
	e.runEndHandlers = append(e.runEndHandlers, handler)
}

// Finished should be called after a run ends. This function calls all the
// registered RunEndHandler.
func (e *SerialEngine) Finished() {
	now := e.readNow()
	for _, h := range e.runEndHandlers {
		h.Handle(now)
	}
}
