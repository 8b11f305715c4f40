// Package model assembles an engine, workloads, and the supporting
// services (recording, monitoring) into one runnable application.
package model

import (
	"github.com/robotick-labs/robotick/datarecording"
	"github.com/robotick-labs/robotick/monitoring"
	"github.com/robotick-labs/robotick/tick"
)

// A Model holds everything that is needed to run a set of workloads.
type Model struct {
	id string

	engine       tick.Engine
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor

	workloads         []tick.Workload
	workloadNameIndex map[string]int
}

// ID returns the unique ID of the model.
func (m *Model) ID() string {
	return m.id
}

// GetEngine returns the engine that drives the model.
func (m *Model) GetEngine() tick.Engine {
	return m.engine
}

// GetDataRecorder returns the data recorder used by the model.
func (m *Model) GetDataRecorder() datarecording.DataRecorder {
	return m.dataRecorder
}

// GetMonitor returns the monitor used by the model. It is nil when
// monitoring is disabled.
func (m *Model) GetMonitor() *monitoring.Monitor {
	return m.monitor
}

// AddWorkload registers a workload with the model, the engine, and the
// monitor.
func (m *Model) AddWorkload(w tick.Workload) {
	name := w.Name()
	if _, exists := m.workloadNameIndex[name]; exists {
		panic("workload " + name + " already added")
	}

	m.workloads = append(m.workloads, w)
	m.workloadNameIndex[name] = len(m.workloads) - 1

	m.engine.RegisterWorkload(w)

	if m.monitor != nil {
		m.monitor.RegisterWorkload(w)
	}
}

// RecordOutputs makes the data recorder sample the given workload's Outputs
// block into the named table after every tick. The outputs argument must be
// a pointer to the workload's Outputs struct.
func (m *Model) RecordOutputs(w tick.Workload, outputs any, tableName string) {
	recorder := datarecording.NewTickRecorder(
		m.dataRecorder, w, outputs, tableName)
	m.engine.AcceptHook(recorder)
}

// GetWorkloadByName returns the workload with the given name.
func (m *Model) GetWorkloadByName(name string) tick.Workload {
	return m.workloads[m.workloadNameIndex[name]]
}

// Workloads returns all the workloads of the model in the order added.
func (m *Model) Workloads() []tick.Workload {
	return m.workloads
}

// Terminate flushes and closes the model's services.
func (m *Model) Terminate() {
	m.dataRecorder.Close()
}
