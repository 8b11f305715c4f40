package model

import (
	"github.com/rs/xid"

	"github.com/robotick-labs/robotick/datarecording"
	"github.com/robotick-labs/robotick/monitoring"
	"github.com/robotick-labs/robotick/tick"
)

// Builder can be used to build a model.
type Builder struct {
	freq           tick.Freq
	monitorOn      bool
	monitorPort    int
	outputFileName string
}

// MakeBuilder creates a new builder with a 100Hz engine and monitoring
// enabled.
func MakeBuilder() Builder {
	return Builder{
		freq:      100 * tick.Hz,
		monitorOn: true,
	}
}

// WithFreq sets the tick frequency of the engine.
func (b Builder) WithFreq(freq tick.Freq) Builder {
	b.freq = freq
	return b
}

// WithoutMonitoring sets the model to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if b.freq <= 0 {
		panic("engine frequency must be positive")
	}
}

// Build builds the model.
func (b Builder) Build() *Model {
	b.parametersMustBeValid()

	m := &Model{
		workloadNameIndex: make(map[string]int),
	}

	m.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "robotick_run_" + m.id
	}
	m.dataRecorder = datarecording.NewDataRecorder(outputPath)

	m.engine = tick.NewSerialEngine(b.freq)

	if b.monitorOn {
		m.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			m.monitor.WithPortNumber(b.monitorPort)
		}
		m.monitor.RegisterEngine(m.engine)
		m.monitor.StartServer()
	}

	return m
}
