package cmd

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/robotick-labs/robotick/model"
	"github.com/robotick-labs/robotick/tick"
	"github.com/robotick-labs/robotick/workloads/control"
	"github.com/robotick-labs/robotick/workloads/transform"
)

// demoBindings copies signals between the demo workloads before each tick.
// This is the data-binding layer: workloads never see each other, only
// their own Inputs and Outputs blocks.
type demoBindings struct {
	command *transform.LowPassFilter
	mixer   *control.SteeringMixer
	lamp    *transform.BoolToFloat
}

func (b *demoBindings) Func(ctx tick.HookCtx) {
	if ctx.Pos != tick.HookPosBeforeTick {
		return
	}

	ti := ctx.Item.(tick.TickInfo)

	switch ctx.Detail {
	case b.command:
		// Square-wave speed command: full ahead for one second, stop for
		// the next.
		if uint64(ti.Time)%2 == 0 {
			b.command.Inputs.Value = 1.0
		} else {
			b.command.Inputs.Value = 0.0
		}
	case b.mixer:
		b.mixer.Inputs.Speed = b.command.Outputs.Result
		b.mixer.Inputs.AngularSpeed = 0.3
	case b.lamp:
		b.lamp.Inputs.BoolValue = b.command.Outputs.Result > 0.5
	}
}

func runDemo() {
	builder := model.MakeBuilder().
		WithFreq(freqFromFlag()).
		WithOutputFileName(flagOutput)

	if flagNoMonitor {
		builder = builder.WithoutMonitoring()
	} else if flagMonitorPort > 0 {
		builder = builder.WithMonitorPort(flagMonitorPort)
	}

	m := builder.Build()
	defer m.Terminate()

	command := transform.NewLowPassFilter("Robot.SpeedCommand")
	command.Config.TauSeconds = 0.25

	mixer := control.NewSteeringMixer("Robot.SteeringMixer")
	mixer.Config.PowerSeekRate = 4.0

	lamp := transform.NewBoolToFloat("Robot.MovingLamp")
	lamp.Config.ValueWhenTrue = 5.0
	lamp.Config.ValueWhenFalse = -1.0

	m.AddWorkload(command)
	m.AddWorkload(mixer)
	m.AddWorkload(lamp)

	m.RecordOutputs(command, &command.Outputs, "speed_command")
	m.RecordOutputs(mixer, &mixer.Outputs, "steering_mixer")
	m.RecordOutputs(lamp, &lamp.Outputs, "moving_lamp")

	engine := m.GetEngine()
	engine.AcceptHook(&demoBindings{
		command: command,
		mixer:   mixer,
		lamp:    lamp,
	})

	err := engine.RunFor(tick.VTimeInSec(flagSeconds))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		atexit.Exit(1)
	}

	engine.Finished()

	fmt.Printf("Ran %d ticks over %.2fs: left=%.3f right=%.3f lamp=%.1f\n",
		engine.TickCount(),
		float64(engine.CurrentTime()),
		mixer.Outputs.LeftMotor,
		mixer.Outputs.RightMotor,
		lamp.Outputs.FloatValue)
}
