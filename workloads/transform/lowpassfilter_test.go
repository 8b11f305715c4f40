package transform_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/robotick-labs/robotick/tick"
	"github.com/robotick-labs/robotick/workloads/transform"
)

var _ = Describe("LowPassFilter", func() {
	var filter *transform.LowPassFilter

	BeforeEach(func() {
		filter = transform.NewLowPassFilter("Filter")
		filter.Config.TauSeconds = 0.25
		filter.Config.MinTauSeconds = 1e-4
	})

	It("should blend with alpha = 1 - exp(-dt/tau)", func() {
		filter.Inputs.Value = 10.0
		filter.Outputs.Result = 0.0

		filter.Tick(tick.TickInfo{DeltaTime: 0.25})

		alpha := 1.0 - math.Exp(-1.0)
		Expect(filter.Outputs.Result).
			To(BeNumerically("~", 10.0*alpha, 1e-9))
	})

	It("should keep the output frozen on a zero delta time", func() {
		filter.Inputs.Value = 10.0
		filter.Outputs.Result = 0.0

		filter.Tick(tick.TickInfo{DeltaTime: 0})

		Expect(filter.Outputs.Result).To(Equal(0.0))
	})

	It("should snap to the input when reset is set", func() {
		filter.Inputs.Value = -3.5
		filter.Inputs.Reset = true
		filter.Outputs.Result = 100.0

		filter.Tick(tick.TickInfo{DeltaTime: 0.01})

		Expect(filter.Outputs.Result).To(Equal(-3.5))
	})

	It("should snap even when the clock did not advance", func() {
		filter.Inputs.Value = 7.0
		filter.Inputs.Reset = true
		filter.Outputs.Result = -1.0

		filter.Tick(tick.TickInfo{DeltaTime: 0})

		Expect(filter.Outputs.Result).To(Equal(7.0))
	})

	It("should converge to the input within one very long tick", func() {
		filter.Inputs.Value = 5.0
		filter.Outputs.Result = -5.0

		filter.Tick(tick.TickInfo{DeltaTime: 1e6})

		Expect(filter.Outputs.Result).To(BeNumerically("~", 5.0, 1e-9))
		Expect(filter.Outputs.Result).To(BeNumerically("<=", 5.0))
	})

	It("should clamp a tiny time constant to the configured floor", func() {
		filter.Config.TauSeconds = 0.0
		filter.Inputs.Value = 2.0
		filter.Outputs.Result = 0.0

		filter.Tick(tick.TickInfo{DeltaTime: 0.25})

		// dt/tau = 2500, alpha is 1 within float precision.
		Expect(filter.Outputs.Result).To(BeNumerically("~", 2.0, 1e-9))
	})

	It("should stay finite for finite inputs", func() {
		filter.Config.TauSeconds = 0.0

		filter.Inputs.Value = math.MaxFloat64 / 4
		filter.Outputs.Result = -math.MaxFloat64 / 4

		filter.Tick(tick.TickInfo{DeltaTime: 1e9})

		Expect(math.IsNaN(filter.Outputs.Result)).To(BeFalse())
		Expect(math.IsInf(filter.Outputs.Result, 0)).To(BeFalse())
	})

	It("should respond the same regardless of tick rate", func() {
		fast := transform.NewLowPassFilter("Fast")
		slow := transform.NewLowPassFilter("Slow")

		fast.Inputs.Value = 1.0
		slow.Inputs.Value = 1.0

		// One second of settling, 200Hz vs 50Hz.
		for i := 0; i < 200; i++ {
			fast.Tick(tick.TickInfo{DeltaTime: 1.0 / 200})
		}
		for i := 0; i < 50; i++ {
			slow.Tick(tick.TickInfo{DeltaTime: 1.0 / 50})
		}

		Expect(fast.Outputs.Result).
			To(BeNumerically("~", slow.Outputs.Result, 1e-9))
	})
})
