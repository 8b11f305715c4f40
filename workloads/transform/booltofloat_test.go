package transform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/robotick-labs/robotick/tick"
	"github.com/robotick-labs/robotick/workloads/transform"
)

var _ = Describe("BoolToFloat", func() {
	var w *transform.BoolToFloat

	BeforeEach(func() {
		w = transform.NewBoolToFloat("B2F")
		w.Config.ValueWhenTrue = 5.0
		w.Config.ValueWhenFalse = -1.0
	})

	It("should map true to the configured value", func() {
		w.Inputs.BoolValue = true

		w.Tick(tick.TickInfo{})

		Expect(w.Outputs.FloatValue).To(Equal(5.0))
	})

	It("should map false to the configured value", func() {
		w.Inputs.BoolValue = false

		w.Tick(tick.TickInfo{})

		Expect(w.Outputs.FloatValue).To(Equal(-1.0))
	})

	It("should be pure: two ticks with the same inputs give the same output",
		func() {
			w.Inputs.BoolValue = true

			w.Tick(tick.TickInfo{DeltaTime: 0.1})
			first := w.Outputs.FloatValue
			w.Tick(tick.TickInfo{DeltaTime: 0.9})

			Expect(w.Outputs.FloatValue).To(Equal(first))
		})

	It("should prime the output on start", func() {
		w.Inputs.BoolValue = true

		w.Start()

		Expect(w.Outputs.FloatValue).To(Equal(5.0))
	})
})
