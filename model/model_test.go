package model

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/robotick-labs/robotick/tick"
	"github.com/robotick-labs/robotick/workloads/transform"
)

var _ = Describe("Model", func() {
	var m *Model

	BeforeEach(func() {
		output := filepath.Join(GinkgoT().TempDir(), "model_test")
		m = MakeBuilder().
			WithoutMonitoring().
			WithFreq(4 * tick.Hz).
			WithOutputFileName(output).
			Build()
	})

	AfterEach(func() {
		m.Terminate()
	})

	It("should add and look up workloads", func() {
		filter := transform.NewLowPassFilter("Filter")

		m.AddWorkload(filter)

		Expect(m.GetWorkloadByName("Filter")).To(BeIdenticalTo(filter))
		Expect(m.Workloads()).To(HaveLen(1))
	})

	It("should refuse duplicated workload names", func() {
		m.AddWorkload(transform.NewLowPassFilter("Filter"))

		Expect(func() {
			m.AddWorkload(transform.NewBoolToFloat("Filter"))
		}).To(Panic())
	})

	It("should tick added workloads through the engine", func() {
		filter := transform.NewLowPassFilter("Filter")
		filter.Inputs.Value = 10.0
		m.AddWorkload(filter)

		err := m.GetEngine().RunTicks(2)

		Expect(err).To(BeNil())
		Expect(filter.Outputs.Result).To(BeNumerically("~", 6.321, 1e-3))
	})

	It("should record outputs through the tick recorder", func() {
		filter := transform.NewLowPassFilter("Filter")
		filter.Inputs.Value = 1.0
		m.AddWorkload(filter)
		m.RecordOutputs(filter, &filter.Outputs, "filter")

		Expect(m.GetEngine().RunTicks(3)).To(Succeed())

		recorder := m.GetDataRecorder()
		Expect(recorder.ListTables()).To(ContainElement("filter"))
		recorder.Flush()
	})

	It("should refuse a monitor port without monitoring", func() {
		Expect(func() {
			MakeBuilder().
				WithoutMonitoring().
				WithMonitorPort(2000).
				Build()
		}).To(Panic())
	})
})
