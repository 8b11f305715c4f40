package monitoring

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/robotick-labs/robotick/tick"
	"github.com/robotick-labs/robotick/workloads/examples"
)

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *tick.SerialEngine
	)

	BeforeEach(func() {
		m = NewMonitor()
		engine = tick.NewSerialEngine(4 * tick.Hz)
		m.RegisterEngine(engine)
	})

	It("should register workloads", func() {
		m.RegisterWorkload(examples.NewStub("Stub1"))
		m.RegisterWorkload(examples.NewStub("Stub2"))

		Expect(m.workloads).To(HaveLen(2))
	})

	It("should list workload names as JSON", func() {
		m.RegisterWorkload(examples.NewStub("Stub1"))
		m.RegisterWorkload(examples.NewStub("Stub2"))

		rec := httptest.NewRecorder()
		m.listWorkloads(rec, nil)

		Expect(rec.Body.String()).To(Equal(`["Stub1","Stub2"]`))
	})

	It("should report the current time and tick count", func() {
		stub := examples.NewStub("Stub")
		engine.RegisterWorkload(stub)
		Expect(engine.RunTicks(2)).To(Succeed())

		rec := httptest.NewRecorder()
		m.now(rec, nil)

		Expect(rec.Body.String()).To(ContainSubstring(`"tick_count":2`))
		Expect(rec.Body.String()).To(ContainSubstring(`"now":0.5`))
	})

	It("should answer 404 for an unknown workload", func() {
		rec := httptest.NewRecorder()

		workload := m.findWorkloadOr404(rec, "Nope")

		Expect(workload).To(BeNil())
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should find a registered workload by name", func() {
		stub := examples.NewStub("Stub")
		m.RegisterWorkload(stub)

		rec := httptest.NewRecorder()
		workload := m.findWorkloadOr404(rec, "Stub")

		Expect(workload).To(BeIdenticalTo(tick.Workload(stub)))
	})

	It("should reject an invalid tick count on run", func() {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/run?ticks=nope", nil)

		m.run(rec, req)

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})
