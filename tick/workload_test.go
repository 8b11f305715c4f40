package tick

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WorkloadBase", func() {
	It("should carry the given name", func() {
		b := NewWorkloadBase("Robot.Filter")

		Expect(b.Name()).To(Equal("Robot.Filter"))
	})

	It("should assign a unique ID to every workload", func() {
		b1 := NewWorkloadBase("a")
		b2 := NewWorkloadBase("b")

		Expect(b1.ID()).NotTo(BeEmpty())
		Expect(b1.ID()).NotTo(Equal(b2.ID()))
	})
})
