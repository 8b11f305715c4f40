package tick

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * KHz
		Expect(f.Period()).To(BeNumerically("==", 1e-3))
	})

	It("should get this tick", func() {
		var f = 1 * Hz
		Expect(f.ThisTick(1)).To(BeNumerically("~", 1, 1e-12))
	})

	It("should get this tick when the time is between ticks", func() {
		var f = 10 * Hz
		Expect(f.ThisTick(0.55)).To(BeNumerically("~", 0.6, 1e-12))
	})

	It("should get the next tick", func() {
		var f = 10 * Hz
		Expect(f.NextTick(0.5)).To(BeNumerically("~", 0.6, 1e-12))
	})

	It("should get the next tick, if the current time is not on a tick",
		func() {
			var f = 10 * Hz
			Expect(f.NextTick(0.55)).To(BeNumerically("~", 0.6, 1e-12))
		})

	It("should count cycles", func() {
		var f = 100 * Hz
		Expect(f.Cycle(2.5)).To(Equal(uint64(250)))
	})

	It("should get the time n cycles later", func() {
		var f = 10 * Hz
		Expect(f.NCyclesLater(3, 0.5)).To(BeNumerically("~", 0.8, 1e-12))
	})

	It("should get the tick no earlier than a time", func() {
		var f = 10 * Hz
		Expect(f.NoEarlierThan(0.51)).To(BeNumerically("~", 0.6, 1e-12))
		Expect(f.NoEarlierThan(0.6)).To(BeNumerically("~", 0.6, 1e-12))
	})

	It("should panic on zero frequency", func() {
		var f Freq
		Expect(func() { f.Period() }).To(Panic())
	})
})
