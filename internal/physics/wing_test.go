package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aerosim/internal/physics"
)

var _ = Describe("LiftCoefficient", func() {
	DescribeTable("inside the linear band",
		func(angle float64) {
			Expect(physics.LiftCoefficient(angle)).To(Equal(2 * math.Pi * angle))
		},
		Entry("zero", 0.0),
		Entry("small positive", 0.05),
		Entry("small negative", -0.2),
		Entry("upper boundary", math.Pi/10),
		Entry("lower boundary", -math.Pi/10),
	)

	DescribeTable("stalled",
		func(angle float64) {
			Expect(physics.LiftCoefficient(angle)).To(Equal(0.0))
		},
		Entry("just above", math.Nextafter(math.Pi/10, 1)),
		Entry("just below", math.Nextafter(-math.Pi/10, -1)),
		Entry("large positive", 1.0),
		Entry("large negative", -1.2),
	)
})

var _ = Describe("Wing", func() {
	It("restores toward zero with (2π)² stiffness when lift is off", func() {
		w := physics.NewWing(0, 10, 0.05)
		f := w.Force()
		Expect(f(0.5, 0, 0)).To(BeNumerically("~", -math.Pow(2*math.Pi, 2)*0.5, 1e-12))
	})

	It("adds lift at the trim angle when at rest", func() {
		w := physics.NewWing(physics.DefaultLiftCoupling, 20, 0.05)
		f := w.Force()
		expected := physics.DefaultLiftCoupling * 2 * math.Pi * 0.05 * 20 * 20
		Expect(f(0, 0, 0)).To(BeNumerically("~", expected, 1e-12))
	})

	It("reduces the angle of attack by the induced angle", func() {
		w := physics.NewWing(physics.DefaultLiftCoupling, 10, 0.05)
		Expect(w.AngleOfAttack(0)).To(Equal(0.05))
		Expect(w.AngleOfAttack(10)).To(BeNumerically("~", 0.05-math.Pi/4, 1e-12))
	})

	It("loses lift once the induced angle stalls the section", func() {
		w := physics.NewWing(physics.DefaultLiftCoupling, 10, 0.05)
		f := w.Force()
		Expect(f(0, -10, 0)).To(Equal(0.0))
	})

	It("ignores time", func() {
		f := physics.NewWing(physics.DefaultLiftCoupling, 15, 0.1).Force()
		Expect(f(0.2, 0.3, 0)).To(Equal(f(0.2, 0.3, 99)))
	})

	It("propagates NaN for zero forward speed at rest", func() {
		w := physics.NewWing(physics.DefaultLiftCoupling, 0, 0.05)
		Expect(math.IsNaN(w.AngleOfAttack(0))).To(BeTrue())
	})

	It("converts radians to degrees", func() {
		Expect(physics.Degrees(math.Pi)).To(BeNumerically("~", 180, 1e-12))
	})
})
