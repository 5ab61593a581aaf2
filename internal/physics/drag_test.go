package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aerosim/internal/physics"
)

var _ = Describe("Reynolds", func() {
	It("is linear in velocity and diameter", func() {
		base := physics.Reynolds(3.0, 0.02, 1.5e-5)
		Expect(physics.Reynolds(6.0, 0.02, 1.5e-5)).To(BeNumerically("~", 2*base, 1e-9))
		Expect(physics.Reynolds(3.0, 0.06, 1.5e-5)).To(BeNumerically("~", 3*base, 1e-9))
	})

	It("is inversely proportional to viscosity", func() {
		base := physics.Reynolds(3.0, 0.02, 1.5e-5)
		Expect(physics.Reynolds(3.0, 0.02, 3.0e-5)).To(BeNumerically("~", base/2, 1e-9))
	})

	It("keeps the sign of the velocity", func() {
		Expect(physics.Reynolds(-2.0, 0.01, 1e-5)).To(BeNumerically("<", 0))
	})

	It("propagates Inf for zero viscosity", func() {
		Expect(math.IsInf(physics.Reynolds(1.0, 0.01, 0), 1)).To(BeTrue())
		Expect(math.IsNaN(physics.Reynolds(0, 0.01, 0))).To(BeTrue())
	})
})

var _ = Describe("SphereDragCoefficient", func() {
	DescribeTable("bands",
		func(re, expected float64) {
			Expect(physics.SphereDragCoefficient(re)).To(BeNumerically("~", expected, 1e-12))
		},
		Entry("at rest", 0.0, 0.0),
		Entry("Stokes interior", 0.5, 48.0),
		Entry("Stokes upper bound", 1.0, 24.0),
		Entry("intermediate interior", 100.0, 25/math.Pow(100, 0.646)),
		Entry("intermediate upper bound", 400.0, 25/math.Pow(400, 0.646)),
		Entry("plateau interior", 1e4, 0.5),
		Entry("plateau upper bound", 3e5, 0.5),
		Entry("drag crisis interior", 1e6, 0.000366*math.Pow(1e6, 0.4275)),
		Entry("drag crisis upper bound", 2e6, 0.000366*math.Pow(2e6, 0.4275)),
		Entry("supercritical", 5e6, 0.18),
	)

	It("reproduces the jump at Re = 400", func() {
		below := physics.SphereDragCoefficient(400.0)
		above := physics.SphereDragCoefficient(math.Nextafter(400.0, math.Inf(1)))

		Expect(below).To(BeNumerically("~", 0.5212, 1e-4))
		Expect(above).To(Equal(0.5))
		Expect(below).NotTo(Equal(above))
	})

	It("switches bands exactly past each upper bound", func() {
		Expect(physics.SphereDragCoefficient(math.Nextafter(1.0, 2))).To(BeNumerically("~", 25/math.Pow(1, 0.646), 1e-9))
		Expect(physics.SphereDragCoefficient(math.Nextafter(3e5, 4e5))).To(BeNumerically("~", 0.0803, 1e-4))
		Expect(physics.SphereDragCoefficient(math.Nextafter(2e6, 3e6))).To(Equal(0.18))
	})
})

var _ = Describe("Acceleration", func() {
	sphere := physics.DefaultSphere()

	It("is buoyancy-corrected gravity over added mass at rest", func() {
		rho := sphere.FluidDensity / sphere.SphereDensity
		expected := (1 - rho) * sphere.Gravity / (1 + 0.5*rho)
		Expect(sphere.Acceleration(0)).To(BeNumerically("~", expected, 1e-12))
	})

	It("matches the scalar form", func() {
		Expect(sphere.Acceleration(12.5)).To(Equal(physics.Acceleration(12.5,
			sphere.Diameter, sphere.KinematicViscosity, sphere.SphereDensity, sphere.FluidDensity, sphere.Gravity)))
	})

	It("opposes the motion with drag", func() {
		atRest := sphere.Acceleration(0)
		Expect(sphere.Acceleration(10)).To(BeNumerically("<", atRest))
		Expect(sphere.Acceleration(-10)).To(BeNumerically(">", atRest))
	})

	It("applies the same drag magnitude in either direction", func() {
		atRest := sphere.Acceleration(0)
		for _, v := range []float64{1e-4, 0.5, 10, 41} {
			down := atRest - sphere.Acceleration(v)
			up := sphere.Acceleration(-v) - atRest
			Expect(down).To(BeNumerically(">", 0))
			Expect(up).To(BeNumerically("~", down, 1e-12))
		}
	})

	It("vanishes at the plateau terminal velocity", func() {
		vt := sphere.TerminalVelocity()
		Expect(vt).To(BeNumerically("~", 41.393, 1e-3))
		Expect(sphere.Acceleration(vt)).To(BeNumerically("~", 0, 1e-9))
	})

	It("ignores position and time in the force", func() {
		f := sphere.Force()
		Expect(f(0, 5, 0)).To(Equal(f(100, 5, 42)))
	})

	It("falls back to the supercritical value when viscosity is zero", func() {
		broken := sphere
		broken.KinematicViscosity = 0
		Expect(math.IsInf(broken.Reynolds(1), 1)).To(BeTrue())
		Expect(physics.SphereDragCoefficient(broken.Reynolds(1))).To(Equal(0.18))
	})
})
