package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/physics"
)

var _ = Describe("Configurable models", func() {
	It("round-trips sphere parameters by name", func() {
		s := physics.DefaultSphere()
		var c dynamo.Configurable = &s

		for name := range c.GetParams() {
			Expect(c.SetParam(name, 2.5)).To(Succeed())
		}
		for _, v := range c.GetParams() {
			Expect(v).To(Equal(2.5))
		}
	})

	It("round-trips wing parameters by name", func() {
		w := physics.NewWing(physics.DefaultLiftCoupling, 10, 0.05)
		var c dynamo.Configurable = &w

		Expect(c.SetParam("speed", 30)).To(Succeed())
		Expect(w.Speed).To(Equal(30.0))
		Expect(c.GetParams()).To(HaveKeyWithValue("trim", 0.05))
	})

	It("rejects unknown names", func() {
		s := physics.DefaultSphere()
		Expect(s.SetParam("mass", 1)).To(MatchError(dynamo.ErrUnknownParam))

		w := physics.Wing{}
		Expect(w.SetParam("chord", 1)).To(MatchError(dynamo.ErrUnknownParam))
	})
})
