package inlet_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/inlet"
	"github.com/san-kum/busemann/internal/isentropic"
)

func matchError(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

var _ = Describe("Design", func() {
	Context("from a Mach pair", Ordered, func() {
		var in *inlet.Inlet

		BeforeAll(func() {
			cfg := inlet.DefaultDesignConfig()
			cfg.FreestreamMach = 5.0
			cfg.ExitMach = 2.5

			var err error
			in, err = inlet.Design(cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("reaches the requested freestream Mach", func() {
			Expect(in.Performance.FreestreamMach).To(BeNumerically("~", 5.0, 1e-2))
			Expect(in.Performance.ExitMach).To(Equal(2.5))
		})

		It("reports a high shock recovery", func() {
			Expect(in.Performance.TotalPressureRecovery).To(BeNumerically("~", 0.979, 5e-3))
			Expect(in.Performance.TotalPressureRecovery).To(BeNumerically("<", 1.0))
		})

		It("composes the static temperature ratio consistently with the exit state", func() {
			t1, err := isentropic.TemperatureRatio(in.Performance.FreestreamMach, flow.GammaAir)
			Expect(err).NotTo(HaveOccurred())
			t3, err := isentropic.TemperatureRatio(2.5, flow.GammaAir)
			Expect(err).NotTo(HaveOccurred())

			Expect(in.Performance.StaticTemperatureRatio).To(BeNumerically("~", t3/t1, 1e-9))
			Expect(in.Performance.StaticPressureRatio).To(BeNumerically(">", 1.0))
		})

		It("places the terminal shock between the exit and the Mach cone", func() {
			p := in.Performance
			Expect(p.TerminalShockAngle).To(BeNumerically("<", math.Asin(1.0/2.5)))
			Expect(p.ShockAngle).To(BeNumerically("~", p.TerminalShockAngle+p.Deflection, 1e-12))
			Expect(p.PreShockMach).To(BeNumerically(">", 2.5))
			Expect(p.PreShockMach).To(BeNumerically("<", p.FreestreamMach))
		})

		It("builds a contour from the leading edge to the shock", func() {
			c := in.Contour
			Expect(c.Len()).To(Equal(len(in.Solution)))
			Expect(c.Points[0].X).To(BeNumerically("~", 0.0, 1e-12))
			Expect(c.CaptureRadius()).To(Equal(1.0))
			Expect(c.ExitRadius()).To(BeNumerically("<", 1.0))

			for i := 1; i < c.Len(); i++ {
				Expect(c.Points[i].X).To(BeNumerically(">", c.Points[i-1].X))
				Expect(c.Points[i].Y).To(BeNumerically("<=", c.Points[i-1].Y))
			}
		})

		It("puts the focal point on the axis ahead of the exit", func() {
			c := in.Contour
			Expect(c.Focus.Y).To(Equal(0.0))
			Expect(c.Focus.X).To(BeNumerically(">", 0.0))
			Expect(c.Focus.X).To(BeNumerically("<", c.Points[c.Len()-1].X))
		})

		It("derives contraction and length from the contour", func() {
			p := in.Performance
			Expect(p.ContractionRatio).To(BeNumerically("~", 9.29, 0.1))
			Expect(p.LengthRatio).To(BeNumerically("~", 5.89, 0.05))
		})
	})

	Context("from a recovery target", Ordered, func() {
		var in *inlet.Inlet

		BeforeAll(func() {
			cfg := inlet.DefaultDesignConfig()
			cfg.Method = inlet.MethodRecovery
			cfg.ExitMach = 2.5
			cfg.Recovery = 0.9

			var err error
			in, err = inlet.Design(cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("meets the recovery", func() {
			Expect(in.Performance.TotalPressureRecovery).To(BeNumerically("~", 0.9, 1e-6))
		})

		It("finds the matching freestream", func() {
			Expect(in.Performance.FreestreamMach).To(BeNumerically("~", 7.59, 0.05))
		})

		It("honours the capture radius", func() {
			cfg := in.Config
			cfg.CaptureRadius = 2.0
			scaled, err := inlet.Design(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(scaled.Contour.CaptureRadius()).To(Equal(2.0))
			Expect(scaled.Performance.LengthRatio).To(BeNumerically("~", in.Performance.LengthRatio, 1e-9))
		})
	})

	DescribeTable("rejects invalid configurations",
		func(mutate func(*inlet.DesignConfig), target error) {
			cfg := inlet.DefaultDesignConfig()
			cfg.FreestreamMach = 5.0
			cfg.ExitMach = 2.5
			mutate(&cfg)

			_, err := inlet.Design(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err).To(Satisfy(matchError(target)))
		},
		Entry("gamma at one", func(c *inlet.DesignConfig) { c.Gamma = 1.0 }, flow.ErrInvalidSpecificHeatRatio),
		Entry("subsonic exit", func(c *inlet.DesignConfig) { c.ExitMach = 0.8 }, flow.ErrInvalidMachNumber),
		Entry("freestream below exit", func(c *inlet.DesignConfig) { c.FreestreamMach = 2.0 }, flow.ErrInvalidMachNumber),
		Entry("recovery above one", func(c *inlet.DesignConfig) {
			c.Method = inlet.MethodRecovery
			c.Recovery = 1.2
		}, flow.ErrInvalidRatio),
		Entry("recovery below the strongest shock", func(c *inlet.DesignConfig) {
			c.Method = inlet.MethodRecovery
			c.Recovery = 0.2
		}, flow.ErrDesignOutOfRange),
		Entry("freestream beyond the search range", func(c *inlet.DesignConfig) { c.MaxNormalMach = 1.2 }, flow.ErrDesignOutOfRange),
	)

	It("reports the local error estimate only for rk45", func() {
		cfg := inlet.DefaultDesignConfig()
		cfg.FreestreamMach = 4.0
		cfg.ExitMach = 2.0

		rk4, err := inlet.Design(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(rk4.Performance.MaxLocalError).To(BeZero())

		cfg.Integrator = "rk45"
		rk45, err := inlet.Design(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(rk45.Performance.MaxLocalError).To(BeNumerically(">", 0))
		Expect(rk45.Performance.FreestreamMach).To(BeNumerically("~", rk4.Performance.FreestreamMach, 1e-2))
	})

	It("rejects an unknown integrator", func() {
		cfg := inlet.DefaultDesignConfig()
		cfg.FreestreamMach = 5.0
		cfg.ExitMach = 2.5
		cfg.Integrator = "leapfrog"

		_, err := inlet.Design(cfg)
		Expect(err).To(MatchError(ContainSubstring("unknown integrator")))
	})

	It("stops when the context is cancelled", func() {
		cfg := inlet.DefaultDesignConfig()
		cfg.FreestreamMach = 5.0
		cfg.ExitMach = 2.5

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := inlet.NewDesigner().Design(ctx, cfg)
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})
})
