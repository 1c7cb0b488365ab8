package variant

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"

	diffur "github.com/Danila-Bain/diffurcheck-telegram-bot"
)

func TestLinearSystems_SamplingRules(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()

	for n := 0; n < 60; n++ {
		rng := NewRand(Request{VariantNumber: n, Generator: LinearSystems}, 0)

		eq1, err := distinctRootsEquation(rng, cfg)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(eq1.Roots).To(HaveLen(2))
		g.Expect(math.Abs(eq1.Roots[0].Root.Re)).NotTo(Equal(math.Abs(eq1.Roots[1].Root.Re)))
		g.Expect(len(eq1.F)).To(BeNumerically(">=", 1))

		eq2 := repeatedRootEquation(rng, cfg)
		g.Expect(eq2.F).To(HaveLen(2), "both resonant and plain candidates survive")
		for i, y := range eq2.YPart {
			f := eq2.Apply(y)
			g.Expect(f.Cos.Sub(eq2.F[i].Cos).IsZeroWithin(1e-9)).To(BeTrue())
			g.Expect(f.Sin.Sub(eq2.F[i].Sin).IsZeroWithin(1e-9)).To(BeTrue())
		}

		eq3 := biquadraticEquation(rng, cfg)
		g.Expect(eq3.Order()).To(Equal(4))
		g.Expect(eq3.F).To(HaveLen(1))

		for _, build := range []func(*rand.Rand, Config) (diffur.LinSys, error){diagonalSystem, jordanOrComplexSystem, chainSystem} {
			sys, err := build(rng, cfg)
			g.Expect(err).NotTo(HaveOccurred())
			r, c := sys.A.Dims()
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v := sys.A.At(i, j)
					g.Expect(v).To(Equal(math.Round(v)), "A has integer entries")
				}
			}
			for _, b := range sys.Y0Basis {
				g.Expect(sys.Residual(b).IsZeroWithin(1e-9)).To(BeTrue())
			}
			g.Expect(sys.F).NotTo(BeEmpty())
		}
	}
}

func TestChainSystem_Structure(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	rng := NewRand(Request{VariantNumber: 5, Generator: LinearSystems}, 0)

	sys, err := chainSystem(rng, cfg)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sys.Dim()).To(Equal(3))
	g.Expect(sys.Roots).To(HaveLen(1))
	g.Expect(sys.Roots[0].Mult).To(Equal(3))

	weight := 0.0
	r, c := sys.C.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			weight += math.Abs(sys.C.At(i, j))
		}
	}
	g.Expect(weight).To(BeNumerically(">=", cfg.MinEigenvectorWeight))

	// the single particular solution resonates and is still attached
	g.Expect(sys.YPart).To(HaveLen(1))
	g.Expect(sys.YPart[0].Re).To(Equal(sys.Roots[0].Root.Re))
}

func TestSampleTransform_Exhausted(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	cfg.EigenvectorEntries = []float64{2}
	cfg.MaxAttempts = 10
	_, _, err := sampleTransform(NewRand(Request{}, 0), cfg, 2, 0)
	g.Expect(errors.Is(err, ErrSamplingExhausted)).To(BeTrue())

	cfg = DefaultConfig()
	cfg.MaxAttempts = 10
	_, _, err = sampleTransform(NewRand(Request{}, 0), cfg, 2, 100)
	g.Expect(errors.Is(err, ErrSamplingExhausted)).To(BeTrue(), "weight bound above any draw")
}

func TestRootSamplers_Exhausted(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	cfg.Roots = []float64{-2, 2}
	cfg.MaxAttempts = 20
	rng := NewRand(Request{}, 0)

	_, _, err := distinctRealPair(rng, cfg)
	g.Expect(errors.Is(err, ErrSamplingExhausted)).To(BeTrue())

	_, err = exponentAvoiding(rng, cfg, -2, 2)
	g.Expect(errors.Is(err, ErrSamplingExhausted)).To(BeTrue())

	_, err = distinctRootsEquation(rng, cfg)
	g.Expect(errors.Is(err, ErrSamplingExhausted)).To(BeTrue())

	_, err = diagonalSystem(rng, cfg)
	g.Expect(errors.Is(err, ErrSamplingExhausted)).To(BeTrue())

	cfg = DefaultConfig()
	k, err := exponentAvoiding(rng, cfg, 1, 2)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(k).NotTo(BeElementOf(1.0, 2.0))
}
