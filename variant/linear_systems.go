package variant

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	diffur "github.com/Danila-Bain/diffurcheck-telegram-bot"
)

// LinearSystems is the name of the LinearSystems2025 generator.
const LinearSystems = "linear_systems_2025"

const (
	equationStatement = "Для следующих однородного и неоднородного уравнений найдите общее решение"
	systemStatement   = "Для следующих однородной и неоднородной систем уравнений найдите общее решение"
)

// LinearSystems2025 samples three scalar equations and three first-order
// systems:
//
//  1. distinct real roots of different magnitude, non-resonant forcing
//  2. a double real root with resonant x^2 e^(rx), or a pure imaginary pair
//     with mixed trigonometric forcing
//  3. a double pure imaginary pair (biquadratic characteristic polynomial)
//  4. a diagonalizable 2x2 system
//  5. a 2x2 Jordan block or a complex pair
//  6. a 3x3 system with chains of length 2 and 1 for one eigenvalue
type LinearSystems2025 struct{}

func (LinearSystems2025) Name() string { return LinearSystems }

func (LinearSystems2025) Generate(rng *rand.Rand, cfg Config) (Sheet, error) {
	first, err := distinctRootsEquation(rng, cfg)
	if err != nil {
		return Sheet{}, err
	}
	eqs := []diffur.LinEq{
		first,
		repeatedRootEquation(rng, cfg),
		biquadraticEquation(rng, cfg),
	}

	var systems []diffur.LinSys
	for _, build := range []func(*rand.Rand, Config) (diffur.LinSys, error){
		diagonalSystem, jordanOrComplexSystem, chainSystem,
	} {
		sys, err := build(rng, cfg)
		if err != nil {
			return Sheet{}, err
		}
		systems = append(systems, sys)
	}

	sheet := Sheet{Problem: linearSystemsProblem, Solution: linearSystemsSolution}
	for i, eq := range eqs {
		sheet.Tasks = append(sheet.Tasks, NewTask(equationStatement, eq))
		sheet.Curves = append(sheet.Curves, Curve{
			Label: fmt.Sprintf("y_%d", i+1),
			Eval:  eq.ParticularEval,
		})
	}
	for _, sys := range systems {
		sheet.Tasks = append(sheet.Tasks, NewTask(systemStatement, sys))
	}
	return sheet, nil
}

// ============================================================
// Scalar equations
// ============================================================

// distinctRealPair draws two roots whose absolute values differ.
func distinctRealPair(rng *rand.Rand, cfg Config) (float64, float64, error) {
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		a, b := choose(rng, cfg.Roots), choose(rng, cfg.Roots)
		if math.Abs(a) != math.Abs(b) {
			return a, b, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: no root pair of different magnitude after %d draws", ErrSamplingExhausted, cfg.MaxAttempts)
}

// exponentAvoiding draws an exponent that is not one of the roots.
func exponentAvoiding(rng *rand.Rand, cfg Config, r1, r2 float64) (float64, error) {
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		k := choose(rng, cfg.Roots)
		if k != r1 && k != r2 {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: no exponent avoiding %v and %v after %d draws", ErrSamplingExhausted, r1, r2, cfg.MaxAttempts)
}

func distinctRootsEquation(rng *rand.Rand, cfg Config) (diffur.LinEq, error) {
	r1, r2, err := distinctRealPair(rng, cfg)
	if err != nil {
		return diffur.LinEq{}, err
	}
	eq := diffur.LinEqFromRoots(diffur.Real(r1), diffur.Real(r2))

	k, err := exponentAvoiding(rng, cfg, r1, r2)
	if err != nil {
		return diffur.LinEq{}, err
	}
	c1, c2, c3 := choose(rng, cfg.Coefficients), choose(rng, cfg.Coefficients), choose(rng, cfg.Coefficients)
	if coin(rng) {
		return eq.WithParticular(
			diffur.QPoly{Re: k, Cos: diffur.P(c1)},
			diffur.QPoly{Cos: diffur.P(c2, 0, c3)},
		), nil
	}
	return eq.WithParticular(diffur.QPoly{Re: k, Cos: diffur.P(0, 0, c3)}), nil
}

func repeatedRootEquation(rng *rand.Rand, cfg Config) diffur.LinEq {
	if coin(rng) {
		r := choose(rng, cfg.Roots)
		eq := diffur.LinEqFromRoots(diffur.Real(r), diffur.Real(r))
		c1, c2 := choose(rng, cfg.Coefficients), choose(rng, cfg.Coefficients)
		return eq.WithParticular(
			diffur.QPoly{Re: r, Cos: diffur.P(0, 0, c1)},
			diffur.QPoly{Re: -r, Cos: diffur.P(c2)},
		)
	}

	w := choose(rng, cfg.Frequencies)
	eq := diffur.LinEqFromRoots(diffur.Complex(0, w))
	re := choose(rng, cfg.Roots)
	c1, c2 := choose(rng, cfg.Coefficients), choose(rng, cfg.Coefficients)

	// The resonant candidate carries a factor x: a bare cos(wx) or sin(wx)
	// is annihilated by the operator and would be dropped.
	var ys []diffur.QPoly
	if coin(rng) {
		ys = []diffur.QPoly{
			{Im: w, Cos: diffur.P(0, c1)},
			{Re: re, Im: w, Sin: diffur.P(c2)},
		}
	} else {
		ys = []diffur.QPoly{
			{Im: w, Sin: diffur.P(0, c1)},
			{Re: re, Im: w, Cos: diffur.P(c2)},
		}
	}
	shuffle(rng, ys)
	return eq.WithParticular(ys...)
}

func biquadraticEquation(rng *rand.Rand, cfg Config) diffur.LinEq {
	w := choose(rng, cfg.Frequencies)
	eq := diffur.LinEqFromRoots(diffur.Complex(0, w), diffur.Complex(0, w))
	c := choose(rng, cfg.Coefficients)
	return eq.WithParticular(diffur.QPoly{Im: w, Cos: diffur.P(0, 0, c)})
}

// ============================================================
// Systems
// ============================================================

// sampleTransform draws n×n matrices from the eigenvector table until one
// has an integer inverse and total weight Σ|c_ij| ≥ minWeight.
func sampleTransform(rng *rand.Rand, cfg Config, n int, minWeight float64) (c, inv *mat.Dense, err error) {
	data := make([]float64, n*n)
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		weight := 0.0
		for i := range data {
			data[i] = choose(rng, cfg.EigenvectorEntries)
			weight += math.Abs(data[i])
		}
		if weight < minWeight {
			continue
		}
		c = mat.NewDense(n, n, append([]float64(nil), data...))
		if ci, ok := diffur.IntegerInverse(c); ok {
			return c, ci, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: no %dx%d transform with an integer inverse after %d draws", ErrSamplingExhausted, n, n, cfg.MaxAttempts)
}

// systemFromBlocks samples a transform and builds A = C·J·C⁻¹ with the
// exact integer inverse, so A has integer entries.
func systemFromBlocks(rng *rand.Rand, cfg Config, minWeight float64, blocks ...diffur.Block) (diffur.LinSys, error) {
	n := diffur.BlocksDim(blocks)
	c, inv, err := sampleTransform(rng, cfg, n, minWeight)
	if err != nil {
		return diffur.LinSys{}, err
	}
	var cj, a mat.Dense
	cj.Mul(c, diffur.JordanMatrix(blocks))
	a.Mul(&cj, inv)
	return diffur.NewLinSys(&a, c, blocks)
}

// constVector puts polys in the cosine parts and leaves the sine parts zero.
func constVector(re, im float64, polys ...diffur.Poly) diffur.VQPoly {
	return diffur.VQPoly{Re: re, Im: im, Cos: polys, Sin: make([]diffur.Poly, len(polys))}
}

func diagonalSystem(rng *rand.Rand, cfg Config) (diffur.LinSys, error) {
	r1, r2, err := distinctRealPair(rng, cfg)
	if err != nil {
		return diffur.LinSys{}, err
	}
	sys, err := systemFromBlocks(rng, cfg, 0,
		diffur.Block{Root: diffur.Real(r1), Size: 1},
		diffur.Block{Root: diffur.Real(r2), Size: 1},
	)
	if err != nil {
		return diffur.LinSys{}, err
	}

	k, err := exponentAvoiding(rng, cfg, r1, r2)
	if err != nil {
		return diffur.LinSys{}, err
	}
	c1, c2, c3 := choose(rng, cfg.Coefficients), choose(rng, cfg.Coefficients), choose(rng, cfg.Coefficients)
	if coin(rng) {
		p1 := []diffur.Poly{diffur.P(c1), nil}
		shuffle(rng, p1)
		p2 := []diffur.Poly{diffur.P(c2), diffur.P(0, 0, c3)}
		shuffle(rng, p2)
		return sys.WithParticular(constVector(k, 0, p1...), constVector(0, 0, p2...)), nil
	}
	p := []diffur.Poly{diffur.P(c1, 0, c3), diffur.P(0, c2)}
	shuffle(rng, p)
	return sys.WithParticular(constVector(k, 0, p...)), nil
}

func jordanOrComplexSystem(rng *rand.Rand, cfg Config) (diffur.LinSys, error) {
	var (
		blocks []diffur.Block
		re, im float64
	)
	if coin(rng) {
		re = choose(rng, cfg.Roots)
		blocks = []diffur.Block{{Root: diffur.Real(re), Size: 2}}
	} else {
		re, im = choose(rng, cfg.Roots), choose(rng, cfg.SystemFrequencies)
		blocks = []diffur.Block{{Root: diffur.Complex(re, im), Size: 1}}
	}
	sys, err := systemFromBlocks(rng, cfg, 0, blocks...)
	if err != nil {
		return diffur.LinSys{}, err
	}

	c1, c2 := choose(rng, cfg.Coefficients), choose(rng, cfg.Coefficients)
	p1 := []diffur.Poly{diffur.P(c1), nil}
	p2 := []diffur.Poly{nil, diffur.P(c2)}
	if coin(rng) {
		p1, p2 = p2, p1
	}
	if im == 0 {
		return sys.WithParticular(constVector(re, 0, p1...), constVector(-re, 0, p2...)), nil
	}
	return sys.WithParticular(constVector(re, 0, p1...), constVector(re, im, p2...)), nil
}

func chainSystem(rng *rand.Rand, cfg Config) (diffur.LinSys, error) {
	r := choose(rng, cfg.Roots)
	sys, err := systemFromBlocks(rng, cfg, cfg.MinEigenvectorWeight,
		diffur.Block{Root: diffur.Real(r), Size: 2},
		diffur.Block{Root: diffur.Real(r), Size: 1},
	)
	if err != nil {
		return diffur.LinSys{}, err
	}
	p := []diffur.Poly{diffur.P(choose(rng, cfg.PositiveCoefficients)), nil, nil}
	shuffle(rng, p)
	return sys.WithParticular(constVector(r, 0, p...)), nil
}
