package diffur

import (
	"fmt"
	"slices"
)

// ============================================================
// LinEq — constant-coefficient linear equation L[y] = f
// ============================================================

// LinEq is the operator L[y] = Σ Coeffs[k]·y^(k) together with its
// homogeneous basis and the particular solutions attached so far. Coeffs are
// ascending: Coeffs[0] multiplies y.
type LinEq struct {
	Coeffs  []float64
	Roots   []RootMult
	F       []QPoly
	Y0Basis []QPoly
	YPart   []QPoly
}

// LinEqFromRoots builds the equation whose characteristic polynomial has the
// given roots, repeated roots listed once per multiplicity.
func LinEqFromRoots(roots ...Root) LinEq {
	char := P(1)
	sizes := make([]int, len(roots))
	for i, r := range roots {
		char = char.Mul(r.Factor())
		sizes[i] = 1
	}
	merged := mergeRoots(roots, sizes)

	var basis []QPoly
	for _, rm := range merged {
		r := rm.Root
		for i := 0; i < rm.Mult; i++ {
			if r.IsReal() {
				basis = append(basis, QPoly{Re: r.Re, Cos: Monomial(i)})
				continue
			}
			basis = append(basis,
				QPoly{Re: r.Re, Im: r.Im, Cos: Monomial(i)},
				QPoly{Re: r.Re, Im: r.Im, Sin: Monomial(i)},
			)
		}
	}

	return LinEq{
		Coeffs:  []float64(char),
		Roots:   merged,
		Y0Basis: basis,
	}
}

func (e LinEq) Order() int { return len(e.Coeffs) - 1 }

// Apply evaluates the operator on y.
func (e LinEq) Apply(y QPoly) QPoly {
	f := QPoly{Re: y.Re, Im: y.Im}
	d := y
	for _, c := range e.Coeffs {
		f.Cos = f.Cos.Add(d.Cos.Scale(c))
		f.Sin = f.Sin.Add(d.Sin.Scale(c))
		d = d.Derivative()
	}
	return f
}

// AddParticular derives f = L[y] and attaches the pair. A y annihilated by
// the operator would leave f = 0 and is not attached; the returned flag
// reports whether y was taken.
func (e LinEq) AddParticular(y QPoly) (LinEq, bool) {
	f := e.Apply(y)
	if f.Cos.IsZeroWithin(zeroEps) && f.Sin.IsZeroWithin(zeroEps) {
		return e, false
	}
	e.F = append(slices.Clone(e.F), f)
	e.YPart = append(slices.Clone(e.YPart), y)
	return e, true
}

// WithParticular folds AddParticular over ys.
func (e LinEq) WithParticular(ys ...QPoly) LinEq {
	for _, y := range ys {
		e, _ = e.AddParticular(y)
	}
	return e
}

// ============================================================
// LinEq rendering
// ============================================================

func derivativeLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		switch i {
		case 0:
			labels[i] = "y"
		case 1, 2, 3, 4:
			labels[i] = "y" + primes(i)
		default:
			labels[i] = fmt.Sprintf("y^((%d))", i)
		}
	}
	return labels
}

func primes(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "'"
	}
	return s
}

func (e LinEq) lhs() string {
	return LinearCombinationRev(e.Coeffs, derivativeLabels(len(e.Coeffs))).Typst()
}

func (e LinEq) EquationHomoTypst() string { return e.lhs() + "=0" }

func (e LinEq) EquationTypst() string {
	var rhs Sum
	for _, f := range e.F {
		rhs = append(rhs, f.Terms("x")...)
	}
	return e.lhs() + "=" + rhs.Typst()
}

func (e LinEq) CharEquationTypst() string {
	return LinearCombinationRev(e.Coeffs, powerLabels("lambda", len(e.Coeffs))).Typst() + "=0"
}

func (e LinEq) CharRootsTypst() string { return charRootsTypst(e.Roots) }

func (e LinEq) homogeneous() Sum {
	s := make(Sum, 0, len(e.Y0Basis))
	for i, b := range e.Y0Basis {
		s = append(s, Product(fmt.Sprintf("c_(%d)", i+1), b.Terms("x")))
	}
	return s
}

func (e LinEq) SolutionHomoTypst() string { return "y_0=" + e.homogeneous().Typst() }

func (e LinEq) SolutionTypst() string {
	s := e.homogeneous()
	for _, y := range e.YPart {
		s = append(s, y.Terms("x")...)
	}
	return "y=" + s.Typst()
}

// ParticularEval evaluates the sum of the attached particular solutions.
func (e LinEq) ParticularEval(x float64) float64 {
	s := 0.0
	for _, y := range e.YPart {
		s += y.Eval(x)
	}
	return s
}
