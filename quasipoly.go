package diffur

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ============================================================
// QPoly — e^{Re x}(Cos(x) cos(Im x) + Sin(x) sin(Im x))
// ============================================================

type QPoly struct {
	Re, Im float64
	Cos    Poly
	Sin    Poly
}

// Derivative applies the product rule; d/dx cos = -sin and d/dx sin = cos
// give the opposite signs of the Im cross terms.
func (q QPoly) Derivative() QPoly {
	return QPoly{
		Re:  q.Re,
		Im:  q.Im,
		Cos: q.Cos.Scale(q.Re).Add(q.Sin.Scale(q.Im)).Add(q.Cos.Derivative()),
		Sin: q.Sin.Scale(q.Re).Sub(q.Cos.Scale(q.Im)).Add(q.Sin.Derivative()),
	}
}

// DerivativeN differentiates n times.
func (q QPoly) DerivativeN(n int) QPoly {
	for i := 0; i < n; i++ {
		q = q.Derivative()
	}
	return q
}

func (q QPoly) IsZero() bool { return q.Cos.IsZero() && q.Sin.IsZero() }

func (q QPoly) Eval(x float64) float64 {
	e := math.Exp(q.Re * x)
	return e * (q.Cos.Eval(x)*math.Cos(q.Im*x) + q.Sin.Eval(x)*math.Sin(q.Im*x))
}

// Terms renders q in variable v. Each trig part becomes one term when its
// polynomial is a single monomial and a parenthesized term otherwise.
func (q QPoly) Terms(v string) Sum {
	exp := Exp(q.Re, v)
	if Rationalize(q.Im, Tolerance).IsZero() {
		return factorTerms(q.Cos, v, exp)
	}
	terms := factorTerms(q.Cos, v, join(exp, Cos(q.Im, v)))
	return append(terms, factorTerms(q.Sin, v, join(exp, Sin(q.Im, v)))...)
}

func (q QPoly) Typst(v string) string { return q.Terms(v).Typst() }

// factorTerms multiplies the polynomial p by an already rendered factor.
func factorTerms(p Poly, v, factor string) Sum {
	terms := p.Terms(v).nonZero()
	switch {
	case len(terms) == 0:
		return nil
	case factor == "":
		return terms
	case len(terms) == 1:
		return Sum{{Coef: terms[0].Coef, Label: join(terms[0].Label, factor)}}
	default:
		coef, group := parenthesize(terms)
		return Sum{{Coef: coef, Label: group + " " + factor}}
	}
}

func join(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// ============================================================
// VQPoly — vector quasi-polynomial sharing one (Re, Im)
// ============================================================

type VQPoly struct {
	Re, Im float64
	Cos    []Poly
	Sin    []Poly
}

// ConstVQPoly wraps a column of numbers as degree-0 cosine polynomials.
func ConstVQPoly(re, im float64, v []float64) VQPoly {
	cos := make([]Poly, len(v))
	for i, c := range v {
		cos[i] = P(c)
	}
	return VQPoly{Re: re, Im: im, Cos: cos, Sin: make([]Poly, len(v))}
}

func (q VQPoly) Dim() int { return max(len(q.Cos), len(q.Sin)) }

func (q VQPoly) Component(i int) QPoly {
	return QPoly{Re: q.Re, Im: q.Im, Cos: polyAt(q.Cos, i), Sin: polyAt(q.Sin, i)}
}

func polyAt(ps []Poly, i int) Poly {
	if i < len(ps) {
		return ps[i]
	}
	return nil
}

func (q VQPoly) Derivative() VQPoly {
	n := q.Dim()
	out := VQPoly{Re: q.Re, Im: q.Im, Cos: make([]Poly, n), Sin: make([]Poly, n)}
	for i := 0; i < n; i++ {
		d := q.Component(i).Derivative()
		out.Cos[i], out.Sin[i] = d.Cos, d.Sin
	}
	return out
}

// Antiderivative integrates every polynomial part; the exponential and trig
// factors are left alone.
func (q VQPoly) Antiderivative() VQPoly {
	return VQPoly{Re: q.Re, Im: q.Im, Cos: mapPolys(q.Cos, Poly.Antiderivative), Sin: mapPolys(q.Sin, Poly.Antiderivative)}
}

func (q VQPoly) Neg() VQPoly {
	neg := func(p Poly) Poly { return p.Scale(-1) }
	return VQPoly{Re: q.Re, Im: q.Im, Cos: mapPolys(q.Cos, neg), Sin: mapPolys(q.Sin, neg)}
}

// Swap returns (Sin, -Cos), the companion of q in a complex chain.
func (q VQPoly) Swap() VQPoly {
	neg := func(p Poly) Poly { return p.Scale(-1) }
	return VQPoly{Re: q.Re, Im: q.Im, Cos: mapPolys(q.Sin, Poly.trim), Sin: mapPolys(q.Cos, neg)}
}

// AddConst adds the column v to the cosine (or sine) polynomials.
func (q VQPoly) AddConst(v []float64, sin bool) VQPoly {
	n := max(q.Dim(), len(v))
	out := VQPoly{Re: q.Re, Im: q.Im, Cos: make([]Poly, n), Sin: make([]Poly, n)}
	for i := 0; i < n; i++ {
		out.Cos[i], out.Sin[i] = polyAt(q.Cos, i).trim(), polyAt(q.Sin, i).trim()
	}
	target := out.Cos
	if sin {
		target = out.Sin
	}
	for i, c := range v {
		target[i] = target[i].Add(P(c))
	}
	return out
}

// Sub subtracts r componentwise; both must share (Re, Im).
func (q VQPoly) Sub(r VQPoly) VQPoly {
	n := max(q.Dim(), r.Dim())
	out := VQPoly{Re: q.Re, Im: q.Im, Cos: make([]Poly, n), Sin: make([]Poly, n)}
	for i := 0; i < n; i++ {
		out.Cos[i] = polyAt(q.Cos, i).Sub(polyAt(r.Cos, i))
		out.Sin[i] = polyAt(q.Sin, i).Sub(polyAt(r.Sin, i))
	}
	return out
}

// Apply computes the broadcast product a·q of a real matrix with the
// polynomial-valued vector.
func (q VQPoly) Apply(a mat.Matrix) VQPoly {
	rows, cols := a.Dims()
	if cols != q.Dim() {
		panic("diffur: dimension mismatch in VQPoly.Apply")
	}
	out := VQPoly{Re: q.Re, Im: q.Im, Cos: make([]Poly, rows), Sin: make([]Poly, rows)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			aij := a.At(i, j)
			out.Cos[i] = out.Cos[i].Add(polyAt(q.Cos, j).Scale(aij))
			out.Sin[i] = out.Sin[i].Add(polyAt(q.Sin, j).Scale(aij))
		}
	}
	return out
}

func (q VQPoly) IsZeroWithin(eps float64) bool {
	for i := 0; i < q.Dim(); i++ {
		if !polyAt(q.Cos, i).IsZeroWithin(eps) || !polyAt(q.Sin, i).IsZeroWithin(eps) {
			return false
		}
	}
	return true
}

func (q VQPoly) Eval(x float64) []float64 {
	out := make([]float64, q.Dim())
	for i := range out {
		out[i] = q.Component(i).Eval(x)
	}
	return out
}

// Terms renders e^(Re v) vec(...) with the exponential pulled out front and
// every component rendered without it.
func (q VQPoly) Terms(v string) Sum {
	comps := make([]string, q.Dim())
	for i := range comps {
		c := q.Component(i)
		c.Re = 0
		comps[i] = c.Typst(v)
	}
	return Sum{{Coef: Frac{Num: 1, Den: 1}, Label: join(Exp(q.Re, v), "vec("+strings.Join(comps, ", ")+")")}}
}

func (q VQPoly) Typst(v string) string { return q.Terms(v).Typst() }

func mapPolys(ps []Poly, f func(Poly) Poly) []Poly {
	out := make([]Poly, len(ps))
	for i, p := range ps {
		out[i] = f(p)
	}
	return out
}
