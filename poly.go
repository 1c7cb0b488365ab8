package diffur

import "math"

// ============================================================
// Poly — real polynomial, ascending degree
// ============================================================

// Poly holds coefficients indexed by degree. The leading coefficient is
// nonzero; the empty polynomial is zero.
type Poly []float64

// P builds a trimmed polynomial from ascending coefficients.
func P(coeffs ...float64) Poly { return Poly(coeffs).trim() }

// Monomial returns x^n.
func Monomial(n int) Poly {
	p := make(Poly, n+1)
	p[n] = 1
	return p
}

func (p Poly) trim() Poly {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	out := make(Poly, n)
	copy(out, p[:n])
	return out
}

func (p Poly) IsZero() bool { return len(p.trim()) == 0 }

// IsZeroWithin reports whether every coefficient is within eps of zero.
func (p Poly) IsZeroWithin(eps float64) bool {
	for _, c := range p {
		if math.Abs(c) > eps {
			return false
		}
	}
	return true
}

// Degree returns -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.trim()) - 1 }

// Coeff returns the coefficient of x^n, zero past the degree.
func (p Poly) Coeff(n int) float64 {
	if n < 0 || n >= len(p) {
		return 0
	}
	return p[n]
}

func (p Poly) Add(q Poly) Poly {
	n := max(len(p), len(q))
	out := make(Poly, n)
	for i := range out {
		out[i] = p.Coeff(i) + q.Coeff(i)
	}
	return out.trim()
}

func (p Poly) Sub(q Poly) Poly { return p.Add(q.Scale(-1)) }

func (p Poly) Scale(c float64) Poly {
	out := make(Poly, len(p))
	for i, v := range p {
		out[i] = c * v
	}
	return out.trim()
}

func (p Poly) Mul(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			out[i+j] += a * b
		}
	}
	return out.trim()
}

func (p Poly) Derivative() Poly {
	if len(p) <= 1 {
		return nil
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}
	return out.trim()
}

// Antiderivative integrates termwise with a zero constant term.
func (p Poly) Antiderivative() Poly {
	if len(p) == 0 {
		return nil
	}
	out := make(Poly, len(p)+1)
	for i, c := range p {
		out[i+1] = c / float64(i+1)
	}
	return out.trim()
}

// Eval uses Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	s := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		s = s*x + p[i]
	}
	return s
}

// Terms renders the polynomial in variable v, highest degree first.
func (p Poly) Terms(v string) Sum {
	return LinearCombinationRev(p, powerLabels(v, len(p)))
}

func (p Poly) Typst(v string) string { return p.Terms(v).Typst() }

func powerLabels(v string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		switch i {
		case 0:
			labels[i] = ""
		case 1:
			labels[i] = v
		default:
			labels[i] = v + "^" + itoa(i)
		}
	}
	return labels
}
