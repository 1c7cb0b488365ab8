package diffur

import (
	"strconv"
	"strings"
)

// ============================================================
// Term list renderer
// ============================================================

// Term is a rationalized coefficient times an already rendered label. An
// empty label stands for the constant 1.
type Term struct {
	Coef  Frac
	Label string
}

// T rationalizes c with the package tolerance.
func T(c float64, label string) Term { return Term{Coef: Rationalize(c, Tolerance), Label: label} }

// Sum is a list of terms finalized by a single rendering pass.
type Sum []Term

// Typst applies the sign rules: zero terms vanish, only a negative first term
// carries a sign, unit coefficients drop the numeral, fractions keep the sign
// outside (n)/(d), and an empty sum is 0.
func (s Sum) Typst() string {
	var sb strings.Builder
	first := true
	for _, t := range s {
		if t.Coef.IsZero() {
			continue
		}
		switch {
		case t.Coef.IsNegative():
			sb.WriteString("-")
		case !first:
			sb.WriteString("+")
		}
		first = false

		switch {
		case t.Coef.IsUnit() && t.Label == "":
			sb.WriteString("1")
		case t.Coef.IsUnit():
		default:
			sb.WriteString(t.Coef.Abs().magnitude())
		}
		sb.WriteString(t.Label)
	}
	if first {
		return "0"
	}
	return sb.String()
}

func (s Sum) nonZero() Sum {
	var out Sum
	for _, t := range s {
		if !t.Coef.IsZero() {
			out = append(out, t)
		}
	}
	return out
}

// IsZero reports whether the sum renders as 0.
func (s Sum) IsZero() bool { return len(s.nonZero()) == 0 }

// Product multiplies the sum by a leading label: a single term keeps its
// coefficient, anything else is parenthesized.
func Product(label string, s Sum) Term {
	terms := s.nonZero()
	switch len(terms) {
	case 0:
		return Term{Coef: Frac{Num: 0, Den: 1}, Label: label}
	case 1:
		return Term{Coef: terms[0].Coef, Label: join(label, terms[0].Label)}
	default:
		coef, group := parenthesize(terms)
		return Term{Coef: coef, Label: label + group}
	}
}

// parenthesize groups a multi-term sum. A negative leading term moves out of
// the group, so the result reads -(x-1) and never +(-x+1).
func parenthesize(terms Sum) (Frac, string) {
	if len(terms) == 0 || !terms[0].Coef.IsNegative() {
		return Frac{Num: 1, Den: 1}, "(" + terms.Typst() + ")"
	}
	neg := make(Sum, len(terms))
	for i, t := range terms {
		neg[i] = Term{Coef: Frac{Num: -t.Coef.Num, Den: t.Coef.Den}, Label: t.Label}
	}
	return Frac{Num: -1, Den: 1}, "(" + neg.Typst() + ")"
}

// LinearCombination pairs coefficients with labels in the given order.
func LinearCombination(coeffs []float64, labels []string) Sum {
	n := min(len(coeffs), len(labels))
	s := make(Sum, n)
	for i := 0; i < n; i++ {
		s[i] = T(coeffs[i], labels[i])
	}
	return s
}

// LinearCombinationRev is LinearCombination walked from the last pair, the
// order for ascending-degree coefficient slices.
func LinearCombinationRev(coeffs []float64, labels []string) Sum {
	s := LinearCombination(coeffs, labels)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// Exp renders e^(c v); empty when c rationalizes to zero.
func Exp(c float64, v string) string { return fn("e^", c, v) }

// Cos renders cos(c v); empty when c rationalizes to zero.
func Cos(c float64, v string) string { return fn("cos", c, v) }

// Sin renders sin(c v); empty when c rationalizes to zero.
func Sin(c float64, v string) string { return fn("sin", c, v) }

func fn(name string, c float64, v string) string {
	arg := Sum{T(c, v)}
	if arg.IsZero() {
		return ""
	}
	return name + "(" + arg.Typst() + ")"
}

func itoa(i int) string { return strconv.Itoa(i) }
