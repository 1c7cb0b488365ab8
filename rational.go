package diffur

import (
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// Frac — small exact fraction
// ============================================================

// Frac is a reduced fraction with a positive denominator.
type Frac struct {
	Num, Den int64
}

func (f Frac) IsZero() bool     { return f.Num == 0 }
func (f Frac) IsInteger() bool  { return f.Den == 1 }
func (f Frac) IsNegative() bool { return f.Num < 0 }
func (f Frac) IsUnit() bool     { return f.Den == 1 && (f.Num == 1 || f.Num == -1) }
func (f Frac) Float64() float64 { return float64(f.Num) / float64(f.Den) }
func (f Frac) Abs() Frac {
	if f.Num < 0 {
		return Frac{Num: -f.Num, Den: f.Den}
	}
	return f
}

func (f Frac) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Typst renders the fraction with the sign in front: 3, -3, (1)/(2), -(1)/(2).
func (f Frac) Typst() string {
	sign := ""
	if f.Num < 0 {
		sign = "-"
	}
	return sign + f.Abs().magnitude()
}

func (f Frac) magnitude() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return fmt.Sprintf("(%d)/(%d)", f.Num, f.Den)
}

// maxConvergent bounds |h| and |k| so that the next convergent cannot
// overflow int64.
const maxConvergent = 1 << 62

// Rationalize approximates x by the first continued-fraction convergent whose
// remainder is within tolerance. The expansion also stops at a convergent
// equal to x in floating point and before a convergent would leave int64.
// It panics on non-finite input, on |x| beyond int64 range, on a non-positive
// tolerance and when the convergent misses the bound.
func Rationalize(x, tolerance float64) Frac {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("diffur: cannot rationalize non-finite value %v", x))
	}
	if !(tolerance > 0) {
		panic(fmt.Sprintf("diffur: rationalization tolerance must be positive, got %v", tolerance))
	}

	a := math.Floor(x)
	if math.Abs(a) > maxConvergent {
		panic(fmt.Sprintf("diffur: cannot rationalize %v: out of int64 range", x))
	}
	h1, k1 := int64(1), int64(0)
	h, k := int64(a), int64(1)
	rem := x - a

	for math.Abs(rem) > tolerance {
		if rem == 0 || float64(h)/float64(k) == x {
			break
		}
		r := 1 / rem
		a = math.Floor(r)
		if a*math.Abs(float64(h))+math.Abs(float64(h1)) > maxConvergent || a*float64(k)+float64(k1) > maxConvergent {
			break
		}
		ai := int64(a)
		h, h1 = ai*h+h1, h
		k, k1 = ai*k+k1, k
		rem = r - a
	}

	if math.Abs(float64(h)/float64(k)-x) >= tolerance {
		panic(fmt.Sprintf("diffur: rationalization of %v gave %d/%d outside tolerance %v", x, h, k, tolerance))
	}

	g := gcd(abs64(h), abs64(k))
	if g == 0 {
		g = 1
	}
	return Frac{Num: h / g, Den: k / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
