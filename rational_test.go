package diffur_test

import (
	"math"
	"testing"
	"time"

	diffur "github.com/Danila-Bain/diffurcheck-telegram-bot"
)

// ============================================================
// Rationalize tests
// ============================================================

func TestRationalize_Table(t *testing.T) {
	cases := []struct {
		x        float64
		num, den int64
	}{
		{0.3333, 1, 3},
		{2.0, 2, 1},
		{0, 0, 1},
		{-0.5, -1, 2},
		{0.25, 1, 4},
		{-2.5, -5, 2},
		{1.6666666, 5, 3},
		{2.9999999, 3, 1},
		{-1e-12, 0, 1},
		{7.0 / 60, 7, 60},
		{0.1, 1, 10},
	}
	for _, c := range cases {
		f := diffur.Rationalize(c.x, 0.001)
		if f.Num != c.num || f.Den != c.den {
			t.Errorf("Rationalize(%v): want %d/%d, got %d/%d", c.x, c.num, c.den, f.Num, f.Den)
		}
	}
}

func TestRationalize_ReducedAndWithinTolerance(t *testing.T) {
	for p := -30; p <= 30; p++ {
		for q := 1; q <= 9; q++ {
			x := float64(p) / float64(q)
			f := diffur.Rationalize(x, 0.001)
			if f.Den <= 0 {
				t.Fatalf("Rationalize(%v): non-positive denominator %d", x, f.Den)
			}
			if g := gcd(abs(f.Num), f.Den); g != 1 {
				t.Errorf("Rationalize(%v) = %d/%d is not reduced", x, f.Num, f.Den)
			}
			if math.Abs(f.Float64()-x) >= 0.001 {
				t.Errorf("Rationalize(%v) = %d/%d misses the tolerance", x, f.Num, f.Den)
			}
		}
	}
}

func TestRationalize_Terminates(t *testing.T) {
	cases := []struct{ x, tol float64 }{
		{math.Pi, 1e-12},
		{math.Pi, 0.001},
		{math.E, 1e-14},
		{math.Sqrt2, 1e-15},
		{123456.789, 1e-9},
		{0.1, 1e-15},
	}
	for _, c := range cases {
		done := make(chan diffur.Frac, 1)
		go func() { done <- diffur.Rationalize(c.x, c.tol) }()
		select {
		case f := <-done:
			if f.Den <= 0 || math.Abs(f.Float64()-c.x) >= c.tol {
				t.Errorf("Rationalize(%v, %v) = %d/%d misses the tolerance", c.x, c.tol, f.Num, f.Den)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("Rationalize(%v, %v) did not return", c.x, c.tol)
		}
	}
}

func TestRationalize_OutOfRangePanics(t *testing.T) {
	for _, x := range []float64{1e19, -1e19, math.MaxFloat64} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Rationalize(%v) should panic", x)
				}
			}()
			diffur.Rationalize(x, 0.001)
		}()
	}
}

func TestRationalize_NonFinitePanics(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Rationalize(%v) should panic", x)
				}
			}()
			diffur.Rationalize(x, 0.001)
		}()
	}
}

func TestRationalize_NonPositiveTolerancePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("zero tolerance should panic")
		}
	}()
	diffur.Rationalize(0.5, 0)
}

func TestFrac_Typst(t *testing.T) {
	cases := map[diffur.Frac]string{
		{Num: 3, Den: 1}:  "3",
		{Num: -3, Den: 1}: "-3",
		{Num: 1, Den: 2}:  "(1)/(2)",
		{Num: -7, Den: 3}: "-(7)/(3)",
	}
	for f, want := range cases {
		if got := f.Typst(); got != want {
			t.Errorf("%v: want %s, got %s", f, want, got)
		}
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
