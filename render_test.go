package diffur_test

import (
	"testing"

	diffur "github.com/Danila-Bain/diffurcheck-telegram-bot"
)

// ============================================================
// Sum rendering tests
// ============================================================

func TestLinearCombination(t *testing.T) {
	cases := []struct {
		coeffs []float64
		labels []string
		want   string
	}{
		{[]float64{1, -1, 0, 2, 0.5}, []string{"x", "y", "z", "w", "u"}, "x-y+2w+(1)/(2)u"},
		{[]float64{-0.5}, []string{"x"}, "-(1)/(2)x"},
		{[]float64{0, 0, 0}, []string{"x", "y", "z"}, "0"},
		{[]float64{1, -1}, []string{"", ""}, "1-1"},
		{[]float64{0, 3}, []string{"x", "y"}, "3y"},
		{[]float64{-1, 1}, []string{"a", ""}, "-a+1"},
	}
	for _, c := range cases {
		if got := diffur.LinearCombination(c.coeffs, c.labels).Typst(); got != c.want {
			t.Errorf("%v·%v: want %s, got %s", c.coeffs, c.labels, c.want, got)
		}
	}
}

func TestLinearCombinationRev(t *testing.T) {
	got := diffur.LinearCombinationRev([]float64{4, -4, 1}, []string{"", "lambda", "lambda^2"}).Typst()
	if got != "lambda^2-4lambda+4" {
		t.Errorf("want lambda^2-4lambda+4, got %s", got)
	}
}

func TestExpCosSin(t *testing.T) {
	cases := []struct{ got, want string }{
		{diffur.Exp(2, "x"), "e^(2x)"},
		{diffur.Exp(-1, "t"), "e^(-t)"},
		{diffur.Exp(0, "x"), ""},
		{diffur.Exp(0.5, "x"), "e^((1)/(2)x)"},
		{diffur.Cos(3, "x"), "cos(3x)"},
		{diffur.Sin(1, "t"), "sin(t)"},
		{diffur.Sin(0.0001, "t"), ""},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("want %q, got %q", c.want, c.got)
		}
	}
}

func TestProduct(t *testing.T) {
	single := diffur.Product("c_(1)", diffur.Sum{diffur.T(2, "x")})
	if got := (diffur.Sum{single}).Typst(); got != "2c_(1) x" {
		t.Errorf("want 2c_(1) x, got %s", got)
	}
	pair := diffur.Product("c_(1)", diffur.Sum{diffur.T(1, "x"), diffur.T(1, "")})
	if got := (diffur.Sum{pair}).Typst(); got != "c_(1)(x+1)" {
		t.Errorf("want c_(1)(x+1), got %s", got)
	}
	negative := diffur.Product("c_(2)", diffur.Sum{diffur.T(-1, "x"), diffur.T(3, "")})
	if got := (diffur.Sum{diffur.T(1, "y"), negative}).Typst(); got != "y-c_(2)(x-3)" {
		t.Errorf("want y-c_(2)(x-3), got %s", got)
	}
	empty := diffur.Product("c_(1)", diffur.Sum{diffur.T(0, "x")})
	if got := (diffur.Sum{empty}).Typst(); got != "0" {
		t.Errorf("want 0, got %s", got)
	}
}

func TestSum_IsZero(t *testing.T) {
	if !(diffur.Sum{diffur.T(0.0002, "x")}).IsZero() {
		t.Errorf("a coefficient below tolerance should vanish")
	}
	if (diffur.Sum{diffur.T(1, "")}).IsZero() {
		t.Errorf("a constant term is not zero")
	}
}
