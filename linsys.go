package diffur

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// similarityTol bounds ‖A·C - C·J‖ entrywise.
const similarityTol = 1e-6

// ============================================================
// LinSys — first-order system y' = A·y + f
// ============================================================

// LinSys is a constant-coefficient system built from an explicit Jordan
// decomposition A = C·J·C⁻¹. Columns of C are the (generalized) eigenvectors
// grouped per chain; a complex chain takes two columns per position.
type LinSys struct {
	A, C       *mat.Dense
	Blocks     []Block
	Roots      []RootMult
	CharCoeffs []float64
	F          []VQPoly
	Y0Basis    []VQPoly
	YPart      []VQPoly
}

// NewLinSys validates the decomposition and builds the homogeneous basis by
// walking the chains in column order.
func NewLinSys(a, c *mat.Dense, blocks []Block) (LinSys, error) {
	n, m := a.Dims()
	if n != m {
		return LinSys{}, fmt.Errorf("diffur: system matrix must be square, got %dx%d", n, m)
	}
	if cr, cc := c.Dims(); cr != n || cc != n {
		return LinSys{}, fmt.Errorf("diffur: transform is %dx%d, want %dx%d", cr, cc, n, n)
	}
	for _, b := range blocks {
		if b.Size <= 0 {
			return LinSys{}, fmt.Errorf("diffur: Jordan chain for %v has size %d", b.Root, b.Size)
		}
	}
	if d := BlocksDim(blocks); d != n {
		return LinSys{}, fmt.Errorf("diffur: Jordan chains span %d columns, matrix has %d", d, n)
	}
	var inv mat.Dense
	if err := inv.Inverse(c); err != nil {
		return LinSys{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	var ac, cj mat.Dense
	ac.Mul(a, c)
	cj.Mul(c, JordanMatrix(blocks))
	if !mat.EqualApprox(&ac, &cj, similarityTol) {
		return LinSys{}, fmt.Errorf("diffur: A·C does not match C·J for chains %v", blocks)
	}

	char := blocksCharPoly(blocks)
	if det := CharPoly(a); !polyApprox(det, char, similarityTol) {
		return LinSys{}, fmt.Errorf("diffur: det(λI-A) = %v disagrees with chains %v", []float64(det), blocks)
	}

	roots := make([]Root, len(blocks))
	sizes := make([]int, len(blocks))
	for k, b := range blocks {
		roots[k], sizes[k] = b.Root, b.Size
	}

	col := func(k int) []float64 { return mat.Col(nil, k, c) }
	var basis []VQPoly
	i := 0
	for _, b := range blocks {
		r := b.Root
		if r.IsReal() {
			v := ConstVQPoly(r.Re, 0, col(i))
			basis = append(basis, v)
			for j := 1; j < b.Size; j++ {
				v = v.Antiderivative().AddConst(col(i+j), false)
				basis = append(basis, v)
			}
			i += b.Size
			continue
		}
		v := ConstVQPoly(r.Re, r.Im, col(i)).AddConst(col(i+1), true)
		basis = append(basis, v, v.Swap())
		for j := 1; j < b.Size; j++ {
			v = v.Antiderivative().AddConst(col(i+2*j), false).AddConst(col(i+2*j+1), true)
			basis = append(basis, v, v.Swap())
		}
		i += 2 * b.Size
	}

	return LinSys{
		A:          mat.DenseCopyOf(a),
		C:          mat.DenseCopyOf(c),
		Blocks:     slices.Clone(blocks),
		Roots:      mergeRoots(roots, sizes),
		CharCoeffs: []float64(char),
		Y0Basis:    basis,
	}, nil
}

// LinSysFromJordan computes A = C·J·C⁻¹ for the given chains.
func LinSysFromJordan(c *mat.Dense, blocks []Block) (LinSys, error) {
	n, m := c.Dims()
	if n != m || BlocksDim(blocks) != n {
		return LinSys{}, fmt.Errorf("diffur: transform is %dx%d but chains span %d columns", n, m, BlocksDim(blocks))
	}
	a, err := similarity(c, JordanMatrix(blocks))
	if err != nil {
		return LinSys{}, err
	}
	return NewLinSys(a, c, blocks)
}

func polyApprox(p, q Poly, tol float64) bool {
	for i := 0; i < max(len(p), len(q)); i++ {
		if math.Abs(p.Coeff(i)-q.Coeff(i)) > tol {
			return false
		}
	}
	return true
}

func (s LinSys) Dim() int {
	n, _ := s.A.Dims()
	return n
}

// Residual returns y' - A·y.
func (s LinSys) Residual(y VQPoly) VQPoly {
	return y.Derivative().Sub(y.Apply(s.A))
}

// AddParticular attaches y with f = y' - A·y. Unlike LinEq.AddParticular, a
// vanishing f does not reject y.
func (s LinSys) AddParticular(y VQPoly) LinSys {
	s.F = append(slices.Clone(s.F), s.Residual(y))
	s.YPart = append(slices.Clone(s.YPart), y)
	return s
}

// WithParticular folds AddParticular over ys.
func (s LinSys) WithParticular(ys ...VQPoly) LinSys {
	for _, y := range ys {
		s = s.AddParticular(y)
	}
	return s
}

// ============================================================
// LinSys rendering
// ============================================================

var stateNames = []string{"x", "y", "z", "w", "u", "v", "p", "q"}

// stateVars names the unknowns; suffix marks the homogeneous part.
func stateVars(n int, suffix string) []string {
	vars := make([]string, n)
	for i := range vars {
		switch {
		case n <= len(stateNames):
			vars[i] = stateNames[i] + suffix
		case suffix == "":
			vars[i] = fmt.Sprintf("x_(%d)", i+1)
		default:
			vars[i] = fmt.Sprintf("x_(%d,%s)", i+1, strings.TrimPrefix(suffix, "_"))
		}
	}
	return vars
}

func (s LinSys) rows(withF bool) string {
	n := s.Dim()
	vars := stateVars(n, "")
	var sb strings.Builder
	sb.WriteString("cases(\n")
	for i, v := range vars {
		rhs := LinearCombination(mat.Row(nil, i, s.A), vars)
		if withF {
			for _, f := range s.F {
				rhs = append(rhs, f.Component(i).Terms("t")...)
			}
		}
		sb.WriteString("\t" + v + "'=" + rhs.Typst() + ",\n")
	}
	sb.WriteString(")")
	return sb.String()
}

func (s LinSys) EquationHomoTypst() string { return s.rows(false) }

func (s LinSys) EquationTypst() string { return s.rows(true) }

// CharEquationTypst writes det(A - λI) = char(λ) = 0; for odd n the two
// differ by a sign, so the determinant is negated.
func (s LinSys) CharEquationTypst() string {
	n := s.Dim()
	var sb strings.Builder
	if n%2 == 1 {
		sb.WriteString("-")
	}
	sb.WriteString("det mat(")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			entry := Sum{T(s.A.At(i, j), "")}
			if i == j {
				entry = append(entry, Term{Coef: Frac{Num: -1, Den: 1}, Label: "lambda"})
			}
			sb.WriteString(entry.Typst())
		}
	}
	sb.WriteString(")=")
	sb.WriteString(LinearCombinationRev(s.CharCoeffs, powerLabels("lambda", len(s.CharCoeffs))).Typst())
	sb.WriteString("=0")
	return sb.String()
}

func (s LinSys) CharRootsTypst() string { return charRootsTypst(s.Roots) }

func (s LinSys) homogeneous() Sum {
	sum := make(Sum, 0, len(s.Y0Basis))
	for i, b := range s.Y0Basis {
		sum = append(sum, Product(fmt.Sprintf("c_(%d)", i+1), b.Terms("t")))
	}
	return sum
}

func (s LinSys) SolutionHomoTypst() string {
	return "vec(" + strings.Join(stateVars(s.Dim(), "_0"), ", ") + ")=" + s.homogeneous().Typst()
}

func (s LinSys) SolutionTypst() string {
	sum := s.homogeneous()
	for _, y := range s.YPart {
		sum = append(sum, y.Terms("t")...)
	}
	return "vec(" + strings.Join(stateVars(s.Dim(), ""), ", ") + ")=" + sum.Typst()
}
