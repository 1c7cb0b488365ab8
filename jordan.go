package diffur

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a similarity transform cannot be inverted.
var ErrSingular = errors.New("diffur: matrix is singular")

// ============================================================
// Jordan structure
// ============================================================

// BlocksDim is the state dimension implied by blocks: one column per real
// chain position, two per complex one.
func BlocksDim(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		n += b.Size * b.Root.Width()
	}
	return n
}

// JordanMatrix builds the real Jordan matrix for blocks. A real chain puts r
// on the diagonal and 1 above it. A complex chain puts [[re, -im], [im, re]]
// on the diagonal and the 2×2 identity above it.
func JordanMatrix(blocks []Block) *mat.Dense {
	n := BlocksDim(blocks)
	if n == 0 {
		panic("diffur: empty Jordan structure")
	}
	j := mat.NewDense(n, n, nil)
	i := 0
	for _, b := range blocks {
		if b.Root.IsReal() {
			for k := 0; k < b.Size; k++ {
				j.Set(i+k, i+k, b.Root.Re)
				if k > 0 {
					j.Set(i+k-1, i+k, 1)
				}
			}
			i += b.Size
			continue
		}
		re, im := b.Root.Re, b.Root.Im
		for k := 0; k < b.Size; k++ {
			c := i + 2*k
			j.Set(c, c, re)
			j.Set(c, c+1, -im)
			j.Set(c+1, c, im)
			j.Set(c+1, c+1, re)
			if k > 0 {
				j.Set(c-2, c, 1)
				j.Set(c-1, c+1, 1)
			}
		}
		i += 2 * b.Size
	}
	return j
}

// blocksCharPoly multiplies the characteristic factor of every chain
// position.
func blocksCharPoly(blocks []Block) Poly {
	char := P(1)
	for _, b := range blocks {
		for k := 0; k < b.Size; k++ {
			char = char.Mul(b.Root.Factor())
		}
	}
	return char
}

// CharPoly returns det(λI - A) by cofactor expansion over polynomial
// entries.
func CharPoly(a mat.Matrix) Poly {
	n, m := a.Dims()
	if n != m {
		panic("diffur: CharPoly requires a square matrix")
	}
	data := make([][]Poly, n)
	for i := range data {
		data[i] = make([]Poly, n)
		for j := range data[i] {
			data[i][j] = P(-a.At(i, j))
			if i == j {
				data[i][j] = data[i][j].Add(Monomial(1))
			}
		}
	}
	return polyDet(data)
}

func polyDet(data [][]Poly) Poly {
	n := len(data)
	switch n {
	case 0:
		return P(1)
	case 1:
		return data[0][0]
	case 2:
		return data[0][0].Mul(data[1][1]).Sub(data[0][1].Mul(data[1][0]))
	}
	var det Poly
	for j := 0; j < n; j++ {
		term := data[0][j].Mul(polyDet(minor(data, 0, j)))
		if j%2 == 1 {
			term = term.Scale(-1)
		}
		det = det.Add(term)
	}
	return det
}

func minor(data [][]Poly, skipRow, skipCol int) [][]Poly {
	n := len(data)
	out := make([][]Poly, 0, n-1)
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		row := make([]Poly, 0, n-1)
		for j := 0; j < n; j++ {
			if j != skipCol {
				row = append(row, data[i][j])
			}
		}
		out = append(out, row)
	}
	return out
}

// IntegerInverse inverts c and reports whether every entry of the inverse is
// an integer, the condition that keeps A = C·J·C⁻¹ integral for integer J.
func IntegerInverse(c mat.Matrix) (*mat.Dense, bool) {
	var inv mat.Dense
	if err := inv.Inverse(c); err != nil {
		return nil, false
	}
	r, k := inv.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			v := inv.At(i, j)
			rv := math.Round(v)
			if math.Abs(v-rv) > zeroEps {
				return nil, false
			}
			inv.Set(i, j, rv)
		}
	}
	return &inv, true
}

// similarity returns C·J·C⁻¹.
func similarity(c, j mat.Matrix) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	var cj, a mat.Dense
	cj.Mul(c, j)
	a.Mul(&cj, &inv)
	return &a, nil
}
