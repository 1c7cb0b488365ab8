// Package diffur builds exactly-solvable linear ODE problems and renders them
// as Typst markup.
//
// Design goals:
//   - Problems are synthesized backwards: roots and solution shapes are
//     chosen first, the operator and forcing terms are derived from them
//   - Quasi-polynomial algebra e^{ax}(P(x)cos(bx) + Q(x)sin(bx)) is closed
//     under the operations the synthesizers need
//   - Every coefficient is displayed as a small exact fraction
//   - Rendering is deterministic and never fails
package diffur

import "fmt"

// Tolerance is the rationalization tolerance used for every displayed value.
const Tolerance = 0.001

// zeroEps decides when a synthesized forcing term vanishes.
const zeroEps = 1e-9

// ============================================================
// Root — characteristic root
// ============================================================

// Root is either a real root (Im == 0) or a complex pair Re ± i·Im with
// Im > 0; the conjugate is implicit.
type Root struct {
	Re, Im float64
}

func Real(lambda float64) Root { return Root{Re: lambda} }

func Complex(re, im float64) Root {
	if !(im > 0) {
		panic(fmt.Sprintf("diffur: complex root needs a positive imaginary part, got %v", im))
	}
	return Root{Re: re, Im: im}
}

func (r Root) IsReal() bool { return r.Im == 0 }

// Width is the number of real basis functions contributed per unit of
// multiplicity.
func (r Root) Width() int {
	if r.IsReal() {
		return 1
	}
	return 2
}

// Factor returns the real factor of the characteristic polynomial for r.
func (r Root) Factor() Poly {
	if r.IsReal() {
		return Poly{-r.Re, 1}
	}
	return Poly{r.Re*r.Re + r.Im*r.Im, -2 * r.Re, 1}
}

func (r Root) String() string {
	if r.IsReal() {
		return fmt.Sprintf("%g", r.Re)
	}
	return fmt.Sprintf("%g±%gi", r.Re, r.Im)
}

// Typst renders the value of the root; complex roots use plus.minus.
func (r Root) Typst() string {
	if r.IsReal() {
		return Sum{T(r.Re, "")}.Typst()
	}
	im := Sum{T(r.Im, "i")}.Typst()
	if Rationalize(r.Re, Tolerance).IsZero() {
		return "plus.minus " + im
	}
	return Sum{T(r.Re, "")}.Typst() + " plus.minus " + im
}

// RootMult is a distinct root together with its multiplicity.
type RootMult struct {
	Root Root
	Mult int
}

// Block is a single Jordan chain of the given length.
type Block struct {
	Root Root
	Size int
}

// mergeRoots folds roots into (root, multiplicity) pairs keeping the order of
// first appearance.
func mergeRoots(roots []Root, sizes []int) []RootMult {
	var merged []RootMult
outer:
	for i, r := range roots {
		for k := range merged {
			if merged[k].Root == r {
				merged[k].Mult += sizes[i]
				continue outer
			}
		}
		merged = append(merged, RootMult{Root: r, Mult: sizes[i]})
	}
	return merged
}

// charRootsTypst renders lambda_(1,2)=2, lambda_(3,4)=plus.minus 3i.
func charRootsTypst(roots []RootMult) string {
	s := ""
	idx := 1
	for n, rm := range roots {
		if n > 0 {
			s += ", "
		}
		count := rm.Mult * rm.Root.Width()
		s += fmt.Sprintf("lambda_(%d", idx)
		idx++
		for k := 1; k < count; k++ {
			s += fmt.Sprintf(",%d", idx)
			idx++
		}
		s += ")=" + rm.Root.Typst()
	}
	return s + "."
}

// Problem is the rendered view shared by scalar equations and systems.
type Problem interface {
	EquationHomoTypst() string
	EquationTypst() string
	CharEquationTypst() string
	CharRootsTypst() string
	SolutionHomoTypst() string
	SolutionTypst() string
}

var (
	_ Problem = LinEq{}
	_ Problem = LinSys{}
)
