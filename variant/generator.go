package variant

import (
	"errors"
	"fmt"
	"hash/fnv"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"text/template"

	diffur "github.com/Danila-Bain/diffurcheck-telegram-bot"
)

// ErrUnknownGenerator is returned for a generator name that is not
// registered.
var ErrUnknownGenerator = errors.New("variant: unknown generator")

// ErrSamplingExhausted is returned when a rejection sampler runs out of
// attempts.
var ErrSamplingExhausted = errors.New("variant: sampling attempts exhausted")

// ============================================================
// Generators
// ============================================================

// Generator samples one homework sheet. Implementations draw every random
// choice from rng so that a seed reproduces the sheet exactly.
type Generator interface {
	Name() string
	Generate(rng *rand.Rand, cfg Config) (Sheet, error)
}

// Sheet is a sampled variant before template execution. Solution may be nil
// for assignments without worked solutions.
type Sheet struct {
	Tasks    []Task
	Problem  *template.Template
	Solution *template.Template
	Curves   []Curve
}

// Task is one numbered item of a sheet. The math fields hold Typst fragments
// and are empty for free-text tasks; Answer holds the authored solution of a
// free-text task.
type Task struct {
	Title     string
	Statement string
	Answer    string

	EquationHomo string
	Equation     string
	CharEquation string
	CharRoots    string
	SolutionHomo string
	Solution     string
}

// NewTask captures every rendered view of p.
func NewTask(statement string, p diffur.Problem) Task {
	return Task{
		Statement:    statement,
		EquationHomo: p.EquationHomoTypst(),
		Equation:     p.EquationTypst(),
		CharEquation: p.CharEquationTypst(),
		CharRoots:    p.CharRootsTypst(),
		SolutionHomo: p.SolutionHomoTypst(),
		Solution:     p.SolutionTypst(),
	}
}

// Document is the data handed to the templates.
type Document struct {
	Variant int
	Tasks   []Task
}

// Execute renders tmpl with doc; a nil template renders as empty.
func (doc Document) Execute(tmpl *template.Template) (string, error) {
	if tmpl == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("variant: execute template %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

// ============================================================
// Registry
// ============================================================

// Registry maps generator names to generators. It is read-only after
// construction.
type Registry struct {
	gens map[string]Generator
}

func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{gens: make(map[string]Generator, len(gens))}
	for _, g := range gens {
		r.gens[g.Name()] = g
	}
	return r
}

// DefaultRegistry holds every generator shipped with the package.
func DefaultRegistry() *Registry {
	return NewRegistry(LinearSystems2025{}, FirstOrderEquations2025{}, TestAssignmentGenerator{})
}

func (r *Registry) Lookup(name string) (Generator, error) {
	g, ok := r.gens[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return g, nil
}

// Names lists the registered generators in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.gens))
}

// NewRand seeds a PCG source from the variant number, the generator name and
// a caller-chosen salt. Equal inputs give equal streams.
func NewRand(req Request, salt uint64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(req.Generator))
	return rand.New(rand.NewPCG(uint64(int64(req.VariantNumber))^salt, h.Sum64()))
}

// ============================================================
// Sampling helpers
// ============================================================

func choose[T any](rng *rand.Rand, opts []T) T { return opts[rng.IntN(len(opts))] }

func coin(rng *rand.Rand) bool { return rng.IntN(2) == 0 }

func shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
