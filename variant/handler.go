package variant

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/go-logr/logr"
)

// Typesetter rasterizes a Typst document into PNG pages.
type Typesetter interface {
	Render(ctx context.Context, source string) ([][]byte, error)
}

// Curve is a labelled real function of one variable.
type Curve struct {
	Label string
	Eval  func(x float64) float64
}

// Plotter draws curves into a single PNG image.
type Plotter interface {
	Plot(curves []Curve) ([]byte, error)
}

// ============================================================
// Handler
// ============================================================

// Handler serves Requests. Typesetter and Plotter are optional; without them
// the response carries Typst sources only. A Handler holds no mutable state
// and may be shared between goroutines.
type Handler struct {
	Registry   *Registry
	Config     Config
	Typesetter Typesetter
	Plotter    Plotter
	Salt       uint64
	Log        logr.Logger
}

// NewHandler returns a handler over the default registry and config.
func NewHandler(log logr.Logger) *Handler {
	return &Handler{Registry: DefaultRegistry(), Config: DefaultConfig(), Log: log}
}

// Handle generates the variant named by req.
func (h *Handler) Handle(ctx context.Context, req Request) (Response, error) {
	log := h.Log.WithValues("generator", req.Generator, "variant", req.VariantNumber)

	gen, err := h.Registry.Lookup(req.Generator)
	if err != nil {
		return Response{}, err
	}
	sheet, err := gen.Generate(NewRand(req, h.Salt), h.Config)
	if err != nil {
		return Response{}, fmt.Errorf("variant: generate %s #%d: %w", req.Generator, req.VariantNumber, err)
	}
	log.V(1).Info("sampled sheet", "tasks", len(sheet.Tasks), "curves", len(sheet.Curves))

	doc := Document{Variant: req.VariantNumber, Tasks: sheet.Tasks}
	resp := Response{VariantNumber: req.VariantNumber, Generator: req.Generator}
	if resp.ProblemCode, err = doc.Execute(sheet.Problem); err != nil {
		return Response{}, err
	}
	if resp.SolutionCode, err = doc.Execute(sheet.Solution); err != nil {
		return Response{}, err
	}

	if resp.ProblemImages, err = h.typeset(ctx, log, resp.ProblemCode); err != nil {
		return Response{}, err
	}
	if resp.SolutionImages, err = h.typeset(ctx, log, resp.SolutionCode); err != nil {
		return Response{}, err
	}

	if h.Plotter != nil && len(sheet.Curves) > 0 {
		png, err := h.Plotter.Plot(sheet.Curves)
		if err != nil {
			return Response{}, fmt.Errorf("variant: plot: %w", err)
		}
		log.V(1).Info("plotted particular solutions", "bytes", len(png))
		resp.SolutionImages = append(resp.SolutionImages, base64.StdEncoding.EncodeToString(png))
	}
	return resp, nil
}

func (h *Handler) typeset(ctx context.Context, log logr.Logger, source string) ([]string, error) {
	images := []string{}
	if h.Typesetter == nil || source == "" {
		return images, nil
	}
	pages, err := h.Typesetter.Render(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("variant: typeset: %w", err)
	}
	for _, p := range pages {
		log.V(1).Info("rendered page", "bytes", len(p))
		images = append(images, base64.StdEncoding.EncodeToString(p))
	}
	return images, nil
}
