package typeset

import (
	"bytes"
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Danila-Bain/diffurcheck-telegram-bot/variant"
)

// GonumPlotter draws curves over [XMin, XMax] into a PNG.
type GonumPlotter struct {
	Title         string
	XMin, XMax    float64
	Samples       int
	Width, Height vg.Length
}

var _ variant.Plotter = GonumPlotter{}

func NewGonumPlotter() GonumPlotter {
	return GonumPlotter{
		Title:   "Частные решения",
		XMin:    -1,
		XMax:    1,
		Samples: 200,
		Width:   12 * vg.Centimeter,
		Height:  8 * vg.Centimeter,
	}
}

func (g GonumPlotter) Plot(curves []variant.Curve) ([]byte, error) {
	if len(curves) == 0 {
		return nil, errors.New("typeset: nothing to plot")
	}
	if !(g.XMax > g.XMin) || g.Samples < 2 {
		return nil, errors.New("typeset: empty plot range")
	}

	p := plot.New()
	p.Title.Text = g.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = g.XMin, g.XMax
	p.Add(plotter.NewGrid())

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, c := range curves {
		for k := 0; k < g.Samples; k++ {
			y := c.Eval(g.XMin + (g.XMax-g.XMin)*float64(k)/float64(g.Samples-1))
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			lo, hi = math.Min(lo, y), math.Max(hi, y)
		}

		f := plotter.NewFunction(c.Eval)
		f.XMin, f.XMax = g.XMin, g.XMax
		f.Samples = g.Samples
		f.Color = plotutil.Color(i)
		f.Dashes = plotutil.Dashes(i)
		f.Width = vg.Points(1.5)
		p.Add(f)
		p.Legend.Add(c.Label, f)
	}
	if lo > hi {
		return nil, errors.New("typeset: curves have no finite samples")
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	pad := 0.05 * (hi - lo)
	p.Y.Min, p.Y.Max = lo-pad, hi+pad

	w, err := p.WriterTo(g.Width, g.Height, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
