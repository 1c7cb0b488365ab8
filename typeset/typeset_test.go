package typeset_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-logr/logr/testr"
	. "github.com/onsi/gomega"

	"github.com/Danila-Bain/diffurcheck-telegram-bot/typeset"
	"github.com/Danila-Bain/diffurcheck-telegram-bot/variant"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// fakeTypst mimics `typst compile -`: it prints "page<N>" for the first two
// pages, fails beyond them and fails on every page if the source says so.
const fakeTypst = `#!/bin/sh
src=$(cat)
page=0
for a in "$@"; do
  case "$a" in
    --pages=*) page="${a#--pages=}" ;;
  esac
done
case "$src" in
  *broken*) echo "error: unexpected token" >&2; exit 1 ;;
esac
if [ "$page" -gt 2 ]; then
  echo "error: page $page out of range" >&2
  exit 1
fi
printf 'page%s' "$page"
`

func writeFakeTypst(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "typst")
	if err := os.WriteFile(path, []byte(fakeTypst), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTypstCLI_Pages(t *testing.T) {
	g := NewWithT(t)
	cli := typeset.NewTypstCLI(writeFakeTypst(t), testr.New(t))

	pages, err := cli.Render(context.Background(), "= Hello")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pages).To(Equal([][]byte{[]byte("page1"), []byte("page2")}))
}

func TestTypstCLI_MaxPages(t *testing.T) {
	g := NewWithT(t)
	cli := typeset.NewTypstCLI(writeFakeTypst(t), testr.New(t))
	cli.MaxPages = 1

	pages, err := cli.Render(context.Background(), "= Hello")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pages).To(HaveLen(1))
}

func TestTypstCLI_CompileError(t *testing.T) {
	g := NewWithT(t)
	cli := typeset.NewTypstCLI(writeFakeTypst(t), testr.New(t))

	_, err := cli.Render(context.Background(), "#broken(")
	g.Expect(err).To(MatchError(ContainSubstring("unexpected token")))
}

func TestTypstCLI_MissingBinary(t *testing.T) {
	g := NewWithT(t)
	cli := typeset.NewTypstCLI(filepath.Join(t.TempDir(), "no-such-typst"), testr.New(t))

	_, err := cli.Render(context.Background(), "= Hello")
	g.Expect(err).To(HaveOccurred())
}

func TestGonumPlotter_PNG(t *testing.T) {
	g := NewWithT(t)
	p := typeset.NewGonumPlotter()

	png, err := p.Plot([]variant.Curve{
		{Label: "y_1", Eval: func(x float64) float64 { return 3 * math.Exp(3*x) }},
		{Label: "y_2", Eval: math.Sin},
		{Label: "y_3", Eval: func(float64) float64 { return 2 }},
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(bytes.HasPrefix(png, pngSignature)).To(BeTrue())
}

func TestGonumPlotter_ConstantCurve(t *testing.T) {
	g := NewWithT(t)
	png, err := typeset.NewGonumPlotter().Plot([]variant.Curve{{Label: "c", Eval: func(float64) float64 { return 0 }}})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(bytes.HasPrefix(png, pngSignature)).To(BeTrue())
}

func TestGonumPlotter_Errors(t *testing.T) {
	g := NewWithT(t)
	p := typeset.NewGonumPlotter()

	_, err := p.Plot(nil)
	g.Expect(err).To(HaveOccurred())

	_, err = p.Plot([]variant.Curve{{Label: "nan", Eval: func(float64) float64 { return math.NaN() }}})
	g.Expect(err).To(HaveOccurred())

	p.XMin, p.XMax = 1, 1
	_, err = p.Plot([]variant.Curve{{Label: "sin", Eval: math.Sin}})
	g.Expect(err).To(HaveOccurred())
}
