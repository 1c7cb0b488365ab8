// Package typeset holds the external collaborators of the variant handler:
// the Typst command line compiler and a gonum/plot renderer.
package typeset

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/Danila-Bain/diffurcheck-telegram-bot/variant"
)

// DefaultPPI matches the resolution the bot sends to students.
const DefaultPPI = 300

// TypstCLI rasterizes documents with `typst compile`, one invocation per
// page, reading the source from stdin and the PNG from stdout.
type TypstCLI struct {
	Binary   string
	PPI      int
	MaxPages int
	Log      logr.Logger
}

var _ variant.Typesetter = TypstCLI{}

// NewTypstCLI returns a rasterizer for the given executable.
func NewTypstCLI(binary string, log logr.Logger) TypstCLI {
	return TypstCLI{Binary: binary, PPI: DefaultPPI, MaxPages: 32, Log: log}
}

// Render compiles pages 1, 2, ... until typst refuses a page or prints
// nothing. A failure on the first page is an error.
func (t TypstCLI) Render(ctx context.Context, source string) ([][]byte, error) {
	var pages [][]byte
	for page := 1; page <= t.MaxPages; page++ {
		png, stderr, err := t.compile(ctx, source, page)
		switch {
		case err != nil && page == 1:
			return nil, fmt.Errorf("typeset: typst compile: %w: %s", err, strings.TrimSpace(stderr))
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			t.Log.V(1).Info("typst stopped", "page", page, "stderr", strings.TrimSpace(stderr))
			return pages, nil
		case len(png) == 0:
			return pages, nil
		}
		t.Log.V(1).Info("compiled page", "page", page, "bytes", len(png))
		pages = append(pages, png)
	}
	return pages, nil
}

func (t TypstCLI) compile(ctx context.Context, source string, page int) ([]byte, string, error) {
	cmd := exec.CommandContext(ctx, t.Binary,
		"compile",
		"--format=png",
		"--ppi="+strconv.Itoa(t.PPI),
		"--pages="+strconv.Itoa(page),
		"-", "-",
	)
	cmd.Stdin = strings.NewReader(source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.String(), err
}
