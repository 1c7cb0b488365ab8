// cmd/variant-generator/main.go — one-shot variant generator
//
// Reads {"variant_number": N, "generator": "..."} from stdin and writes the
// rendered variant as one JSON object to stdout. Logs go to stderr.
//
// Usage:
//
//	echo '{"variant_number": 7, "generator": "linear_systems_2025"}' | variant-generator -typst typst -plots
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/Danila-Bain/diffurcheck-telegram-bot/internal/logging"
	"github.com/Danila-Bain/diffurcheck-telegram-bot/typeset"
	"github.com/Danila-Bain/diffurcheck-telegram-bot/variant"
)

func main() {
	configPath := flag.String("config", "", "YAML file with sampling tables (default: embedded)")
	seed := flag.Uint64("seed", 0, "Salt mixed into the per-variant seed")
	typst := flag.String("typst", "", "Typst executable used to rasterize pages (empty: sources only)")
	ppi := flag.Int("ppi", typeset.DefaultPPI, "Resolution of rasterized pages")
	plots := flag.Bool("plots", false, "Append a plot of the particular solutions to the solution images")
	verbosity := flag.Int("v", 0, "Log verbosity")
	flag.Parse()

	log, flush, err := logging.New("variant-generator", *verbosity)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer flush()

	cfg, err := variant.LoadConfig(*configPath)
	if err != nil {
		log.Error(err, "invalid configuration", "path", *configPath)
		flush()
		os.Exit(1)
	}

	h := variant.NewHandler(log)
	h.Config = cfg
	h.Salt = *seed
	if *typst != "" {
		cli := typeset.NewTypstCLI(*typst, log.WithName("typst"))
		cli.PPI = *ppi
		h.Typesetter = cli
	}
	if *plots {
		h.Plotter = typeset.NewGonumPlotter()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req := variant.DecodeRequest(os.Stdin, log)
	log.V(1).Info("request", "variant_number", req.VariantNumber, "generator", req.Generator)

	resp, err := h.Handle(ctx, req)
	if err != nil {
		log.Error(err, "generation failed")
		flush()
		os.Exit(1)
	}
	if err := resp.Encode(os.Stdout); err != nil {
		log.Error(err, "write response")
		flush()
		os.Exit(1)
	}
}
