// cmd/variant-server/main.go — HTTP front-end for the variant generators
//
// Serves the same request/response envelope as variant-generator so the bot
// can fetch variants over HTTP instead of spawning a process per variant.
//
// Usage:
//
//	go run ./cmd/variant-server -port 8080 -typst typst
//
// Generate endpoint:   POST /generate
// Generators endpoint: GET  /generators
// Health endpoint:     GET  /health
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/go-logr/logr"

	"github.com/Danila-Bain/diffurcheck-telegram-bot/internal/logging"
	"github.com/Danila-Bain/diffurcheck-telegram-bot/typeset"
	"github.com/Danila-Bain/diffurcheck-telegram-bot/variant"
)

const maxBodyBytes = 1 << 16

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	configPath := flag.String("config", "", "YAML file with sampling tables (default: embedded)")
	seed := flag.Uint64("seed", 0, "Salt mixed into the per-variant seed")
	typst := flag.String("typst", "", "Typst executable used to rasterize pages (empty: sources only)")
	ppi := flag.Int("ppi", typeset.DefaultPPI, "Resolution of rasterized pages")
	plots := flag.Bool("plots", false, "Append a plot of the particular solutions to the solution images")
	verbosity := flag.Int("v", 0, "Log verbosity")
	flag.Parse()

	log, flush, err := logging.New("variant-server", *verbosity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
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

	addr := fmt.Sprintf(":%d", *port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(h, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	log.Info("listening", "addr", addr, "generators", h.Registry.Names())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err, "server stopped")
		flush()
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newMux(h *variant.Handler, log logr.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// POST /generate — render one variant
	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error(fmt.Errorf("panic: %v", rec), "panic in /generate", "stack", string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req variant.Request
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if dec.More() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
			return
		}

		resp, err := h.Handle(r.Context(), req)
		switch {
		case errors.Is(err, variant.ErrUnknownGenerator):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		case err != nil:
			log.Error(err, "generation failed", "generator", req.Generator, "variant", req.VariantNumber)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = resp.Encode(w)
	})

	// GET /generators — registered generator names
	mux.HandleFunc("/generators", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.Registry.Names())
	})

	// GET /health — liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return mux
}
