// Package variant turns a variant number into a rendered homework sheet.
//
// A Request names a generator and a variant number; the Handler seeds a
// deterministic RNG from both, lets the generator sample its problems, fills
// the Typst templates and optionally rasterizes the documents into PNG pages.
package variant

import (
	"encoding/json"
	"io"

	"github.com/go-logr/logr"
)

// ============================================================
// Invocation envelope
// ============================================================

// Request is the JSON object read by a generator.
type Request struct {
	VariantNumber int    `json:"variant_number"`
	Generator     string `json:"generator"`
}

// Response is the JSON object written back. Image lists hold base64 PNGs
// and are never null.
type Response struct {
	VariantNumber  int      `json:"variant_number"`
	Generator      string   `json:"generator"`
	ProblemCode    string   `json:"problem_code"`
	ProblemImages  []string `json:"problem_images"`
	SolutionCode   string   `json:"solution_code"`
	SolutionImages []string `json:"solution_images"`
}

// DefaultRequest replaces input that cannot be decoded.
var DefaultRequest = Request{VariantNumber: 666, Generator: TestAssignment}

// DecodeRequest reads one Request from r. Malformed input is logged and
// replaced by DefaultRequest; it never fails.
func DecodeRequest(r io.Reader, log logr.Logger) Request {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		log.Error(err, "failed to parse input, using default request",
			"variant_number", DefaultRequest.VariantNumber, "generator", DefaultRequest.Generator)
		return DefaultRequest
	}
	return req
}

// Encode writes the response as a single JSON line.
func (r Response) Encode(w io.Writer) error {
	if r.ProblemImages == nil {
		r.ProblemImages = []string{}
	}
	if r.SolutionImages == nil {
		r.SolutionImages = []string{}
	}
	return json.NewEncoder(w).Encode(r)
}
