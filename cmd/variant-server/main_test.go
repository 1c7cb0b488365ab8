package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"
	. "github.com/onsi/gomega"

	"github.com/Danila-Bain/diffurcheck-telegram-bot/variant"
)

func serve(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	log := testr.New(t)
	mux := newMux(variant.NewHandler(log), log)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestGenerate(t *testing.T) {
	g := NewWithT(t)
	rec := serve(t, http.MethodPost, "/generate", `{"variant_number": 12, "generator": "linear_systems_2025"}`)
	g.Expect(rec.Code).To(Equal(http.StatusOK))

	var resp variant.Response
	g.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
	g.Expect(resp.VariantNumber).To(Equal(12))
	g.Expect(resp.ProblemCode).To(ContainSubstring("Вариант 12"))
	g.Expect(resp.ProblemImages).NotTo(BeNil())
}

func TestGenerate_BadRequests(t *testing.T) {
	g := NewWithT(t)

	g.Expect(serve(t, http.MethodGet, "/generate", "").Code).To(Equal(http.StatusMethodNotAllowed))
	g.Expect(serve(t, http.MethodPost, "/generate", "{").Code).To(Equal(http.StatusBadRequest))
	g.Expect(serve(t, http.MethodPost, "/generate", `{"variant_number": 1, "extra": true}`).Code).To(Equal(http.StatusBadRequest))
	g.Expect(serve(t, http.MethodPost, "/generate", `{"variant_number": 1, "generator": "test_assignment"} {}`).Code).To(Equal(http.StatusBadRequest))
	g.Expect(serve(t, http.MethodPost, "/generate", `{"variant_number": 1, "generator": "nope"}`).Code).To(Equal(http.StatusNotFound))
}

func TestGeneratorsAndHealth(t *testing.T) {
	g := NewWithT(t)

	rec := serve(t, http.MethodGet, "/generators", "")
	g.Expect(rec.Code).To(Equal(http.StatusOK))
	var names []string
	g.Expect(json.Unmarshal(rec.Body.Bytes(), &names)).To(Succeed())
	g.Expect(names).To(ConsistOf("first_order_equations_2025", "linear_systems_2025", "test_assignment"))

	rec = serve(t, http.MethodGet, "/health", "")
	g.Expect(rec.Code).To(Equal(http.StatusOK))
	g.Expect(rec.Body.String()).To(ContainSubstring(`"status":"ok"`))
}
