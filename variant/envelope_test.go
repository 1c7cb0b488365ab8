package variant_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"
	. "github.com/onsi/gomega"

	"github.com/Danila-Bain/diffurcheck-telegram-bot/variant"
)

func TestDecodeRequest(t *testing.T) {
	g := NewWithT(t)
	log := testr.New(t)

	req := variant.DecodeRequest(strings.NewReader(`{"variant_number": 10, "generator": "linear_systems_2025"}`), log)
	g.Expect(req).To(Equal(variant.Request{VariantNumber: 10, Generator: "linear_systems_2025"}))

	for _, bad := range []string{"", "not json", `{"variant_number": "ten"}`, `[1, 2]`} {
		g.Expect(variant.DecodeRequest(strings.NewReader(bad), log)).To(Equal(variant.DefaultRequest), "input %q", bad)
	}
	g.Expect(variant.DefaultRequest).To(Equal(variant.Request{VariantNumber: 666, Generator: "test_assignment"}))
}

func TestResponse_Encode(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	g.Expect(variant.Response{VariantNumber: 3, Generator: "x", ProblemCode: "= A"}.Encode(&buf)).To(Succeed())

	var raw map[string]any
	g.Expect(json.Unmarshal(buf.Bytes(), &raw)).To(Succeed())
	g.Expect(raw).To(HaveKeyWithValue("variant_number", BeNumerically("==", 3)))
	g.Expect(raw).To(HaveKeyWithValue("generator", "x"))
	g.Expect(raw).To(HaveKeyWithValue("problem_code", "= A"))
	g.Expect(raw).To(HaveKeyWithValue("solution_code", ""))
	g.Expect(raw).To(HaveKeyWithValue("problem_images", BeEmpty()))
	g.Expect(raw).To(HaveKeyWithValue("solution_images", Not(BeNil())))
	g.Expect(strings.Count(buf.String(), "\n")).To(Equal(1))
}
