package variant

import (
	"embed"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// mustTemplate parses templates/<dir>/<name>. The files are embedded, so a
// parse error is a build defect.
func mustTemplate(dir, name string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+dir+"/"+name))
}

var (
	linearSystemsProblem   = mustTemplate(LinearSystems, "problem.typ")
	linearSystemsSolution  = mustTemplate(LinearSystems, "solution.typ")
	firstOrderProblem      = mustTemplate(FirstOrderEquations, "problem.typ")
	firstOrderSolution     = mustTemplate(FirstOrderEquations, "solution.typ")
	testAssignmentProblem  = mustTemplate(TestAssignment, "problem.typ")
	testAssignmentSolution = mustTemplate(TestAssignment, "solution.typ")
)
