package variant

import (
	"fmt"
	"math/rand/v2"
)

// TestAssignment is the name of the TestAssignmentGenerator and the
// generator of DefaultRequest.
const TestAssignment = "test_assignment"

var (
	funnyThemes = []string{"котёнка", "мыш", "дифференциальное уравнение", "что-то про математику"}

	randomMemeTasks = []Task{
		{
			Title:     "Грустные мемы (10 баллов)",
			Statement: "Пришлите два или три грустных мема. Оценка выставляется за самый грустный мем.",
			Answer:    "Засчитывается, если хотя бы один мем вызывает грусть у проверяющего.",
		},
		{
			Title:     "Непонятные мемы (10 баллов)",
			Statement: "Пришлите два или три непонятных мема. Оценка выставляется за самый непонятный мем.",
			Answer:    "Засчитывается, если проверяющий не смог объяснить хотя бы один мем.",
		},
	}
)

// TestAssignmentGenerator produces a two-task sheet with no math and a short
// grading key, used to exercise the delivery pipeline.
type TestAssignmentGenerator struct{}

func (TestAssignmentGenerator) Name() string { return TestAssignment }

func (TestAssignmentGenerator) Generate(rng *rand.Rand, _ Config) (Sheet, error) {
	theme := choose(rng, funnyThemes)
	funny := Task{
		Title:     "Смешные мемы (10 баллов)",
		Statement: fmt.Sprintf("Пришлите два или три смешных мема. Оценка выставляется за лучший мем. "+
			"Бонус за мем, который содержит %s.", theme),
		Answer: fmt.Sprintf("Засчитывается любой смешной мем; бонус, если в нём есть %s.", theme),
	}
	return Sheet{
		Tasks:    []Task{funny, choose(rng, randomMemeTasks)},
		Problem:  testAssignmentProblem,
		Solution: testAssignmentSolution,
	}, nil
}
