package variant

import "math/rand/v2"

// FirstOrderEquations is the name of the FirstOrderEquations2025 generator.
const FirstOrderEquations = "first_order_equations_2025"

const (
	separableTitle   = "Решите следующее дифференциальное уравнение"
	exactTitle       = "Среди следующих дифференциальных уравнений укажите уравнения в полных дифференциалах и решите их"
	reducibleTitle   = "Можно ли заменой привести следующее уравнение к однородному? Если да, то укажите эту замену и вид уравнения после замены (решать его не нужно)"
	homogeneousTitle = "Какие из следующих уравнений являются однородными? Найдите решения тех, которые являются однородными"
	linearTitle      = "Решите следующие дифференциальные уравнения"
)

// Each bank holds interchangeable versions of one task; a variant takes one
// entry from every bank.
var (
	separableTasks = []Task{
		{
			Statement: "$ (x^2 - 1) y' - 1 = y^2 $",
			Answer:    "Разделим переменные: $ (dif y) / (1 + y^2) = (dif x) / (x^2 - 1). $\n\n" +
				"Проинтегрировав, получим $arctan y = 1/2 ln abs((x-1)/(x+1)) + c$, " +
				"откуда $y = tan(1/2 ln abs((x-1)/(x+1)) + c)$.",
		},
		{
			Statement: "$ 3 x y' = (2 ln(x))/y^2 $",
			Answer:    "Разделим переменные: $3 y^2 dif y = 2 (ln x)/x dif x$.\n\n" +
				"Проинтегрировав, получим $y^3 = ln^2 x + c$, откуда $y = root(3, ln^2 x + c)$.",
		},
		{
			Statement: "$ y'/sin(x) = 1/cos(y) $",
			Answer:    "Разделим переменные: $cos(y) dif y = sin(x) dif x$.\n\n" +
				"Проинтегрировав, получим $sin(y) = c - cos(x)$.",
		},
		{
			Statement: "$ y' = x y^(-1) e^(x - y) $",
			Answer:    "Разделим переменные: $y e^y dif y = x e^x dif x$.\n\n" +
				"Проинтегрировав по частям, получим $(y - 1) e^y = (x - 1) e^x + c$.",
		},
	}

	exactTasks = []Task{
		{
			Statement: "+ $(y e^x + 2 x ln y) dif x - (x^2/y + e^x + cos(y)) dif y = 0$,\n" +
				"+ $(y e^x - 2 x ln y) dif x = (x^2/y - e^x - cos(y)) dif y$,\n" +
				"+ $(y e^x - 2 x ln y) dif x + (x^2/y - e^x + cos(y)) dif y = 0$.",
			Answer: "Уравнением в полных дифференциалах является только уравнение (b). " +
				"Его решение: $y e^x - x^2 ln(y) + sin(y) = c$.",
		},
		{
			Statement: "+ $(e^(x - y) - sin(x)/y + 1) dif x + (cos(x)/y^2 - e^(x - y) - 1) dif y = 0$,\n" +
				"+ $(e^(x - y) - sin(x)/y - 1) dif x + (cos(x)/y^2 + e^(x - y) - 1) dif y = 0$,\n" +
				"+ $(e^(x - y) - sin(x)/y + 1) dif x = (cos(x)/y^2 + e^(x - y) + 1) dif y$.",
			Answer: "Уравнением в полных дифференциалах является только уравнение (c). " +
				"Его решение: $cos(x)/y + e^(x - y) + x - y = c$.",
		},
		{
			Statement: "+ $(2 x y^2 - (2 x + 1) e^(2 x) + 2 y e^(2 x)) dif x = (e^(2 x) + 2 x^2 y) dif y$,\n" +
				"+ $(2 x y^2 + (2 x + 1) e^(2 x) + 2 y e^(2 x)) dif x + (e^(2 x) + 2 x^2 y) dif y = 0$,\n" +
				"+ $(2 x y^2 - (2 x + 1) e^(2 x) + 2 y e^(2 x)) dif x + (e^(2 x) - 2 x^2 y) dif y = 0$.",
			Answer: "Уравнением в полных дифференциалах является только уравнение (b). " +
				"Его решение: $x^2 y^2 + x e^(2 x) + y e^(2 x) = c$.",
		},
		{
			Statement: "+ $(1/(x e^y) + x^2 cos(y)) dif x + (ln(x)/e^y + 2 y^2 + x^3/3 sin(y)) dif y = 0$,\n" +
				"+ $(1/(x e^y) + x^2 cos(y)) dif x = (ln(x)/e^y + 2 y + x^3 sin(y)) dif y$,\n" +
				"+ $(1/(x e^y) + x^2 cos(y)) dif x = (ln(x)/e^y + 2 y + x^3/3 sin(y) + 2) dif y$.",
			Answer: "Уравнением в полных дифференциалах является только уравнение (c). " +
				"Его решение: $ln(x) e^(-y) + 1/3 x^3 cos(y) - (y + 1)^2 = c$.",
		},
	}

	reducibleTasks = []Task{
		{
			Statement: "$ y' = (3 x + y - 4)/(x - 2 y + 1) $",
			Answer:    "Привести можно. Замена: $x = u + 1$, $y = v + 1$. Вид после замены: $v' = (3 u + v)/(u - 2 v)$.",
		},
		{
			Statement: "$ y' = (-2 x + y + 3)/(x - 2 y - 3) $",
			Answer:    "Привести можно. Замена: $x = u + 1$, $y = v - 1$. Вид после замены: $v' = (-2 u + v)/(u - 2 v)$.",
		},
		{
			Statement: "$ (x - 3 y + 5) dif x = (2 y - 4 x - 10) dif y $",
			Answer:    "Привести можно. Замена: $x = u - 2$, $y = v + 1$. Вид после замены: $(u - 3 v) dif u = (2 v - 4 u) dif v$.",
		},
		{
			Statement: "$ (2 x - 3 y - 1) dif y = (y - 3 x - 2) dif x $",
			Answer:    "Привести можно. Замена: $x = u - 1$, $y = v - 1$. Вид после замены: $(2 u - 3 v) dif v = (v - 3 u) dif u$.",
		},
	}

	homogeneousTasks = []Task{
		{
			Statement: "+ $y' - (cos^2(y))/(cos^2(x)) = y/x$;\n" +
				"+ $y' - cos^2(y/x) = y/x$;\n" +
				"+ $y'/x - cos^2(y/x) = y/x$.",
			Answer: "Однородное уравнение только (b). Его решение: $tg(y/x) = ln(x) + c$.",
		},
		{
			Statement: "+ $y'/x = 2 e^(-y/(2x)) + y/x$;\n" +
				"+ $y' = 2 e^(-y/(2x)) + y/x$;\n" +
				"+ $y' = (2 e^(-y))/e^(2x) + y/x$.",
			Answer: "Однородное уравнение только (b). Его решение: $e^(y/(2x)) = ln(x) + c$.",
		},
		{
			Statement: "+ $(y' - y) cos(y/x) = x$;\n" +
				"+ $(y' - y)/x^2 cos(y/x) = 1/y$;\n" +
				"+ $y' = (y cos(y/x) + x)/(x cos(y/x))$.",
			Answer: "Однородное уравнение только (c). Его решение: $sin(y/x) = ln(x) + c$.",
		},
		{
			Statement: "+ $(y' - y) sin(y/x) = x$;\n" +
				"+ $y' = (y sin(y/x) + x)/(x sin(y/x))$;\n" +
				"+ $(y' - y)/x^2 sin(y/x) = 1/y$.",
			Answer: "Однородное уравнение только (b). Его решение: $cos(y/x) = c - ln(x)$.",
		},
	}

	linearTasks = []Task{
		{
			Statement: "+ $x y' = y$;\n" +
				"+ $2 x y' + sqrt(x) = 2 y$;\n" +
				"+ $6 sqrt(x) y y' + 1/y = (2 y^2)/sqrt(x)$.",
			Answer: "+ Уравнение с разделяющимися переменными, а также линейное однородное. Его решение: $y = c x$.\n" +
				"+ Неоднородное линейное уравнение $y' = y/x - 1/(2 sqrt(x))$. Его решение: $y = c x + sqrt(x)$.\n" +
				"+ Уравнение Бернулли, которое заменой $z = y^3$ приводится к предыдущему. " +
				"Тогда $z = c x + sqrt(x)$ и $y = root(3, c x + sqrt(x))$.",
		},
	}
)

// FirstOrderEquations2025 assembles a sheet of five first-order tasks from
// fixed banks: a separable equation, exact equations, a reduction to a
// homogeneous equation, homogeneous equations and linear/Bernoulli equations.
type FirstOrderEquations2025 struct{}

func (FirstOrderEquations2025) Name() string { return FirstOrderEquations }

func (FirstOrderEquations2025) Generate(rng *rand.Rand, _ Config) (Sheet, error) {
	banks := []struct {
		title string
		tasks []Task
	}{
		{separableTitle, separableTasks},
		{exactTitle, exactTasks},
		{reducibleTitle, reducibleTasks},
		{homogeneousTitle, homogeneousTasks},
		{linearTitle, linearTasks},
	}
	sheet := Sheet{Problem: firstOrderProblem, Solution: firstOrderSolution}
	for _, b := range banks {
		t := choose(rng, b.tasks)
		t.Title = b.title
		sheet.Tasks = append(sheet.Tasks, t)
	}
	return sheet, nil
}
