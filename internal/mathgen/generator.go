package mathgen

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Generator produces math questions from an injected random source, so
// callers can seed it for reproducible quizzes and tests.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produces count questions for the topic. The mixed topic
// samples archetype families at 25% geometry, 40% calculation, 35%
// number sense; dedicated topics pin their own family.
func (g *Generator) Generate(topic Topic, count int) []Question {
	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		var q Question
		switch topic {
		case TopicGeometry:
			if g.rng.Float64() < 0.6 {
				q = g.shapeQuestion()
			} else {
				q = g.spatialQuestion()
			}
		case TopicCalculation:
			q = g.calcQuestion()
		case TopicNumbers:
			q = g.numberSenseQuestion()
		default:
			r := g.rng.Float64()
			switch {
			case r < 0.25:
				q = g.shapeQuestion()
			case r < 0.65:
				q = g.calcQuestion()
			default:
				q = g.numberSenseQuestion()
			}
		}
		questions = append(questions, q)
	}
	return questions
}

var primitiveShapes = []struct {
	Name string
	Kind ShapeKind
}{
	{"Hình tròn", ShapeCircle},
	{"Hình vuông", ShapeSquare},
	{"Hình tam giác", ShapeTriangle},
	{"Hình chữ nhật", ShapeRectangle},
}

// shapeQuestion asks the learner to identify a primitive shape or to
// count how many of one shape appear in a scatter of mixed shapes.
func (g *Generator) shapeQuestion() Question {
	target := primitiveShapes[g.rng.IntN(len(primitiveShapes))]

	if g.rng.Float64() < 0.5 {
		options := make([]string, len(primitiveShapes))
		for i, s := range primitiveShapes {
			options[i] = string(s.Kind)
		}
		shuffle(g.rng, options)
		return Question{
			ID:      uuid.New().String(),
			Type:    TypeMultipleChoice,
			Prompt:  fmt.Sprintf("Bé hãy tìm: %s?", target.Name),
			Visual:  ShapeScatter{},
			Answer:  string(target.Kind),
			Options: options,
		}
	}

	// Counting mode: few targets so the child can count them, plus some
	// decoy shapes of a different kind.
	count := 1 + g.rng.IntN(5)
	shapes := make([]ShapeKind, 0, count+3)
	for i := 0; i < count; i++ {
		shapes = append(shapes, target.Kind)
	}
	other := primitiveShapes[0]
	for _, s := range primitiveShapes {
		if s.Kind != target.Kind {
			other = s
			break
		}
	}
	decoys := 1 + g.rng.IntN(3)
	for i := 0; i < decoys; i++ {
		shapes = append(shapes, other.Kind)
	}
	g.rng.Shuffle(len(shapes), func(i, j int) {
		shapes[i], shapes[j] = shapes[j], shapes[i]
	})

	return Question{
		ID:      uuid.New().String(),
		Type:    TypeCounting,
		Prompt:  fmt.Sprintf("Có bao nhiêu %s trong hình?", target.Name),
		Visual:  ShapeScatter{Shapes: shapes},
		Answer:  itoa(count),
		Options: Options(g.rng, count),
	}
}

// spatialQuestion asks about position in a row of three animals: who is
// in the middle, to the left/right of another, or at either end.
func (g *Generator) spatialQuestion() Question {
	row := []string{"🐶", "🐱", "🐭"}
	g.rng.Shuffle(len(row), func(i, j int) {
		row[i], row[j] = row[j], row[i]
	})

	options := append(append([]string{}, row...), "🦁")
	shuffle(g.rng, options)

	var prompt, answer string
	switch g.rng.IntN(3) {
	case 0:
		prompt = "Bạn nào đang đứng ở giữa?"
		answer = row[1]
	case 1:
		direction := "bên phải"
		target := row[2]
		if g.rng.Float64() < 0.5 {
			direction = "bên trái"
			target = row[0]
		}
		prompt = fmt.Sprintf("Bạn nào đứng %s bạn %s?", direction, row[1])
		answer = target
	default:
		prompt = "Bạn nào đang đứng cuối hàng?"
		answer = row[2]
		if g.rng.Float64() < 0.5 {
			prompt = "Bạn nào đang đứng đầu hàng?"
			answer = row[0]
		}
	}

	return Question{
		ID:      uuid.New().String(),
		Type:    TypeMultipleChoice,
		Prompt:  prompt,
		Visual:  SpatialRow{Items: row},
		Answer:  answer,
		Options: options,
	}
}

// equation samples a bounded addition or subtraction. Addition draws the
// result first and splits it so both addends stay within the bound;
// subtraction draws the minuend first and the subtrahend below it so the
// result is never negative.
func (g *Generator) equation() (a, b, result int, op string) {
	if g.rng.Float64() < 0.5 {
		result = g.rng.IntN(MaxValue + 1)
		a = g.rng.IntN(result + 1)
		b = result - a
		op = "+"
		return
	}
	a = g.rng.IntN(MaxValue + 1)
	b = g.rng.IntN(a + 1)
	result = a - b
	op = "-"
	return
}

// Equation produces a bare compute-the-result question with no options,
// for drills that take typed answers instead of multiple choice.
func (g *Generator) Equation() Question {
	a, b, result, op := g.equation()
	return Question{
		ID:     uuid.New().String(),
		Type:   TypeFillInBlank,
		Prompt: fmt.Sprintf("%d %s %d = ?", a, op, b),
		Answer: itoa(result),
	}
}

// calcQuestion produces one of three calculation archetypes: compute the
// result, fill in a missing operand, or pick the missing operator.
func (g *Generator) calcQuestion() Question {
	a, b, result, op := g.equation()

	mode := g.rng.Float64()
	switch {
	case mode < 0.4:
		return Question{
			ID:      uuid.New().String(),
			Type:    TypeMultipleChoice,
			Prompt:  "Kết quả phép tính là bao nhiêu?",
			Visual:  ObjectRow{Items: []string{itoa(a), op, itoa(b), "=", "?"}},
			Answer:  itoa(result),
			Options: Options(g.rng, result),
		}

	case mode < 0.7:
		// The blank is an operand, so the distractors must be built
		// around the operand's value, not the result.
		items := []string{itoa(a), op, "?", "=", itoa(result)}
		unknown := b
		if g.rng.Float64() < 0.5 {
			items = []string{"?", op, itoa(b), "=", itoa(result)}
			unknown = a
		}
		return Question{
			ID:      uuid.New().String(),
			Type:    TypeFillInBlank,
			Prompt:  "Điền số thích hợp vào ô trống:",
			Visual:  ObjectRow{Items: items},
			Answer:  itoa(unknown),
			Options: Options(g.rng, unknown),
		}

	default:
		return Question{
			ID:      uuid.New().String(),
			Type:    TypeMultipleChoice,
			Prompt:  "Dấu nào thích hợp?",
			Visual:  ObjectRow{Items: []string{itoa(a), "?", itoa(b), "=", itoa(result)}},
			Answer:  op,
			Options: SignOptions(g.rng),
		}
	}
}

// distinctValues draws n distinct values from [0, MaxValue].
func (g *Generator) distinctValues(n int) []int {
	present := make(map[int]bool, n)
	values := make([]int, 0, n)
	for len(values) < n {
		v := g.rng.IntN(MaxValue + 1)
		if present[v] {
			continue
		}
		present[v] = true
		values = append(values, v)
	}
	return values
}

// numberSenseQuestion produces a comparison, a min/max pick, or a
// sorting puzzle over distinct values within 10.
func (g *Generator) numberSenseQuestion() Question {
	mode := g.rng.Float64()
	switch {
	case mode < 0.3:
		a := g.rng.IntN(MaxValue + 1)
		b := g.rng.IntN(MaxValue + 1)
		answer := "="
		if a > b {
			answer = ">"
		} else if a < b {
			answer = "<"
		}
		return Question{
			ID:      uuid.New().String(),
			Type:    TypeCompare,
			Prompt:  "Điền dấu thích hợp:",
			Visual:  ObjectRow{Items: []string{itoa(a), "?", itoa(b)}},
			Answer:  answer,
			Options: CompareOptions(g.rng),
		}

	case mode < 0.5:
		values := g.distinctValues(4)
		isMax := g.rng.Float64() < 0.5
		extreme := values[0]
		for _, v := range values[1:] {
			if (isMax && v > extreme) || (!isMax && v < extreme) {
				extreme = v
			}
		}
		which := "BÉ NHẤT"
		if isMax {
			which = "LỚN NHẤT"
		}
		options := make([]string, len(values))
		for i, v := range values {
			options[i] = itoa(v)
		}
		shuffle(g.rng, options)
		return Question{
			ID:      uuid.New().String(),
			Type:    TypeMultipleChoice,
			Prompt:  fmt.Sprintf("Số nào %s?", which),
			Answer:  itoa(extreme),
			Options: options,
		}

	default:
		return g.sortingQuestion()
	}
}

// sortingQuestion produces 5 distinct values and a target order; the
// options are the same values as unordered tokens.
func (g *Generator) sortingQuestion() Question {
	values := g.distinctValues(5)

	ascending := g.rng.Float64() < 0.5
	sorted := append([]int{}, values...)
	sort.Ints(sorted)
	if !ascending {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	sequence := make([]string, len(sorted))
	for i, v := range sorted {
		sequence[i] = itoa(v)
	}
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = itoa(v)
	}
	shuffle(g.rng, options)

	direction := "LỚN đến BÉ"
	if ascending {
		direction = "BÉ đến LỚN"
	}

	return Question{
		ID:       uuid.New().String(),
		Type:     TypeSorting,
		Prompt:   fmt.Sprintf("Sắp xếp 5 số từ %s:", direction),
		Answer:   strings.Join(sequence, ","),
		Sequence: sequence,
		Options:  options,
	}
}
