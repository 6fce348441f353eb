package mathgen

// Question is a generated math question ready for display.
type Question struct {
	// ID is unique for the question's lifetime. Randomly generated
	// questions use UUIDs; exam questions use fixed ids so the same
	// exam is identical for every learner.
	ID string

	// Type indicates how the learner answers this question.
	Type QuestionType

	// Prompt is the question text displayed to the learner.
	Prompt string

	// Visual optionally describes a scene to draw alongside the prompt.
	// Nil when the prompt stands alone.
	Visual Visual

	// Answer is the canonical correct answer as a string. For sorting
	// questions it is the comma-joined target sequence.
	Answer string

	// Sequence is populated only for sorting questions: the target
	// order, one value per element.
	Sequence []string

	// Options are the candidate answers, shuffled. Sorting questions
	// use them as the clickable tokens instead.
	Options []string
}

// QuestionType is the answer archetype of a question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "MULTIPLE_CHOICE" // pick one of 4
	TypeCompare        QuestionType = "COMPARE"         // pick >, < or =
	TypeSorting        QuestionType = "SORTING"         // order a set of values
	TypeCounting       QuestionType = "COUNTING"        // count items in a scene
	TypeFillInBlank    QuestionType = "FILL_IN_BLANK"   // supply a missing operand
)

// Topic selects which archetypes a generator call draws from.
type Topic string

const (
	TopicGeometry    Topic = "GEOMETRY"    // shapes and spatial position
	TopicNumbers     Topic = "NUMBERS"     // comparison and ordering
	TopicCalculation Topic = "CALCULATION" // addition and subtraction within 10
	TopicMixed       Topic = "MIXED"
)

// AllTopics lists the quiz topics in menu order.
func AllTopics() []Topic {
	return []Topic{TopicGeometry, TopicNumbers, TopicCalculation, TopicMixed}
}

// ShapeKind is a primitive shape drawn in scatter scenes.
type ShapeKind string

const (
	ShapeCircle    ShapeKind = "circle"
	ShapeSquare    ShapeKind = "square"
	ShapeTriangle  ShapeKind = "triangle"
	ShapeRectangle ShapeKind = "rectangle"
)

// Visual is a closed description of a scene to render. Each question
// carries at most one variant; consumers switch on the concrete type.
type Visual interface {
	visual()
}

// ShapeScatter is a loose scattering of primitive shapes to count or
// identify.
type ShapeScatter struct {
	Shapes []ShapeKind
}

// SpatialRow is a left-to-right row of figures for position questions.
type SpatialRow struct {
	Items []string
}

// ObjectRow is a row of tokens, typically the terms of an equation with
// "?" marking the blank.
type ObjectRow struct {
	Items []string
}

// CompositeFigure references a composite shape from the shapes library,
// rendered as an interactive decomposition.
type CompositeFigure struct {
	ShapeID string
}

func (ShapeScatter) visual()    {}
func (SpatialRow) visual()      {}
func (ObjectRow) visual()       {}
func (CompositeFigure) visual() {}
