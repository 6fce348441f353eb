package mathgen

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateCount(t *testing.T) {
	g := New(rand.New(rand.NewPCG(1, 2)))
	for _, topic := range AllTopics() {
		questions := g.Generate(topic, 10)
		if len(questions) != 10 {
			t.Errorf("topic %s: got %d questions, want 10", topic, len(questions))
		}
	}
}

// Every operand and result in 1000 generated calculation questions must
// stay within [0, 10], and the stated answer must equal the value
// recomputed from the displayed equation.
func TestCalcQuestionsBoundedAndConsistent(t *testing.T) {
	g := New(rand.New(rand.NewPCG(3, 4)))

	for trial := 0; trial < 1000; trial++ {
		q := g.calcQuestion()

		row, ok := q.Visual.(ObjectRow)
		if !ok {
			t.Fatalf("calc question without ObjectRow visual: %+v", q)
		}

		for _, item := range row.Items {
			if n, err := strconv.Atoi(item); err == nil {
				if n < 0 || n > MaxValue {
					t.Fatalf("operand %d out of range in %v", n, row.Items)
				}
			}
		}

		// Operator questions state the operator, not a number.
		if q.Answer == "+" || q.Answer == "-" {
			continue
		}

		want, ok := Recompute(row)
		if !ok {
			t.Fatalf("cannot recompute %v", row.Items)
		}
		if q.Answer != strconv.Itoa(want) {
			t.Fatalf("answer %q but recomputed %d for %v", q.Answer, want, row.Items)
		}
	}
}

// Fill-in-blank distractors must be built around the blank's true value,
// not the result. A distractor set hugging the wrong value shows up as
// the correct answer missing from the options.
func TestFillInBlankOptionsTargetBlank(t *testing.T) {
	g := New(rand.New(rand.NewPCG(5, 6)))

	seen := 0
	for trial := 0; trial < 2000 && seen < 300; trial++ {
		q := g.calcQuestion()
		if q.Type != TypeFillInBlank {
			continue
		}
		seen++

		row := q.Visual.(ObjectRow)
		want, ok := Recompute(row)
		if !ok {
			t.Fatalf("cannot recompute %v", row.Items)
		}
		if q.Answer != strconv.Itoa(want) {
			t.Fatalf("blank value %d but answer %q", want, q.Answer)
		}

		found := false
		for _, o := range q.Options {
			if o == q.Answer {
				found = true
			}
		}
		if !found {
			t.Fatalf("options %v missing blank value %q", q.Options, q.Answer)
		}
	}
	if seen == 0 {
		t.Fatal("no fill-in-blank questions generated")
	}
}

func TestSortingQuestion(t *testing.T) {
	g := New(rand.New(rand.NewPCG(7, 8)))

	for trial := 0; trial < 500; trial++ {
		q := g.sortingQuestion()

		if len(q.Sequence) != 5 || len(q.Options) != 5 {
			t.Fatalf("sequence %v options %v, want 5 each", q.Sequence, q.Options)
		}
		if q.Answer != strings.Join(q.Sequence, ",") {
			t.Fatalf("answer %q does not match sequence %v", q.Answer, q.Sequence)
		}

		// Sequence must be strictly monotonic in one direction.
		values := make([]int, len(q.Sequence))
		for i, s := range q.Sequence {
			n, err := strconv.Atoi(s)
			if err != nil {
				t.Fatalf("non-numeric sequence element %q", s)
			}
			values[i] = n
		}
		ascending := values[1] > values[0]
		for i := 1; i < len(values); i++ {
			if ascending && values[i] <= values[i-1] {
				t.Fatalf("sequence not ascending: %v", values)
			}
			if !ascending && values[i] >= values[i-1] {
				t.Fatalf("sequence not descending: %v", values)
			}
		}

		// Options are the same multiset as the sequence.
		inSeq := make(map[string]bool)
		for _, s := range q.Sequence {
			inSeq[s] = true
		}
		for _, o := range q.Options {
			if !inSeq[o] {
				t.Fatalf("option %q not in sequence %v", o, q.Sequence)
			}
		}
	}
}

func TestCountingQuestionMatchesScene(t *testing.T) {
	g := New(rand.New(rand.NewPCG(9, 10)))

	seen := 0
	for trial := 0; trial < 500 && seen < 100; trial++ {
		q := g.shapeQuestion()
		if q.Type != TypeCounting {
			continue
		}
		seen++

		scatter, ok := q.Visual.(ShapeScatter)
		if !ok {
			t.Fatalf("counting question without scatter visual")
		}

		// The answer must equal the count of the most frequent kind in
		// the scene (targets always outnumber or equal... targets are
		// the kind whose count matches the answer).
		counts := make(map[ShapeKind]int)
		for _, s := range scatter.Shapes {
			counts[s]++
		}
		want, err := strconv.Atoi(q.Answer)
		if err != nil {
			t.Fatalf("non-numeric counting answer %q", q.Answer)
		}
		matched := false
		for _, n := range counts {
			if n == want {
				matched = true
			}
		}
		if !matched {
			t.Fatalf("answer %d matches no shape count %v", want, counts)
		}
	}
	if seen == 0 {
		t.Fatal("no counting questions generated")
	}
}

func TestExamDeterministic(t *testing.T) {
	for _, id := range []int{1, 2} {
		a, err := Exam(id)
		if err != nil {
			t.Fatalf("Exam(%d): %v", id, err)
		}
		b, _ := Exam(id)
		if len(a) != len(b) {
			t.Fatalf("Exam(%d) length varies", id)
		}
		for i := range a {
			if a[i].ID != b[i].ID || a[i].Answer != b[i].Answer {
				t.Errorf("Exam(%d) question %d differs between calls", id, i)
			}
		}
		for _, q := range a {
			if q.Type == TypeSorting {
				continue
			}
			found := false
			for _, o := range q.Options {
				if o == q.Answer {
					found = true
				}
			}
			if !found {
				t.Errorf("Exam(%d) question %s: options %v missing answer %q", id, q.ID, q.Options, q.Answer)
			}
		}
	}
}

func TestExamUnknownID(t *testing.T) {
	for _, id := range []int{0, 3, -1} {
		if _, err := Exam(id); err == nil {
			t.Errorf("Exam(%d) succeeded, want error", id)
		}
	}
}
