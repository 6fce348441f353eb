package quiz

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
)

type fakeItem struct {
	id     string
	answer string
}

func (f fakeItem) ID() string               { return f.id }
func (f fakeItem) Prompt() string           { return "prompt " + f.id }
func (f fakeItem) Choices() []string        { return []string{f.answer, "x"} }
func (f fakeItem) Grade(answer string) bool { return answer == f.answer }

func TestSessionLoop(t *testing.T) {
	s := NewSession([]Item{
		fakeItem{id: "1", answer: "a"},
		fakeItem{id: "2", answer: "b"},
	})

	if s.Phase() != PhaseAnswering {
		t.Fatalf("phase = %v, want answering", s.Phase())
	}
	if !s.Submit("a") {
		t.Fatal("first submit rejected")
	}
	if !s.LastCorrect() || s.Score() != 1 {
		t.Fatalf("correct=%v score=%d", s.LastCorrect(), s.Score())
	}
	if s.Phase() != PhaseFeedback {
		t.Fatalf("phase = %v, want feedback", s.Phase())
	}

	// Submissions during feedback must be ignored.
	if s.Submit("b") {
		t.Fatal("submit during feedback accepted")
	}
	if s.Score() != 1 {
		t.Fatalf("score changed during feedback: %d", s.Score())
	}

	s.Advance()
	if s.Index() != 1 || s.Phase() != PhaseAnswering {
		t.Fatalf("index=%d phase=%v after advance", s.Index(), s.Phase())
	}
	if !s.Submit("wrong") {
		t.Fatal("second submit rejected")
	}
	if s.LastCorrect() {
		t.Fatal("wrong answer marked correct")
	}
	s.Advance()
	if !s.Finished() {
		t.Fatal("session not finished after last question")
	}
	if s.Current() != nil {
		t.Fatal("finished session still serves a question")
	}
	if s.Submit("a") {
		t.Fatal("submit accepted after finish")
	}
	if s.Score() != 1 {
		t.Fatalf("final score = %d, want 1", s.Score())
	}
}

func TestSessionEmpty(t *testing.T) {
	s := NewSession(nil)
	if !s.Finished() {
		t.Fatal("empty session not finished")
	}
}

func TestSessionAdvanceOnlyFromFeedback(t *testing.T) {
	s := NewSession([]Item{fakeItem{id: "1", answer: "a"}})
	s.Advance()
	if s.Index() != 0 || s.Phase() != PhaseAnswering {
		t.Fatal("advance moved the cursor outside feedback")
	}
}

func TestSessionSubmitResult(t *testing.T) {
	s := NewSession([]Item{fakeItem{id: "1", answer: "a"}})
	if !s.SubmitResult(true) {
		t.Fatal("submit result rejected")
	}
	if s.Score() != 1 || s.Phase() != PhaseFeedback {
		t.Fatalf("score=%d phase=%v", s.Score(), s.Phase())
	}
	if s.SubmitResult(true) {
		t.Fatal("double submit accepted")
	}
}

func TestSortPuzzle(t *testing.T) {
	p := NewSortPuzzle([]string{"3", "1", "2"}, []string{"1", "2", "3"})

	if p.Correct() {
		t.Fatal("empty puzzle reported correct")
	}
	if !p.Pick(1) || !p.Pick(2) {
		t.Fatal("valid picks rejected")
	}
	if p.Pick(1) {
		t.Fatal("reused token accepted")
	}
	if p.Correct() {
		t.Fatal("matching prefix counted as correct")
	}
	if !p.Pick(0) {
		t.Fatal("final pick rejected")
	}
	if !p.Complete() || !p.Correct() {
		t.Fatalf("complete=%v correct=%v, want true/true", p.Complete(), p.Correct())
	}
	if p.Pick(0) {
		t.Fatal("pick accepted after completion")
	}
}

func TestSortPuzzleUndo(t *testing.T) {
	p := NewSortPuzzle([]string{"2", "1"}, []string{"1", "2"})

	if p.Undo() {
		t.Fatal("undo on empty puzzle succeeded")
	}
	p.Pick(0)
	p.Pick(1)
	if p.Correct() {
		t.Fatal("wrong order reported correct")
	}
	if !p.Undo() || !p.Undo() {
		t.Fatal("undo rejected")
	}
	if p.Used(0) || p.Used(1) {
		t.Fatal("undone tokens still marked used")
	}
	p.Pick(1)
	p.Pick(0)
	if !p.Correct() {
		t.Fatal("corrected order not accepted")
	}
}

func newGame() *ReflexGame {
	rng := rand.New(rand.NewPCG(7, 11))
	g := NewReflexGame(mathgen.New(rng))
	g.Start()
	return g
}

// typeAnswer presses the digits of the current expected answer.
func typeAnswer(t *testing.T, g *ReflexGame) {
	t.Helper()
	answer := g.Current().Answer
	for i := 0; i < len(answer); i++ {
		j := g.Press(answer[i])
		if i == len(answer)-1 && j != JudgeCorrect {
			t.Fatalf("typed %q, judgment = %v, want correct", answer, j)
		}
	}
}

// wrongDigit returns a first keystroke guaranteed wrong for the current
// question, accounting for the leading-one ambiguity around ten.
func wrongDigit(g *ReflexGame) byte {
	expected, _ := strconv.Atoi(g.Current().Answer)
	if expected == 10 {
		return '2'
	}
	return byte('0' + (expected+1)%10)
}

func TestReflexScoring(t *testing.T) {
	g := newGame()
	first := g.Current().ID

	typeAnswer(t, g)
	if g.Score() != 1 || g.Streak() != 1 {
		t.Fatalf("score=%d streak=%d after correct", g.Score(), g.Streak())
	}
	if g.Current().ID == first {
		t.Fatal("no new question dealt after correct answer")
	}
	if g.Input() != "" {
		t.Fatalf("input not cleared: %q", g.Input())
	}

	if j := g.Press(wrongDigit(g)); j != JudgeWrong {
		t.Fatalf("judgment = %v, want wrong", j)
	}
	if g.Streak() != 0 {
		t.Fatalf("streak = %d after wrong, want 0", g.Streak())
	}
	if g.Score() != 1 {
		t.Fatalf("score = %d after wrong, want 1", g.Score())
	}
	if g.Input() != "" {
		t.Fatalf("input not cleared after wrong: %q", g.Input())
	}
}

func TestReflexTenAmbiguity(t *testing.T) {
	g := newGame()
	// Deal questions until the answer is 10.
	for g.Current().Answer != "10" {
		typeAnswer(t, g)
	}
	if j := g.Press('1'); j != JudgePending {
		t.Fatalf("judgment for leading 1 = %v, want pending", j)
	}
	if j := g.Press('0'); j != JudgeCorrect {
		t.Fatalf("judgment for 10 = %v, want correct", j)
	}
}

func TestReflexStreakBonus(t *testing.T) {
	g := newGame()
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if g.TimeLeft() != ReflexDuration-10 {
		t.Fatalf("time = %d after 10 ticks", g.TimeLeft())
	}
	for i := 0; i < ReflexStreakEvery; i++ {
		typeAnswer(t, g)
	}
	if g.TimeLeft() != ReflexDuration-10+ReflexStreakBonus {
		t.Fatalf("time = %d, want bonus applied", g.TimeLeft())
	}
}

func TestReflexBonusCap(t *testing.T) {
	g := newGame()
	g.Tick()
	for i := 0; i < ReflexStreakEvery; i++ {
		typeAnswer(t, g)
	}
	if g.TimeLeft() != ReflexDuration {
		t.Fatalf("time = %d, want capped at %d", g.TimeLeft(), ReflexDuration)
	}
}

func TestReflexTimeout(t *testing.T) {
	g := newGame()
	for i := 0; i < ReflexDuration; i++ {
		g.Tick()
	}
	if g.Running() {
		t.Fatal("game still running after countdown")
	}
	if g.TimeLeft() != 0 {
		t.Fatalf("time = %d at timeout", g.TimeLeft())
	}
	if j := g.Press('5'); j != JudgePending {
		t.Fatal("input accepted after timeout")
	}
}

func TestReflexBackspace(t *testing.T) {
	g := newGame()
	// A pending state only exists when the answer is 10.
	for g.Current().Answer != "10" {
		typeAnswer(t, g)
	}
	g.Press('1')
	g.Backspace()
	if g.Input() != "" {
		t.Fatalf("input = %q after backspace", g.Input())
	}
}
