// Package quizplay runs any multiple-choice quiz through the shared
// answer/feedback session loop: Vietnamese vocabulary, math topics,
// fixed exams, and English units all play on this screen.
package quizplay

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
	"github.com/bevuihoc/bevuihoc/internal/quiz"
	"github.com/bevuihoc/bevuihoc/internal/router"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/screens/summary"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
)

const speakTimeout = 10 * time.Second

// Result is the per-question outcome handed to Finish.
type Result struct {
	Item    quiz.Item
	Correct bool
}

// QuizScreen plays one item list to completion.
type QuizScreen struct {
	deps    *screen.Deps
	heading string
	session *quiz.Session
	results []Result

	selected int

	// sorting state, non-nil while the current question is a sorting
	// puzzle
	puzzle  *quiz.SortPuzzle
	tokenAt int

	// finish hooks the end of the quiz; it receives the outcomes and
	// returns the summary (or other) message to emit. Nil falls back to
	// a plain score card.
	finish func(results []Result) tea.Msg
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// feedbackDoneMsg ends the feedback pause.
type feedbackDoneMsg struct{}

// New creates a quiz over items. finish may be nil.
func New(deps *screen.Deps, heading string, items []quiz.Item, finish func(results []Result) tea.Msg) *QuizScreen {
	q := &QuizScreen{
		deps:    deps,
		heading: heading,
		session: quiz.NewSession(items),
		finish:  finish,
	}
	q.setupQuestion()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.speakCurrent()
}

func (q *QuizScreen) Title() string {
	return q.heading
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.puzzle != nil {
		return []layout.KeyHint{
			{Key: "←/→", Description: "Chọn số"},
			{Key: "Enter", Description: "Xếp"},
			{Key: "Backspace", Description: "Hoàn lại"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Chọn"},
		{Key: "1-4", Description: "Trả lời nhanh"},
		{Key: "Enter", Description: "Trả lời"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return q.handleFeedbackDone()
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.session.Finished() {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if q.session.Phase() == quiz.PhaseFeedback {
		// The pause dismisses itself; ignore mashing.
		return q, nil
	}

	if q.puzzle != nil {
		return q.handleSortKey(msg.String())
	}

	current := q.session.Current()
	if current == nil {
		return q, nil
	}
	choices := current.Choices()

	switch key := msg.String(); key {
	case "up", "k":
		if q.selected > 0 {
			q.selected--
		}
	case "down", "j":
		if q.selected < len(choices)-1 {
			q.selected++
		}
	case "enter":
		return q.submit(q.selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(choices) {
			return q.submit(idx)
		}
	}
	return q, nil
}

func (q *QuizScreen) handleSortKey(key string) (screen.Screen, tea.Cmd) {
	tokens := q.puzzle.Tokens()
	switch key {
	case "left", "h":
		for i := q.tokenAt - 1; i >= 0; i-- {
			if !q.puzzle.Used(i) {
				q.tokenAt = i
				break
			}
		}
	case "right", "l":
		for i := q.tokenAt + 1; i < len(tokens); i++ {
			if !q.puzzle.Used(i) {
				q.tokenAt = i
				break
			}
		}
	case "backspace":
		q.puzzle.Undo()
	case "enter":
		if !q.puzzle.Pick(q.tokenAt) {
			return q, nil
		}
		q.moveToFreeToken()
		if q.puzzle.Complete() {
			correct := q.puzzle.Correct()
			return q.record(q.session.SubmitResult(correct), correct)
		}
	}
	return q, nil
}

// moveToFreeToken repositions the cursor on a still-selectable token.
func (q *QuizScreen) moveToFreeToken() {
	tokens := q.puzzle.Tokens()
	if !q.puzzle.Used(q.tokenAt) {
		return
	}
	for i := 0; i < len(tokens); i++ {
		if !q.puzzle.Used(i) {
			q.tokenAt = i
			return
		}
	}
}

func (q *QuizScreen) submit(choice int) (screen.Screen, tea.Cmd) {
	current := q.session.Current()
	if current == nil {
		return q, nil
	}
	choices := current.Choices()
	if choice < 0 || choice >= len(choices) {
		return q, nil
	}
	answer := choices[choice]
	accepted := q.session.Submit(answer)
	return q.record(accepted, q.session.LastCorrect())
}

// record captures the outcome and starts the feedback pause.
func (q *QuizScreen) record(accepted, correct bool) (screen.Screen, tea.Cmd) {
	if !accepted {
		return q, nil
	}
	q.results = append(q.results, Result{Item: q.currentItem(), Correct: correct})
	return q, tea.Tick(quiz.FeedbackDuration, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

func (q *QuizScreen) currentItem() quiz.Item {
	return q.session.Current()
}

func (q *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	q.session.Advance()
	if q.session.Finished() {
		return q.finishQuiz()
	}
	q.setupQuestion()
	return q, q.speakCurrent()
}

// setupQuestion resets per-question state, building the sorting puzzle
// when the new question needs one.
func (q *QuizScreen) setupQuestion() {
	q.selected = 0
	q.tokenAt = 0
	q.puzzle = nil

	if m, ok := q.session.Current().(quiz.MathItem); ok && m.Q.Type == mathgen.TypeSorting {
		q.puzzle = quiz.NewSortPuzzle(m.Q.Options, m.Q.Sequence)
	}
}

func (q *QuizScreen) finishQuiz() (screen.Screen, tea.Cmd) {
	if q.deps.StudentID != "" {
		_ = q.deps.Roster.RecordQuiz(context.Background(), q.deps.StudentID, q.session.Score())
	}

	if q.finish != nil {
		results := q.results
		return q, func() tea.Msg { return q.finish(results) }
	}

	result := summary.Result{
		Heading: q.heading,
		Score:   q.session.Score(),
		Total:   q.session.Len(),
	}
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result, 1)}
	}
}

// speakCurrent fires best-effort speech when the question carries
// English audio.
func (q *QuizScreen) speakCurrent() tea.Cmd {
	item, ok := q.session.Current().(quiz.EnglishItem)
	if !ok || item.Q.AudioText == "" {
		return nil
	}
	text := item.Q.AudioText
	synth := q.deps.Speech
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		defer cancel()
		_, _ = synth.Synthesize(ctx, text)
		return nil
	}
}
