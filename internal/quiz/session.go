// Package quiz holds the interaction state machines shared by every
// drill: the answer/feedback session loop, the sorting puzzle, and the
// timed reflex game. All state here is pure and single-threaded; timers
// belong to the screens that own a session.
package quiz

import "time"

// FeedbackDuration is how long the answer feedback stays on screen
// before the session moves to the next question.
const FeedbackDuration = 1500 * time.Millisecond

// Item is one question a session can serve, whatever its domain.
type Item interface {
	// ID identifies the item for render keying.
	ID() string

	// Prompt is the text asked of the learner.
	Prompt() string

	// Choices are the selectable answers, already shuffled.
	Choices() []string

	// Grade reports whether an answer is correct.
	Grade(answer string) bool
}

// Phase is the session's position in the answer/feedback loop.
type Phase int

const (
	// PhaseAnswering accepts exactly one submission for the current
	// question.
	PhaseAnswering Phase = iota

	// PhaseFeedback shows the outcome; submissions are ignored until
	// the feedback timer elapses and Advance is called.
	PhaseFeedback

	// PhaseFinished is terminal until a new session is started.
	PhaseFinished
)

// Session runs an ordered question list with a cursor, a score, and the
// answer → feedback → next loop. It is mutated only by Submit variants
// and Advance; there is exactly one current question at a time.
type Session struct {
	items       []Item
	index       int
	score       int
	phase       Phase
	lastCorrect bool
}

// NewSession creates a session over items. An empty list is immediately
// finished.
func NewSession(items []Item) *Session {
	s := &Session{items: items}
	if len(items) == 0 {
		s.phase = PhaseFinished
	}
	return s
}

// Current returns the question awaiting an answer, or nil once the
// session is finished.
func (s *Session) Current() Item {
	if s.phase == PhaseFinished || s.index >= len(s.items) {
		return nil
	}
	return s.items[s.index]
}

// Index returns the 0-based cursor of the current question.
func (s *Session) Index() int { return s.index }

// Len returns the total number of questions.
func (s *Session) Len() int { return len(s.items) }

// Score returns the count of correct answers so far.
func (s *Session) Score() int { return s.score }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// LastCorrect reports the outcome of the most recent submission.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// Finished reports whether the session is over.
func (s *Session) Finished() bool { return s.phase == PhaseFinished }

// Submit grades an answer against the current question. It returns
// false when the submission was ignored (feedback showing, or session
// finished), guarding against double submits.
func (s *Session) Submit(answer string) bool {
	current := s.Current()
	if current == nil || s.phase != PhaseAnswering {
		return false
	}
	return s.SubmitResult(current.Grade(answer))
}

// SubmitResult records an externally graded outcome (used by sorting
// puzzles, which grade by sequence rather than by a single answer).
// Returns false when ignored.
func (s *Session) SubmitResult(correct bool) bool {
	if s.phase != PhaseAnswering || s.Current() == nil {
		return false
	}
	s.lastCorrect = correct
	if correct {
		s.score++
	}
	s.phase = PhaseFeedback
	return true
}

// Advance leaves the feedback phase: to the next question, or to
// Finished after the last one. Calls in any other phase are ignored.
func (s *Session) Advance() {
	if s.phase != PhaseFeedback {
		return
	}
	s.index++
	if s.index >= len(s.items) {
		s.phase = PhaseFinished
		return
	}
	s.phase = PhaseAnswering
}
