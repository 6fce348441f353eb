// Package study is the flashcard screen: the learner flips through a
// deck of Vietnamese sounds and marks each one known or not yet known.
package study

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/phonics"
	"github.com/bevuihoc/bevuihoc/internal/router"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/screens/summary"
	"github.com/bevuihoc/bevuihoc/internal/ui/components"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

const speakTimeout = 10 * time.Second

// mark is the learner's verdict on one card.
type mark int

const (
	markNone mark = iota
	markKnown
	markMissed
)

// StudyScreen pages through one flashcard deck.
type StudyScreen struct {
	deps  *screen.Deps
	deck  []phonics.Card
	index int
	marks []mark
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New builds a study session over a fresh shuffled deck for the topic.
func New(deps *screen.Deps, topic phonics.Topic) *StudyScreen {
	deck := phonics.NewDeck(topic, deps.RNG)
	return &StudyScreen{
		deps:  deps,
		deck:  deck,
		marks: make([]mark, len(deck)),
	}
}

// NewReview builds a study session over the missed-word pile.
func NewReview(deps *screen.Deps) *StudyScreen {
	deck := deps.Tracker.Missed()
	return &StudyScreen{
		deps:  deps,
		deck:  deck,
		marks: make([]mark, len(deck)),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.speakCurrent()
}

func (s *StudyScreen) Title() string {
	return "Học Vần"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Lật thẻ"},
		{Key: "Y", Description: "Đã thuộc"},
		{Key: "N", Description: "Chưa thuộc"},
		{Key: "S", Description: "Đọc to"},
		{Key: "Enter", Description: "Xong"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if len(s.deck) == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch kmsg.String() {
	case "right", "l":
		if s.index < len(s.deck)-1 {
			s.index++
			return s, s.speakCurrent()
		}
	case "left", "h":
		if s.index > 0 {
			s.index--
			return s, s.speakCurrent()
		}
	case "y", "Y":
		s.marks[s.index] = markKnown
		return s.advanceOrFinish()
	case "n", "N":
		s.marks[s.index] = markMissed
		return s.advanceOrFinish()
	case "s", "S":
		return s, s.speakCurrent()
	case "enter":
		return s.finish()
	}

	return s, nil
}

// advanceOrFinish moves to the next card, or ends the session after the
// last one has been marked.
func (s *StudyScreen) advanceOrFinish() (screen.Screen, tea.Cmd) {
	if s.index < len(s.deck)-1 {
		s.index++
		return s, s.speakCurrent()
	}
	return s.finish()
}

// finish records the session and shows the score card. Unmarked cards
// count as neither correct nor missed.
func (s *StudyScreen) finish() (screen.Screen, tea.Cmd) {
	var correct, incorrect []phonics.Card
	for i, m := range s.marks {
		switch m {
		case markKnown:
			correct = append(correct, s.deck[i])
		case markMissed:
			incorrect = append(incorrect, s.deck[i])
		}
	}

	// Best effort: a failed save never blocks the child's flow.
	_ = s.deps.Tracker.RecordSession(correct, incorrect)
	if s.deps.StudentID != "" {
		_ = s.deps.Roster.RecordStudy(context.Background(), s.deps.StudentID, len(correct))
	}

	result := summary.Result{
		Heading:      "Học xong rồi!",
		Score:        len(correct),
		Total:        len(correct) + len(incorrect),
		MissedSounds: incorrect,
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result, 1)}
	}
}

// speakCurrent fires best-effort speech for the visible card.
func (s *StudyScreen) speakCurrent() tea.Cmd {
	if len(s.deck) == 0 {
		return nil
	}
	text := phonics.Reading(s.deck[s.index].Sound)
	synth := s.deps.Speech
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		defer cancel()
		_, _ = synth.Synthesize(ctx, text)
		return nil
	}
}

func (s *StudyScreen) View(width, height int) string {
	if len(s.deck) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Chưa có từ nào cần ôn. Bé giỏi lắm! 🌟")
	}

	cw := components.ContentWidth(width)
	card := s.deck[s.index]

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Thẻ %d / %d", s.index+1, len(s.deck)))

	tile := components.Flashcard(card, cw)

	var verdict string
	switch s.marks[s.index] {
	case markKnown:
		verdict = theme.Correct.Render("✓ Đã thuộc")
	case markMissed:
		verdict = theme.Incorrect.Render("✗ Chưa thuộc")
	default:
		verdict = theme.Hint.Render("Bé đã thuộc chưa? (Y/N)")
	}

	bar := components.NewProgressBar("", float64(s.index+1)/float64(len(s.deck)), false, cw).View()

	content := counter + "\n\n" + tile + "\n\n" + verdict + "\n\n" + bar
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
