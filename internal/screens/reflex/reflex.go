// Package reflex is the timed rapid-fire arithmetic game: answer as
// many equations as possible before the clock runs out.
package reflex

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
	"github.com/bevuihoc/bevuihoc/internal/quiz"
	"github.com/bevuihoc/bevuihoc/internal/router"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/screens/summary"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// flashDuration is how long the wrong-answer flash stays visible.
const flashDuration = 300 * time.Millisecond

// ReflexScreen hosts the countdown game.
type ReflexScreen struct {
	deps  *screen.Deps
	game  *quiz.ReflexGame
	flash bool
}

var _ screen.Screen = (*ReflexScreen)(nil)
var _ screen.KeyHintProvider = (*ReflexScreen)(nil)

type tickMsg time.Time

type flashDoneMsg struct{}

// New creates the game screen.
func New(deps *screen.Deps) *ReflexScreen {
	return &ReflexScreen{
		deps: deps,
		game: quiz.NewReflexGame(mathgen.New(deps.RNG)),
	}
}

func (r *ReflexScreen) Init() tea.Cmd {
	r.game.Start()
	return tickCmd()
}

func (r *ReflexScreen) Title() string {
	return "Toán Nhanh"
}

func (r *ReflexScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "0-9", Description: "Gõ đáp án"},
		{Key: "Backspace", Description: "Xóa"},
	}
}

func (r *ReflexScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !r.game.Tick() {
			return r.gameOver()
		}
		return r, tickCmd()

	case flashDoneMsg:
		r.flash = false
		return r, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "backspace" {
			r.game.Backspace()
			return r, nil
		}
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if r.game.Press(key[0]) == quiz.JudgeWrong {
				r.flash = true
				return r, tea.Tick(flashDuration, func(time.Time) tea.Msg {
					return flashDoneMsg{}
				})
			}
		}
	}
	return r, nil
}

func (r *ReflexScreen) gameOver() (screen.Screen, tea.Cmd) {
	result := summary.Result{
		Heading: "⚡ Hết giờ!",
		Score:   r.game.Score(),
		Total:   r.game.Score(), // scored games have no fixed total
	}
	return r, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result, 1)}
	}
}

func (r *ReflexScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	clockStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if r.game.TimeLeft() <= 10 {
		clockStyle = clockStyle.Foreground(theme.Error)
	}
	status := fmt.Sprintf("%s    ⭐ %d    🔥 %d",
		clockStyle.Render(fmt.Sprintf("⏱ %02d", r.game.TimeLeft())),
		r.game.Score(),
		r.game.Streak(),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, status))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(r.game.Current().Prompt))
	b.WriteString("\n\n")

	input := r.game.Input()
	if input == "" {
		input = "_"
	}
	inputStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true)
	if r.flash {
		inputStyle = inputStyle.Foreground(theme.Error)
	}
	b.WriteString(inputStyle.Render(input))

	return b.String()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
