// Package summary shows the end-of-activity score card.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/phonics"
	"github.com/bevuihoc/bevuihoc/internal/router"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// Result holds what an activity wants shown when it ends.
type Result struct {
	Heading string
	Score   int
	Total   int

	// MissedSounds lists the sounds that go to the review pile, shown
	// so the learner knows what to revisit.
	MissedSounds []phonics.Card
}

// SummaryScreen displays an activity result.
type SummaryScreen struct {
	result Result
	pops   int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. pops is how many screens sit between the
// summary and home, so dismissing it lands back on the home menu.
func New(result Result, pops int) *SummaryScreen {
	if pops < 1 {
		pops = 1
	}
	return &SummaryScreen{result: result, pops: pops}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Kết quả"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Về trang chính"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			cmds := make([]tea.Cmd, 0, s.pops)
			for i := 0; i < s.pops; i++ {
				cmds = append(cmds, func() tea.Msg { return router.PopScreenMsg{} })
			}
			return s, tea.Sequence(cmds...)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n")

	heading := r.Heading
	if heading == "" {
		heading = "Hoàn thành!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	if r.Total > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("Điểm: %d / %d", r.Score, r.Total)))
		b.WriteString("\n")

		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(praise(r.Score, r.Total)))
		b.WriteString("\n\n")
	}

	if len(r.MissedSounds) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Cần ôn lại")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		sounds := make([]string, 0, len(r.MissedSounds))
		for _, c := range r.MissedSounds {
			sounds = append(sounds, lipgloss.NewStyle().
				Foreground(theme.CardColor(c.Color)).
				Bold(true).
				Render(c.Sound))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			strings.Join(sounds, "   ")))
		b.WriteString("\n")
	}

	return b.String()
}

// praise picks an encouragement line by score band. The wording always
// stays positive: this is for six-year-olds.
func praise(score, total int) string {
	switch {
	case score == total:
		return "🌟 Xuất sắc! Con giỏi quá!"
	case score*2 >= total:
		return "👍 Con làm tốt lắm!"
	default:
		return "💪 Cố gắng thêm chút nữa nhé!"
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
