package quizplay

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
	"github.com/bevuihoc/bevuihoc/internal/quiz"
	"github.com/bevuihoc/bevuihoc/internal/shapes"
	"github.com/bevuihoc/bevuihoc/internal/ui/components"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// shapeGlyphs draws primitive shapes in scatter scenes.
var shapeGlyphs = map[mathgen.ShapeKind]string{
	mathgen.ShapeCircle:    "⬤",
	mathgen.ShapeSquare:    "■",
	mathgen.ShapeTriangle:  "▲",
	mathgen.ShapeRectangle: "▬",
}

func (q *QuizScreen) View(width, height int) string {
	if q.session.Finished() {
		return ""
	}
	current := q.session.Current()
	if current == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	// Progress line.
	progress := fmt.Sprintf("Câu %d / %d    ⭐ %d",
		q.session.Index()+1, q.session.Len(), q.session.Score())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(progress))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(current.Prompt()))
	b.WriteString("\n\n")

	// Scene, when the question carries one.
	if scene := q.renderVisual(width); scene != "" {
		b.WriteString(scene)
		b.WriteString("\n\n")
	}

	if q.session.Phase() == quiz.PhaseFeedback {
		b.WriteString(q.renderFeedback(width))
		return b.String()
	}

	if q.puzzle != nil {
		b.WriteString(q.renderSorting(width))
	} else {
		b.WriteString(q.renderChoices(width))
	}

	return b.String()
}

// renderVisual draws the question's scene by variant.
func (q *QuizScreen) renderVisual(width int) string {
	m, ok := q.session.Current().(quiz.MathItem)
	if !ok || m.Q.Visual == nil {
		// English questions carry an icon hint instead of a scene.
		if e, ok := q.session.Current().(quiz.EnglishItem); ok && e.Q.ImageHint != "" {
			return lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render(e.Q.ImageHint)
		}
		return ""
	}

	var scene string
	switch v := m.Q.Visual.(type) {
	case mathgen.ShapeScatter:
		glyphs := make([]string, len(v.Shapes))
		for i, s := range v.Shapes {
			glyphs[i] = shapeGlyphs[s]
		}
		scene = strings.Join(glyphs, "  ")

	case mathgen.SpatialRow:
		scene = strings.Join(v.Items, "   ")

	case mathgen.ObjectRow:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			if item == "?" {
				parts[i] = lipgloss.NewStyle().
					Foreground(theme.Accent).
					Bold(true).
					Render("⬜")
			} else {
				parts[i] = item
			}
		}
		scene = strings.Join(parts, " ")

	case mathgen.CompositeFigure:
		def, err := shapes.Lookup(v.ShapeID)
		if err != nil {
			scene = theme.Hint.Render("(hình chưa hỗ trợ)")
			break
		}
		pieces := make([]string, len(def.Parts))
		for i, p := range def.Parts {
			pieces[i] = fmt.Sprintf("◣%d", p.ID+1)
		}
		scene = strings.Join(pieces, " ") + "\n" +
			theme.Hint.Render(fmt.Sprintf("Hình ghép từ %d mảnh", len(def.Parts)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scene)
}

// renderChoices draws the answer buttons.
func (q *QuizScreen) renderChoices(width int) string {
	choices := q.session.Current().Choices()
	bw := components.ContentWidth(width) / 2

	var b strings.Builder
	for i, choice := range choices {
		label := fmt.Sprintf("%d)  %s", i+1, choice)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.OptionButton(label, i == q.selected, bw)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSorting draws the picked sequence and the remaining tokens.
func (q *QuizScreen) renderSorting(width int) string {
	var b strings.Builder

	picked := q.puzzle.Picked()
	sequence := "…"
	if len(picked) > 0 {
		sequence = strings.Join(picked, "  →  ")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(sequence))
	b.WriteString("\n\n")

	tokens := q.puzzle.Tokens()
	rendered := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		switch {
		case q.puzzle.Used(i):
			rendered = append(rendered, lipgloss.NewStyle().
				Foreground(theme.Border).
				Render(" "+tok+" "))
		case i == q.tokenAt:
			rendered = append(rendered, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" "+tok+" "))
		default:
			rendered = append(rendered, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(" "+tok+" "))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(rendered, " ")))
	b.WriteString("\n")
	return b.String()
}

// renderFeedback shows the outcome during the pause.
func (q *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	if q.session.LastCorrect() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("🎉 Đúng rồi!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("😅 Chưa đúng"))
		if answer := q.correctAnswer(); answer != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Đáp án: " + answer))
		}
	}
	return b.String()
}

// correctAnswer digs the canonical answer out of the current item.
func (q *QuizScreen) correctAnswer() string {
	switch item := q.session.Current().(type) {
	case quiz.MathItem:
		return item.Q.Answer
	case quiz.VocabItem:
		return item.Q.Answer
	case quiz.EnglishItem:
		return item.Q.Answer
	}
	return ""
}
