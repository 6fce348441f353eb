package components

import (
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/phonics"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for boxed sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for outer border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Flashcard renders one phonics card as a big bordered tile in the
// card's dealt color.
func Flashcard(card phonics.Card, cw int) string {
	color := theme.CardColor(card.Color)

	sound := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Align(lipgloss.Center).
		Render(card.Sound)

	reading := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render("đọc là: " + phonics.Reading(card.Sound))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(2, 4).
		Render(sound + "\n\n" + reading)
}

// OptionButton renders a selectable answer button.
func OptionButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
