package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — kid-friendly, bright but not garish
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#F472B6") // Pink
	Accent    = lipgloss.Color("#FACC15") // Sunny Yellow
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Soft Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// CardColors maps the flashcard palette names to terminal colors so a
// card keeps the hue it was dealt with.
var CardColors = map[string]color.Color{
	"bg-red-400":     lipgloss.Color("#F87171"),
	"bg-orange-400":  lipgloss.Color("#FB923C"),
	"bg-amber-400":   lipgloss.Color("#FBBF24"),
	"bg-yellow-400":  lipgloss.Color("#FACC15"),
	"bg-lime-400":    lipgloss.Color("#A3E635"),
	"bg-green-400":   lipgloss.Color("#4ADE80"),
	"bg-emerald-400": lipgloss.Color("#34D399"),
	"bg-teal-400":    lipgloss.Color("#2DD4BF"),
	"bg-cyan-400":    lipgloss.Color("#22D3EE"),
	"bg-sky-400":     lipgloss.Color("#38BDF8"),
	"bg-blue-400":    lipgloss.Color("#60A5FA"),
	"bg-indigo-400":  lipgloss.Color("#818CF8"),
	"bg-violet-400":  lipgloss.Color("#A78BFA"),
	"bg-purple-400":  lipgloss.Color("#C084FC"),
	"bg-fuchsia-400": lipgloss.Color("#E879F9"),
	"bg-pink-400":    lipgloss.Color("#F472B6"),
	"bg-rose-400":    lipgloss.Color("#FB7185"),
}

// CardColor resolves a palette name or raw hex value, falling back to
// the primary hue.
func CardColor(name string) color.Color {
	if c, ok := CardColors[name]; ok {
		return c
	}
	if len(name) > 0 && name[0] == '#' {
		return lipgloss.Color(name)
	}
	return Primary
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
