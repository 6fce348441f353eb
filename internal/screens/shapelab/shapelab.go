// Package shapelab is the free-play geometry activity: pick parts of a
// composite figure and see which named shape they form together.
package shapelab

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/shapes"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// LabScreen cycles through the figure library and lets the child toggle
// parts with the number keys. A detected combination is announced; a
// non-matching selection just stays highlighted.
type LabScreen struct {
	ids    []string
	index  int
	def    *shapes.Definition
	sel    *shapes.Selection
	found  int // combinations discovered for the current figure
	seen   map[string]bool
	detect *shapes.Combination
}

var _ screen.Screen = (*LabScreen)(nil)
var _ screen.KeyHintProvider = (*LabScreen)(nil)

func New() *LabScreen {
	l := &LabScreen{ids: shapes.IDs()}
	l.loadFigure(0)
	return l
}

func (l *LabScreen) loadFigure(index int) {
	l.index = index
	l.sel = shapes.NewSelection()
	l.found = 0
	l.seen = make(map[string]bool)
	l.detect = nil
	def, err := shapes.Lookup(l.ids[index])
	if err != nil {
		l.def = nil
		return
	}
	l.def = def
}

func (l *LabScreen) Init() tea.Cmd {
	return nil
}

func (l *LabScreen) Title() string {
	return "Ghép Hình"
}

func (l *LabScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-9", Description: "Chọn mảnh"},
		{Key: "←/→", Description: "Đổi hình"},
		{Key: "r", Description: "Làm lại"},
	}
}

func (l *LabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key := kmsg.String(); key {
	case "right", "l":
		l.loadFigure((l.index + 1) % len(l.ids))
	case "left", "h":
		l.loadFigure((l.index + len(l.ids) - 1) % len(l.ids))
	case "r":
		l.sel.Reset()
		l.detect = nil
	default:
		if l.def == nil || len(key) != 1 || key[0] < '1' || key[0] > '9' {
			return l, nil
		}
		part := int(key[0] - '1')
		if part >= len(l.def.Parts) {
			return l, nil
		}
		l.sel.Toggle(part)
		l.detect = nil
		if combo, ok := shapes.Detect(l.sel, l.def); ok {
			l.detect = combo
			comboKey := fmt.Sprint(combo.Parts)
			if !l.seen[comboKey] {
				l.seen[comboKey] = true
				l.found++
			}
		}
	}
	return l, nil
}

func (l *LabScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if l.def == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("(hình chưa hỗ trợ)"))
		return b.String()
	}

	label := fmt.Sprintf("Hình %d / %d — %d mảnh", l.index+1, len(l.ids), len(l.def.Parts))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(label))
	b.WriteString("\n\n")

	// Parts as toggle buttons; the SVG outlines only matter to the
	// detector, the terminal shows each atomic region as a tile.
	tiles := make([]string, 0, len(l.def.Parts))
	for _, p := range l.def.Parts {
		style := lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.TextDim).
			Foreground(theme.Text)
		if l.sel.Has(p.ID) {
			style = style.
				BorderForeground(theme.Accent).
				Foreground(theme.Accent).
				Bold(true)
		}
		tiles = append(tiles, style.Render(fmt.Sprintf("◣ %d", p.ID+1)))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, tiles...)))
	b.WriteString("\n\n")

	switch {
	case l.detect != nil:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("🎉 " + l.detect.Name + "!"))
	case l.sel.Size() > 0:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Chưa thành hình nào, thử thêm mảnh khác nhé"))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Bấm số để chọn các mảnh ghép"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("Đã tìm được %d / %d hình", l.found, len(l.def.Combinations))))

	return b.String()
}
