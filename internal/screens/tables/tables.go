// Package tables shows the within-10 addition and subtraction fact
// tables for reciting practice.
package tables

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// TablesScreen pages through the fact tables one anchor number at a
// time, with tab switching between addition and subtraction.
type TablesScreen struct {
	op    mathgen.Op
	add   []mathgen.Table
	sub   []mathgen.Table
	index int
}

var _ screen.Screen = (*TablesScreen)(nil)
var _ screen.KeyHintProvider = (*TablesScreen)(nil)

// New builds both table sets up front; they are tiny and static.
func New() *TablesScreen {
	return &TablesScreen{
		op:  mathgen.OpAdd,
		add: mathgen.BuildTables(mathgen.OpAdd),
		sub: mathgen.BuildTables(mathgen.OpSub),
	}
}

func (t *TablesScreen) Init() tea.Cmd {
	return nil
}

func (t *TablesScreen) Title() string {
	return "Bảng Cộng Trừ"
}

func (t *TablesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Đổi bảng"},
		{Key: "Tab", Description: "Cộng / Trừ"},
	}
}

func (t *TablesScreen) current() []mathgen.Table {
	if t.op == mathgen.OpAdd {
		return t.add
	}
	return t.sub
}

func (t *TablesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "right", "l":
		if t.index < len(t.current())-1 {
			t.index++
		}
	case "left", "h":
		if t.index > 0 {
			t.index--
		}
	case "tab":
		if t.op == mathgen.OpAdd {
			t.op = mathgen.OpSub
		} else {
			t.op = mathgen.OpAdd
		}
		if t.index >= len(t.current()) {
			t.index = len(t.current()) - 1
		}
	}
	return t, nil
}

func (t *TablesScreen) View(width, height int) string {
	tables := t.current()
	if len(tables) == 0 {
		return ""
	}
	table := tables[t.index]

	opName := "Bảng cộng"
	if t.op == mathgen.OpSub {
		opName = "Bảng trừ"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s số %d", opName, table.Number)))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, fmt.Sprintf("%d %s %d = %d", r.A, t.op, r.B, r.Result))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
			strings.Join(rows, "\n"))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("bảng %d / %d", t.index+1, len(tables))))

	return b.String()
}
