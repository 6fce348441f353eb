// Package classroom manages the learner roster: picking the active
// student, adding new profiles, and showing their progress counters.
package classroom

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/roster"
	"github.com/bevuihoc/bevuihoc/internal/router"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/ui/components"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

const repoTimeout = 5 * time.Second

// Profile appearance is assigned round-robin as students are added.
var (
	avatarColors = []string{
		"bg-sky-400", "bg-pink-400", "bg-green-400", "bg-yellow-400",
		"bg-violet-400", "bg-orange-400", "bg-teal-400", "bg-rose-400",
	}
	avatarIcons = []string{"🐶", "🐱", "🐰", "🐻", "🦊", "🐼", "🐸", "🦁"}
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

type studentsMsg struct {
	students []roster.Student
	err      error
}

type savedMsg struct{ err error }

// ClassScreen lists the roster and lets the child pick, add or remove a
// profile. All repo calls run as commands so a slow backend never
// blocks the UI loop.
type ClassScreen struct {
	deps *screen.Deps

	mode     mode
	students []roster.Student
	cursor   int
	input    components.TextInput
	loading  bool
	errText  string
}

var _ screen.Screen = (*ClassScreen)(nil)
var _ screen.KeyHintProvider = (*ClassScreen)(nil)

func New(deps *screen.Deps) *ClassScreen {
	return &ClassScreen{deps: deps, loading: true}
}

func (c *ClassScreen) Init() tea.Cmd {
	return c.loadStudents()
}

func (c *ClassScreen) Title() string {
	return "Lớp Học"
}

func (c *ClassScreen) KeyHints() []layout.KeyHint {
	if c.mode == modeAdd {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Lưu"},
			{Key: "Esc", Description: "Hủy"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Chọn bạn"},
		{Key: "a", Description: "Thêm bạn"},
		{Key: "x", Description: "Xóa"},
	}
}

func (c *ClassScreen) loadStudents() tea.Cmd {
	repo := c.deps.Roster
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		students, err := repo.List(ctx)
		return studentsMsg{students: students, err: err}
	}
}

func (c *ClassScreen) addStudent(name string) tea.Cmd {
	repo := c.deps.Roster
	color := avatarColors[len(c.students)%len(avatarColors)]
	icon := avatarIcons[len(c.students)%len(avatarIcons)]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		_, err := repo.Add(ctx, name, color, icon)
		return savedMsg{err: err}
	}
}

func (c *ClassScreen) deleteStudent(id string) tea.Cmd {
	repo := c.deps.Roster
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		return savedMsg{err: repo.Delete(ctx, id)}
	}
}

func (c *ClassScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case studentsMsg:
		c.loading = false
		if msg.err != nil {
			c.errText = "Không tải được danh sách lớp"
			return c, nil
		}
		c.errText = ""
		c.students = msg.students
		if c.cursor >= len(c.students) {
			c.cursor = max(0, len(c.students)-1)
		}
		return c, nil

	case savedMsg:
		if msg.err != nil {
			c.loading = false
			c.errText = "Không lưu được, thử lại nhé"
			return c, nil
		}
		return c, c.loadStudents()

	case tea.KeyMsg:
		if c.mode == modeAdd {
			return c.updateAdd(msg)
		}
		return c.updateList(msg)
	}

	if c.mode == modeAdd {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ClassScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.students)-1 {
			c.cursor++
		}
	case "a":
		c.mode = modeAdd
		c.input = components.NewTextInput("Tên của bé...", false, 20)
		return c, c.input.Init()
	case "x":
		if len(c.students) > 0 {
			s := c.students[c.cursor]
			if c.deps.StudentID == s.ID {
				c.deps.SetStudent("")
			}
			c.loading = true
			return c, c.deleteStudent(s.ID)
		}
	case "enter":
		if len(c.students) > 0 {
			c.deps.SetStudent(c.students[c.cursor].ID)
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *ClassScreen) updateAdd(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.mode = modeList
		return c, nil
	case "enter":
		name := strings.TrimSpace(c.input.Value())
		if name == "" {
			return c, nil
		}
		c.mode = modeList
		c.loading = true
		return c, c.addStudent(name)
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ClassScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if c.mode == modeAdd {
		b.WriteString(center.Foreground(theme.Primary).Bold(true).
			Render("Bạn mới tên là gì?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.input.View()))
		return b.String()
	}

	switch {
	case c.loading:
		b.WriteString(center.Foreground(theme.TextDim).Render("Đang tải..."))
		return b.String()
	case c.errText != "":
		b.WriteString(center.Foreground(theme.Error).Render(c.errText))
		return b.String()
	case len(c.students) == 0:
		b.WriteString(center.Foreground(theme.TextDim).
			Render("Lớp chưa có bạn nào. Bấm 'a' để thêm bạn mới!"))
		return b.String()
	}

	for i, s := range c.students {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.renderStudent(s, i == c.cursor)))
		b.WriteString("\n")
	}
	return b.String()
}

func (c *ClassScreen) renderStudent(s roster.Student, selected bool) string {
	name := s.Name
	if s.ID == c.deps.StudentID {
		name += " ⭐"
	}
	line := fmt.Sprintf("%s %-22s 📖 %-4d 🏆 %-4d ⚡ %d",
		s.Icon, name, s.TotalWordsLearned, s.QuizzesTaken, s.HighScore)

	style := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.CardColor(s.AvatarColor))
	if selected {
		style = style.Bold(true).Background(theme.BgCard)
		line = "▸ " + line
	} else {
		line = "  " + line
	}
	return style.Render(line)
}
