// Package home is the main menu: every learning activity starts here.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/engquiz"
	"github.com/bevuihoc/bevuihoc/internal/mathgen"
	"github.com/bevuihoc/bevuihoc/internal/phonics"
	"github.com/bevuihoc/bevuihoc/internal/quiz"
	"github.com/bevuihoc/bevuihoc/internal/router"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/screens/classroom"
	"github.com/bevuihoc/bevuihoc/internal/screens/pick"
	"github.com/bevuihoc/bevuihoc/internal/screens/quizplay"
	"github.com/bevuihoc/bevuihoc/internal/screens/reflex"
	"github.com/bevuihoc/bevuihoc/internal/screens/shapelab"
	"github.com/bevuihoc/bevuihoc/internal/screens/study"
	"github.com/bevuihoc/bevuihoc/internal/screens/tables"
	"github.com/bevuihoc/bevuihoc/internal/ui/components"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// vocabQuizSize is how many word puzzles one Vietnamese quiz round asks.
const vocabQuizSize = 10

// mathQuizSize is how many questions one math topic round asks.
const mathQuizSize = 10

var studyTopics = []struct {
	label string
	topic phonics.Topic
}{
	{"🔤 Phần Âm", phonics.TopicPhanAm},
	{"📖 Phần Vần — Kỳ 1", phonics.TopicVanKy1},
	{"📚 Phần Vần — Kỳ 2", phonics.TopicVanKy2},
	{"🎒 Học Kỳ 1", phonics.TopicSemester1},
	{"🌈 Cả Năm", phonics.TopicAll},
}

var mathTopics = []struct {
	label string
	topic mathgen.Topic
}{
	{"🔷 Hình Học", mathgen.TopicGeometry},
	{"🔢 Số Đếm", mathgen.TopicNumbers},
	{"➕ Cộng Trừ", mathgen.TopicCalculation},
	{"🎲 Tổng Hợp", mathgen.TopicMixed},
}

var englishTopics = []struct {
	label string
	topic engquiz.Topic
}{
	{"🤖 Unit 0 — Blocks", engquiz.Unit0},
	{"🎨 Unit 1 — Colours", engquiz.Unit1},
	{"🔷 Unit 2 — Shapes", engquiz.Unit2},
	{"🎄 Unit 3 — Christmas", engquiz.Unit3},
	{"⭐ Ôn Tập Tổng Hợp", engquiz.Review},
}

// HomeScreen is the root of the screen stack; it never pops.
type HomeScreen struct {
	deps *screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

func New(deps *screen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "📖 Học Vần", Action: h.push(h.studyMenu)},
		{Label: "🔡 Đố Vui Tiếng Việt", Action: h.push(h.vocabQuiz)},
		{Label: "🧮 Đố Vui Toán", Action: h.push(h.mathMenu)},
		{Label: "📝 Thi Toán", Action: h.push(h.examMenu)},
		{Label: "⚡ Toán Nhanh", Action: h.push(func() screen.Screen { return reflex.New(deps) })},
		{Label: "🔢 Bảng Cộng Trừ", Action: h.push(func() screen.Screen { return tables.New() })},
		{Label: "🧩 Ghép Hình", Action: h.push(func() screen.Screen { return shapelab.New() })},
		{Label: "🇬🇧 Tiếng Anh", Action: h.push(h.englishMenu)},
		{Label: "🏫 Lớp Học", Action: h.push(func() screen.Screen { return classroom.New(deps) })},
		{Label: "👋 Thoát", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: build()}
		}
	}
}

func (h *HomeScreen) studyMenu() screen.Screen {
	deps := h.deps
	items := make([]pick.Item, 0, len(studyTopics)+1)
	for _, t := range studyTopics {
		t := t
		items = append(items, pick.Item{
			Label: t.label,
			Build: func() screen.Screen { return study.New(deps, t.topic) },
		})
	}
	items = append(items, pick.Item{
		Label: fmt.Sprintf("🔁 Ôn Tập (%d từ)", deps.Tracker.MissedCount()),
		Build: func() screen.Screen { return study.NewReview(deps) },
	})
	return pick.New("Bé học vần gì hôm nay?", items)
}

func (h *HomeScreen) vocabQuiz() screen.Screen {
	deps := h.deps
	questions := phonics.GenerateQuiz(deps.RNG, vocabQuizSize)
	return quizplay.New(deps, "Đố Vui Tiếng Việt", quiz.VocabItems(questions), nil)
}

func (h *HomeScreen) mathMenu() screen.Screen {
	deps := h.deps
	items := make([]pick.Item, 0, len(mathTopics))
	for _, t := range mathTopics {
		t := t
		items = append(items, pick.Item{
			Label: t.label,
			Build: func() screen.Screen {
				gen := mathgen.New(deps.RNG)
				questions := gen.Generate(t.topic, mathQuizSize)
				return quizplay.New(deps, "Đố Vui Toán", quiz.MathItems(questions), nil)
			},
		})
	}
	return pick.New("Bé muốn chơi toán gì?", items)
}

func (h *HomeScreen) examMenu() screen.Screen {
	deps := h.deps
	items := make([]pick.Item, 0, 2)
	for _, id := range []int{1, 2} {
		id := id
		items = append(items, pick.Item{
			Label: fmt.Sprintf("📝 Đề số %d", id),
			Build: func() screen.Screen {
				questions, err := mathgen.Exam(id)
				if err != nil {
					return pick.New("Đề thi chưa sẵn sàng", nil)
				}
				return quizplay.New(deps, fmt.Sprintf("Thi Toán — Đề %d", id), quiz.MathItems(questions), nil)
			},
		})
	}
	return pick.New("Bé chọn đề thi nhé", items)
}

func (h *HomeScreen) englishMenu() screen.Screen {
	deps := h.deps
	items := make([]pick.Item, 0, len(englishTopics))
	for _, t := range englishTopics {
		t := t
		items = append(items, pick.Item{
			Label: t.label,
			Build: func() screen.Screen {
				gen := engquiz.New(deps.RNG)
				questions := gen.Generate(t.topic)
				return quizplay.New(deps, "Tiếng Anh Vui", quiz.EnglishItems(questions), nil)
			},
		})
	}
	return pick.New("Bé học tiếng Anh nào!", items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Bé Vui Học"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	greeting := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("Hôm nay bé muốn học gì? 🌟")

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	return "\n" + greeting + "\n\n" + menu
}
