// Package pick provides a reusable chooser screen: a titled menu whose
// entries each build the screen to push next.
package pick

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bevuihoc/bevuihoc/internal/router"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/ui/components"
	"github.com/bevuihoc/bevuihoc/internal/ui/theme"
)

// Item is one choice. Build runs when selected and returns the screen
// to push; a nil Build quits the choice back to the previous screen.
type Item struct {
	Label string
	Build func() screen.Screen
}

// PickScreen shows a vertical list of choices.
type PickScreen struct {
	title string
	menu  components.Menu
}

var _ screen.Screen = (*PickScreen)(nil)

// New creates a chooser titled title over the given items.
func New(title string, items []Item) *PickScreen {
	menuItems := make([]components.MenuItem, 0, len(items))
	for _, it := range items {
		it := it
		menuItems = append(menuItems, components.MenuItem{
			Label: it.Label,
			Action: func() tea.Cmd {
				if it.Build == nil {
					return func() tea.Msg { return router.PopScreenMsg{} }
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: it.Build()}
				}
			},
		})
	}
	return &PickScreen{title: title, menu: components.NewMenu(menuItems)}
}

func (p *PickScreen) Init() tea.Cmd {
	return nil
}

func (p *PickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(p.title)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, p.menu.View())
	return "\n" + title + "\n\n" + menu
}

func (p *PickScreen) Title() string {
	return p.title
}
