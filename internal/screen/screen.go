package screen

import (
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/bevuihoc/bevuihoc/internal/roster"
	"github.com/bevuihoc/bevuihoc/internal/speech"
	"github.com/bevuihoc/bevuihoc/internal/tracker"
	"github.com/bevuihoc/bevuihoc/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Deps bundles the shared services screens draw on. One Deps value is
// built at startup and handed down; screens never construct their own.
type Deps struct {
	RNG     *rand.Rand
	Tracker *tracker.Tracker
	Roster  roster.Repo
	Speech  speech.Synthesizer

	// StudentID is the active learner profile, empty in guest mode.
	StudentID string
}

// SetStudent records the active learner for progress updates.
func (d *Deps) SetStudent(id string) { d.StudentID = id }
