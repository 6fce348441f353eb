// Package tracker maintains the learner's set of missed flashcards
// across study sessions. Words are keyed by their sound text, so the
// same sound met in different decks collapses to one tracked entry.
package tracker

import (
	"fmt"
	"time"

	"github.com/bevuihoc/bevuihoc/internal/phonics"
)

// ProgressVersion tags the persisted record so later schema changes can
// migrate old blobs instead of misreading them.
const ProgressVersion = 1

// Progress is the wholesale-persisted tracker state. Every save
// replaces the previous record; there are no partial updates.
type Progress struct {
	Version       int            `json:"version"`
	MissedWords   []phonics.Card `json:"missedWords"`
	LastStudyDate string         `json:"lastStudyDate,omitempty"`
}

// Store persists Progress records. Load on a fresh store returns an
// empty Progress, not an error.
type Store interface {
	LoadProgress() (Progress, error)
	SaveProgress(Progress) error
}

// Tracker owns the in-memory missed set and writes it through to its
// store after every mutation. It assumes a single writer; there is no
// locking because no concurrent session exists by design.
type Tracker struct {
	store     Store
	missed    []phonics.Card
	lastStudy time.Time

	now func() time.Time
}

// New loads the persisted state into a fresh tracker.
func New(store Store) (*Tracker, error) {
	t := &Tracker{store: store, now: time.Now}
	p, err := store.LoadProgress()
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	t.missed = p.MissedWords
	if p.LastStudyDate != "" {
		if ts, err := time.Parse(time.RFC3339, p.LastStudyDate); err == nil {
			t.lastStudy = ts
		}
	}
	return t, nil
}

// RecordSession applies one session's outcomes: sounds answered
// correctly leave the missed set, then sounds answered incorrectly
// join it unless already present. A sound appearing in both lists of
// the same session counts as mastered, so it does not rejoin the set.
func (t *Tracker) RecordSession(correct, incorrect []phonics.Card) error {
	if len(correct) == 0 && len(incorrect) == 0 {
		return nil
	}

	mastered := make(map[string]bool, len(correct))
	for _, c := range correct {
		mastered[c.Sound] = true
	}

	kept := t.missed[:0]
	for _, c := range t.missed {
		if !mastered[c.Sound] {
			kept = append(kept, c)
		}
	}
	t.missed = kept

	present := make(map[string]bool, len(t.missed))
	for _, c := range t.missed {
		present[c.Sound] = true
	}
	for _, c := range incorrect {
		if mastered[c.Sound] || present[c.Sound] {
			continue
		}
		present[c.Sound] = true
		t.missed = append(t.missed, c)
	}

	t.lastStudy = t.now()
	return t.save()
}

// Missed returns the tracked cards in insertion order.
func (t *Tracker) Missed() []phonics.Card {
	out := make([]phonics.Card, len(t.missed))
	copy(out, t.missed)
	return out
}

// MissedCount returns the size of the missed set.
func (t *Tracker) MissedCount() int { return len(t.missed) }

// LastStudy returns the time of the most recent recorded session, zero
// if none has been recorded.
func (t *Tracker) LastStudy() time.Time { return t.lastStudy }

// Reset clears the missed set and persists the empty state.
func (t *Tracker) Reset() error {
	t.missed = nil
	return t.save()
}

func (t *Tracker) save() error {
	p := Progress{
		Version:     ProgressVersion,
		MissedWords: t.Missed(),
	}
	if !t.lastStudy.IsZero() {
		p.LastStudyDate = t.lastStudy.UTC().Format(time.RFC3339)
	}
	if err := t.store.SaveProgress(p); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
