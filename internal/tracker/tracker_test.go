package tracker

import (
	"testing"
	"time"

	"github.com/bevuihoc/bevuihoc/internal/phonics"
)

type memStore struct {
	progress Progress
	saves    int
	loadErr  error
	saveErr  error
}

func (m *memStore) LoadProgress() (Progress, error) { return m.progress, m.loadErr }

func (m *memStore) SaveProgress(p Progress) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.progress = p
	m.saves++
	return nil
}

func card(sound string) phonics.Card {
	return phonics.Card{ID: "card-" + sound, Sound: sound, Color: "bg-pink-400"}
}

func sounds(cards []phonics.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Sound
	}
	return out
}

func TestRecordSession(t *testing.T) {
	store := &memStore{}
	tr, err := New(store)
	if err != nil {
		t.Fatal(err)
	}

	if err := tr.RecordSession(
		[]phonics.Card{card("a")},
		[]phonics.Card{card("b"), card("c")},
	); err != nil {
		t.Fatal(err)
	}
	if got := sounds(tr.Missed()); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("missed = %v, want [b c]", got)
	}

	if err := tr.RecordSession([]phonics.Card{card("b")}, nil); err != nil {
		t.Fatal(err)
	}
	if got := sounds(tr.Missed()); len(got) != 1 || got[0] != "c" {
		t.Fatalf("missed = %v, want [c]", got)
	}
	if tr.MissedCount() != 1 {
		t.Fatalf("count = %d, want 1", tr.MissedCount())
	}
}

func TestRecordSessionEmptyIsNoop(t *testing.T) {
	store := &memStore{}
	tr, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.RecordSession(nil, nil); err != nil {
		t.Fatal(err)
	}
	if store.saves != 0 {
		t.Fatalf("empty session wrote %d saves", store.saves)
	}
	if !tr.LastStudy().IsZero() {
		t.Fatal("empty session updated last study time")
	}
}

func TestRecordSessionCorrectWins(t *testing.T) {
	store := &memStore{}
	tr, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	// Same sound in both lists of one session nets to mastered.
	if err := tr.RecordSession(
		[]phonics.Card{card("a")},
		[]phonics.Card{card("a"), card("b")},
	); err != nil {
		t.Fatal(err)
	}
	if got := sounds(tr.Missed()); len(got) != 1 || got[0] != "b" {
		t.Fatalf("missed = %v, want [b]", got)
	}
}

func TestRecordSessionDeduplicatesBySound(t *testing.T) {
	store := &memStore{}
	tr, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.RecordSession(nil, []phonics.Card{card("a")}); err != nil {
		t.Fatal(err)
	}
	// A different instance of the same sound must not add a second entry.
	again := phonics.Card{ID: "other-instance", Sound: "a", Color: "bg-sky-400"}
	if err := tr.RecordSession(nil, []phonics.Card{again}); err != nil {
		t.Fatal(err)
	}
	if tr.MissedCount() != 1 {
		t.Fatalf("count = %d, want 1", tr.MissedCount())
	}
	if tr.Missed()[0].ID != "card-a" {
		t.Fatal("duplicate replaced the original entry")
	}
}

func TestPersistence(t *testing.T) {
	store := &memStore{}
	tr, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	tr.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	if err := tr.RecordSession(nil, []phonics.Card{card("x")}); err != nil {
		t.Fatal(err)
	}

	if store.progress.Version != ProgressVersion {
		t.Fatalf("version = %d", store.progress.Version)
	}
	if store.progress.LastStudyDate != "2025-03-14T09:00:00Z" {
		t.Fatalf("lastStudyDate = %q", store.progress.LastStudyDate)
	}

	// A fresh tracker over the same store sees the saved state.
	tr2, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	if tr2.MissedCount() != 1 || tr2.Missed()[0].Sound != "x" {
		t.Fatalf("reloaded missed = %v", sounds(tr2.Missed()))
	}
	if tr2.LastStudy().IsZero() {
		t.Fatal("reloaded last study time is zero")
	}
}

func TestReset(t *testing.T) {
	store := &memStore{}
	tr, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.RecordSession(nil, []phonics.Card{card("a"), card("b")}); err != nil {
		t.Fatal(err)
	}
	if err := tr.Reset(); err != nil {
		t.Fatal(err)
	}
	if tr.MissedCount() != 0 {
		t.Fatalf("count = %d after reset", tr.MissedCount())
	}
	if len(store.progress.MissedWords) != 0 {
		t.Fatal("reset not persisted")
	}
}
