package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bevuihoc/bevuihoc/internal/phonics"
	"github.com/bevuihoc/bevuihoc/internal/tracker"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLoadProgressEmpty(t *testing.T) {
	s := openTestStore(t)
	p, err := s.LoadProgress()
	require.NoError(t, err)
	require.Empty(t, p.MissedWords)
	require.Zero(t, p.Version)
}

func TestSaveAndLoadProgress(t *testing.T) {
	s := openTestStore(t)

	saved := tracker.Progress{
		Version: tracker.ProgressVersion,
		MissedWords: []phonics.Card{
			{ID: "c1", Sound: "ng", Color: "bg-pink-400"},
			{ID: "c2", Sound: "kh", Color: "bg-sky-400"},
		},
		LastStudyDate: "2025-03-14T09:00:00Z",
	}
	require.NoError(t, s.SaveProgress(saved))

	got, err := s.LoadProgress()
	require.NoError(t, err)
	require.Equal(t, saved, got)
}

func TestSaveProgressReplacesWholesale(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveProgress(tracker.Progress{
		Version:     tracker.ProgressVersion,
		MissedWords: []phonics.Card{{ID: "c1", Sound: "a", Color: "bg-pink-400"}},
	}))
	require.NoError(t, s.SaveProgress(tracker.Progress{
		Version:     tracker.ProgressVersion,
		MissedWords: []phonics.Card{{ID: "c2", Sound: "b", Color: "bg-sky-400"}},
	}))

	got, err := s.LoadProgress()
	require.NoError(t, err)
	require.Len(t, got.MissedWords, 1)
	require.Equal(t, "b", got.MissedWords[0].Sound)
}

func TestLoadProgressCorruptBlob(t *testing.T) {
	s := openTestStore(t)

	for _, raw := range []string{
		"not json at all",
		`{"version": "one", "missedWords": []}`,
		`{"missedWords": [{"id": "c1"}]}`,
	} {
		_, err := s.DB().Exec(`
			INSERT INTO progress (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			progressKey, raw,
		)
		require.NoError(t, err)

		p, err := s.LoadProgress()
		require.NoError(t, err, "corrupt blob %q must not error", raw)
		require.Empty(t, p.MissedWords, "corrupt blob %q must read as empty", raw)
	}
}
