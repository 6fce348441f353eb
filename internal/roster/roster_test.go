package roster

import (
	"context"
	"testing"
	"time"
)

func newTestRepo() *memRepo {
	r := NewMemRepo().(*memRepo)
	r.now = func() time.Time {
		return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	}
	return r
}

func TestAddAndList(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	if _, err := r.Add(ctx, "Minh", "bg-sky-400", "🦊"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Add(ctx, "An", "bg-pink-400", "🐰"); err != nil {
		t.Fatal(err)
	}

	students, err := r.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(students) != 2 {
		t.Fatalf("len = %d, want 2", len(students))
	}
	if students[0].Name != "An" || students[1].Name != "Minh" {
		t.Fatalf("not sorted by name: %s, %s", students[0].Name, students[1].Name)
	}
	if students[0].ID == students[1].ID {
		t.Fatal("duplicate ids assigned")
	}
}

func TestDelete(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	s, err := r.Add(ctx, "Minh", "bg-sky-400", "🦊")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Delete(ctx, s.ID); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete(ctx, s.ID); !IsNotFound(err) {
		t.Fatalf("second delete err = %v, want not found", err)
	}
}

func TestRecordStudy(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	s, err := r.Add(ctx, "Minh", "bg-sky-400", "🦊")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RecordStudy(ctx, s.ID, 7); err != nil {
		t.Fatal(err)
	}
	if err := r.RecordStudy(ctx, s.ID, 3); err != nil {
		t.Fatal(err)
	}

	students, _ := r.List(ctx)
	if students[0].TotalWordsLearned != 10 {
		t.Fatalf("totalWordsLearned = %d, want 10", students[0].TotalWordsLearned)
	}
	if students[0].LastStudyDate.IsZero() {
		t.Fatal("lastStudyDate not stamped")
	}

	if err := r.RecordStudy(ctx, "missing", 1); !IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestRecordQuizHighScore(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	s, err := r.Add(ctx, "Minh", "bg-sky-400", "🦊")
	if err != nil {
		t.Fatal(err)
	}

	scores := []struct {
		score    int
		wantHigh int
	}{
		{8, 8},
		{5, 8}, // lower score keeps the high score
		{10, 10},
	}
	for _, tt := range scores {
		if err := r.RecordQuiz(ctx, s.ID, tt.score); err != nil {
			t.Fatal(err)
		}
		students, _ := r.List(ctx)
		if students[0].HighScore != tt.wantHigh {
			t.Fatalf("highScore = %d after %d, want %d",
				students[0].HighScore, tt.score, tt.wantHigh)
		}
	}

	students, _ := r.List(ctx)
	if students[0].QuizzesTaken != 3 {
		t.Fatalf("quizzesTaken = %d, want 3", students[0].QuizzesTaken)
	}
}
