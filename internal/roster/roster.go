// Package roster manages learner profiles and their aggregate progress
// counters, backed by a hosted document store. The study and quiz flows
// only pass counters in; they never read the store on the hot path.
package roster

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for operations on an unknown student id.
var ErrNotFound = errors.New("roster: student not found")

// Student is one learner profile.
type Student struct {
	ID                string    `bson:"_id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	AvatarColor       string    `bson:"avatarColor" json:"avatarColor"`
	Icon              string    `bson:"icon" json:"icon"`
	TotalWordsLearned int       `bson:"totalWordsLearned" json:"totalWordsLearned"`
	QuizzesTaken      int       `bson:"quizzesTaken" json:"quizzesTaken"`
	HighScore         int       `bson:"highScore" json:"highScore"`
	LastStudyDate     time.Time `bson:"lastStudyDate,omitempty" json:"lastStudyDate,omitempty"`
}

// Repo stores and updates learner profiles.
type Repo interface {
	// List returns all students ordered by name.
	List(ctx context.Context) ([]Student, error)

	// Add creates a student profile and returns it with its assigned id.
	Add(ctx context.Context, name, avatarColor, icon string) (Student, error)

	// Delete removes a student profile.
	Delete(ctx context.Context, id string) error

	// RecordStudy adds learned words to a student's running total and
	// stamps the study date.
	RecordStudy(ctx context.Context, id string, wordsLearned int) error

	// RecordQuiz increments the quiz counter and raises the high score
	// when the new score beats it.
	RecordQuiz(ctx context.Context, id string, score int) error
}

// memRepo is the in-memory fallback used when no document store is
// configured. It keeps the roster for the process lifetime only.
type memRepo struct {
	mu       sync.Mutex
	students map[string]Student
	now      func() time.Time
}

// NewMemRepo returns an empty in-memory roster.
func NewMemRepo() Repo {
	return &memRepo{students: make(map[string]Student), now: time.Now}
}

func (r *memRepo) List(ctx context.Context) ([]Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memRepo) Add(ctx context.Context, name, avatarColor, icon string) (Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Student{
		ID:          uuid.New().String(),
		Name:        name,
		AvatarColor: avatarColor,
		Icon:        icon,
	}
	r.students[s.ID] = s
	return s, nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return ErrNotFound
	}
	delete(r.students, id)
	return nil
}

func (r *memRepo) RecordStudy(ctx context.Context, id string, wordsLearned int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return ErrNotFound
	}
	s.TotalWordsLearned += wordsLearned
	s.LastStudyDate = r.now()
	r.students[id] = s
	return nil
}

func (r *memRepo) RecordQuiz(ctx context.Context, id string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return ErrNotFound
	}
	s.QuizzesTaken++
	if score > s.HighScore {
		s.HighScore = score
	}
	r.students[id] = s
	return nil
}
