package mathgen

import (
	"math/rand/v2"
	"strconv"
	"testing"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func TestOptionsShape(t *testing.T) {
	rng := newTestRNG()

	for correct := 0; correct <= MaxValue; correct++ {
		for trial := 0; trial < 200; trial++ {
			options := Options(rng, correct)
			if len(options) != OptionCount {
				t.Fatalf("correct=%d: got %d options, want %d", correct, len(options), OptionCount)
			}

			seen := make(map[string]bool)
			correctCount := 0
			for _, o := range options {
				if seen[o] {
					t.Fatalf("correct=%d: duplicate option %q in %v", correct, o, options)
				}
				seen[o] = true

				n, err := strconv.Atoi(o)
				if err != nil {
					t.Fatalf("correct=%d: non-numeric option %q", correct, o)
				}
				if n < 0 || n > MaxValue {
					t.Fatalf("correct=%d: option %d out of range", correct, n)
				}
				if n == correct {
					correctCount++
				}
			}
			if correctCount != 1 {
				t.Fatalf("correct=%d: answer appears %d times in %v", correct, correctCount, options)
			}
		}
	}
}

func TestOptionsClampsOutOfRange(t *testing.T) {
	rng := newTestRNG()

	for _, correct := range []int{-5, MaxValue + 3} {
		options := Options(rng, correct)
		if len(options) != OptionCount {
			t.Fatalf("correct=%d: got %d options", correct, len(options))
		}
		for _, o := range options {
			n, _ := strconv.Atoi(o)
			if n < 0 || n > MaxValue {
				t.Errorf("correct=%d: option %d out of range", correct, n)
			}
		}
	}
}

func TestSignOptions(t *testing.T) {
	rng := newTestRNG()
	options := SignOptions(rng)
	if len(options) != 4 {
		t.Fatalf("got %d sign options, want 4", len(options))
	}
	want := map[string]bool{"+": true, "-": true, ">": true, "=": true}
	for _, o := range options {
		if !want[o] {
			t.Errorf("unexpected sign option %q", o)
		}
		delete(want, o)
	}
	if len(want) != 0 {
		t.Errorf("missing sign options: %v", want)
	}
}

func TestCompareOptions(t *testing.T) {
	rng := newTestRNG()
	options := CompareOptions(rng)
	if len(options) != 3 {
		t.Fatalf("got %d compare options, want 3", len(options))
	}
	want := map[string]bool{">": true, "<": true, "=": true}
	for _, o := range options {
		if !want[o] {
			t.Errorf("unexpected compare option %q", o)
		}
		delete(want, o)
	}
	if len(want) != 0 {
		t.Errorf("missing compare options: %v", want)
	}
}

// Option order must vary between generations so the answer's position
// carries no information.
func TestOptionsOrderVaries(t *testing.T) {
	rng := newTestRNG()

	first := CompareOptions(rng)
	varied := false
	for i := 0; i < 100; i++ {
		next := CompareOptions(rng)
		for j := range next {
			if next[j] != first[j] {
				varied = true
			}
		}
	}
	if !varied {
		t.Error("compare option order never varied across 100 generations")
	}
}
