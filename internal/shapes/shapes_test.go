package shapes

import (
	"errors"
	"fmt"
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, id := range IDs() {
		def, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", id, err)
		}
		if def.ID != id {
			t.Errorf("Lookup(%q) returned definition %q", id, def.ID)
		}
	}
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup("PENTAGON_STAR")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v, want ErrUnsupported", err)
	}
}

// Every combination must reference only part ids its figure defines,
// and no two combinations of one figure may list the same part set.
func TestLibraryInvariants(t *testing.T) {
	for _, id := range IDs() {
		def, _ := Lookup(id)

		valid := make(map[int]bool)
		for _, p := range def.Parts {
			if valid[p.ID] {
				t.Errorf("%s: duplicate part id %d", id, p.ID)
			}
			valid[p.ID] = true
		}

		seen := make(map[string]bool)
		for _, combo := range def.Combinations {
			if len(combo.Parts) == 0 {
				t.Errorf("%s: combination %q has no parts", id, combo.Name)
			}
			members := make(map[int]bool)
			for _, p := range combo.Parts {
				if !valid[p] {
					t.Errorf("%s: combination %q references unknown part %d", id, combo.Name, p)
				}
				if members[p] {
					t.Errorf("%s: combination %q lists part %d twice", id, combo.Name, p)
				}
				members[p] = true
			}
			ids := append([]int{}, combo.Parts...)
			sort.Ints(ids)
			key := fmt.Sprint(ids)
			if seen[key] {
				t.Errorf("%s: two combinations share part set %v", id, combo.Parts)
			}
			seen[key] = true
		}
	}
}

func TestSelectionToggleIdempotent(t *testing.T) {
	sel := NewSelection()

	sel.Toggle(0)
	if !sel.Has(0) || sel.Size() != 1 {
		t.Fatalf("after toggle: has=%v size=%d", sel.Has(0), sel.Size())
	}

	sel.Toggle(0)
	if sel.Has(0) || sel.Size() != 0 {
		t.Fatalf("after double toggle: has=%v size=%d", sel.Has(0), sel.Size())
	}
}

func TestSelectionReset(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(1)
	sel.Toggle(2)
	sel.Reset()
	if sel.Size() != 0 {
		t.Errorf("size %d after reset", sel.Size())
	}
}

func TestDetectSquareDiagonal(t *testing.T) {
	def, _ := Lookup("SQUARE_DIAGONAL")
	sel := NewSelection()

	// One triangle: no match.
	sel.Toggle(0)
	if _, ok := Detect(sel, def); ok {
		t.Error("single part matched")
	}

	// Both triangles, any toggle order: the big square.
	sel.Toggle(1)
	combo, ok := Detect(sel, def)
	if !ok {
		t.Fatal("full selection did not match")
	}
	if combo.Name != "Hình vuông lớn" {
		t.Errorf("matched %q, want %q", combo.Name, "Hình vuông lớn")
	}
}

func TestDetectToggleOrderIrrelevant(t *testing.T) {
	def, _ := Lookup("TRIPLE_SQUARES")

	forward := NewSelection()
	forward.Toggle(2)
	forward.Toggle(3)

	backward := NewSelection()
	backward.Toggle(3)
	backward.Toggle(2)

	a, okA := Detect(forward, def)
	b, okB := Detect(backward, def)
	if !okA || !okB || a.Name != b.Name {
		t.Errorf("order-dependent detection: %v/%v %v/%v", a, okA, b, okB)
	}
	if a.Name != "Hình vuông 2" {
		t.Errorf("matched %q, want middle square", a.Name)
	}
}

func TestDetectRejectsSupersetAndSubset(t *testing.T) {
	def, _ := Lookup("RECT_SPLIT_4")

	// {1} is a subset of the right rectangle {1,2}: no match.
	sel := NewSelection()
	sel.Toggle(1)
	if _, ok := Detect(sel, def); ok {
		t.Error("subset matched")
	}

	// {0,1} is neither combination and is a superset of none exactly:
	// no match by exact-set rule.
	sel.Toggle(0)
	if _, ok := Detect(sel, def); ok {
		t.Error("non-combination pair matched")
	}

	// Full selection matches the big rectangle, not the smaller one.
	sel.Toggle(2)
	combo, ok := Detect(sel, def)
	if !ok || combo.Name != "Hình chữ nhật lớn" {
		t.Errorf("full selection matched %v, %v", combo, ok)
	}
}

func TestDetectEmptySelection(t *testing.T) {
	def, _ := Lookup("HOUSE_SIMPLE")
	if _, ok := Detect(NewSelection(), def); ok {
		t.Error("empty selection matched")
	}
	if _, ok := Detect(nil, def); ok {
		t.Error("nil selection matched")
	}
}

// Two same-size combinations could in principle exactly match the same
// selection only if they listed the same part set, which the library
// forbids; the tie-break is still deterministic by declaration order.
func TestDetectDeterministicAcrossRepeats(t *testing.T) {
	def, _ := Lookup("TRIPLE_SQUARES")
	sel := NewSelection()
	for _, p := range []int{0, 1, 2, 3} {
		sel.Toggle(p)
	}

	first, ok := Detect(sel, def)
	if !ok {
		t.Fatal("no match")
	}
	for i := 0; i < 50; i++ {
		again, ok := Detect(sel, def)
		if !ok || again != first {
			t.Fatal("detection not stable across repeats")
		}
	}
}
