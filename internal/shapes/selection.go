package shapes

// Selection is the set of currently toggled parts of one displayed
// figure. It belongs to a single figure instance and is reset whenever
// the figure changes; it is never shared.
type Selection struct {
	parts map[int]bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{parts: make(map[int]bool)}
}

// Toggle adds the part if absent and removes it if present, so toggling
// a part twice restores the prior state.
func (s *Selection) Toggle(partID int) {
	if s.parts[partID] {
		delete(s.parts, partID)
		return
	}
	s.parts[partID] = true
}

// Has reports whether a part is currently selected.
func (s *Selection) Has(partID int) bool {
	return s.parts[partID]
}

// Size returns the number of selected parts.
func (s *Selection) Size() int {
	return len(s.parts)
}

// Reset clears the selection.
func (s *Selection) Reset() {
	s.parts = make(map[int]bool)
}

// Detect returns the combination exactly matching the selection, if
// any. A combination matches only when its part set equals the selected
// set — partial selections and supersets never match, so greedy
// clicking cannot produce a false positive. When several combinations
// of the same maximal size match (a definition defect), the first in
// declaration order wins, keeping detection reproducible.
func Detect(sel *Selection, def *Definition) (*Combination, bool) {
	if sel == nil || def == nil || sel.Size() == 0 {
		return nil, false
	}

	var best *Combination
	for i := range def.Combinations {
		combo := &def.Combinations[i]
		if len(combo.Parts) != sel.Size() {
			continue
		}
		all := true
		for _, p := range combo.Parts {
			if !sel.Has(p) {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		if best == nil || len(combo.Parts) > len(best.Parts) {
			best = combo
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}
