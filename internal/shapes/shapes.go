// Package shapes holds the composite-shape library used by geometry
// puzzles: figures split into atomic parts whose unions form named
// larger shapes, and the detector that recognizes a selected union.
package shapes

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a shape id has no definition. It is
// distinct from "no combination matched": an unknown figure must render
// a visible placeholder, never an empty scene.
var ErrUnsupported = errors.New("shapes: unsupported shape id")

// Part is one atomic, non-overlapping region of a figure.
type Part struct {
	ID   int
	Path string // SVG path outline
}

// Combination is a named union of parts, e.g. two triangles forming a
// square. A part may belong to several combinations, but no two
// combinations of one figure list exactly the same parts.
type Combination struct {
	Parts   []int
	Name    string
	Outline string // SVG path of the union's boundary
}

// Definition is a complete figure: its drawing bounds, atomic parts,
// and the named combinations they can form.
type Definition struct {
	ID           string
	ViewBox      string
	Parts        []Part
	Combinations []Combination
}

var library = []Definition{
	{
		// A square cut by one diagonal: two triangles.
		ID:      "SQUARE_DIAGONAL",
		ViewBox: "0 0 100 100",
		Parts: []Part{
			{ID: 0, Path: "M0,0 L100,100 L0,100 Z"},
			{ID: 1, Path: "M0,0 L100,0 L100,100 Z"},
		},
		Combinations: []Combination{
			{Parts: []int{0, 1}, Name: "Hình vuông lớn", Outline: "M0,0 L100,0 L100,100 L0,100 Z"},
		},
	},
	{
		// A rectangle cut by both diagonals, envelope style: four
		// triangles meeting at the center.
		ID:      "RECT_ENVELOPE",
		ViewBox: "0 0 140 100",
		Parts: []Part{
			{ID: 0, Path: "M0,0 L70,50 L0,100 Z"},
			{ID: 1, Path: "M0,100 L70,50 L140,100 Z"},
			{ID: 2, Path: "M140,100 L70,50 L140,0 Z"},
			{ID: 3, Path: "M0,0 L140,0 L70,50 Z"},
		},
		Combinations: []Combination{
			{Parts: []int{0, 1, 2, 3}, Name: "Hình chữ nhật lớn", Outline: "M0,0 L140,0 L140,100 L0,100 Z"},
		},
	},
	{
		// Three adjacent squares, each cut by one diagonal.
		ID:      "TRIPLE_SQUARES",
		ViewBox: "0 0 300 100",
		Parts: []Part{
			{ID: 0, Path: "M0,0 L100,0 L100,100 Z"},
			{ID: 1, Path: "M0,0 L0,100 L100,100 Z"},
			{ID: 2, Path: "M100,0 L200,0 L100,100 Z"},
			{ID: 3, Path: "M100,0 L100,100 L200,100 Z"},
			{ID: 4, Path: "M200,0 L300,0 L200,100 Z"},
			{ID: 5, Path: "M200,0 L200,100 L300,100 Z"},
		},
		Combinations: []Combination{
			{Parts: []int{0, 1}, Name: "Hình vuông 1", Outline: "M0,0 L100,0 L100,100 L0,100 Z"},
			{Parts: []int{2, 3}, Name: "Hình vuông 2", Outline: "M100,0 L200,0 L200,100 L100,100 Z"},
			{Parts: []int{4, 5}, Name: "Hình vuông 3", Outline: "M200,0 L300,0 L300,100 L200,100 Z"},
			{Parts: []int{0, 1, 2, 3}, Name: "Hình chữ nhật (2 ô)", Outline: "M0,0 L200,0 L200,100 L0,100 Z"},
			{Parts: []int{2, 3, 4, 5}, Name: "Hình chữ nhật (2 ô)", Outline: "M100,0 L300,0 L300,100 L100,100 Z"},
			{Parts: []int{0, 1, 2, 3, 4, 5}, Name: "Hình chữ nhật lớn", Outline: "M0,0 L300,0 L300,100 L0,100 Z"},
		},
	},
	{
		// One large square on the left, two stacked small rectangles on
		// the right, forming a wide rectangle overall.
		ID:      "RECT_SPLIT_4",
		ViewBox: "0 0 200 100",
		Parts: []Part{
			{ID: 0, Path: "M0,0 L100,0 L100,100 L0,100 Z"},
			{ID: 1, Path: "M100,0 L200,0 L200,50 L100,50 Z"},
			{ID: 2, Path: "M100,50 L200,50 L200,100 L100,100 Z"},
		},
		Combinations: []Combination{
			{Parts: []int{1, 2}, Name: "Hình chữ nhật phải", Outline: "M100,0 L200,0 L200,100 L100,100 Z"},
			{Parts: []int{0, 1, 2}, Name: "Hình chữ nhật lớn", Outline: "M0,0 L200,0 L200,100 L0,100 Z"},
		},
	},
	{
		// A simple house: triangular roof on a square body.
		ID:      "HOUSE_SIMPLE",
		ViewBox: "0 0 100 150",
		Parts: []Part{
			{ID: 0, Path: "M50,0 L100,50 L0,50 Z"},
			{ID: 1, Path: "M0,50 L100,50 L100,150 L0,150 Z"},
		},
		Combinations: []Combination{
			{Parts: []int{0, 1}, Name: "Hình ngôi nhà", Outline: "M50,0 L100,50 L100,150 L0,150 L0,50 Z"},
		},
	},
}

var byID = func() map[string]*Definition {
	m := make(map[string]*Definition, len(library))
	for i := range library {
		m[library[i].ID] = &library[i]
	}
	return m
}()

// Lookup returns the definition for a shape id, or ErrUnsupported.
func Lookup(id string) (*Definition, error) {
	def, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, id)
	}
	return def, nil
}

// IDs lists the defined shape ids in declaration order.
func IDs() []string {
	ids := make([]string, len(library))
	for i, def := range library {
		ids[i] = def.ID
	}
	return ids
}
