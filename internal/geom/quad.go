package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Shape is the classification of a four-line set.
type Shape int

const (
	ShapeUndetermined Shape = iota
	ShapeSquare
	ShapeRectangle
	ShapeRhombus
	ShapeParallelogram
	ShapeTrapezoid
	ShapeIrregular
)

var shapeNames = [...]string{
	ShapeUndetermined:  "undetermined",
	ShapeSquare:        "square",
	ShapeRectangle:     "rectangle",
	ShapeRhombus:       "rhombus",
	ShapeParallelogram: "parallelogram",
	ShapeTrapezoid:     "trapezoid",
	ShapeIrregular:     "irregular quadrilateral",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Description is the one-sentence verdict shown to the user.
func (s Shape) Description() string {
	switch s {
	case ShapeSquare:
		return "The shape is a square (all sides equal and all angles 90 degrees)."
	case ShapeRectangle:
		return "The shape is a rectangle (opposite sides equal and all angles 90 degrees)."
	case ShapeRhombus:
		return "The shape is a rhombus (all sides equal but angles aren't 90 degrees)."
	case ShapeParallelogram:
		return "The shape is a parallelogram (opposite sides parallel but angles aren't 90 degrees)."
	case ShapeTrapezoid:
		return "The shape is a trapezoid (there is only one pair of parallel sides)."
	case ShapeIrregular:
		return "The shape is an irregular quadrilateral."
	default:
		return "Could not determine the shape: the lines do not meet in four corners."
	}
}

// Quadrilateral is the result of classifying four lines.
type Quadrilateral struct {
	Shape Shape
	// Candidates holds every pairwise intersection, in pair order.
	Candidates []Point
	// Vertices is the nearest-neighbour walk over Candidates; empty when
	// the shape is undetermined.
	Vertices []Point
	// Sides are the edge lengths in traversal order, Vertices[3] wrapping
	// to Vertices[0].
	Sides []float64
	// Pairing is the working line order after opposite-side recovery:
	// (Pairing[0], Pairing[2]) and (Pairing[1], Pairing[3]) are the
	// candidate opposite pairs.
	Pairing [4]Line
}

// ClassifyQuadrilateral classifies the shape bounded by exactly four lines.
// Any other count returns ErrInvalidInput.
func ClassifyQuadrilateral(lines []Line) (Quadrilateral, error) {
	if len(lines) != 4 {
		return Quadrilateral{}, fmt.Errorf("got %d lines: %w", len(lines), ErrInvalidInput)
	}
	var q Quadrilateral
	q.Candidates = intersections(lines)
	q.Vertices = orderVertices(q.Candidates)
	q.Pairing = pairOpposites(lines)
	if len(q.Vertices) < 4 {
		q.Vertices = nil
		q.Shape = ShapeUndetermined
		return q, nil
	}
	q.Sides = make([]float64, 4)
	for i := range q.Vertices {
		q.Sides[i] = Distance(q.Vertices[i], q.Vertices[(i+1)%4])
	}
	sorted := append([]float64(nil), q.Sides...)
	sort.Float64s(sorted)
	q.Shape = classify(q.Pairing, sorted)
	return q, nil
}

// intersections returns the crossing points of every pair, skipping
// parallel pairs.
func intersections(lines []Line) []Point {
	var pts []Point
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			if p, ok := lines[i].Intersect(lines[j]); ok {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// orderVertices starts at the topmost candidate and repeatedly walks to the
// nearest unused one. Ties go to the earlier candidate in both scans. This
// is not a hull ordering and can misorder concave configurations.
func orderVertices(cands []Point) []Point {
	if len(cands) < 4 {
		return nil
	}
	top := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].Y > cands[top].Y {
			top = i
		}
	}
	used := make([]bool, len(cands))
	used[top] = true
	ordered := []Point{cands[top]}
	for n := 0; n < 3; n++ {
		next, best := -1, math.MaxFloat64
		last := ordered[len(ordered)-1]
		for j, c := range cands {
			if used[j] {
				continue
			}
			if d := Distance(last, c); d < best {
				best, next = d, j
			}
		}
		if next == -1 {
			break
		}
		used[next] = true
		ordered = append(ordered, cands[next])
	}
	return ordered
}

// pairOpposites assumes input order follows the sides of the shape and
// only corrects one mis-pairing: when line 0 is not parallel to line 2,
// lines 1 and 2 trade places.
func pairOpposites(lines []Line) [4]Line {
	p := [4]Line{lines[0], lines[1], lines[2], lines[3]}
	if !p[0].IsParallel(p[2]) {
		p[1], p[2] = p[2], p[1]
	}
	return p
}

// classify applies the shape predicates in priority order. sorted holds
// the side lengths ascending.
func classify(l [4]Line, sorted []float64) Shape {
	// Only the extremes are compared.
	equalSides := NearlyEqual(sorted[0], sorted[3])
	equalOpposites := NearlyEqual(sorted[0], sorted[1]) && NearlyEqual(sorted[2], sorted[3])

	par02 := l[0].IsParallel(l[2])
	par13 := l[1].IsParallel(l[3])
	parallelogram := par02 && par13
	rightAngles := l[0].IsPerpendicular(l[1]) &&
		l[1].IsPerpendicular(l[2]) &&
		l[2].IsPerpendicular(l[3]) &&
		l[3].IsPerpendicular(l[0])

	switch {
	case rightAngles && parallelogram && equalSides:
		return ShapeSquare
	case rightAngles && parallelogram && equalOpposites:
		return ShapeRectangle
	case par02 && par13 && equalSides:
		return ShapeRhombus
	case parallelogram:
		return ShapeParallelogram
	case par02 != par13:
		return ShapeTrapezoid
	default:
		return ShapeIrregular
	}
}

// Perimeter is the sum of Sides.
func (q Quadrilateral) Perimeter() float64 {
	if len(q.Vertices) < 4 {
		return 0
	}
	return planar.Length(q.ring())
}

// Area of the polygon traced by Vertices, as walked. A self-crossing walk
// yields the net area.
func (q Quadrilateral) Area() float64 {
	if len(q.Vertices) < 4 {
		return 0
	}
	return math.Abs(planar.Area(q.ring()))
}

func (q Quadrilateral) ring() orb.Ring {
	r := make(orb.Ring, 0, len(q.Vertices)+1)
	for _, v := range q.Vertices {
		r = append(r, v.orb())
	}
	return append(r, q.Vertices[0].orb())
}
