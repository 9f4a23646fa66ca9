// Package geom holds lines in standard form and the classifiers built on them:
// pairwise relationships and the quadrilateral bounded by four lines.
package geom

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Epsilon is the tolerance shared by every comparison in the package.
const Epsilon = 1e-9

// Point is a position in the plane. Equality is within Epsilon.
type Point struct {
	X float64
	Y float64
}

func (p Point) Equal(o Point) bool {
	return NearlyEqual(p.X, o.X) && NearlyEqual(p.Y, o.Y)
}

func (p Point) orb() orb.Point { return orb.Point{p.X, p.Y} }

// Slope of a line in standard form. Vertical lines have no finite value.
type Slope struct {
	Value    float64
	Vertical bool
}

func (s Slope) String() string {
	if s.Vertical {
		return "vertical"
	}
	return "slope " + strconv.FormatFloat(s.Value, 'g', 4, 64)
}

// LineSet is an ordered group of lines; the quadrilateral classifier wants four.
type LineSet []Line

// NearlyEqual reports whether a and b differ by less than Epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return planar.Distance(p1.orb(), p2.orb())
}
