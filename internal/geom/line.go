package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Line is the set of points satisfying a*x + b*y = c. The zero value is
// not a valid line; build lines with NewLine.
type Line struct {
	a, b, c float64
}

// NewLine returns the line a*x + b*y = c, or ErrInvalidLine when a and b
// are both zero or any coefficient is infinite or NaN.
func NewLine(a, b, c float64) (Line, error) {
	if !finite(a) || !finite(b) || !finite(c) {
		return Line{}, fmt.Errorf("%gx + %gy = %g: non-finite coefficient: %w", a, b, c, ErrInvalidLine)
	}
	if math.Abs(a) < Epsilon && math.Abs(b) < Epsilon {
		return Line{}, fmt.Errorf("%gx + %gy = %g: a and b both zero: %w", a, b, c, ErrInvalidLine)
	}
	return Line{a: a, b: b, c: c}, nil
}

// MustLine is NewLine for literals known to be valid. It panics otherwise.
func MustLine(a, b, c float64) Line {
	l, err := NewLine(a, b, c)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Line) A() float64 { return l.a }
func (l Line) B() float64 { return l.b }
func (l Line) C() float64 { return l.c }

func (l Line) IsVertical() bool { return math.Abs(l.b) < Epsilon }

func (l Line) IsHorizontal() bool { return math.Abs(l.a) < Epsilon }

// Slope returns -a/b, or a Vertical slope when b is zero.
func (l Line) Slope() Slope {
	if l.IsVertical() {
		return Slope{Vertical: true}
	}
	return Slope{Value: noNegZero(-l.a / l.b)}
}

// IsParallel reports whether l and o have the same direction. Coincident
// lines count as parallel.
func (l Line) IsParallel(o Line) bool {
	s1, s2 := l.Slope(), o.Slope()
	if s1.Vertical || s2.Vertical {
		return s1.Vertical && s2.Vertical
	}
	return math.Abs(s1.Value-s2.Value) < Epsilon
}

// IsPerpendicular reports whether l and o meet at a right angle.
func (l Line) IsPerpendicular(o Line) bool {
	s1, s2 := l.Slope(), o.Slope()
	if s1.Vertical && !s2.Vertical && math.Abs(s2.Value) < Epsilon {
		return true
	}
	if s2.Vertical && !s1.Vertical && math.Abs(s1.Value) < Epsilon {
		return true
	}
	if s1.Vertical || s2.Vertical {
		return false
	}
	return math.Abs(s1.Value*s2.Value+1) < Epsilon
}

// Intersect solves the two line equations. ok is false when the
// determinant vanishes, i.e. the lines are parallel or coincident.
func (l Line) Intersect(o Line) (p Point, ok bool) {
	det := l.a*o.b - o.a*l.b
	if math.Abs(det) < Epsilon {
		return Point{}, false
	}
	x := (l.c*o.b - o.c*l.b) / det
	y := (l.a*o.c - o.a*l.c) / det
	return Point{X: noNegZero(x), Y: noNegZero(y)}, true
}

// Contains reports whether p satisfies the line equation within Epsilon.
func (l Line) Contains(p Point) bool {
	return math.Abs(l.a*p.X+l.b*p.Y-l.c) < Epsilon
}

// String renders the line as "ax + by = c".
func (l Line) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return f(l.a) + "x + " + f(l.b) + "y = " + f(l.c)
}

func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
