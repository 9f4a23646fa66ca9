// Package report turns classifier results into the text verdicts shown
// next to the rendered grid.
package report

import (
	"fmt"
	"strings"

	"linegeom/internal/geom"
)

// Relationship describes how two lines relate and where they cross.
func Relationship(r geom.Relationship) string {
	var sb strings.Builder
	switch r.Kind {
	case geom.Parallel:
		sb.WriteString("The lines are parallel.\n")
		if r.Coincident {
			sb.WriteString("They describe the same line.\n")
		} else {
			sb.WriteString("The lines are parallel and don't cross.\n")
		}
		return sb.String()
	case geom.Perpendicular:
		sb.WriteString("The lines are perpendicular.\n")
	default:
		sb.WriteString("The lines are neither parallel nor perpendicular.\n")
	}
	if r.HasPoint {
		fmt.Fprintf(&sb, "The lines intersect at point: (%.3f, %.3f)\n", r.Point.X, r.Point.Y)
	}
	return sb.String()
}

// SlopeText is "Vertical line" or "Slope = s" with three decimals.
func SlopeText(l geom.Line) string {
	s := l.Slope()
	if s.Vertical {
		return "Vertical line"
	}
	return fmt.Sprintf("Slope = %.3f", s.Value)
}

// Shape lists each line's slope, the parallel and perpendicular pairs,
// then the side lengths and verdict of q.
func Shape(lines []geom.Line, q geom.Quadrilateral) string {
	var sb strings.Builder
	section := func(title string) {
		fmt.Fprintf(&sb, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}

	section("Information about the lines:")
	for i, l := range lines {
		fmt.Fprintf(&sb, "Line %d: %s  (%s)\n", i+1, SlopeText(l), l)
	}

	par, perp := geom.LinePairs(lines)
	section("Parallel Lines:")
	writePairs(&sb, par, "parallel")
	section("Perpendicular Lines:")
	writePairs(&sb, perp, "perpendicular")

	section("Shape Analysis:")
	if len(q.Sides) == 4 {
		sb.WriteString("The side lengths are:")
		for _, s := range q.Sides {
			fmt.Fprintf(&sb, " %.3f", s)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(q.Shape.Description() + "\n")
	if len(q.Vertices) == 4 {
		fmt.Fprintf(&sb, "Perimeter: %.3f  Area: %.3f\n", q.Perimeter(), q.Area())
	}
	return strings.TrimPrefix(sb.String(), "\n")
}

func writePairs(sb *strings.Builder, pairs []geom.PairIndex, word string) {
	if len(pairs) == 0 {
		fmt.Fprintf(sb, "No %s lines found.\n", word)
		return
	}
	for _, p := range pairs {
		fmt.Fprintf(sb, "Lines %d and %d are %s\n", p.I+1, p.J+1, word)
	}
}

// LineSet prints the lines of one set, one per row.
func LineSet(n int, set geom.LineSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Line Set %d\n", n)
	for _, l := range set {
		sb.WriteString(l.String() + "\n")
	}
	return sb.String()
}
