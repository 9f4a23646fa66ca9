package canvas

import "linegeom/internal/geom"

// Glyphs used by the render functions.
const (
	GlyphFirst  = '*'
	GlyphSecond = '#'
	GlyphSide   = '.'
	GlyphEdge   = '#'
)

// RenderRelationship draws both lines and, when they cross, the labelled
// intersection on a new Canvas.
func RenderRelationship(l1, l2 geom.Line, opts ...Option) *Canvas {
	c := New(opts...)
	DrawRelationship(c, l1, l2)
	return c
}

// DrawRelationship fits p to the origin, the axis intercepts of both lines
// and their crossing point, then draws the scene.
func DrawRelationship(p Plotter, l1, l2 geom.Line) geom.Relationship {
	r := geom.ClassifyRelationship(l1, l2)
	pts := append([]geom.Point{{}}, intercepts(l1)...)
	pts = append(pts, intercepts(l2)...)
	if r.HasPoint {
		pts = append(pts, r.Point)
	}
	p.AutoScale(pts)
	p.Clear()
	p.PlotLine(l1, GlyphFirst)
	p.PlotLine(l2, GlyphSecond)
	if r.HasPoint {
		p.PlotIntersection(r.Point, IntersectionLabel(r.Point))
	}
	return r
}

// RenderQuadrilateral classifies lines and draws them with the traced
// polygon on a new Canvas. The error is geom.ErrInvalidInput for sets that
// are not four lines.
func RenderQuadrilateral(lines []geom.Line, opts ...Option) (*Canvas, geom.Quadrilateral, error) {
	q, err := geom.ClassifyQuadrilateral(lines)
	if err != nil {
		return nil, q, err
	}
	c := New(opts...)
	DrawQuadrilateral(c, lines, q)
	return c, q, nil
}

// DrawQuadrilateral draws an already classified set. Undetermined shapes
// show the lines and whatever crossings exist.
func DrawQuadrilateral(p Plotter, lines []geom.Line, q geom.Quadrilateral) {
	pts := q.Vertices
	if len(pts) == 0 {
		pts = append([]geom.Point{{}}, q.Candidates...)
		for _, l := range lines {
			pts = append(pts, intercepts(l)...)
		}
	}
	p.AutoScale(pts)
	p.Clear()
	for _, l := range lines {
		p.PlotLine(l, GlyphSide)
	}
	if len(q.Vertices) == 0 {
		for _, v := range q.Candidates {
			p.PlotIntersection(v, IntersectionLabel(v))
		}
		return
	}
	n := len(q.Vertices)
	for i, v := range q.Vertices {
		p.PlotSegment(v, q.Vertices[(i+1)%n], GlyphEdge)
	}
	for _, v := range q.Vertices {
		p.PlotIntersection(v, IntersectionLabel(v))
	}
}

// intercepts returns where l crosses the axes, when it does.
func intercepts(l geom.Line) []geom.Point {
	var pts []geom.Point
	if !l.IsHorizontal() {
		pts = append(pts, geom.Point{X: l.C() / l.A()})
	}
	if !l.IsVertical() {
		pts = append(pts, geom.Point{Y: l.C() / l.B()})
	}
	return pts
}
