package canvas

import (
	"math"

	"github.com/paulmach/orb"

	"linegeom/internal/geom"
)

// Viewport is the logical window mapped onto the grid.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// valid reports whether v is a finite window of positive width and height.
func (v Viewport) valid() bool {
	for _, f := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return v.XMax > v.XMin && v.YMax > v.YMin
}

// fit returns the bounding box of pts grown by pad of its span on each
// side. A zero span grows by one unit instead. Non-finite points are
// ignored; ok is false when no finite window results.
func fit(pts []geom.Point, pad float64) (Viewport, bool) {
	mp := make(orb.MultiPoint, 0, len(pts))
	for _, p := range pts {
		if math.IsInf(p.X, 0) || math.IsNaN(p.X) || math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
			continue
		}
		mp = append(mp, orb.Point{p.X, p.Y})
	}
	if len(mp) == 0 {
		return Viewport{}, false
	}
	b := mp.Bound()
	padX := (b.Max[0] - b.Min[0]) * pad
	if b.Max[0]-b.Min[0] < geom.Epsilon {
		padX = 1
	}
	padY := (b.Max[1] - b.Min[1]) * pad
	if b.Max[1]-b.Min[1] < geom.Epsilon {
		padY = 1
	}
	v := Viewport{
		XMin: b.Min[0] - padX,
		XMax: b.Max[0] + padX,
		YMin: b.Min[1] - padY,
		YMax: b.Max[1] + padY,
	}
	return v, v.valid()
}

// clip returns the part of l inside v as two points on its border.
func (v Viewport) clip(l geom.Line) (geom.Point, geom.Point, bool) {
	var hits []geom.Point
	add := func(p geom.Point) {
		if p.X < v.XMin-geom.Epsilon || p.X > v.XMax+geom.Epsilon ||
			p.Y < v.YMin-geom.Epsilon || p.Y > v.YMax+geom.Epsilon {
			return
		}
		hits = append(hits, p)
	}
	if !l.IsVertical() {
		for _, x := range []float64{v.XMin, v.XMax} {
			add(geom.Point{X: x, Y: (l.C() - l.A()*x) / l.B()})
		}
	}
	if !l.IsHorizontal() {
		for _, y := range []float64{v.YMin, v.YMax} {
			add(geom.Point{X: (l.C() - l.B()*y) / l.A(), Y: y})
		}
	}
	if len(hits) < 2 {
		return geom.Point{}, geom.Point{}, false
	}
	far, best := 1, -1.0
	for i := 1; i < len(hits); i++ {
		if d := geom.Distance(hits[0], hits[i]); d > best {
			far, best = i, d
		}
	}
	return hits[0], hits[far], true
}

// clipSegment trims the segment p0-p1 to v (Liang-Barsky). ok is false
// when no part of it is inside.
func (v Viewport) clipSegment(p0, p1 geom.Point) (geom.Point, geom.Point, bool) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, p0.X - v.XMin},
		{dx, v.XMax - p0.X},
		{-dy, p0.Y - v.YMin},
		{dy, v.YMax - p0.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return geom.Point{}, geom.Point{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return geom.Point{}, geom.Point{}, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return geom.Point{}, geom.Point{}, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return geom.Point{X: p0.X + t0*dx, Y: p0.Y + t0*dy},
		geom.Point{X: p0.X + t1*dx, Y: p0.Y + t1*dy}, true
}

// project maps (x, y) onto a w-by-h grid; row 0 is the top. ok is false
// when the cell falls outside the grid.
func (v Viewport) project(x, y float64, w, h int) (col, row int, ok bool) {
	fc := math.Round((x - v.XMin) * float64(w-1) / (v.XMax - v.XMin))
	fr := math.Round((v.YMax - y) * float64(h-1) / (v.YMax - v.YMin))
	if !(fc >= 0 && fc < float64(w) && fr >= 0 && fr < float64(h)) {
		return 0, 0, false
	}
	return int(fc), int(fr), true
}
