package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// WKT renders the ordered vertices as a closed POLYGON, or
// "POLYGON EMPTY" when the shape is undetermined.
func (q Quadrilateral) WKT() string {
	if len(q.Vertices) < 4 {
		return "POLYGON EMPTY"
	}
	return wkt.MarshalString(orb.Polygon{q.ring()})
}

// WKT renders the crossing point, or "POINT EMPTY" for parallel lines.
func (r Relationship) WKT() string {
	if !r.HasPoint {
		return "POINT EMPTY"
	}
	return wkt.MarshalString(r.Point.orb())
}
