package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linegeom/internal/geom"
)

func TestClassifyRelationship(t *testing.T) {
	tests := []struct {
		name       string
		l1, l2     geom.Line
		kind       geom.RelationKind
		point      *geom.Point
		coincident bool
	}{
		{"VerticalParallel", geom.MustLine(1, 0, 5), geom.MustLine(1, 0, 10), geom.Parallel, nil, false},
		{"VerticalCoincident", geom.MustLine(1, 0, 5), geom.MustLine(2, 0, 10), geom.Parallel, nil, true},
		{"SlopedCoincident", geom.MustLine(2, 4, 6), geom.MustLine(1, 2, 3), geom.Parallel, nil, true},
		{"Perpendicular", geom.MustLine(1, -1, 0), geom.MustLine(1, 1, 0), geom.Perpendicular, &geom.Point{}, false},
		{"Intersecting", geom.MustLine(1, 1, 2), geom.MustLine(1, 0, 0), geom.Intersecting, &geom.Point{X: 0, Y: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := geom.ClassifyRelationship(tt.l1, tt.l2)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.coincident, r.Coincident)
			if tt.point == nil {
				assert.False(t, r.HasPoint)
				assert.Equal(t, "POINT EMPTY", r.WKT())
				return
			}
			assert.True(t, r.HasPoint)
			assert.True(t, tt.point.Equal(r.Point), "got %v", r.Point)
		})
	}
}

func TestRelationshipWKT(t *testing.T) {
	r := geom.ClassifyRelationship(geom.MustLine(1, 0, 5), geom.MustLine(0, 2, 3))
	assert.Equal(t, "POINT(5 1.5)", r.WKT())
}

func TestRelationKindString(t *testing.T) {
	assert.Equal(t, "parallel", geom.Parallel.String())
	assert.Equal(t, "perpendicular", geom.Perpendicular.String())
	assert.Equal(t, "intersecting", geom.Intersecting.String())
}

func TestLinePairs(t *testing.T) {
	square := []geom.Line{
		geom.MustLine(0, 1, 0), geom.MustLine(1, 0, 4), geom.MustLine(0, 1, 4), geom.MustLine(1, 0, 0),
	}
	par, perp := geom.LinePairs(square)
	assert.Equal(t, []geom.PairIndex{{0, 2}, {1, 3}}, par)
	assert.Equal(t, []geom.PairIndex{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, perp)

	par, perp = geom.LinePairs(square[:1])
	assert.Empty(t, par)
	assert.Empty(t, perp)
}
