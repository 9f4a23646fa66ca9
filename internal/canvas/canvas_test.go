package canvas_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linegeom/internal/canvas"
	"linegeom/internal/geom"
)

func TestNew_ClearShowsOnlyAxes(t *testing.T) {
	c := canvas.New()
	rows := c.Rows()
	require.Len(t, rows, 30)
	for y, r := range rows {
		require.Len(t, []rune(r), 70, "row %d", y)
		for _, g := range r {
			assert.Contains(t, " -|+", string(g), "row %d", y)
		}
	}
	// Origin of [-10,10]x[-10,10] lands on (35, 15).
	assert.Equal(t, '+', c.At(35, 15))
	assert.Equal(t, '-', c.At(0, 15))
	assert.Equal(t, '|', c.At(35, 0))
	assert.Equal(t, ' ', c.At(0, 0))
	assert.Equal(t, ' ', c.At(-1, 0))
}

func TestDisplay_Border(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, canvas.New().Display(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 32)
	edge := "+" + strings.Repeat("-", 70) + "+"
	assert.Equal(t, edge, lines[0])
	assert.Equal(t, edge, lines[31])
	for _, l := range lines[1:31] {
		assert.True(t, strings.HasPrefix(l, "|") && strings.HasSuffix(l, "|"))
		assert.Len(t, []rune(l), 72)
	}
}

func TestClear_AxesOffScreen(t *testing.T) {
	c := canvas.New(canvas.WithViewport(5, 15, 5, 15))
	for _, r := range c.Rows() {
		assert.Equal(t, strings.Repeat(" ", 70), r)
	}
}

func TestToScreen(t *testing.T) {
	c := canvas.New()
	tests := []struct {
		x, y     float64
		col, row int
		ok       bool
	}{
		{-10, 10, 0, 0, true},
		{10, -10, 69, 29, true},
		{0, 0, 35, 15, true},
		{11, 0, 0, 0, false},
		{0, -10.5, 0, 0, false},
	}
	for _, tt := range tests {
		col, row, ok := c.ToScreen(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%g,%g)", tt.x, tt.y)
		if tt.ok {
			assert.Equal(t, tt.col, col, "(%g,%g) col", tt.x, tt.y)
			assert.Equal(t, tt.row, row, "(%g,%g) row", tt.x, tt.y)
		}
	}
}

func TestFromScreen_RoundTrip(t *testing.T) {
	c := canvas.New()
	for _, cell := range [][2]int{{0, 0}, {35, 15}, {69, 29}, {12, 7}} {
		x, y := c.FromScreen(cell[0], cell[1])
		col, row, ok := c.ToScreen(x, y)
		require.True(t, ok)
		assert.Equal(t, cell, [2]int{col, row})
	}
	x, y := c.FromScreen(0, 0)
	assert.Equal(t, -10.0, x)
	assert.Equal(t, 10.0, y)
}

func TestPlotPoint_DropsOutside(t *testing.T) {
	c := canvas.New()
	before := c.String()
	c.PlotPoint(50, 50, '@')
	c.PlotPoint(-10.4, 0, '@')
	assert.Equal(t, before, c.String())
	c.PlotPoint(0, 0, '@')
	assert.Equal(t, '@', c.At(35, 15))
}

func TestPlotLine_Vertical(t *testing.T) {
	c := canvas.New()
	c.PlotLine(geom.MustLine(1, 0, 5), '*')
	for row := 0; row < 30; row++ {
		assert.Equal(t, '*', c.At(52, row), "row %d", row)
	}
}

func TestPlotLine_Horizontal(t *testing.T) {
	c := canvas.New()
	c.PlotLine(geom.MustLine(0, 1, 2), '*')
	n := 0
	for y, r := range c.Rows() {
		cnt := strings.Count(r, "*")
		if y != 12 {
			assert.Zero(t, cnt, "row %d", y)
		}
		n += cnt
	}
	assert.GreaterOrEqual(t, n, 60)
}

func TestPlotLine_Sloped(t *testing.T) {
	c := canvas.New()
	c.PlotLine(geom.MustLine(1, -1, 0), '*')
	assert.Equal(t, '*', c.At(0, 29))
	assert.Equal(t, '*', c.At(68, 0))
}

func TestPlotSegment_NoGaps(t *testing.T) {
	c := canvas.New()
	c.PlotSegment(geom.Point{}, geom.Point{X: 5}, '#')
	for col := 35; col <= 52; col++ {
		assert.Equal(t, '#', c.At(col, 15), "col %d", col)
	}
	assert.Equal(t, '-', c.At(53, 15))
	assert.Equal(t, '-', c.At(34, 15))
}

func TestPlotIntersection_Label(t *testing.T) {
	c := canvas.New()
	c.PlotIntersection(geom.Point{}, canvas.IntersectionLabel(geom.Point{}))
	assert.Equal(t, "X(0,0)", string([]rune(c.Rows()[15])[35:41]))
}

func TestPlotIntersection_ClipsLabelPerCharacter(t *testing.T) {
	c := canvas.New()
	p := geom.Point{X: 9.5, Y: 0}
	c.PlotIntersection(p, canvas.IntersectionLabel(p))
	row := []rune(c.Rows()[15])
	require.Len(t, row, 70)
	assert.Equal(t, 'X', row[67])
	assert.Equal(t, '(', row[68])
	assert.Equal(t, '1', row[69])

	before := c.String()
	c.PlotIntersection(geom.Point{X: 40}, "(40,0)")
	assert.Equal(t, before, c.String())
}

func TestIntersectionLabel_Rounds(t *testing.T) {
	assert.Equal(t, "(3,-2)", canvas.IntersectionLabel(geom.Point{X: 2.6, Y: -2.4}))
	assert.Equal(t, "(0,0)", canvas.IntersectionLabel(geom.Point{X: -0.2, Y: 0.3}))
}

func TestAutoScale(t *testing.T) {
	c := canvas.New()
	c.AutoScale([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 5}})
	v := c.Viewport()
	assert.InDelta(t, -1.5, v.XMin, 1e-12)
	assert.InDelta(t, 11.5, v.XMax, 1e-12)
	assert.InDelta(t, -0.75, v.YMin, 1e-12)
	assert.InDelta(t, 5.75, v.YMax, 1e-12)

	c.AutoScale([]geom.Point{{X: 2, Y: 3}})
	assert.Equal(t, canvas.Viewport{XMin: 1, XMax: 3, YMin: 2, YMax: 4}, c.Viewport())

	c.AutoScale(nil)
	assert.Equal(t, canvas.Viewport{XMin: 1, XMax: 3, YMin: 2, YMax: 4}, c.Viewport())

	c.AutoScale([]geom.Point{{X: math.Inf(1), Y: 0}})
	assert.Equal(t, canvas.Viewport{XMin: 1, XMax: 3, YMin: 2, YMax: 4}, c.Viewport())
}

func TestSetViewport(t *testing.T) {
	c := canvas.New()
	assert.Error(t, c.SetViewport(canvas.Viewport{XMin: 1, XMax: 1, YMin: 0, YMax: 2}))
	assert.Error(t, c.SetViewport(canvas.Viewport{XMin: math.Inf(-1), XMax: 1, YMin: 0, YMax: 2}))
	assert.Error(t, c.SetViewport(canvas.Viewport{XMin: 0, XMax: 1, YMin: math.NaN(), YMax: 2}))
	assert.Equal(t, canvas.DefaultViewport, c.Viewport())
	require.NoError(t, c.SetViewport(canvas.Viewport{XMin: 0, XMax: 69, YMin: 0, YMax: 29}))
	c.Clear()
	assert.Equal(t, '+', c.At(0, 29))
}

func TestOptions(t *testing.T) {
	c := canvas.New(canvas.WithSize(20, 10), canvas.WithPadding(0), canvas.WithLineStep(0.1), canvas.WithMinSegmentSteps(5))
	w, h := c.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
	c.AutoScale([]geom.Point{{X: -2, Y: -1}, {X: 2, Y: 1}})
	assert.Equal(t, canvas.Viewport{XMin: -2, XMax: 2, YMin: -1, YMax: 1}, c.Viewport())

	assert.Panics(t, func() { canvas.WithSize(0, 10) })
	assert.Panics(t, func() { canvas.WithViewport(1, 0, 0, 1) })
	assert.Panics(t, func() { canvas.WithViewport(0, math.Inf(1), 0, 1) })
	assert.Panics(t, func() { canvas.WithLineStep(0) })
	assert.Panics(t, func() { canvas.WithMinSegmentSteps(0) })
	assert.Panics(t, func() { canvas.WithPadding(-0.1) })
}
