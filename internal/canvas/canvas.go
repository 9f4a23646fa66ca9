// Package canvas rasterises lines, segments and intersection markers onto a
// fixed-size character grid that maps a logical viewport.
package canvas

import (
	"fmt"
	"io"
	"math"
	"strings"

	"linegeom/internal/geom"
)

// Glyphs drawn by Clear and PlotIntersection.
const (
	GlyphBlank  = ' '
	GlyphAxisX  = '-'
	GlyphAxisY  = '|'
	GlyphOrigin = '+'
	GlyphMarker = 'X'
)

// samplesPerCell bounds how many samples PlotLine and PlotSegment take per
// grid cell, so huge viewports cost no more than small ones.
const samplesPerCell = 8

// Plotter is a raster sink the render functions draw a scene onto.
type Plotter interface {
	Clear()
	AutoScale(pts []geom.Point)
	PlotLine(l geom.Line, glyph rune)
	PlotSegment(p0, p1 geom.Point, glyph rune)
	PlotIntersection(p geom.Point, label string)
}

// Canvas is a character grid plus the viewport mapped onto it. Row 0 is
// the top of the grid. A Canvas is not safe for concurrent use.
type Canvas struct {
	opts Options
	vp   Viewport
	grid [][]rune
}

var _ Plotter = (*Canvas)(nil)

// New returns a cleared canvas, 70x30 over [-10,10]x[-10,10] unless
// options say otherwise.
func New(opts ...Option) *Canvas {
	o := gatherOptions(opts)
	c := &Canvas{opts: o, vp: o.Viewport}
	c.grid = make([][]rune, o.Height)
	for y := range c.grid {
		c.grid[y] = make([]rune, o.Width)
	}
	c.Clear()
	return c
}

// Size returns the grid dimensions in cells.
func (c *Canvas) Size() (w, h int) { return c.opts.Width, c.opts.Height }

func (c *Canvas) Viewport() Viewport { return c.vp }

// SetViewport replaces the logical window. Plots already on the grid stay
// where they are; call Clear to redraw the axes for the new window.
func (c *Canvas) SetViewport(v Viewport) error {
	if !v.valid() {
		return fmt.Errorf("canvas: empty or non-finite viewport [%g,%g]x[%g,%g]", v.XMin, v.XMax, v.YMin, v.YMax)
	}
	c.vp = v
	return nil
}

// AutoScale fits the viewport to the bounding box of pts plus padding on
// each axis. An empty pts leaves the viewport alone.
func (c *Canvas) AutoScale(pts []geom.Point) {
	if v, ok := fit(pts, c.opts.Padding); ok {
		c.vp = v
	}
}

// Clear blanks every cell and redraws whichever axes cross the viewport.
func (c *Canvas) Clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = GlyphBlank
		}
	}
	w, h := c.Size()
	row, rowOK := c.axisCell(c.vp.YMax, c.vp.YMin, h)
	col, colOK := c.axisCell(-c.vp.XMin, -c.vp.XMax, w)
	if rowOK {
		for x := 0; x < w; x++ {
			c.grid[row][x] = GlyphAxisX
		}
	}
	if colOK {
		for y := 0; y < h; y++ {
			c.grid[y][col] = GlyphAxisY
		}
	}
	if rowOK && colOK {
		c.grid[row][col] = GlyphOrigin
	}
}

// axisCell places coordinate zero along one grid dimension of n cells,
// given the distance from the window's far edge and near edge to zero.
func (c *Canvas) axisCell(far, near float64, n int) (int, bool) {
	f := math.Round(far * float64(n-1) / (far - near))
	if !(f >= 0 && f < float64(n)) {
		return 0, false
	}
	return int(f), true
}

// ToScreen maps a logical point to a grid cell. ok is false for points
// that land outside the grid.
func (c *Canvas) ToScreen(x, y float64) (col, row int, ok bool) {
	w, h := c.Size()
	return c.vp.project(x, y, w, h)
}

// FromScreen maps a grid cell back to the logical point it samples.
func (c *Canvas) FromScreen(col, row int) (x, y float64) {
	w, h := c.Size()
	x = c.vp.XMin + float64(col)*(c.vp.XMax-c.vp.XMin)/float64(w-1)
	y = c.vp.YMax - float64(row)*(c.vp.YMax-c.vp.YMin)/float64(h-1)
	return x, y
}

// PlotPoint sets the cell under (x, y). Points off the grid are dropped.
func (c *Canvas) PlotPoint(x, y float64, glyph rune) {
	if col, row, ok := c.ToScreen(x, y); ok {
		c.grid[row][col] = glyph
	}
}

// PlotLine samples the infinite line across the viewport, stepping the
// free axis by the configured line step, or coarser when the viewport is
// wider than samplesPerCell steps per cell.
func (c *Canvas) PlotLine(l geom.Line, glyph rune) {
	w, h := c.Size()
	switch {
	case l.IsVertical():
		step := c.lineStep(c.vp.YMax-c.vp.YMin, h)
		x := l.C() / l.A()
		for i := 0; ; i++ {
			y := c.vp.YMin + float64(i)*step
			if y > c.vp.YMax {
				break
			}
			c.PlotPoint(x, y, glyph)
		}
	case l.IsHorizontal():
		step := c.lineStep(c.vp.XMax-c.vp.XMin, w)
		y := l.C() / l.B()
		for i := 0; ; i++ {
			x := c.vp.XMin + float64(i)*step
			if x > c.vp.XMax {
				break
			}
			c.PlotPoint(x, y, glyph)
		}
	default:
		step := c.lineStep(c.vp.XMax-c.vp.XMin, w)
		for i := 0; ; i++ {
			x := c.vp.XMin + float64(i)*step
			if x > c.vp.XMax {
				break
			}
			c.PlotPoint(x, (l.C()-l.A()*x)/l.B(), glyph)
		}
	}
}

func (c *Canvas) lineStep(span float64, cells int) float64 {
	step := c.opts.LineStep
	if limit := float64(samplesPerCell * cells); span/step > limit {
		step = span / limit
	}
	return step
}

// PlotSegment walks from p0 to p1 in max(minSteps, 3*max(|dx|,|dy|))
// steps, both ends included, capped at samplesPerCell per cell of the grid.
func (c *Canvas) PlotSegment(p0, p1 geom.Point, glyph rune) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	w, h := c.Size()
	steps := math.Min(math.Ceil(3*math.Max(math.Abs(dx), math.Abs(dy))), float64(samplesPerCell*(w+h)))
	if !(steps >= float64(c.opts.MinSegmentSteps)) {
		steps = float64(c.opts.MinSegmentSteps)
	}
	for i := 0; i <= int(steps); i++ {
		t := float64(i) / steps
		c.PlotPoint(p0.X+t*dx, p0.Y+t*dy, glyph)
	}
}

// PlotIntersection marks p and writes label into the cells to its right.
// Label characters past the right edge are skipped one by one.
func (c *Canvas) PlotIntersection(p geom.Point, label string) {
	col, row, ok := c.ToScreen(p.X, p.Y)
	if !ok {
		return
	}
	c.grid[row][col] = GlyphMarker
	w, _ := c.Size()
	for i, r := range []rune(label) {
		x := col + 1 + i
		if x >= w {
			continue
		}
		c.grid[row][x] = r
	}
}

// At returns the glyph in a cell, or a blank outside the grid.
func (c *Canvas) At(col, row int) rune {
	w, h := c.Size()
	if col < 0 || col >= w || row < 0 || row >= h {
		return GlyphBlank
	}
	return c.grid[row][col]
}

// Rows returns the grid contents, top row first, without the border.
func (c *Canvas) Rows() []string {
	out := make([]string, len(c.grid))
	for y, r := range c.grid {
		out[y] = string(r)
	}
	return out
}

// Display writes the grid inside a border, top row first.
func (c *Canvas) Display(w io.Writer) error {
	_, err := io.WriteString(w, c.String())
	return err
}

func (c *Canvas) String() string {
	w, _ := c.Size()
	edge := "+" + strings.Repeat("-", w) + "+\n"
	var sb strings.Builder
	sb.WriteString(edge)
	for _, r := range c.grid {
		sb.WriteByte('|')
		sb.WriteString(string(r))
		sb.WriteString("|\n")
	}
	sb.WriteString(edge)
	return sb.String()
}

// IntersectionLabel is the annotation written next to a marker: the
// coordinates rounded to integers.
func IntersectionLabel(p geom.Point) string {
	return fmt.Sprintf("(%d,%d)", int(math.Round(p.X)), int(math.Round(p.Y)))
}
