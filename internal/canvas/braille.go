package canvas

import (
	"strings"

	"linegeom/internal/geom"
)

// Braille renders the same scenes as Canvas at 2x4 dots per cell. Glyphs
// and labels are ignored; every plot sets dots.
type Braille struct {
	opts Options
	vp   Viewport
	m    [][]uint8 // per-cell 8-bit dot mask
}

var _ Plotter = (*Braille)(nil)

// NewBraille returns a cleared buffer of Width x Height cells.
func NewBraille(opts ...Option) *Braille {
	o := gatherOptions(opts)
	b := &Braille{opts: o, vp: o.Viewport}
	b.m = make([][]uint8, o.Height)
	for i := range b.m {
		b.m[i] = make([]uint8, o.Width)
	}
	b.Clear()
	return b
}

func (b *Braille) dots() (int, int) { return b.opts.Width * 2, b.opts.Height * 4 }

// Clear drops every dot and redraws the axes.
func (b *Braille) Clear() {
	for y := range b.m {
		for x := range b.m[y] {
			b.m[y][x] = 0
		}
	}
	b.PlotLine(geom.MustLine(0, 1, 0), 0)
	b.PlotLine(geom.MustLine(1, 0, 0), 0)
}

func (b *Braille) AutoScale(pts []geom.Point) {
	if v, ok := fit(pts, b.opts.Padding); ok {
		b.vp = v
	}
}

// PlotLine draws the visible part of l from border to border.
func (b *Braille) PlotLine(l geom.Line, _ rune) {
	p0, p1, ok := b.vp.clip(l)
	if !ok {
		return
	}
	b.PlotSegment(p0, p1, 0)
}

// PlotSegment draws the part of p0-p1 inside the viewport.
func (b *Braille) PlotSegment(p0, p1 geom.Point, _ rune) {
	p0, p1, ok := b.vp.clipSegment(p0, p1)
	if !ok {
		return
	}
	w, h := b.dots()
	x0, y0, ok0 := b.vp.project(p0.X, p0.Y, w, h)
	x1, y1, ok1 := b.vp.project(p1.X, p1.Y, w, h)
	if !ok0 || !ok1 {
		return
	}
	b.drawLine(x0, y0, x1, y1)
}

// PlotIntersection marks p with a 2x2 dot block.
func (b *Braille) PlotIntersection(p geom.Point, _ string) {
	w, h := b.dots()
	x, y, ok := b.vp.project(p.X, p.Y, w, h)
	if !ok {
		return
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			b.setPixel(x+dx, y+dy)
		}
	}
}

// setPixel sets a dot at micro coords (2x4 per cell).
func (b *Braille) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= len(b.m) || cx >= len(b.m[cy]) {
		return
	}
	var bit uint8
	if rx == 0 {
		bit = [4]uint8{0x01, 0x02, 0x04, 0x40}[ry]
	} else {
		bit = [4]uint8{0x08, 0x10, 0x20, 0x80}[ry]
	}
	b.m[cy][cx] |= bit
}

// drawLine is Bresenham over the dot grid.
func (b *Braille) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rows returns one string per cell row; empty cells are spaces.
func (b *Braille) Rows() []string {
	out := make([]string, len(b.m))
	for y, cells := range b.m {
		row := make([]rune, len(cells))
		for x, mask := range cells {
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func (b *Braille) String() string { return strings.Join(b.Rows(), "\n") }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
