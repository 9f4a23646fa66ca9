package canvas

import "fmt"

// Defaults of the display contract.
const (
	DefaultWidth           = 70
	DefaultHeight          = 30
	DefaultLineStep        = 0.3
	DefaultMinSegmentSteps = 50
	DefaultPadding         = 0.15
)

// DefaultViewport is [-10,10]x[-10,10].
var DefaultViewport = Viewport{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

// Options holds the construction-time settings of a Canvas or Braille buffer.
type Options struct {
	Width           int
	Height          int
	Viewport        Viewport
	LineStep        float64
	MinSegmentSteps int
	Padding         float64
}

// Option configures Options.
type Option func(*Options)

// WithSize sets the grid size in cells. Panics unless both exceed 1.
func WithSize(w, h int) Option {
	if w <= 1 || h <= 1 {
		panic(fmt.Sprintf("canvas: WithSize(%d, %d): size must exceed 1x1", w, h))
	}
	return func(o *Options) {
		o.Width, o.Height = w, h
	}
}

// WithViewport sets the initial logical window.
func WithViewport(xMin, xMax, yMin, yMax float64) Option {
	if !(Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}).valid() {
		panic(fmt.Sprintf("canvas: WithViewport: empty or non-finite window [%g,%g]x[%g,%g]", xMin, xMax, yMin, yMax))
	}
	return func(o *Options) {
		o.Viewport = Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	}
}

// WithLineStep sets the sampling step PlotLine uses along the free axis.
func WithLineStep(step float64) Option {
	if !(step > 0) {
		panic("canvas: WithLineStep: step must be positive")
	}
	return func(o *Options) {
		o.LineStep = step
	}
}

// WithMinSegmentSteps sets the fewest samples PlotSegment takes.
func WithMinSegmentSteps(n int) Option {
	if n < 1 {
		panic("canvas: WithMinSegmentSteps: need at least one step")
	}
	return func(o *Options) {
		o.MinSegmentSteps = n
	}
}

// WithPadding sets the fraction of the bounding box AutoScale adds per side.
func WithPadding(frac float64) Option {
	if frac < 0 {
		panic("canvas: WithPadding: negative padding")
	}
	return func(o *Options) {
		o.Padding = frac
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		Viewport:        DefaultViewport,
		LineStep:        DefaultLineStep,
		MinSegmentSteps: DefaultMinSegmentSteps,
		Padding:         DefaultPadding,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
