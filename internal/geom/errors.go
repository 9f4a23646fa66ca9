package geom

import "errors"

var (
	// ErrInvalidLine is returned when both a and b are zero or a coefficient is not finite.
	ErrInvalidLine = errors.New("geom: invalid line coefficients")
	// ErrInvalidInput is returned when a quadrilateral is requested from a set that is not four lines.
	ErrInvalidInput = errors.New("geom: need exactly 4 lines to make a quadrilateral")
	// ErrIncompleteSet indicates a data source ended in the middle of a line set.
	ErrIncompleteSet = errors.New("geom: insufficient data for set")
	// ErrNoData indicates a data source held no line sets at all.
	ErrNoData = errors.New("geom: no line sets found")
)
