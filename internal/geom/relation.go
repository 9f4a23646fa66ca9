package geom

// RelationKind labels how two lines relate.
type RelationKind int

const (
	Intersecting RelationKind = iota
	Parallel
	Perpendicular
)

func (k RelationKind) String() string {
	switch k {
	case Parallel:
		return "parallel"
	case Perpendicular:
		return "perpendicular"
	default:
		return "intersecting"
	}
}

// Relationship is the verdict for a pair of lines. Point is only
// meaningful when HasPoint is set.
type Relationship struct {
	Kind       RelationKind
	Point      Point
	HasPoint   bool
	Coincident bool
}

// ClassifyRelationship checks parallelism first, then perpendicularity.
// Lines that are neither still intersect somewhere.
func ClassifyRelationship(l1, l2 Line) Relationship {
	var r Relationship
	switch {
	case l1.IsParallel(l2):
		r.Kind = Parallel
		r.Coincident = coincident(l1, l2)
		return r
	case l1.IsPerpendicular(l2):
		r.Kind = Perpendicular
	default:
		r.Kind = Intersecting
	}
	r.Point, r.HasPoint = l1.Intersect(l2)
	return r
}

// coincident expects parallel lines and compares their normalised c.
func coincident(l1, l2 Line) bool {
	if l1.IsVertical() {
		return NearlyEqual(l1.c/l1.a, l2.c/l2.a)
	}
	return NearlyEqual(l1.c/l1.b, l2.c/l2.b)
}

// PairIndex names two lines of a set by position.
type PairIndex struct {
	I, J int
}

// LinePairs lists every parallel and perpendicular pair in lines, in
// (i, j) order with i < j.
func LinePairs(lines []Line) (parallel, perpendicular []PairIndex) {
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			if lines[i].IsParallel(lines[j]) {
				parallel = append(parallel, PairIndex{i, j})
			}
			if lines[i].IsPerpendicular(lines[j]) {
				perpendicular = append(perpendicular, PairIndex{i, j})
			}
		}
	}
	return parallel, perpendicular
}
