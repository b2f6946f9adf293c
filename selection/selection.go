// Package selection models the shape selections of a measurement channel
// and converts them to and from their tree object form. Five kinds exist;
// each groups a fixed number of coordinate points per instance, and the
// kind carries that arity so the flattening and grouping code is shared.
package selection

// Point is one coordinate pair in physical units.
type Point struct {
	X float64
	Y float64
}

// Selection is a non-empty list of instances of one kind, stored as a
// flat point list whose length is a multiple of the kind's arity.
type Selection struct {
	kind   Kind
	points []Point
}

// NewPoints builds a selection of a single-point kind, one instance per
// point. Zero points is ErrEmpty.
func NewPoints(kind Kind, points []Point) (*Selection, error) {
	if kind.PointsPerInstance() != 1 {
		return nil, errKindUsage(kind, 1)
	}

	if len(points) == 0 {
		return nil, ErrEmpty
	}

	flat := make([]Point, len(points))
	copy(flat, points)

	return &Selection{kind: kind, points: flat}, nil
}

// NewPairs builds a selection of a two-point kind, one instance per
// pair. Zero pairs is ErrEmpty.
func NewPairs(kind Kind, pairs [][2]Point) (*Selection, error) {
	if kind.PointsPerInstance() != 2 {
		return nil, errKindUsage(kind, 2)
	}

	if len(pairs) == 0 {
		return nil, ErrEmpty
	}

	flat := make([]Point, 0, 2*len(pairs))
	for _, pair := range pairs {
		flat = append(flat, pair[0], pair[1])
	}

	return &Selection{kind: kind, points: flat}, nil
}

// Kind returns the selection kind.
func (s *Selection) Kind() Kind {
	return s.kind
}

// Points returns the flat point list.
func (s *Selection) Points() []Point {
	return s.points
}

// Len returns the instance count.
func (s *Selection) Len() int {
	return len(s.points) / s.kind.PointsPerInstance()
}

// Instances returns the points grouped per instance; every inner slice
// has the kind's arity.
func (s *Selection) Instances() [][]Point {
	ppi := s.kind.PointsPerInstance()

	grouped := make([][]Point, 0, len(s.points)/ppi)
	for i := 0; i+ppi <= len(s.points); i += ppi {
		grouped = append(grouped, s.points[i:i+ppi])
	}

	return grouped
}
