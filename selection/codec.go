package selection

import (
	"fmt"

	"github.com/gwyddion/go-gwyfile/tree"
)

const (
	itemNSel = "nsel"
	itemData = "data"
)

// Decode reads a selection of the given kind from its tree object. A nil
// object, an absent count and a zero count all mean "no selection" and
// yield (nil, nil); ErrEmpty is strictly a construction error. The
// coordinate buffer must hold at least 2·nsel·arity values.
func Decode(o *tree.Object, kind Kind) (*Selection, error) {
	if o == nil {
		return nil, nil
	}

	nsel, err := o.Int32(itemNSel)
	if err != nil {
		return nil, errItem(kind, itemNSel, err)
	}

	count := int(nsel.UnwrapOr(0))
	if count <= 0 {
		return nil, nil
	}

	buf, err := o.Doubles(itemData)
	if err != nil {
		return nil, errItem(kind, itemData, err)
	}

	if !buf.IsSome() {
		return nil, errItem(kind, itemData, ErrMissingItem)
	}

	coords := buf.UnwrapOr(nil)

	need := 2 * count * kind.PointsPerInstance()
	if len(coords) < need {
		return nil, errItem(kind, itemData,
			fmt.Errorf("buffer holds %d values, want %d", len(coords), need))
	}

	return &Selection{
		kind:   kind,
		points: groupCoords(coords[:need]),
	}, nil
}

// Encode writes the selection as a tree object of its kind's class,
// with the instance count and the flattened coordinate buffer.
func Encode(s *Selection) *tree.Object {
	o := tree.New(s.kind.ObjectClass())

	o.Add(tree.NewInt32(itemNSel, int32(s.Len())))
	o.Add(tree.NewDoubles(itemData, flattenPoints(s.points)))

	return o
}

func flattenPoints(points []Point) []float64 {
	buf := make([]float64, 0, 2*len(points))
	for _, p := range points {
		buf = append(buf, p.X, p.Y)
	}

	return buf
}

func groupCoords(buf []float64) []Point {
	points := make([]Point, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		points = append(points, Point{X: buf[i], Y: buf[i+1]})
	}

	return points
}
