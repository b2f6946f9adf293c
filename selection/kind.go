package selection

// Kind represents one of the selection shapes a channel can carry.
type Kind int

const (
	// KindPoint represents single point selections.
	KindPoint Kind = iota + 1
	// KindPointer represents pointer position selections.
	KindPointer
	// KindLine represents line selections with two endpoints.
	KindLine
	// KindRectangle represents rectangles spanned by two corners.
	KindRectangle
	// KindEllipse represents ellipses spanned by two bounding corners.
	KindEllipse
)

// Kinds returns every selection kind in key order.
func Kinds() []Kind {
	return []Kind{KindPoint, KindPointer, KindLine, KindRectangle, KindEllipse}
}

// PointsPerInstance returns how many coordinate points form one instance
// of the kind.
func (k Kind) PointsPerInstance() int {
	switch k {
	case KindPoint, KindPointer:
		return 1
	case KindLine, KindRectangle, KindEllipse:
		return 2
	default:
		return 0
	}
}

// ObjectClass returns the tree class name of the kind's serialized form.
func (k Kind) ObjectClass() string {
	switch k {
	case KindPoint:
		return "GwySelectionPoint"
	case KindPointer:
		return "GwySelectionPointer"
	case KindLine:
		return "GwySelectionLine"
	case KindRectangle:
		return "GwySelectionRectangle"
	case KindEllipse:
		return "GwySelectionEllipse"
	default:
		return ""
	}
}

// PathWord returns the word identifying the kind inside a channel's
// selection keys.
func (k Kind) PathWord() string {
	switch k {
	case KindPoint:
		return "point"
	case KindPointer:
		return "pointer"
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindPointer:
		return "Pointer"
	case KindLine:
		return "Line"
	case KindRectangle:
		return "Rectangle"
	case KindEllipse:
		return "Ellipse"
	default:
		return "Unknown"
	}
}
