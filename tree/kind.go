package tree

// Kind represents the payload type of an item.
type Kind int

const (
	// KindBool represents a boolean flag.
	KindBool Kind = iota + 1
	// KindInt32 represents a 32-bit integer.
	KindInt32
	// KindDouble represents a double precision float.
	KindDouble
	// KindString represents text.
	KindString
	// KindObject represents a nested object.
	KindObject
	// KindDoubles represents a flat double buffer.
	KindDoubles
	// KindObjects represents an array of nested objects.
	KindObjects
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt32:
		return "Int32"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindObject:
		return "Object"
	case KindDoubles:
		return "Doubles"
	case KindObjects:
		return "Objects"
	default:
		return "Unknown"
	}
}
