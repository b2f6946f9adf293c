package tree

// Item is one path-keyed entry of an object. The payload is fixed at
// construction: each constructor pairs a kind with its Go representation,
// so a kind check is enough to read the payload back safely. The zero
// Item carries no valid kind and fails every typed read.
type Item struct {
	path  string
	kind  Kind
	value any
}

// NewBool returns a boolean flag item.
func NewBool(path string, value bool) Item {
	return Item{path: path, kind: KindBool, value: value}
}

// NewInt32 returns a 32-bit integer item.
func NewInt32(path string, value int32) Item {
	return Item{path: path, kind: KindInt32, value: value}
}

// NewDouble returns a double precision item.
func NewDouble(path string, value float64) Item {
	return Item{path: path, kind: KindDouble, value: value}
}

// NewString returns a text item.
func NewString(path string, value string) Item {
	return Item{path: path, kind: KindString, value: value}
}

// NewObject returns a nested object item.
func NewObject(path string, value *Object) Item {
	return Item{path: path, kind: KindObject, value: value}
}

// NewDoubles returns a flat double buffer item. The slice is stored as
// given, not copied.
func NewDoubles(path string, value []float64) Item {
	return Item{path: path, kind: KindDoubles, value: value}
}

// NewObjects returns an item holding an array of nested objects.
func NewObjects(path string, value []*Object) Item {
	return Item{path: path, kind: KindObjects, value: value}
}

// Path returns the item path.
func (i Item) Path() string {
	return i.path
}

// Value returns the raw payload. The kind names its dynamic type, so
// callers switch on Kind before asserting.
func (i Item) Value() any {
	return i.value
}

// Kind returns the payload kind.
func (i Item) Kind() Kind {
	return i.kind
}
