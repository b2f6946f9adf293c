// Package tree implements the flat, path-keyed item store that measurement
// containers are persisted in: one Object per tree node, each holding typed
// items addressed by path, with nested object items forming the hierarchy.
package tree

import (
	"sort"
	"sync"

	"github.com/tarantool/go-option"
)

// Object is one node of an item tree: a class name plus a set of items
// keyed by path. Reads may run concurrently. Add locks internally, but a
// writer is not ordered against concurrent readers of the same path, so
// callers populate an object before sharing it.
type Object struct {
	class string
	items map[string]Item

	mu        sync.RWMutex
	hooks     []func()
	closeOnce sync.Once
}

// New returns an empty object of the given class.
func New(class string) *Object {
	return &Object{
		class: class,
		items: make(map[string]Item),
	}
}

// Class returns the object class name.
func (o *Object) Class() string {
	return o.class
}

// Add stores the item under its path. It reports false and leaves the
// object untouched when the path is already occupied.
func (o *Object) Add(item Item) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.items[item.path]; exists {
		return false
	}

	o.items[item.path] = item

	return true
}

// Len returns the number of items held.
func (o *Object) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.items)
}

// Item returns the raw item at path, or ErrNotFound.
func (o *Object) Item(path string) (Item, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	item, exists := o.items[path]
	if !exists {
		return Item{}, ErrNotFound
	}

	return item, nil
}

// Paths returns every item path in ascending order.
func (o *Object) Paths() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	paths := make([]string, 0, len(o.items))
	for path := range o.items {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}

// Items returns every item ordered by path.
func (o *Object) Items() []Item {
	o.mu.RLock()
	defer o.mu.RUnlock()

	items := make([]Item, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].path < items[j].path
	})

	return items
}

// lookup reads the item at path under the wanted kind. Absence is None
// without an error; a kind mismatch is a KindError.
func lookup[T any](o *Object, path string, want Kind) (option.Generic[T], error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	item, exists := o.items[path]
	if !exists {
		return option.None[T](), nil
	}

	if item.kind != want {
		return option.None[T](), errKind(path, want, item.kind)
	}

	value, _ := item.value.(T)

	return option.Some(value), nil
}

// Bool reads the boolean item at path.
func (o *Object) Bool(path string) (option.Generic[bool], error) {
	return lookup[bool](o, path, KindBool)
}

// Int32 reads the 32-bit integer item at path.
func (o *Object) Int32(path string) (option.Generic[int32], error) {
	return lookup[int32](o, path, KindInt32)
}

// Double reads the double precision item at path.
func (o *Object) Double(path string) (option.Generic[float64], error) {
	return lookup[float64](o, path, KindDouble)
}

// String reads the text item at path.
func (o *Object) String(path string) (option.Generic[string], error) {
	return lookup[string](o, path, KindString)
}

// Object reads the nested object item at path. Absence yields nil.
func (o *Object) Object(path string) (*Object, error) {
	obj, err := lookup[*Object](o, path, KindObject)
	if err != nil {
		return nil, err
	}

	return obj.UnwrapOr(nil), nil
}

// Doubles reads the flat double buffer item at path.
func (o *Object) Doubles(path string) (option.Generic[[]float64], error) {
	return lookup[[]float64](o, path, KindDoubles)
}

// Objects reads the object array item at path.
func (o *Object) Objects(path string) (option.Generic[[]*Object], error) {
	return lookup[[]*Object](o, path, KindObjects)
}

// OnClose registers fn to run when the object is closed. Hooks run in
// registration order.
func (o *Object) OnClose(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.hooks = append(o.hooks, fn)
}

// Close runs the registered hooks. Only the first call runs them; later
// calls do nothing.
func (o *Object) Close() {
	o.closeOnce.Do(func() {
		o.mu.RLock()
		hooks := make([]func(), len(o.hooks))
		copy(hooks, o.hooks)
		o.mu.RUnlock()

		for _, fn := range hooks {
			fn()
		}
	})
}
