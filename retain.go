package gwyfile

import (
	"sync"

	"github.com/gwyddion/go-gwyfile/tree"
)

// retained maps a container root to the nested graph objects created
// while encoding it, keeping them reachable for as long as the root is.
// The root's close hook drops the entry. Distinct roots never contend
// beyond the table lock, so concurrent encodes are safe.
var (
	retainedMu sync.Mutex
	retained   = make(map[*tree.Object][]*tree.Object)
)

func retain(root *tree.Object, obj *tree.Object) {
	retainedMu.Lock()
	defer retainedMu.Unlock()

	if _, exists := retained[root]; !exists {
		root.OnClose(func() {
			release(root)
		})
	}

	retained[root] = append(retained[root], obj)
}

func release(root *tree.Object) {
	retainedMu.Lock()
	defer retainedMu.Unlock()

	delete(retained, root)
}

// RetainedGraphObjects returns the graph objects the encoder registered
// for the given container root, in encode order. The result is empty
// once the root has been closed.
func RetainedGraphObjects(root *tree.Object) []*tree.Object {
	retainedMu.Lock()
	defer retainedMu.Unlock()

	objs := make([]*tree.Object, len(retained[root]))
	copy(objs, retained[root])

	return objs
}
