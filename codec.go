package gwyfile

import (
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/channel"
	"github.com/gwyddion/go-gwyfile/graph"
	"github.com/gwyddion/go-gwyfile/gwykey"
	"github.com/gwyddion/go-gwyfile/tree"
)

// ContainerClass is the tree class name of a container root.
const ContainerClass = "GwyContainer"

// EnumerateChannelIDs returns the channel ids present in the tree in
// ascending order. A channel is recognized by its data field key, so a
// stray title without data does not count.
func EnumerateChannelIDs(t *tree.Object) []int {
	if t == nil {
		return nil
	}

	var ids []int

	for _, path := range t.Paths() {
		if id, ok := gwykey.ParseChannelData(path); ok {
			ids = append(ids, id)
		}
	}

	// Paths sort lexically, which puts "/10/data" before "/2/data".
	sort.Ints(ids)

	return ids
}

// EnumerateGraphIDs returns the graph ids present in the tree in
// ascending order.
func EnumerateGraphIDs(t *tree.Object) []int {
	if t == nil {
		return nil
	}

	var ids []int

	for _, path := range t.Paths() {
		if id, ok := gwykey.ParseGraph(path); ok {
			ids = append(ids, id)
		}
	}

	sort.Ints(ids)

	return ids
}

// Decode builds the object model held by the container tree. A failed
// channel or graph is skipped and its error collected, so the returned
// container holds everything that did decode; the collected errors come
// back as a *multierror.Error. Only a nil tree or a root of the wrong
// class aborts the decode outright.
func Decode(t *tree.Object) (*Container, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	if t.Class() != ContainerClass {
		return nil, errClass(t.Class())
	}

	c := &Container{Filename: option.None[string]()}
	errs := new(multierror.Error)

	for _, id := range EnumerateChannelIDs(t) {
		ch, err := channel.Decode(t, id)
		if err != nil {
			errs = multierror.Append(errs, err)

			continue
		}

		c.Channels = append(c.Channels, ch)
	}

	for _, id := range EnumerateGraphIDs(t) {
		m, err := graph.DecodeModel(t, id)
		if err != nil {
			errs = multierror.Append(errs, err)

			continue
		}

		c.Graphs = append(c.Graphs, m)
	}

	name, err := t.String(gwykey.Filename())
	if err != nil {
		errs = multierror.Append(errs, err)
	} else if value, found := name.Get(); found {
		// Only the base name survives; the directory the file once
		// lived in means nothing to the reader.
		c.Filename = option.Some(filepath.Base(value))
	}

	return c, errs.ErrorOrNil()
}

// Encode builds a brand-new container tree from the object model.
// Channel ids are assigned 0..N-1 and graph ids 1..N by position. Every
// nested graph object is registered in the retention table of the new
// root right after it is attached; closing the root releases them.
func Encode(c *Container) (*tree.Object, error) {
	if c == nil {
		return nil, ErrNilContainer
	}

	root := tree.New(ContainerClass)

	for id, ch := range c.Channels {
		if err := channel.Encode(root, id, ch); err != nil {
			return nil, errKey(gwykey.ChannelData(id), err)
		}
	}

	for i, m := range c.Graphs {
		id := i + 1

		path := gwykey.Graph(id)
		if m == nil {
			return nil, errKey(path, ErrNilGraph)
		}

		obj := graph.EncodeModel(m)

		if !root.Add(tree.NewObject(path, obj)) {
			return nil, errKey(path, tree.ErrOccupied)
		}

		retain(root, obj)

		if visible, found := m.Visible.Get(); found {
			visiblePath := gwykey.GraphVisible(id)
			if !root.Add(tree.NewBool(visiblePath, visible)) {
				return nil, errKey(visiblePath, tree.ErrOccupied)
			}
		}
	}

	return root, nil
}
