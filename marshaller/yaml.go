package marshaller

import (
	"gopkg.in/yaml.v3"

	"github.com/gwyddion/go-gwyfile/tree"
)

// MarshalYAML renders the tree as YAML for human inspection. The
// rendering is lossy: item kinds are dropped and only paths, classes
// and values remain.
func MarshalYAML(t *tree.Object) ([]byte, error) {
	if t == nil {
		return nil, errMarshal(ErrTreeIsNil)
	}

	data, err := yaml.Marshal(treeDoc(t))
	if err != nil {
		return nil, errMarshal(err)
	}

	return data, nil
}

// treeDoc converts an object into plain maps for the YAML encoder.
func treeDoc(o *tree.Object) map[string]any {
	items := make(map[string]any, o.Len())

	for _, item := range o.Items() {
		items[item.Path()] = itemValue(item)
	}

	return map[string]any{
		"class": o.Class(),
		"items": items,
	}
}

func itemValue(item tree.Item) any {
	switch item.Kind() {
	case tree.KindObject:
		obj, _ := item.Value().(*tree.Object)
		if obj == nil {
			return nil
		}

		return treeDoc(obj)
	case tree.KindObjects:
		objs, _ := item.Value().([]*tree.Object)

		docs := make([]any, 0, len(objs))

		for _, obj := range objs {
			if obj == nil {
				docs = append(docs, nil)

				continue
			}

			docs = append(docs, treeDoc(obj))
		}

		return docs
	default:
		return item.Value()
	}
}
