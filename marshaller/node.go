package marshaller

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gwyddion/go-gwyfile/tree"
)

// node adapts one tree object to its wire form: the class name, then a
// map of path to (kind, value) with nested objects recursing.
type node struct {
	obj *tree.Object
}

func (n node) EncodeMsgpack(encoder *msgpack.Encoder) error {
	if n.obj == nil {
		return errEncoding("object", ErrTreeIsNil)
	}

	if err := encoder.EncodeString(n.obj.Class()); err != nil {
		return errEncoding("class", err)
	}

	items := n.obj.Items()

	if err := encoder.EncodeMapLen(len(items)); err != nil {
		return errEncoding("item count", err)
	}

	for _, item := range items {
		if err := encoder.EncodeString(item.Path()); err != nil {
			return errEncoding("item path", err)
		}

		if err := encoder.EncodeInt(int64(item.Kind())); err != nil {
			return errEncoding(fmt.Sprintf("item '%s' kind", item.Path()), err)
		}

		if err := encodeValue(encoder, item); err != nil {
			return errEncoding(fmt.Sprintf("item '%s'", item.Path()), err)
		}
	}

	return nil
}

func encodeValue(encoder *msgpack.Encoder, item tree.Item) error {
	switch item.Kind() {
	case tree.KindBool:
		value, _ := item.Value().(bool)

		return encoder.EncodeBool(value)
	case tree.KindInt32:
		value, _ := item.Value().(int32)

		return encoder.EncodeInt(int64(value))
	case tree.KindDouble:
		value, _ := item.Value().(float64)

		return encoder.EncodeFloat64(value)
	case tree.KindString:
		value, _ := item.Value().(string)

		return encoder.EncodeString(value)
	case tree.KindObject:
		value, _ := item.Value().(*tree.Object)

		return node{obj: value}.EncodeMsgpack(encoder)
	case tree.KindDoubles:
		value, _ := item.Value().([]float64)

		if err := encoder.EncodeArrayLen(len(value)); err != nil {
			return err
		}

		for _, sample := range value {
			if err := encoder.EncodeFloat64(sample); err != nil {
				return err
			}
		}

		return nil
	case tree.KindObjects:
		value, _ := item.Value().([]*tree.Object)

		if err := encoder.EncodeArrayLen(len(value)); err != nil {
			return err
		}

		for _, obj := range value {
			if err := (node{obj: obj}).EncodeMsgpack(encoder); err != nil {
				return err
			}
		}

		return nil
	default:
		return UnknownKindError{Kind: item.Kind()}
	}
}

func (n *node) DecodeMsgpack(decoder *msgpack.Decoder) error {
	class, err := decoder.DecodeString()
	if err != nil {
		return errDecoding("class", err)
	}

	count, err := decoder.DecodeMapLen()
	if err != nil {
		return errDecoding("item count", err)
	}

	obj := tree.New(class)

	for i := 0; i < count; i++ {
		path, err := decoder.DecodeString()
		if err != nil {
			return errDecoding("item path", err)
		}

		raw, err := decoder.DecodeInt()
		if err != nil {
			return errDecoding(fmt.Sprintf("item '%s' kind", path), err)
		}

		item, err := decodeValue(decoder, path, tree.Kind(raw))
		if err != nil {
			return errDecoding(fmt.Sprintf("item '%s'", path), err)
		}

		if !obj.Add(item) {
			return errDecoding(fmt.Sprintf("item '%s'", path), tree.ErrOccupied)
		}
	}

	n.obj = obj

	return nil
}

func decodeValue(decoder *msgpack.Decoder, path string, kind tree.Kind) (tree.Item, error) {
	switch kind {
	case tree.KindBool:
		value, err := decoder.DecodeBool()
		if err != nil {
			return tree.Item{}, err
		}

		return tree.NewBool(path, value), nil
	case tree.KindInt32:
		value, err := decoder.DecodeInt32()
		if err != nil {
			return tree.Item{}, err
		}

		return tree.NewInt32(path, value), nil
	case tree.KindDouble:
		value, err := decoder.DecodeFloat64()
		if err != nil {
			return tree.Item{}, err
		}

		return tree.NewDouble(path, value), nil
	case tree.KindString:
		value, err := decoder.DecodeString()
		if err != nil {
			return tree.Item{}, err
		}

		return tree.NewString(path, value), nil
	case tree.KindObject:
		var child node
		if err := child.DecodeMsgpack(decoder); err != nil {
			return tree.Item{}, err
		}

		return tree.NewObject(path, child.obj), nil
	case tree.KindDoubles:
		length, err := decoder.DecodeArrayLen()
		if err != nil {
			return tree.Item{}, err
		}

		// A nil buffer encodes as length zero and comes back nil.
		if length <= 0 {
			return tree.NewDoubles(path, nil), nil
		}

		values := make([]float64, 0, length)

		for i := 0; i < length; i++ {
			value, err := decoder.DecodeFloat64()
			if err != nil {
				return tree.Item{}, err
			}

			values = append(values, value)
		}

		return tree.NewDoubles(path, values), nil
	case tree.KindObjects:
		length, err := decoder.DecodeArrayLen()
		if err != nil {
			return tree.Item{}, err
		}

		if length <= 0 {
			return tree.NewObjects(path, nil), nil
		}

		objs := make([]*tree.Object, 0, length)

		for i := 0; i < length; i++ {
			var child node
			if err := child.DecodeMsgpack(decoder); err != nil {
				return tree.Item{}, err
			}

			objs = append(objs, child.obj)
		}

		return tree.NewObjects(path, objs), nil
	default:
		return tree.Item{}, UnknownKindError{Kind: kind}
	}
}
