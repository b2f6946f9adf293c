package channel

import (
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/datafield"
	"github.com/gwyddion/go-gwyfile/gwykey"
	"github.com/gwyddion/go-gwyfile/selection"
	"github.com/gwyddion/go-gwyfile/tree"
)

// Decode reads the channel with the given id from the container tree.
// The title and data keys are mandatory; every other field is picked up
// only when its key is present. Any nested failure aborts the whole
// channel.
func Decode(root *tree.Object, id int) (*Channel, error) {
	titlePath := gwykey.ChannelTitle(id)

	title, err := root.String(titlePath)
	if err != nil {
		return nil, errItem(titlePath, err)
	}

	name, found := title.Get()
	if !found {
		return nil, errMissing(titlePath)
	}

	ch := &Channel{Title: name}

	dataPath := gwykey.ChannelData(id)

	if ch.Data, err = fieldAt(root, dataPath); err != nil {
		return nil, err
	}

	if ch.Data == nil {
		return nil, errMissing(dataPath)
	}

	if ch.Mask, err = fieldAt(root, gwykey.ChannelMask(id)); err != nil {
		return nil, err
	}

	if ch.Show, err = fieldAt(root, gwykey.ChannelShow(id)); err != nil {
		return nil, err
	}

	visiblePath := gwykey.ChannelVisible(id)
	if ch.Visible, err = root.Bool(visiblePath); err != nil {
		return nil, errItem(visiblePath, err)
	}

	palettePath := gwykey.ChannelPalette(id)
	if ch.Palette, err = root.String(palettePath); err != nil {
		return nil, errItem(palettePath, err)
	}

	rangeTypePath := gwykey.ChannelRangeType(id)
	if ch.RangeType, err = root.Int32(rangeTypePath); err != nil {
		return nil, errItem(rangeTypePath, err)
	}

	doubleItems := []struct {
		path string
		dst  *option.Generic[float64]
	}{
		{gwykey.ChannelRangeMin(id), &ch.RangeMin},
		{gwykey.ChannelRangeMax(id), &ch.RangeMax},
		{gwykey.ChannelMaskColor(id, gwykey.MaskRed), &ch.MaskRed},
		{gwykey.ChannelMaskColor(id, gwykey.MaskGreen), &ch.MaskGreen},
		{gwykey.ChannelMaskColor(id, gwykey.MaskBlue), &ch.MaskBlue},
		{gwykey.ChannelMaskColor(id, gwykey.MaskAlpha), &ch.MaskAlpha},
	}

	for _, d := range doubleItems {
		if *d.dst, err = root.Double(d.path); err != nil {
			return nil, errItem(d.path, err)
		}
	}

	for _, kind := range selection.Kinds() {
		path := gwykey.ChannelSelection(id, kind.PathWord())

		obj, err := root.Object(path)
		if err != nil {
			return nil, errItem(path, err)
		}

		sel, err := selection.Decode(obj, kind)
		if err != nil {
			return nil, errItem(path, err)
		}

		ch.setSelection(kind, sel)
	}

	return ch, nil
}

// Encode writes the channel under the given id into the container tree.
// The title and data are always written; optional fields and selections
// only when set, so omitted fields leave no key behind.
func Encode(root *tree.Object, id int, ch *Channel) error {
	if ch == nil || ch.Data == nil {
		return ErrNoData
	}

	if ch.Title == "" {
		return ErrNoTitle
	}

	items := []tree.Item{
		tree.NewObject(gwykey.ChannelData(id), datafield.Encode(ch.Data)),
		tree.NewString(gwykey.ChannelTitle(id), ch.Title),
	}

	if ch.Mask != nil {
		items = append(items, tree.NewObject(gwykey.ChannelMask(id), datafield.Encode(ch.Mask)))
	}

	if ch.Show != nil {
		items = append(items, tree.NewObject(gwykey.ChannelShow(id), datafield.Encode(ch.Show)))
	}

	if visible, found := ch.Visible.Get(); found {
		items = append(items, tree.NewBool(gwykey.ChannelVisible(id), visible))
	}

	if palette, found := ch.Palette.Get(); found {
		items = append(items, tree.NewString(gwykey.ChannelPalette(id), palette))
	}

	if rangeType, found := ch.RangeType.Get(); found {
		items = append(items, tree.NewInt32(gwykey.ChannelRangeType(id), rangeType))
	}

	doubleItems := []struct {
		path  string
		value option.Generic[float64]
	}{
		{gwykey.ChannelRangeMin(id), ch.RangeMin},
		{gwykey.ChannelRangeMax(id), ch.RangeMax},
		{gwykey.ChannelMaskColor(id, gwykey.MaskRed), ch.MaskRed},
		{gwykey.ChannelMaskColor(id, gwykey.MaskGreen), ch.MaskGreen},
		{gwykey.ChannelMaskColor(id, gwykey.MaskBlue), ch.MaskBlue},
		{gwykey.ChannelMaskColor(id, gwykey.MaskAlpha), ch.MaskAlpha},
	}

	for _, d := range doubleItems {
		if value, found := d.value.Get(); found {
			items = append(items, tree.NewDouble(d.path, value))
		}
	}

	for _, kind := range selection.Kinds() {
		sel := ch.Selection(kind)
		if sel == nil {
			continue
		}

		path := gwykey.ChannelSelection(id, kind.PathWord())
		items = append(items, tree.NewObject(path, selection.Encode(sel)))
	}

	for _, item := range items {
		if !root.Add(item) {
			return errItem(item.Path(), tree.ErrOccupied)
		}
	}

	return nil
}

// fieldAt decodes the data field object at path; absence yields nil.
func fieldAt(root *tree.Object, path string) (*datafield.DataField, error) {
	obj, err := root.Object(path)
	if err != nil {
		return nil, errItem(path, err)
	}

	if obj == nil {
		return nil, nil
	}

	field, err := datafield.Decode(obj)
	if err != nil {
		return nil, errItem(path, err)
	}

	return field, nil
}
