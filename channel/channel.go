// Package channel assembles one measurement channel from the container
// tree and decomposes it back: the title, the measured grid, optional
// mask and presentation grids, display settings, and the geometric
// selections drawn over the data.
package channel

import (
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/datafield"
	"github.com/gwyddion/go-gwyfile/internal/options"
	"github.com/gwyddion/go-gwyfile/selection"
)

// Channel is one named measurement. Title and Data are always present;
// everything else is optional and stays out of the tree form when unset.
type Channel struct {
	// Title names the channel, e.g. "Height" or "Phase".
	Title string

	// Data holds the measured grid. Never nil on a decoded or
	// constructed channel.
	Data *datafield.DataField

	// Mask and Show are auxiliary grids overlaying Data. Nil when the
	// channel carries none.
	Mask *datafield.DataField
	Show *datafield.DataField

	// Display settings.
	Visible   option.Generic[bool]
	Palette   option.Generic[string]
	RangeType option.Generic[int32]
	RangeMin  option.Generic[float64]
	RangeMax  option.Generic[float64]

	// Mask color components, each independent of the others and of the
	// mask grid itself.
	MaskRed   option.Generic[float64]
	MaskGreen option.Generic[float64]
	MaskBlue  option.Generic[float64]
	MaskAlpha option.Generic[float64]

	// Selection slots, one per kind. A nil slot means the channel has
	// no selection of that kind.
	Point     *selection.Selection
	Pointer   *selection.Selection
	Line      *selection.Selection
	Rectangle *selection.Selection
	Ellipse   *selection.Selection
}

type channelOptions struct {
	mask *datafield.DataField
	show *datafield.DataField

	visible   option.Generic[bool]
	palette   option.Generic[string]
	rangeType option.Generic[int32]
	rangeMin  option.Generic[float64]
	rangeMax  option.Generic[float64]

	maskRed   option.Generic[float64]
	maskGreen option.Generic[float64]
	maskBlue  option.Generic[float64]
	maskAlpha option.Generic[float64]

	selections []*selection.Selection
}

func defaultChannelOptions() channelOptions {
	return channelOptions{
		visible:   option.None[bool](),
		palette:   option.None[string](),
		rangeType: option.None[int32](),
		rangeMin:  option.None[float64](),
		rangeMax:  option.None[float64](),
		maskRed:   option.None[float64](),
		maskGreen: option.None[float64](),
		maskBlue:  option.None[float64](),
		maskAlpha: option.None[float64](),
	}
}

// WithMask attaches a mask grid.
func WithMask(mask *datafield.DataField) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.mask = mask
	}
}

// WithShow attaches a presentation grid.
func WithShow(show *datafield.DataField) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.show = show
	}
}

// WithVisible sets the visibility flag.
func WithVisible(visible bool) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.visible = option.Some(visible)
	}
}

// WithPalette sets the false color gradient name.
func WithPalette(palette string) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.palette = option.Some(palette)
	}
}

// WithRangeType sets the color range mapping type.
func WithRangeType(rangeType int32) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.rangeType = option.Some(rangeType)
	}
}

// WithRangeMin pins the lower display range bound.
func WithRangeMin(value float64) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.rangeMin = option.Some(value)
	}
}

// WithRangeMax pins the upper display range bound.
func WithRangeMax(value float64) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.rangeMax = option.Some(value)
	}
}

// WithMaskColor sets all four mask color components at once.
func WithMaskColor(red, green, blue, alpha float64) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.maskRed = option.Some(red)
		o.maskGreen = option.Some(green)
		o.maskBlue = option.Some(blue)
		o.maskAlpha = option.Some(alpha)
	}
}

// WithMaskRed sets the red mask color component.
func WithMaskRed(value float64) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.maskRed = option.Some(value)
	}
}

// WithMaskGreen sets the green mask color component.
func WithMaskGreen(value float64) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.maskGreen = option.Some(value)
	}
}

// WithMaskBlue sets the blue mask color component.
func WithMaskBlue(value float64) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.maskBlue = option.Some(value)
	}
}

// WithMaskAlpha sets the alpha mask color component.
func WithMaskAlpha(value float64) options.Option[channelOptions] {
	return func(o *channelOptions) {
		o.maskAlpha = option.Some(value)
	}
}

// WithSelection attaches a selection to the slot of its own kind. A
// later selection of the same kind replaces the earlier one; a nil
// selection is ignored.
func WithSelection(s *selection.Selection) options.Option[channelOptions] {
	return func(o *channelOptions) {
		if s == nil {
			return
		}

		o.selections = append(o.selections, s)
	}
}

// New builds a channel over the given title and data grid. The title
// must be non-empty and the data grid non-nil; everything else comes in
// through options.
func New(title string, data *datafield.DataField, opts ...options.Option[channelOptions]) (*Channel, error) {
	if title == "" {
		return nil, ErrNoTitle
	}

	if data == nil {
		return nil, ErrNoData
	}

	applied := options.Apply(defaultChannelOptions, opts)

	ch := &Channel{
		Title:     title,
		Data:      data,
		Mask:      applied.mask,
		Show:      applied.show,
		Visible:   applied.visible,
		Palette:   applied.palette,
		RangeType: applied.rangeType,
		RangeMin:  applied.rangeMin,
		RangeMax:  applied.rangeMax,
		MaskRed:   applied.maskRed,
		MaskGreen: applied.maskGreen,
		MaskBlue:  applied.maskBlue,
		MaskAlpha: applied.maskAlpha,
	}

	for _, s := range applied.selections {
		ch.setSelection(s.Kind(), s)
	}

	return ch, nil
}

// Selection returns the selection of the given kind, nil when the
// channel holds none.
func (c *Channel) Selection(kind selection.Kind) *selection.Selection {
	switch kind {
	case selection.KindPoint:
		return c.Point
	case selection.KindPointer:
		return c.Pointer
	case selection.KindLine:
		return c.Line
	case selection.KindRectangle:
		return c.Rectangle
	case selection.KindEllipse:
		return c.Ellipse
	default:
		return nil
	}
}

func (c *Channel) setSelection(kind selection.Kind, s *selection.Selection) {
	switch kind {
	case selection.KindPoint:
		c.Point = s
	case selection.KindPointer:
		c.Pointer = s
	case selection.KindLine:
		c.Line = s
	case selection.KindRectangle:
		c.Rectangle = s
	case selection.KindEllipse:
		c.Ellipse = s
	}
}
