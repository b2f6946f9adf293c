// Package graph models graph data: curves of paired samples with draw
// styling, grouped into graph models carrying axis, label and legend
// metadata. The codec half converts both to and from their tree form.
package graph

import (
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/internal/options"
)

// ModelClass is the tree class name of a serialized graph model.
const ModelClass = "GwyGraphModel"

// Model is one graph: its curves plus presentation metadata. The axis
// bounds are each independently optional; an unset bound lets the
// renderer autoscale. Visible is the container-level visibility flag
// stored beside the graph object rather than inside it.
type Model struct {
	Curves []*Curve

	Title       string
	TopLabel    string
	LeftLabel   string
	RightLabel  string
	BottomLabel string
	XUnit       string
	YUnit       string

	XMin option.Generic[float64]
	XMax option.Generic[float64]
	YMin option.Generic[float64]
	YMax option.Generic[float64]

	XLog bool
	YLog bool

	LabelVisible        bool
	LabelHasFrame       bool
	LabelReverse        bool
	LabelFrameThickness int32
	LabelPosition       int32
	GridType            int32

	Visible option.Generic[bool]
}

type modelOptions struct {
	ncurves option.Generic[int]

	title       string
	topLabel    string
	leftLabel   string
	rightLabel  string
	bottomLabel string
	xUnit       string
	yUnit       string

	xMin option.Generic[float64]
	xMax option.Generic[float64]
	yMin option.Generic[float64]
	yMax option.Generic[float64]

	xLog bool
	yLog bool

	labelVisible        bool
	labelHasFrame       bool
	labelReverse        bool
	labelFrameThickness int32
	labelPosition       int32
	gridType            int32

	visible option.Generic[bool]
}

// defaultModelOptions is the single source of the model metadata
// defaults, shared by construction and decoding.
func defaultModelOptions() modelOptions {
	return modelOptions{
		ncurves:             option.None[int](),
		title:               "",
		topLabel:            "",
		leftLabel:           "",
		rightLabel:          "",
		bottomLabel:         "",
		xUnit:               "",
		yUnit:               "",
		xMin:                option.None[float64](),
		xMax:                option.None[float64](),
		yMin:                option.None[float64](),
		yMax:                option.None[float64](),
		xLog:                false,
		yLog:                false,
		labelVisible:        true,
		labelHasFrame:       true,
		labelReverse:        false,
		labelFrameThickness: 1,
		labelPosition:       0,
		gridType:            1,
		visible:             option.None[bool](),
	}
}

// WithNCurves declares the expected curve count. NewModel fails with a
// CountError when the curve list does not match it.
func WithNCurves(n int) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.ncurves = option.Some(n)
	}
}

// WithTitle sets the graph title.
func WithTitle(title string) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.title = title
	}
}

// WithXUnit sets the abscissa unit.
func WithXUnit(unit string) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.xUnit = unit
	}
}

// WithYUnit sets the ordinate unit.
func WithYUnit(unit string) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.yUnit = unit
	}
}

// WithXMin pins the lower abscissa bound.
func WithXMin(value float64) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.xMin = option.Some(value)
	}
}

// WithXMax pins the upper abscissa bound.
func WithXMax(value float64) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.xMax = option.Some(value)
	}
}

// WithYMin pins the lower ordinate bound.
func WithYMin(value float64) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.yMin = option.Some(value)
	}
}

// WithYMax pins the upper ordinate bound.
func WithYMax(value float64) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.yMax = option.Some(value)
	}
}

// WithXLog switches the abscissa to logarithmic scale.
func WithXLog(logarithmic bool) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.xLog = logarithmic
	}
}

// WithYLog switches the ordinate to logarithmic scale.
func WithYLog(logarithmic bool) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.yLog = logarithmic
	}
}

// WithVisible sets the container-level visibility flag.
func WithVisible(visible bool) options.Option[modelOptions] {
	return func(o *modelOptions) {
		o.visible = option.Some(visible)
	}
}

// NewModel builds a graph over the given curves. Metadata starts from
// the defaults and the remaining fields stay settable on the returned
// model; WithNCurves cross-checks the declared curve count.
func NewModel(curves []*Curve, opts ...options.Option[modelOptions]) (*Model, error) {
	applied := options.Apply(defaultModelOptions, opts)

	if applied.ncurves.IsSome() && applied.ncurves.UnwrapOr(0) != len(curves) {
		return nil, errCount(applied.ncurves.UnwrapOr(0), len(curves))
	}

	return &Model{
		Curves:              curves,
		Title:               applied.title,
		TopLabel:            applied.topLabel,
		LeftLabel:           applied.leftLabel,
		RightLabel:          applied.rightLabel,
		BottomLabel:         applied.bottomLabel,
		XUnit:               applied.xUnit,
		YUnit:               applied.yUnit,
		XMin:                applied.xMin,
		XMax:                applied.xMax,
		YMin:                applied.yMin,
		YMax:                applied.yMax,
		XLog:                applied.xLog,
		YLog:                applied.yLog,
		LabelVisible:        applied.labelVisible,
		LabelHasFrame:       applied.labelHasFrame,
		LabelReverse:        applied.labelReverse,
		LabelFrameThickness: applied.labelFrameThickness,
		LabelPosition:       applied.labelPosition,
		GridType:            applied.gridType,
		Visible:             applied.visible,
	}, nil
}
