package graph

import (
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/internal/options"
)

// CurveClass is the tree class name of a serialized curve.
const CurveClass = "GwyGraphCurveModel"

// Curve is one data series of a graph together with its draw styling.
// XData and YData are paired samples of equal length.
type Curve struct {
	XData       []float64 // Abscissa samples.
	YData       []float64 // Ordinate samples.
	Description string    // Legend entry.
	Type        int32     // Draw mode, 1 = points.
	PointType   int32     // Marker shape, 2 = circle.
	LineStyle   int32     // Dash pattern, 0 = solid.
	PointSize   int32     // Marker size.
	LineSize    int32     // Stroke width.
	ColorRed    float64   // Draw color, red component in [0, 1].
	ColorGreen  float64   // Draw color, green component in [0, 1].
	ColorBlue   float64   // Draw color, blue component in [0, 1].
}

type curveOptions struct {
	ndata       option.Generic[int]
	description string
	curveType   int32
	pointType   int32
	lineStyle   int32
	pointSize   int32
	lineSize    int32
	colorRed    float64
	colorGreen  float64
	colorBlue   float64
}

// defaultCurveOptions is the single source of the styling defaults,
// shared by construction and decoding.
func defaultCurveOptions() curveOptions {
	return curveOptions{
		ndata:       option.None[int](),
		description: "",
		curveType:   1, // points
		pointType:   2, // circle
		lineStyle:   0, // solid
		pointSize:   1,
		lineSize:    1,
		colorRed:    0,
		colorGreen:  0,
		colorBlue:   0,
	}
}

// WithNData declares the expected sample count. NewCurve fails with a
// CountError when the series length does not match it.
func WithNData(n int) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.ndata = option.Some(n)
	}
}

// WithDescription sets the legend entry.
func WithDescription(description string) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.description = description
	}
}

// WithType sets the draw mode.
func WithType(curveType int32) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.curveType = curveType
	}
}

// WithPointType sets the marker shape.
func WithPointType(pointType int32) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.pointType = pointType
	}
}

// WithLineStyle sets the dash pattern.
func WithLineStyle(lineStyle int32) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.lineStyle = lineStyle
	}
}

// WithPointSize sets the marker size.
func WithPointSize(pointSize int32) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.pointSize = pointSize
	}
}

// WithLineSize sets the stroke width.
func WithLineSize(lineSize int32) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.lineSize = lineSize
	}
}

// WithColor sets the draw color as RGB components in [0, 1].
func WithColor(red float64, green float64, blue float64) options.Option[curveOptions] {
	return func(o *curveOptions) {
		o.colorRed = red
		o.colorGreen = green
		o.colorBlue = blue
	}
}

// NewCurve builds a curve over paired samples. The series must be of
// equal length and match WithNData when declared; styling left unset
// falls back to the defaults.
func NewCurve(xdata []float64, ydata []float64, opts ...options.Option[curveOptions]) (*Curve, error) {
	applied := options.Apply(defaultCurveOptions, opts)

	if len(xdata) != len(ydata) {
		return nil, errCount(len(xdata), len(ydata))
	}

	if applied.ndata.IsSome() && applied.ndata.UnwrapOr(0) != len(xdata) {
		return nil, errCount(applied.ndata.UnwrapOr(0), len(xdata))
	}

	return &Curve{
		XData:       xdata,
		YData:       ydata,
		Description: applied.description,
		Type:        applied.curveType,
		PointType:   applied.pointType,
		LineStyle:   applied.lineStyle,
		PointSize:   applied.pointSize,
		LineSize:    applied.lineSize,
		ColorRed:    applied.colorRed,
		ColorGreen:  applied.colorGreen,
		ColorBlue:   applied.colorBlue,
	}, nil
}
