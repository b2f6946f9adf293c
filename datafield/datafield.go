// Package datafield models the two-dimensional sample grid of one
// measurement channel and converts it to and from its tree object form.
package datafield

import (
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/internal/options"
)

// ObjectClass is the tree class name of a serialized data field.
const ObjectClass = "GwyDataField"

// DataField is a rectangular sample grid with physical dimensions and
// units. Data is indexed [i][j] with len(Data) == XRes and
// len(Data[i]) == YRes; the tree form stores the same samples as one
// flat buffer with stride YRes.
type DataField struct {
	Data     [][]float64 // Sample grid.
	XRes     int         // Outer grid dimension.
	YRes     int         // Inner grid dimension.
	XReal    float64     // Physical extent along the first dimension.
	YReal    float64     // Physical extent along the second dimension.
	XOffset  float64     // Origin offset along the first dimension.
	YOffset  float64     // Origin offset along the second dimension.
	SIUnitXY string      // Lateral unit, e.g. "m".
	SIUnitZ  string      // Sample value unit.
}

type fieldOptions struct {
	xres     option.Generic[int]
	yres     option.Generic[int]
	xreal    float64
	yreal    float64
	xoff     float64
	yoff     float64
	siUnitXY string
	siUnitZ  string
}

// defaultFieldOptions is the single source of the metadata defaults,
// shared by construction and decoding.
func defaultFieldOptions() fieldOptions {
	return fieldOptions{
		xres:     option.None[int](),
		yres:     option.None[int](),
		xreal:    1.0,
		yreal:    1.0,
		xoff:     0.0,
		yoff:     0.0,
		siUnitXY: "",
		siUnitZ:  "",
	}
}

// WithResolution declares the expected grid shape. New fails with a
// ShapeError when the data does not match it.
func WithResolution(xres int, yres int) options.Option[fieldOptions] {
	return func(o *fieldOptions) {
		o.xres = option.Some(xres)
		o.yres = option.Some(yres)
	}
}

// WithXReal sets the physical extent along the first dimension.
func WithXReal(xreal float64) options.Option[fieldOptions] {
	return func(o *fieldOptions) {
		o.xreal = xreal
	}
}

// WithYReal sets the physical extent along the second dimension.
func WithYReal(yreal float64) options.Option[fieldOptions] {
	return func(o *fieldOptions) {
		o.yreal = yreal
	}
}

// WithXOffset sets the origin offset along the first dimension.
func WithXOffset(xoff float64) options.Option[fieldOptions] {
	return func(o *fieldOptions) {
		o.xoff = xoff
	}
}

// WithYOffset sets the origin offset along the second dimension.
func WithYOffset(yoff float64) options.Option[fieldOptions] {
	return func(o *fieldOptions) {
		o.yoff = yoff
	}
}

// WithSIUnitXY sets the lateral unit.
func WithSIUnitXY(unit string) options.Option[fieldOptions] {
	return func(o *fieldOptions) {
		o.siUnitXY = unit
	}
}

// WithSIUnitZ sets the sample value unit.
func WithSIUnitZ(unit string) options.Option[fieldOptions] {
	return func(o *fieldOptions) {
		o.siUnitZ = unit
	}
}

// New builds a data field over the given grid. The grid must be
// rectangular and non-empty, and match WithResolution when declared.
// Metadata left unset falls back to the defaults: unit extents, zero
// offsets, empty units.
func New(data [][]float64, opts ...options.Option[fieldOptions]) (*DataField, error) {
	applied := options.Apply(defaultFieldOptions, opts)

	rows := len(data)

	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}

	xres := applied.xres.UnwrapOr(rows)
	yres := applied.yres.UnwrapOr(cols)

	if rows == 0 || cols == 0 || xres != rows || yres != cols {
		return nil, errShape(xres, yres, rows, cols)
	}

	for _, row := range data[1:] {
		if len(row) != cols {
			return nil, errShape(xres, yres, rows, len(row))
		}
	}

	return &DataField{
		Data:     data,
		XRes:     xres,
		YRes:     yres,
		XReal:    applied.xreal,
		YReal:    applied.yreal,
		XOffset:  applied.xoff,
		YOffset:  applied.yoff,
		SIUnitXY: applied.siUnitXY,
		SIUnitZ:  applied.siUnitZ,
	}, nil
}
