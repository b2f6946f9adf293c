package datafield

import (
	"fmt"

	"github.com/gwyddion/go-gwyfile/tree"
)

const (
	itemXRes     = "xres"
	itemYRes     = "yres"
	itemXReal    = "xreal"
	itemYReal    = "yreal"
	itemXOff     = "xoff"
	itemYOff     = "yoff"
	itemSIUnitXY = "si_unit_xy"
	itemSIUnitZ  = "si_unit_z"
	itemData     = "data"
)

// Decode reads a data field from its tree object. Resolution and the
// sample buffer are mandatory; physical dimensions, offsets and units
// fall back to their defaults when absent. Any store error fails the
// whole field.
func Decode(o *tree.Object) (*DataField, error) {
	xres, err := requireInt32(o, itemXRes)
	if err != nil {
		return nil, err
	}

	yres, err := requireInt32(o, itemYRes)
	if err != nil {
		return nil, err
	}

	if xres <= 0 || yres <= 0 {
		return nil, errField(itemXRes, fmt.Errorf("non-positive resolution %dx%d", xres, yres))
	}

	buf, err := requireDoubles(o, itemData)
	if err != nil {
		return nil, err
	}

	want := int(xres) * int(yres)
	if len(buf) != want {
		return nil, errField(itemData, fmt.Errorf("buffer holds %d samples, want %d", len(buf), want))
	}

	defaults := defaultFieldOptions()

	xreal, err := doubleOr(o, itemXReal, defaults.xreal)
	if err != nil {
		return nil, err
	}

	yreal, err := doubleOr(o, itemYReal, defaults.yreal)
	if err != nil {
		return nil, err
	}

	xoff, err := doubleOr(o, itemXOff, defaults.xoff)
	if err != nil {
		return nil, err
	}

	yoff, err := doubleOr(o, itemYOff, defaults.yoff)
	if err != nil {
		return nil, err
	}

	unitXY, err := stringOr(o, itemSIUnitXY, defaults.siUnitXY)
	if err != nil {
		return nil, err
	}

	unitZ, err := stringOr(o, itemSIUnitZ, defaults.siUnitZ)
	if err != nil {
		return nil, err
	}

	data := make([][]float64, xres)
	for i := range data {
		data[i] = buf[i*int(yres) : (i+1)*int(yres)]
	}

	return &DataField{
		Data:     data,
		XRes:     int(xres),
		YRes:     int(yres),
		XReal:    xreal,
		YReal:    yreal,
		XOffset:  xoff,
		YOffset:  yoff,
		SIUnitXY: unitXY,
		SIUnitZ:  unitZ,
	}, nil
}

// Encode writes the data field as a tree object. Every item is written,
// defaults included; the grid shape is a construction invariant and is
// not re-checked here.
func Encode(df *DataField) *tree.Object {
	o := tree.New(ObjectClass)

	o.Add(tree.NewInt32(itemXRes, int32(df.XRes)))
	o.Add(tree.NewInt32(itemYRes, int32(df.YRes)))
	o.Add(tree.NewDouble(itemXReal, df.XReal))
	o.Add(tree.NewDouble(itemYReal, df.YReal))
	o.Add(tree.NewDouble(itemXOff, df.XOffset))
	o.Add(tree.NewDouble(itemYOff, df.YOffset))
	o.Add(tree.NewString(itemSIUnitXY, df.SIUnitXY))
	o.Add(tree.NewString(itemSIUnitZ, df.SIUnitZ))
	o.Add(tree.NewDoubles(itemData, flatten(df)))

	return o
}

func flatten(df *DataField) []float64 {
	buf := make([]float64, 0, df.XRes*df.YRes)
	for _, row := range df.Data {
		buf = append(buf, row...)
	}

	return buf
}

func requireInt32(o *tree.Object, item string) (int32, error) {
	value, err := o.Int32(item)
	if err != nil {
		return 0, errField(item, err)
	}

	if !value.IsSome() {
		return 0, errField(item, ErrMissingField)
	}

	return value.UnwrapOr(0), nil
}

func requireDoubles(o *tree.Object, item string) ([]float64, error) {
	value, err := o.Doubles(item)
	if err != nil {
		return nil, errField(item, err)
	}

	if !value.IsSome() {
		return nil, errField(item, ErrMissingField)
	}

	return value.UnwrapOr(nil), nil
}

func doubleOr(o *tree.Object, item string, def float64) (float64, error) {
	value, err := o.Double(item)
	if err != nil {
		return 0, errField(item, err)
	}

	return value.UnwrapOr(def), nil
}

func stringOr(o *tree.Object, item string, def string) (string, error) {
	value, err := o.String(item)
	if err != nil {
		return "", errField(item, err)
	}

	return value.UnwrapOr(def), nil
}
