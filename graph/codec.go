package graph

import (
	"fmt"

	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/gwykey"
	"github.com/gwyddion/go-gwyfile/tree"
)

const (
	itemNData       = "ndata"
	itemXData       = "xdata"
	itemYData       = "ydata"
	itemDescription = "description"
	itemType        = "type"
	itemPointType   = "point_type"
	itemLineStyle   = "line_style"
	itemPointSize   = "point_size"
	itemLineSize    = "line_size"
	itemColorRed    = "color.red"
	itemColorGreen  = "color.green"
	itemColorBlue   = "color.blue"
)

const (
	itemNCurves             = "ncurves"
	itemCurves              = "curves"
	itemTitle               = "title"
	itemTopLabel            = "top_label"
	itemLeftLabel           = "left_label"
	itemRightLabel          = "right_label"
	itemBottomLabel         = "bottom_label"
	itemXUnit               = "x_unit"
	itemYUnit               = "y_unit"
	itemXMin                = "x_min"
	itemXMinSet             = "x_min_set"
	itemXMax                = "x_max"
	itemXMaxSet             = "x_max_set"
	itemYMin                = "y_min"
	itemYMinSet             = "y_min_set"
	itemYMax                = "y_max"
	itemYMaxSet             = "y_max_set"
	itemXLog                = "x_is_logarithmic"
	itemYLog                = "y_is_logarithmic"
	itemLabelVisible        = "label.visible"
	itemLabelHasFrame       = "label.has_frame"
	itemLabelReverse        = "label.reverse"
	itemLabelFrameThickness = "label.frame_thickness"
	itemLabelPosition       = "label.position"
	itemGridType            = "grid-type"
)

// DecodeCurve reads one curve from its tree object. The sample count and
// both sample buffers are mandatory and must agree; styling falls back
// to the defaults. Any store error fails the whole curve.
func DecodeCurve(o *tree.Object) (*Curve, error) {
	if o == nil {
		return nil, errItem(itemNData, ErrMissingItem)
	}

	ndata, err := requireInt32(o, itemNData)
	if err != nil {
		return nil, err
	}

	if ndata < 0 {
		return nil, errItem(itemNData, fmt.Errorf("negative sample count %d", ndata))
	}

	xdata, err := requireSeries(o, itemXData, int(ndata))
	if err != nil {
		return nil, err
	}

	ydata, err := requireSeries(o, itemYData, int(ndata))
	if err != nil {
		return nil, err
	}

	defaults := defaultCurveOptions()

	description, err := stringOr(o, itemDescription, defaults.description)
	if err != nil {
		return nil, err
	}

	curveType, err := int32Or(o, itemType, defaults.curveType)
	if err != nil {
		return nil, err
	}

	pointType, err := int32Or(o, itemPointType, defaults.pointType)
	if err != nil {
		return nil, err
	}

	lineStyle, err := int32Or(o, itemLineStyle, defaults.lineStyle)
	if err != nil {
		return nil, err
	}

	pointSize, err := int32Or(o, itemPointSize, defaults.pointSize)
	if err != nil {
		return nil, err
	}

	lineSize, err := int32Or(o, itemLineSize, defaults.lineSize)
	if err != nil {
		return nil, err
	}

	red, err := doubleOr(o, itemColorRed, defaults.colorRed)
	if err != nil {
		return nil, err
	}

	green, err := doubleOr(o, itemColorGreen, defaults.colorGreen)
	if err != nil {
		return nil, err
	}

	blue, err := doubleOr(o, itemColorBlue, defaults.colorBlue)
	if err != nil {
		return nil, err
	}

	return &Curve{
		XData:       xdata,
		YData:       ydata,
		Description: description,
		Type:        curveType,
		PointType:   pointType,
		LineStyle:   lineStyle,
		PointSize:   pointSize,
		LineSize:    lineSize,
		ColorRed:    red,
		ColorGreen:  green,
		ColorBlue:   blue,
	}, nil
}

// EncodeCurve writes the curve as a tree object with every item
// included, defaults and all.
func EncodeCurve(c *Curve) *tree.Object {
	o := tree.New(CurveClass)

	o.Add(tree.NewInt32(itemNData, int32(len(c.XData))))
	o.Add(tree.NewDoubles(itemXData, c.XData))
	o.Add(tree.NewDoubles(itemYData, c.YData))
	o.Add(tree.NewString(itemDescription, c.Description))
	o.Add(tree.NewInt32(itemType, c.Type))
	o.Add(tree.NewInt32(itemPointType, c.PointType))
	o.Add(tree.NewInt32(itemLineStyle, c.LineStyle))
	o.Add(tree.NewInt32(itemPointSize, c.PointSize))
	o.Add(tree.NewInt32(itemLineSize, c.LineSize))
	o.Add(tree.NewDouble(itemColorRed, c.ColorRed))
	o.Add(tree.NewDouble(itemColorGreen, c.ColorGreen))
	o.Add(tree.NewDouble(itemColorBlue, c.ColorBlue))

	return o
}

// DecodeModel reads the graph with the given id from a container tree:
// the graph object itself plus the sibling visibility flag. A curve that
// fails to decode fails the whole graph.
func DecodeModel(root *tree.Object, id int) (*Model, error) {
	o, err := root.Object(gwykey.Graph(id))
	if err != nil {
		return nil, errModel(id, err)
	}

	if o == nil {
		return nil, errModel(id, tree.ErrNotFound)
	}

	m, err := decodeModel(o)
	if err != nil {
		return nil, errModel(id, err)
	}

	visible, err := root.Bool(gwykey.GraphVisible(id))
	if err != nil {
		return nil, errModel(id, err)
	}

	m.Visible = visible

	return m, nil
}

func decodeModel(o *tree.Object) (*Model, error) {
	ncurves, err := requireInt32(o, itemNCurves)
	if err != nil {
		return nil, err
	}

	if ncurves < 0 {
		return nil, errItem(itemNCurves, fmt.Errorf("negative curve count %d", ncurves))
	}

	var curves []*Curve

	if ncurves > 0 {
		curveObjs, err := requireObjects(o, itemCurves)
		if err != nil {
			return nil, err
		}

		if len(curveObjs) < int(ncurves) {
			return nil, errItem(itemCurves, errCount(int(ncurves), len(curveObjs)))
		}

		curves = make([]*Curve, 0, ncurves)

		for i, curveObj := range curveObjs[:ncurves] {
			c, err := DecodeCurve(curveObj)
			if err != nil {
				return nil, errCurve(i, err)
			}

			curves = append(curves, c)
		}
	}

	defaults := defaultModelOptions()

	m := &Model{Curves: curves}

	stringItems := []struct {
		item string
		def  string
		dst  *string
	}{
		{itemTitle, defaults.title, &m.Title},
		{itemTopLabel, defaults.topLabel, &m.TopLabel},
		{itemLeftLabel, defaults.leftLabel, &m.LeftLabel},
		{itemRightLabel, defaults.rightLabel, &m.RightLabel},
		{itemBottomLabel, defaults.bottomLabel, &m.BottomLabel},
		{itemXUnit, defaults.xUnit, &m.XUnit},
		{itemYUnit, defaults.yUnit, &m.YUnit},
	}

	for _, s := range stringItems {
		if *s.dst, err = stringOr(o, s.item, s.def); err != nil {
			return nil, err
		}
	}

	boundItems := []struct {
		setItem   string
		valueItem string
		dst       *option.Generic[float64]
	}{
		{itemXMinSet, itemXMin, &m.XMin},
		{itemXMaxSet, itemXMax, &m.XMax},
		{itemYMinSet, itemYMin, &m.YMin},
		{itemYMaxSet, itemYMax, &m.YMax},
	}

	for _, b := range boundItems {
		if *b.dst, err = axisBound(o, b.setItem, b.valueItem); err != nil {
			return nil, err
		}
	}

	boolItems := []struct {
		item string
		def  bool
		dst  *bool
	}{
		{itemXLog, defaults.xLog, &m.XLog},
		{itemYLog, defaults.yLog, &m.YLog},
		{itemLabelVisible, defaults.labelVisible, &m.LabelVisible},
		{itemLabelHasFrame, defaults.labelHasFrame, &m.LabelHasFrame},
		{itemLabelReverse, defaults.labelReverse, &m.LabelReverse},
	}

	for _, b := range boolItems {
		if *b.dst, err = boolOr(o, b.item, b.def); err != nil {
			return nil, err
		}
	}

	intItems := []struct {
		item string
		def  int32
		dst  *int32
	}{
		{itemLabelFrameThickness, defaults.labelFrameThickness, &m.LabelFrameThickness},
		{itemLabelPosition, defaults.labelPosition, &m.LabelPosition},
		{itemGridType, defaults.gridType, &m.GridType},
	}

	for _, i := range intItems {
		if *i.dst, err = int32Or(o, i.item, i.def); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// EncodeModel writes the graph as a tree object with every metadata item
// included. An unset axis bound encodes as set-flag false with a zero
// value. The sibling visibility flag lives at container level and is not
// written here.
func EncodeModel(m *Model) *tree.Object {
	o := tree.New(ModelClass)

	curveObjs := make([]*tree.Object, 0, len(m.Curves))
	for _, c := range m.Curves {
		curveObjs = append(curveObjs, EncodeCurve(c))
	}

	o.Add(tree.NewInt32(itemNCurves, int32(len(m.Curves))))
	o.Add(tree.NewObjects(itemCurves, curveObjs))
	o.Add(tree.NewString(itemTitle, m.Title))
	o.Add(tree.NewString(itemTopLabel, m.TopLabel))
	o.Add(tree.NewString(itemLeftLabel, m.LeftLabel))
	o.Add(tree.NewString(itemRightLabel, m.RightLabel))
	o.Add(tree.NewString(itemBottomLabel, m.BottomLabel))
	o.Add(tree.NewString(itemXUnit, m.XUnit))
	o.Add(tree.NewString(itemYUnit, m.YUnit))

	encodeBound(o, itemXMinSet, itemXMin, m.XMin)
	encodeBound(o, itemXMaxSet, itemXMax, m.XMax)
	encodeBound(o, itemYMinSet, itemYMin, m.YMin)
	encodeBound(o, itemYMaxSet, itemYMax, m.YMax)

	o.Add(tree.NewBool(itemXLog, m.XLog))
	o.Add(tree.NewBool(itemYLog, m.YLog))
	o.Add(tree.NewBool(itemLabelVisible, m.LabelVisible))
	o.Add(tree.NewBool(itemLabelHasFrame, m.LabelHasFrame))
	o.Add(tree.NewBool(itemLabelReverse, m.LabelReverse))
	o.Add(tree.NewInt32(itemLabelFrameThickness, m.LabelFrameThickness))
	o.Add(tree.NewInt32(itemLabelPosition, m.LabelPosition))
	o.Add(tree.NewInt32(itemGridType, m.GridType))

	return o
}

func encodeBound(o *tree.Object, setItem string, valueItem string, bound option.Generic[float64]) {
	o.Add(tree.NewBool(setItem, bound.IsSome()))
	o.Add(tree.NewDouble(valueItem, bound.UnwrapOr(0)))
}

// axisBound pairs a set flag with its value item: the bound is present
// only when the flag is true, and an absent value then reads as zero.
func axisBound(o *tree.Object, setItem string, valueItem string) (option.Generic[float64], error) {
	set, err := boolOr(o, setItem, false)
	if err != nil {
		return option.None[float64](), err
	}

	if !set {
		return option.None[float64](), nil
	}

	value, err := doubleOr(o, valueItem, 0)
	if err != nil {
		return option.None[float64](), err
	}

	return option.Some(value), nil
}

func requireInt32(o *tree.Object, item string) (int32, error) {
	value, err := o.Int32(item)
	if err != nil {
		return 0, errItem(item, err)
	}

	if !value.IsSome() {
		return 0, errItem(item, ErrMissingItem)
	}

	return value.UnwrapOr(0), nil
}

func requireSeries(o *tree.Object, item string, want int) ([]float64, error) {
	value, err := o.Doubles(item)
	if err != nil {
		return nil, errItem(item, err)
	}

	if !value.IsSome() {
		return nil, errItem(item, ErrMissingItem)
	}

	buf := value.UnwrapOr(nil)
	if len(buf) != want {
		return nil, errItem(item, fmt.Errorf("buffer holds %d samples, want %d", len(buf), want))
	}

	return buf, nil
}

func requireObjects(o *tree.Object, item string) ([]*tree.Object, error) {
	value, err := o.Objects(item)
	if err != nil {
		return nil, errItem(item, err)
	}

	if !value.IsSome() {
		return nil, errItem(item, ErrMissingItem)
	}

	return value.UnwrapOr(nil), nil
}

func int32Or(o *tree.Object, item string, def int32) (int32, error) {
	value, err := o.Int32(item)
	if err != nil {
		return 0, errItem(item, err)
	}

	return value.UnwrapOr(def), nil
}

func doubleOr(o *tree.Object, item string, def float64) (float64, error) {
	value, err := o.Double(item)
	if err != nil {
		return 0, errItem(item, err)
	}

	return value.UnwrapOr(def), nil
}

func stringOr(o *tree.Object, item string, def string) (string, error) {
	value, err := o.String(item)
	if err != nil {
		return "", errItem(item, err)
	}

	return value.UnwrapOr(def), nil
}

func boolOr(o *tree.Object, item string, def bool) (bool, error) {
	value, err := o.Bool(item)
	if err != nil {
		return false, errItem(item, err)
	}

	return value.UnwrapOr(def), nil
}
