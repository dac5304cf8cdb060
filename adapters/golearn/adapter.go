// Package golearn converts between bnbscrub frames and
// github.com/sjwhitworth/golearn/base DenseInstances, so a cleaned
// listings dataset can feed downstream modelling without re-parsing.
package golearn

import (
	"github.com/sjwhitworth/golearn/base"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// ToDenseInstances converts a frame into golearn DenseInstances. Numeric
// columns become float attributes; string and time columns become
// categorical (dates as calendar-date strings).
func ToDenseInstances(f *b.Frame) (*base.DenseInstances, error) {
	attrs := make([]base.Attribute, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		switch cs.Type {
		case b.KindFloat, b.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case b.KindFloat:
				if v, ok := col.(*b.FloatColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				}
			case b.KindInt:
				if v, ok := col.(*b.IntColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(float64(v)))
				}
			case b.KindTime:
				if v, ok := col.(*b.TimeColumn).Get(r); ok {
					inst.Set(specs[c], r, attrs[c].GetSysValFromString(v.Format("2006-01-02")))
				}
			default:
				if v, ok := col.(*b.StringColumn).Get(r); ok {
					inst.Set(specs[c], r, attrs[c].GetSysValFromString(v))
				}
			}
		}
	}
	// golearn expects a class attribute; use the last column
	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// FromDenseInstances converts golearn DenseInstances into a frame. Float
// attributes map to float columns; everything else maps to strings.
func FromDenseInstances(inst *base.DenseInstances) (*b.Frame, error) {
	attrs := inst.AllAttributes()
	schema := b.Schema{Columns: make([]b.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := b.KindString
		if a.GetType() == base.Float64Type {
			k = b.KindFloat
		}
		schema.Columns[i] = b.ColumnSchema{Name: a.GetName(), Type: k, Nullable: true}
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	f := b.NewFrame(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
		for c, cs := range schema.Columns {
			switch cs.Type {
			case b.KindFloat:
				v := base.UnpackBytesToFloat(inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			default:
				v := specs[c].GetAttribute().GetStringFromSysVal(inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			}
		}
	}
	return f, nil
}
