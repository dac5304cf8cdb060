package impute

import (
	"context"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// Constant fills nulls in a column with a fixed value. It never looks at
// other rows; a date column is deliberately unsupported (dates are not
// fabricated).
type Constant struct {
	Column string
	// use any; coerced per column kind
	Value any
}

func (t *Constant) Name() string { return "impute_constant" }

func (t *Constant) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	switch c := col.(type) {
	case *b.FloatColumn:
		var vv float64
		switch v := t.Value.(type) {
		case int:
			vv = float64(v)
		case int64:
			vv = float64(v)
		case float64:
			vv = v
		}
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				c.Set(i, vv)
			}
		}
	case *b.IntColumn:
		var vv int64
		switch v := t.Value.(type) {
		case int:
			vv = int64(v)
		case int64:
			vv = v
		case float64:
			vv = int64(v)
		}
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				c.Set(i, vv)
			}
		}
	case *b.StringColumn:
		vv, _ := t.Value.(string)
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				c.Set(i, vv)
			}
		}
	}
	return f, nil
}
