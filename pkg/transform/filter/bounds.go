package filter

import (
	"context"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// Bounds drops rows whose value in Column falls outside [Min, Max]. Both
// bounds are inclusive; a nil bound is unbounded on that side. Rows with a
// null in the column fail the predicate and are dropped.
type Bounds struct {
	Column string
	Min    *float64
	Max    *float64
}

func (t *Bounds) Name() string { return "filter_bounds" }

func (t *Bounds) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	keep := make([]bool, f.Rows())
	switch c := col.(type) {
	case *b.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			v, ok := c.Get(i)
			keep[i] = ok && t.inRange(v)
		}
	case *b.IntColumn:
		for i := 0; i < c.Len(); i++ {
			v, ok := c.Get(i)
			keep[i] = ok && t.inRange(float64(v))
		}
	default:
		return f, nil
	}
	return f.Select(keep), nil
}

func (t *Bounds) inRange(v float64) bool {
	if t.Min != nil && v < *t.Min {
		return false
	}
	if t.Max != nil && v > *t.Max {
		return false
	}
	return true
}

// Bound builds a bound pointer inline.
func Bound(v float64) *float64 { return &v }
