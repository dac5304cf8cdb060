package standardize

import (
	"context"
	"strings"
	"time"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// ParseDate converts a string column into a time column. Values that fail
// every layout become null; they are never an error and never a default
// date. A column that is already a time column passes through unchanged.
type ParseDate struct {
	Column  string
	Layouts []string
}

func (t *ParseDate) Name() string { return "parse_date" }

func (t *ParseDate) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	sc, ok := col.(*b.StringColumn)
	if !ok {
		return f, nil
	}
	layouts := t.Layouts
	if len(layouts) == 0 {
		layouts = []string{"2006-01-02"}
	}
	tc := b.NewTimeColumn(t.Column, 0)
	for i := 0; i < sc.Len(); i++ {
		if sc.IsNull(i) {
			tc.AppendNull()
			continue
		}
		v, _ := sc.Get(i)
		v = strings.TrimSpace(v)
		parsed := false
		for _, layout := range layouts {
			if ts, err := time.Parse(layout, v); err == nil {
				tc.Append(ts)
				parsed = true
				break
			}
		}
		if !parsed {
			tc.AppendNull()
		}
	}
	if err := f.ReplaceColumn(t.Column, tc); err != nil {
		return nil, err
	}
	return f, nil
}
