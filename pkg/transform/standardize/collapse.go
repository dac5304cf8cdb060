package standardize

import (
	"context"
	"regexp"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// CollapseSpaces replaces runs of whitespace inside a string value with a
// single space, so "Hell's  Kitchen" and "Hell's Kitchen" compare equal.
type CollapseSpaces struct{ Column string }

func (t *CollapseSpaces) Name() string { return "collapse_spaces" }

func (t *CollapseSpaces) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	if c, ok := col.(*b.StringColumn); ok {
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			c.Set(i, spaceRuns.ReplaceAllString(v, " "))
		}
	}
	return f, nil
}
