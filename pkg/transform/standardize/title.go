package standardize

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// Title applies English title casing to a string column, so that values
// like "entire home/apt" and "ENTIRE HOME/APT" normalize to the same
// canonical form.
type Title struct{ Column string }

func (t *Title) Name() string { return "title" }

func (t *Title) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	if c, ok := col.(*b.StringColumn); ok {
		caser := cases.Title(language.English)
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			c.Set(i, caser.String(v))
		}
	}
	return f, nil
}
