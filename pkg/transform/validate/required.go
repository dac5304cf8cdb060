package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// ErrMissingColumn is wrapped by Required when the frame lacks a column.
var ErrMissingColumn = errors.New("missing required column")

// Required errors if any named column is absent from the frame. This is
// the one fatal data check: a pipeline cannot impute or filter a column
// it cannot locate.
type Required struct {
	Columns []string
}

func (t *Required) Name() string { return "validate_required" }

func (t *Required) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	var missing []string
	for _, name := range t.Columns {
		if _, ok := f.ColumnByName(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return f, nil
}
