package filter

import (
	"context"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// Distinct drops rows that are exact field-wise duplicates of an earlier
// row, keeping the first occurrence.
type Distinct struct{}

func (t *Distinct) Name() string { return "distinct" }

func (t *Distinct) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	seen := make(map[string]struct{}, f.Rows())
	keep := make([]bool, f.Rows())
	dropped := 0
	for i := 0; i < f.Rows(); i++ {
		key := f.Fingerprint(i)
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		keep[i] = true
	}
	if dropped == 0 {
		return f, nil
	}
	return f.Select(keep), nil
}
