package listing

import (
	"context"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	"github.com/rentalytics/bnbscrub/pkg/transform/filter"
	"github.com/rentalytics/bnbscrub/pkg/transform/impute"
	"github.com/rentalytics/bnbscrub/pkg/transform/standardize"
	"github.com/rentalytics/bnbscrub/pkg/transform/validate"
)

// Options control the cleaning thresholds. Zero-value fields fall back to
// the AB-NYC defaults via DefaultOptions.
type Options struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
	MaxPrice     float64
	MaxMinNights float64

	NameSentinel string
	HostSentinel string
	DateLayouts  []string
}

func DefaultOptions() Options {
	return Options{
		MinLatitude:  MinLatitude,
		MaxLatitude:  MaxLatitude,
		MinLongitude: MinLongitude,
		MaxLongitude: MaxLongitude,
		MaxPrice:     MaxPrice,
		MaxMinNights: MaxMinNights,
		NameSentinel: NoNameSentinel,
		HostSentinel: AnonymousSentinel,
		DateLayouts:  []string{ReviewDateLayout},
	}
}

// Result holds the two artifacts of a cleaning run. Normalized is the full
// dataset after duplicate removal, imputation, and text normalization;
// Filtered further drops rows outside the geographic, price, and booking
// validity constraints and is the dataset exported as "cleaned".
type Result struct {
	Normalized *b.Frame
	Filtered   *b.Frame
}

// Clean runs the fixed cleaning pipeline over a listings frame. It fails
// only when a required column is absent; field-level defects are repaired
// by substitution or row removal, never raised. Clean performs no I/O.
func Clean(ctx context.Context, f *b.Frame) (*Result, error) {
	return CleanWith(ctx, f, DefaultOptions())
}

func CleanWith(ctx context.Context, f *b.Frame, opts Options) (*Result, error) {
	normalize := b.NewPipeline().
		Add(&validate.Required{Columns: RequiredColumns()}).
		Add(&filter.Distinct{}).
		Add(&impute.Constant{Column: ColName, Value: opts.NameSentinel}).
		Add(&impute.Constant{Column: ColHostName, Value: opts.HostSentinel}).
		Add(&impute.Constant{Column: ColReviewsPerMonth, Value: 0.0}).
		Add(&standardize.ParseDate{Column: ColLastReview, Layouts: opts.DateLayouts})
	for _, col := range textColumns() {
		normalize.
			Add(&standardize.Trim{Column: col}).
			Add(&standardize.CollapseSpaces{Column: col}).
			Add(&standardize.Title{Column: col})
	}
	// Imputation and casing can collapse previously distinct rows into
	// field-wise duplicates (a null name next to a literal sentinel); a
	// second pass keeps the no-duplicates invariant on both outputs.
	normalize.Add(&filter.Distinct{})

	normalized, err := normalize.Run(ctx, f)
	if err != nil {
		return nil, err
	}

	// Filter stages are row-local and conjunctive; they see the
	// post-imputation rows and never mutate the normalized frame.
	filtered, err := b.NewPipeline().
		Add(&filter.Bounds{Column: ColLatitude, Min: filter.Bound(opts.MinLatitude), Max: filter.Bound(opts.MaxLatitude)}).
		Add(&filter.Bounds{Column: ColLongitude, Min: filter.Bound(opts.MinLongitude), Max: filter.Bound(opts.MaxLongitude)}).
		Add(&filter.Bounds{Column: ColPrice, Max: filter.Bound(opts.MaxPrice)}).
		Add(&filter.Bounds{Column: ColMinimumNights, Max: filter.Bound(opts.MaxMinNights)}).
		Run(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return &Result{Normalized: normalized, Filtered: filtered}, nil
}
