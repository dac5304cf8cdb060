package listing

import (
	"fmt"
	"io"
	"sort"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// Issues summarizes the data-quality defects present in a raw listings
// frame, before any cleaning is applied.
type Issues struct {
	Rows          int
	PriceOutliers int // price > MaxPrice
	NightOutliers int // minimum_nights > MaxMinNights
	GeoOutliers   int // coordinates outside the NYC box
	Duplicates    int // rows identical to an earlier row
	Missing       map[string]int
}

// Audit counts the defects the cleaning pipeline will repair or drop.
func Audit(f *b.Frame) Issues {
	iss := Issues{Rows: f.Rows(), Missing: make(map[string]int)}

	for _, cs := range f.Schema().Columns {
		col, _ := f.ColumnByName(cs.Name)
		n := 0
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				n++
			}
		}
		if n > 0 {
			iss.Missing[cs.Name] = n
		}
	}

	if col, ok := f.ColumnByName(ColPrice); ok {
		if c, ok := col.(*b.FloatColumn); ok {
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok && v > MaxPrice {
					iss.PriceOutliers++
				}
			}
		}
	}
	if col, ok := f.ColumnByName(ColMinimumNights); ok {
		if c, ok := col.(*b.IntColumn); ok {
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok && v > MaxMinNights {
					iss.NightOutliers++
				}
			}
		}
	}

	latCol, okLat := f.ColumnByName(ColLatitude)
	lonCol, okLon := f.ColumnByName(ColLongitude)
	if okLat && okLon {
		lat, okLat := latCol.(*b.FloatColumn)
		lon, okLon := lonCol.(*b.FloatColumn)
		if okLat && okLon {
			for i := 0; i < lat.Len(); i++ {
				la, ok1 := lat.Get(i)
				lo, ok2 := lon.Get(i)
				if !ok1 || !ok2 {
					continue
				}
				if la < MinLatitude || la > MaxLatitude || lo < MinLongitude || lo > MaxLongitude {
					iss.GeoOutliers++
				}
			}
		}
	}

	seen := make(map[string]struct{}, f.Rows())
	for i := 0; i < f.Rows(); i++ {
		key := f.Fingerprint(i)
		if _, dup := seen[key]; dup {
			iss.Duplicates++
			continue
		}
		seen[key] = struct{}{}
	}
	return iss
}

// Report writes a plain-text summary of the issues.
func (iss Issues) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Data quality issues (%d rows)\n", iss.Rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "  price outliers (>%g): %d\n", MaxPrice, iss.PriceOutliers)
	fmt.Fprintf(w, "  minimum-nights outliers (>%d): %d\n", MaxMinNights, iss.NightOutliers)
	fmt.Fprintf(w, "  geographic outliers (outside NYC bounds): %d\n", iss.GeoOutliers)
	fmt.Fprintf(w, "  duplicate rows: %d\n", iss.Duplicates)
	if len(iss.Missing) > 0 {
		fmt.Fprintln(w, "  missing values:")
		names := make([]string, 0, len(iss.Missing))
		for name := range iss.Missing {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if iss.Missing[names[i]] != iss.Missing[names[j]] {
				return iss.Missing[names[i]] > iss.Missing[names[j]]
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			pct := 100 * float64(iss.Missing[name]) / float64(iss.Rows)
			fmt.Fprintf(w, "    %s: %d (%.2f%%)\n", name, iss.Missing[name], pct)
		}
	}
	return nil
}
