package listing

import (
	"sort"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// CountEntry is one value of a categorical column with its frequency.
type CountEntry struct {
	Value string
	Count int
}

// ValueCounts tallies the non-null values of a string column, most
// frequent first. Ties break alphabetically so the order is stable.
func ValueCounts(f *b.Frame, column string) []CountEntry {
	col, ok := f.ColumnByName(column)
	if !ok {
		return nil
	}
	sc, ok := col.(*b.StringColumn)
	if !ok {
		return nil
	}
	freqs := make(map[string]int)
	for i := 0; i < sc.Len(); i++ {
		if sc.IsNull(i) {
			continue
		}
		v, _ := sc.Get(i)
		freqs[v]++
	}
	out := make([]CountEntry, 0, len(freqs))
	for v, n := range freqs {
		out = append(out, CountEntry{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// TopK returns at most k leading entries.
func TopK(entries []CountEntry, k int) []CountEntry {
	if k < len(entries) {
		return entries[:k]
	}
	return entries
}
