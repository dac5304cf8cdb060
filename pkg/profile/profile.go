// Package profile computes per-column summary statistics for a frame,
// used for the before/after data-quality reports.
package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

type NumStats struct {
	Count  int     `json:"count"`
	Nulls  int     `json:"nulls"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`
}

type CatStats struct {
	Count int            `json:"count"`
	Nulls int            `json:"nulls"`
	Top   map[string]int `json:"top,omitempty"`
}

type ColumnProfile struct {
	Name string    `json:"name"`
	Kind string    `json:"kind"`
	Num  *NumStats `json:"num,omitempty"`
	Cat  *CatStats `json:"cat,omitempty"`
}

type Profile struct {
	Rows    int             `json:"rows"`
	Columns []ColumnProfile `json:"columns"`
}

// Collect profiles every column of the frame. Numeric columns get order
// statistics; string and time columns get null counts and the topK most
// frequent values (topK <= 0 disables frequency tracking).
func Collect(f *b.Frame, topK int) Profile {
	p := Profile{Rows: f.Rows()}
	for _, cs := range f.Schema().Columns {
		col, _ := f.ColumnByName(cs.Name)
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type.String()}
		switch c := col.(type) {
		case *b.FloatColumn:
			vals := make([]float64, 0, c.Len())
			nulls := 0
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok {
					vals = append(vals, v)
				} else {
					nulls++
				}
			}
			cp.Num = numStats(vals, nulls)
		case *b.IntColumn:
			vals := make([]float64, 0, c.Len())
			nulls := 0
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok {
					vals = append(vals, float64(v))
				} else {
					nulls++
				}
			}
			cp.Num = numStats(vals, nulls)
		case *b.StringColumn:
			cat := &CatStats{}
			var freqs map[string]int
			if topK > 0 {
				freqs = make(map[string]int)
			}
			for i := 0; i < c.Len(); i++ {
				if v, ok := c.Get(i); ok {
					cat.Count++
					if freqs != nil {
						freqs[v]++
					}
				} else {
					cat.Nulls++
				}
			}
			cat.Top = topN(freqs, topK)
			cp.Cat = cat
		case *b.TimeColumn:
			cat := &CatStats{}
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					cat.Nulls++
				} else {
					cat.Count++
				}
			}
			cp.Cat = cat
		}
		p.Columns = append(p.Columns, cp)
	}
	return p
}

func numStats(vals []float64, nulls int) *NumStats {
	ns := &NumStats{Count: len(vals), Nulls: nulls}
	if len(vals) == 0 {
		return ns
	}
	sort.Float64s(vals)
	ns.Min = vals[0]
	ns.Max = vals[len(vals)-1]
	ns.Mean = stat.Mean(vals, nil)
	ns.StdDev = stat.StdDev(vals, nil)
	ns.Median = stat.Quantile(0.5, stat.Empirical, vals, nil)
	return ns
}

func topN(freqs map[string]int, n int) map[string]int {
	if len(freqs) == 0 || n <= 0 {
		return nil
	}
	type kv struct {
		k string
		v int
	}
	arr := make([]kv, 0, len(freqs))
	for k, v := range freqs {
		arr = append(arr, kv{k, v})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].v != arr[j].v {
			return arr[i].v > arr[j].v
		}
		return arr[i].k < arr[j].k
	})
	if n > len(arr) {
		n = len(arr)
	}
	out := make(map[string]int, n)
	for _, e := range arr[:n] {
		out[e.k] = e.v
	}
	return out
}

// WriteJSON renders the profile as indented JSON.
func (p Profile) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteText renders the profile as an indented plain-text report.
func (p Profile) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Profile summary (%d rows)\n", p.Rows); err != nil {
		return err
	}
	for _, cp := range p.Columns {
		switch {
		case cp.Num != nil:
			fmt.Fprintf(w, "- %s (%s): count=%d nulls=%d min=%.6g max=%.6g mean=%.6g stddev=%.6g median=%.6g\n",
				cp.Name, cp.Kind, cp.Num.Count, cp.Num.Nulls,
				cp.Num.Min, cp.Num.Max, cp.Num.Mean, cp.Num.StdDev, cp.Num.Median)
		case cp.Cat != nil:
			fmt.Fprintf(w, "- %s (%s): count=%d nulls=%d\n", cp.Name, cp.Kind, cp.Cat.Count, cp.Cat.Nulls)
			if len(cp.Cat.Top) > 0 {
				type kv struct {
					k string
					v int
				}
				arr := make([]kv, 0, len(cp.Cat.Top))
				for k, v := range cp.Cat.Top {
					arr = append(arr, kv{k, v})
				}
				sort.Slice(arr, func(i, j int) bool {
					if arr[i].v != arr[j].v {
						return arr[i].v > arr[j].v
					}
					return arr[i].k < arr[j].k
				})
				for _, e := range arr {
					fmt.Fprintf(w, "    %q: %d\n", e.k, e.v)
				}
			}
		}
	}
	return nil
}
