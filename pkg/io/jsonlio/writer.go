package jsonlio

import (
	"encoding/json"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	iox "github.com/rentalytics/bnbscrub/pkg/io/ioutils"
)

// WriteAll writes a frame as JSON Lines, one object per row. Null cells
// are omitted from the object.
func WriteAll(path string, f *b.Frame) error {
	out, err := iox.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	enc := json.NewEncoder(out)
	for r := 0; r < f.Rows(); r++ {
		rec := make(map[string]any, len(f.Schema().Columns))
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case b.KindFloat:
				if v, ok := col.(*b.FloatColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case b.KindInt:
				if v, ok := col.(*b.IntColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case b.KindString:
				if v, ok := col.(*b.StringColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case b.KindTime:
				if v, ok := col.(*b.TimeColumn).Get(r); ok {
					rec[cs.Name] = v.Format("2006-01-02")
				}
			}
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
