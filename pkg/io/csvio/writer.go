package csvio

import (
	"encoding/csv"
	"strconv"
	"time"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	iox "github.com/rentalytics/bnbscrub/pkg/io/ioutils"
)

type WriterOptions struct {
	Delimiter  rune   // default ','
	TimeLayout string // default RFC 3339
}

// WriteAll writes a frame to a CSV file with a header row. Null cells are
// written as empty fields.
func WriteAll(path string, f *b.Frame, opt WriterOptions) error {
	out, err := iox.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	w := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}
	layout := opt.TimeLayout
	if layout == "" {
		layout = time.RFC3339
	}

	hdr := make([]string, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		hdr[i] = cs.Name
	}
	if err := w.Write(hdr); err != nil {
		return err
	}

	for r := 0; r < f.Rows(); r++ {
		row := make([]string, len(hdr))
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case b.KindFloat:
				if v, ok := col.(*b.FloatColumn).Get(r); ok {
					row[c] = strconv.FormatFloat(v, 'g', -1, 64)
				}
			case b.KindInt:
				if v, ok := col.(*b.IntColumn).Get(r); ok {
					row[c] = strconv.FormatInt(v, 10)
				}
			case b.KindString:
				if v, ok := col.(*b.StringColumn).Get(r); ok {
					row[c] = v
				}
			case b.KindTime:
				if v, ok := col.(*b.TimeColumn).Get(r); ok {
					row[c] = v.Format(layout)
				}
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
