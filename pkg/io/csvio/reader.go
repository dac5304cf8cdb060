package csvio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	iox "github.com/rentalytics/bnbscrub/pkg/io/ioutils"
)

type ReaderOptions struct {
	Delimiter rune // default ','
}

// Read loads a CSV file against a declared schema. Columns are located by
// header name: file columns not in the schema are ignored, and schema
// columns absent from the header are omitted from the resulting frame so
// the caller can surface a schema error. Blank cells and cells that fail
// numeric parsing become nulls; field defects never abort the load.
func Read(path string, schema b.Schema, opt ReaderOptions) (*b.Frame, error) {
	rc, err := iox.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadFrom(rc, schema, opt)
}

// ReadFrom is Read for an arbitrary reader (stdin, pipe, test buffer).
func ReadFrom(r io.Reader, schema b.Schema, opt ReaderOptions) (*b.Frame, error) {
	cr := csv.NewReader(r)
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(header))
	for i := range header {
		names[i] = strings.ToValidUTF8(strings.TrimSpace(header[i]), "?")
	}
	if len(names) > 0 {
		names[0] = strings.TrimPrefix(names[0], "\ufeff")
	}

	// keep only the schema columns present in the file, in schema order
	present := b.Schema{}
	fieldFor := map[string]int{}
	for i, n := range names {
		if _, dup := fieldFor[n]; !dup {
			fieldFor[n] = i
		}
	}
	colField := []int{}
	for _, cs := range schema.Columns {
		if i, ok := fieldFor[cs.Name]; ok {
			present.Columns = append(present.Columns, cs)
			colField = append(colField, i)
		}
	}

	f := b.NewFrame(present)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		f.AppendNullRow()
		row := f.Rows() - 1
		for ci, cs := range present.Columns {
			fi := colField[ci]
			if fi >= len(rec) {
				continue
			}
			val := strings.ToValidUTF8(strings.TrimSpace(rec[fi]), "?")
			if val == "" {
				continue
			}
			switch cs.Type {
			case b.KindFloat:
				if x, err := strconv.ParseFloat(val, 64); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				}
			case b.KindInt:
				if x, err := strconv.ParseInt(val, 10, 64); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				} else if x, err := strconv.ParseFloat(val, 64); err == nil {
					_ = f.SetCell(row, cs.Name, int64(x))
				}
			case b.KindTime:
				for _, layout := range []string{"2006-01-02", time.RFC3339} {
					if x, err := time.Parse(layout, val); err == nil {
						_ = f.SetCell(row, cs.Name, x)
						break
					}
				}
			default:
				_ = f.SetCell(row, cs.Name, val)
			}
		}
	}
	return f, nil
}
