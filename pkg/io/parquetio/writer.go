package parquetio

import (
	"encoding/json"
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

func parquetSchemaJSON(s b.Schema) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case b.KindFloat:
			tag += "DOUBLE"
		case b.KindInt:
			tag += "INT64"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	raw, _ := json.Marshal(sc)
	return string(raw)
}

// WriteAll writes a frame to a Parquet file. Dates are stored as UTF-8
// calendar dates.
func WriteAll(path string, f *b.Frame) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	writer, err := pw.NewJSONWriter(parquetSchemaJSON(f.Schema()), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}
	defer func() { _ = writer.WriteStop(); _ = fw.Close() }()
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
		line, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := writer.Write(string(line)); err != nil {
			return fmt.Errorf("parquet write row: %w", err)
		}
	}
	return nil
}
