package jsonlio

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

func TestWriteAll(t *testing.T) {
	s := b.Schema{Columns: []b.ColumnSchema{
		{Name: "name", Type: b.KindString, Nullable: true},
		{Name: "price", Type: b.KindFloat, Nullable: true},
	}}
	f := b.NewFrame(s)
	f.AppendNullRow()
	_ = f.SetCell(0, "name", "Apt")
	_ = f.SetCell(0, "price", 50.0)
	f.AppendNullRow()
	_ = f.SetCell(1, "name", "Loft")
	// price left null

	path := filepath.Join(t.TempDir(), "out.jsonl")
	if err := WriteAll(path, f); err != nil {
		t.Fatal(err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	sc := bufio.NewScanner(fh)
	var recs []map[string]any
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatal(err)
		}
		recs = append(recs, rec)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0]["price"] != 50.0 {
		t.Fatalf("price: %v", recs[0]["price"])
	}
	if _, present := recs[1]["price"]; present {
		t.Fatal("null cell must be omitted")
	}
}
