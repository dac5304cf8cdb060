package bnbscrub

import (
	"testing"
	"time"
)

func twoColSchema() Schema {
	return Schema{Columns: []ColumnSchema{
		{Name: "x", Type: KindFloat, Nullable: true},
		{Name: "s", Type: KindString, Nullable: true},
	}}
}

func TestSelect(t *testing.T) {
	f := NewFrame(twoColSchema())
	for i := 0; i < 3; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "x", 1.0)
	_ = f.SetCell(1, "x", 2.0)
	_ = f.SetCell(2, "x", 3.0)
	_ = f.SetCell(1, "s", "keep")

	out := f.Select([]bool{false, true, true})
	if out.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", out.Rows())
	}
	col, _ := out.ColumnByName("x")
	if v, _ := col.(*FloatColumn).Get(0); v != 2.0 {
		t.Fatalf("expected first retained row to be 2.0, got %v", v)
	}
	sc, _ := out.ColumnByName("s")
	if sc.IsNull(1) != true {
		t.Fatal("null cell should survive selection as null")
	}
}

func TestFingerprintDistinguishesNullFromZero(t *testing.T) {
	f := NewFrame(twoColSchema())
	f.AppendNullRow()
	f.AppendNullRow()
	_ = f.SetCell(0, "x", 0.0)
	_ = f.SetCell(0, "s", "")
	// row 1 left all-null
	if f.Fingerprint(0) == f.Fingerprint(1) {
		t.Fatal("zero-valued row and null row must not collide")
	}

	f2 := NewFrame(twoColSchema())
	f2.AppendNullRow()
	_ = f2.SetCell(0, "x", 0.0)
	_ = f2.SetCell(0, "s", "")
	if f.Fingerprint(0) != f2.Fingerprint(0) {
		t.Fatal("identical rows must have identical fingerprints")
	}
}

func TestReplaceColumn(t *testing.T) {
	f := NewFrame(twoColSchema())
	f.AppendNullRow()
	f.AppendNullRow()

	tc := NewTimeColumn("s", 0)
	tc.Append(time.Date(2019, 6, 21, 0, 0, 0, 0, time.UTC))
	tc.AppendNull()
	if err := f.ReplaceColumn("s", tc); err != nil {
		t.Fatal(err)
	}
	if f.Schema().Columns[1].Type != KindTime {
		t.Fatal("schema kind not updated after column replacement")
	}
	col, _ := f.ColumnByName("s")
	if _, ok := col.(*TimeColumn); !ok {
		t.Fatal("column not replaced")
	}

	short := NewTimeColumn("s", 0)
	if err := f.ReplaceColumn("s", short); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
