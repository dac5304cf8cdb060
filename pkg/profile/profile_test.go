package profile

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

func TestCollect(t *testing.T) {
	s := b.Schema{Columns: []b.ColumnSchema{
		{Name: "price", Type: b.KindFloat, Nullable: true},
		{Name: "room_type", Type: b.KindString, Nullable: true},
	}}
	f := b.NewFrame(s)
	prices := []float64{10, 20, 30, 40}
	rooms := []string{"Private Room", "Private Room", "Shared Room", "Private Room"}
	for i := range prices {
		f.AppendNullRow()
		_ = f.SetCell(i, "price", prices[i])
		_ = f.SetCell(i, "room_type", rooms[i])
	}
	f.AppendNullRow() // all-null row

	p := Collect(f, 5)
	if p.Rows != 5 {
		t.Fatalf("rows: %d", p.Rows)
	}

	price := p.Columns[0]
	if price.Num == nil {
		t.Fatal("price should have numeric stats")
	}
	if price.Num.Count != 4 || price.Num.Nulls != 1 {
		t.Fatalf("price counts: %+v", price.Num)
	}
	if price.Num.Min != 10 || price.Num.Max != 40 {
		t.Fatalf("price extrema: %+v", price.Num)
	}
	if math.Abs(price.Num.Mean-25) > 1e-9 {
		t.Fatalf("price mean: %v", price.Num.Mean)
	}

	room := p.Columns[1]
	if room.Cat == nil {
		t.Fatal("room_type should have categorical stats")
	}
	if room.Cat.Top["Private Room"] != 3 {
		t.Fatalf("room freq: %+v", room.Cat.Top)
	}
}

func TestWriteJSON(t *testing.T) {
	s := b.Schema{Columns: []b.ColumnSchema{{Name: "price", Type: b.KindFloat, Nullable: true}}}
	f := b.NewFrame(s)
	f.AppendNullRow()
	_ = f.SetCell(0, "price", 99.0)

	var sb strings.Builder
	if err := Collect(f, 0).WriteJSON(&sb); err != nil {
		t.Fatal(err)
	}
	var back Profile
	if err := json.Unmarshal([]byte(sb.String()), &back); err != nil {
		t.Fatal(err)
	}
	if back.Rows != 1 || len(back.Columns) != 1 {
		t.Fatalf("unexpected profile: %+v", back)
	}
}

func TestWriteText(t *testing.T) {
	s := b.Schema{Columns: []b.ColumnSchema{{Name: "price", Type: b.KindFloat, Nullable: true}}}
	f := b.NewFrame(s)
	f.AppendNullRow()
	_ = f.SetCell(0, "price", 99.0)

	var sb strings.Builder
	if err := Collect(f, 0).WriteText(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "price") || !strings.Contains(out, "count=1") {
		t.Fatalf("unexpected report: %s", out)
	}
}
