package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	"github.com/rentalytics/bnbscrub/pkg/listing"
)

const sample = `id,name,host_id,host_name,neighbourhood_group,neighbourhood,latitude,longitude,room_type,price,minimum_nights,number_of_reviews,last_review,reviews_per_month,calculated_host_listings_count,availability_365
2539,Clean & quiet apt,2787,John,Brooklyn,Kensington,40.64749,-73.97237,Private room,149,1,9,2018-10-19,0.21,6,365
2595,,2845,Jennifer,Manhattan,Midtown,40.75362,-73.98377,Entire home/apt,225,1,45,2019-05-21,0.38,2,355
3647,THE VILLAGE OF HARLEM,4632,Elisabeth,Manhattan,Harlem,40.80902,-73.94190,Private room,150,3,0,,,1,365
`

func TestReadFrom(t *testing.T) {
	f, err := ReadFrom(strings.NewReader(sample), listing.FullSchema(), ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", f.Rows())
	}
	if f.Cols() != 16 {
		t.Fatalf("expected 16 columns, got %d", f.Cols())
	}

	name, _ := f.ColumnByName(listing.ColName)
	if !name.IsNull(1) {
		t.Fatal("blank name must load as null")
	}
	rpm, _ := f.ColumnByName(listing.ColReviewsPerMonth)
	if !rpm.IsNull(2) {
		t.Fatal("blank reviews_per_month must load as null")
	}
	price, _ := f.ColumnByName(listing.ColPrice)
	if v, _ := price.(*b.FloatColumn).Get(1); v != 225 {
		t.Fatalf("price: got %v", v)
	}
	nights, _ := f.ColumnByName(listing.ColMinimumNights)
	if v, _ := nights.(*b.IntColumn).Get(2); v != 3 {
		t.Fatalf("minimum_nights: got %v", v)
	}
}

func TestReadFromOmitsAbsentSchemaColumns(t *testing.T) {
	csv := "name,price\nApt,50\n"
	f, err := ReadFrom(strings.NewReader(csv), listing.BaseSchema(), ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.ColumnByName(listing.ColLatitude); ok {
		t.Fatal("latitude is not in the file and must be absent from the frame")
	}
	if _, ok := f.ColumnByName(listing.ColName); !ok {
		t.Fatal("name should be present")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.csv"), listing.BaseSchema(), ReaderOptions{}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWriteAllDefaultTimeLayout(t *testing.T) {
	s := b.Schema{Columns: []b.ColumnSchema{{Name: "last_review", Type: b.KindTime, Nullable: true}}}
	f := b.NewFrame(s)
	f.AppendNullRow()
	stamp := time.Date(2019, 5, 21, 0, 0, 0, 0, time.UTC)
	_ = f.SetCell(0, "last_review", stamp)

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteAll(path, f, WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 || lines[1] != stamp.Format(time.RFC3339) {
		t.Fatalf("expected RFC 3339 date, got %q", lines[len(lines)-1])
	}
}

func TestWriteAllRoundTrip(t *testing.T) {
	f, err := ReadFrom(strings.NewReader(sample), listing.FullSchema(), ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteAll(path, f, WriterOptions{}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,name,host_id") {
		t.Fatalf("unexpected header: %s", lines[0])
	}

	back, err := Read(path, listing.FullSchema(), ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if back.Rows() != f.Rows() || back.Cols() != f.Cols() {
		t.Fatalf("round trip changed shape: %dx%d vs %dx%d",
			back.Rows(), back.Cols(), f.Rows(), f.Cols())
	}
	name, _ := back.ColumnByName(listing.ColName)
	if !name.IsNull(1) {
		t.Fatal("null cell must survive the round trip as null")
	}
}
