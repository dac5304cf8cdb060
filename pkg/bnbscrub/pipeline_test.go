package bnbscrub_test

import (
	"context"
	"testing"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	"github.com/rentalytics/bnbscrub/pkg/transform/impute"
	"github.com/rentalytics/bnbscrub/pkg/transform/standardize"
)

func TestPipeline(t *testing.T) {
	s := b.Schema{Columns: []b.ColumnSchema{
		{Name: "x", Type: b.KindFloat, Nullable: true},
		{Name: "s", Type: b.KindString, Nullable: true},
	}}
	f := b.NewFrame(s)
	for i := 0; i < 2; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "x", 1.0)
	_ = f.SetCell(0, "s", " Foo ")
	// row 1 left nulls

	p := b.NewPipeline().
		Add(&impute.Constant{Column: "x", Value: 0.0}).
		Add(&standardize.Trim{Column: "s"})
	out, err := p.Run(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	colX, _ := out.ColumnByName("x")
	fx := colX.(*b.FloatColumn)
	if fx.IsNull(1) {
		t.Fatal("imputer failed to fill null")
	}
	colS, _ := out.ColumnByName("s")
	ss := colS.(*b.StringColumn)
	s0, _ := ss.Get(0)
	if s0 != "Foo" {
		t.Fatalf("trim failed, got %q", s0)
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	p := b.NewPipeline().Add(&failing{}).Add(&standardize.Trim{Column: "s"})
	if _, err := p.Run(context.Background(), b.NewFrame(b.Schema{})); err == nil {
		t.Fatal("expected pipeline to surface the step error")
	}
}

type failing struct{}

func (t *failing) Name() string { return "failing" }
func (t *failing) Apply(ctx context.Context, f *b.Frame) (*b.Frame, error) {
	return nil, context.DeadlineExceeded
}
