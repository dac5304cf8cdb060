// Package report renders the descriptive chart panel for a listings
// frame. It is a pure consumer: it never modifies the frame and reports
// only encoding or filesystem errors.
package report

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	"github.com/rentalytics/bnbscrub/pkg/listing"
)

const (
	priceBins = 50
	topNeigh  = 10

	panelWidth  = 12 * vg.Inch
	panelHeight = 9 * vg.Inch
)

// Render writes a 2x2 PNG panel for the frame: price distribution with a
// density curve, room-type frequency, top neighbourhoods, and a
// geographic scatter coloured by price. title distinguishes the raw and
// cleaned variants.
func Render(f *b.Frame, title, path string) error {
	pricePlot, err := priceHistogram(f)
	if err != nil {
		return err
	}
	roomPlot, err := roomTypeBars(f)
	if err != nil {
		return err
	}
	neighPlot, err := neighbourhoodBars(f)
	if err != nil {
		return err
	}
	geoPlot, err := geoScatter(f)
	if err != nil {
		return err
	}
	pricePlot.Title.Text = title + ": Price Distribution"
	roomPlot.Title.Text = title + ": Room Type Frequency"
	neighPlot.Title.Text = fmt.Sprintf("%s: Top %d Neighbourhoods", title, topNeigh)
	geoPlot.Title.Text = title + ": Geographic Price Distribution"

	img := vgimg.New(panelWidth, panelHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{
		{pricePlot, roomPlot},
		{neighPlot, geoPlot},
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(out); err != nil {
		return err
	}
	return nil
}

func floatValues(f *b.Frame, column string) []float64 {
	col, ok := f.ColumnByName(column)
	if !ok {
		return nil
	}
	c, ok := col.(*b.FloatColumn)
	if !ok {
		return nil
	}
	vals := make([]float64, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

func priceHistogram(f *b.Frame) (*plot.Plot, error) {
	var vals plotter.Values
	for _, v := range floatValues(f, listing.ColPrice) {
		if v >= 0 && v <= listing.MaxPrice {
			vals = append(vals, v)
		}
	}
	p := plot.New()
	p.X.Label.Text = "price"
	p.Y.Label.Text = "listings"
	p.X.Min, p.X.Max = 0, listing.MaxPrice
	if len(vals) == 0 {
		return p, nil
	}
	h, err := plotter.NewHist(vals, priceBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	p.Add(h)
	if line := densityCurve(vals); line != nil {
		p.Add(line)
	}
	p.X.Min, p.X.Max = 0, listing.MaxPrice
	return p, nil
}

// densityCurve approximates a Gaussian kernel density estimate, scaled to
// the histogram's count axis.
func densityCurve(vals plotter.Values) *plotter.Line {
	n := len(vals)
	if n < 2 {
		return nil
	}
	sigma := stat.StdDev(vals, nil)
	if sigma == 0 {
		return nil
	}
	// Silverman's rule of thumb
	bw := 1.06 * sigma * math.Pow(float64(n), -0.2)
	binWidth := listing.MaxPrice / float64(priceBins)

	const samples = 200
	pts := make(plotter.XYs, samples)
	for i := 0; i < samples; i++ {
		x := listing.MaxPrice * float64(i) / float64(samples-1)
		var density float64
		for _, v := range vals {
			z := (x - v) / bw
			density += math.Exp(-0.5 * z * z)
		}
		density /= float64(n) * bw * math.Sqrt(2*math.Pi)
		pts[i].X = x
		pts[i].Y = density * float64(n) * binWidth
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil
	}
	line.Color = color.RGBA{R: 0xdd, G: 0x84, B: 0x52, A: 0xff}
	line.Width = vg.Points(1.5)
	return line
}

func roomTypeBars(f *b.Frame) (*plot.Plot, error) {
	counts := listing.ValueCounts(f, listing.ColRoomType)
	p := plot.New()
	p.Y.Label.Text = "listings"
	if len(counts) == 0 {
		return p, nil
	}
	vals := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, e := range counts {
		vals[i] = float64(e.Count)
		names[i] = e.Value
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 0x55, G: 0xa8, B: 0x68, A: 0xff}
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

func neighbourhoodBars(f *b.Frame) (*plot.Plot, error) {
	counts := listing.TopK(listing.ValueCounts(f, listing.ColNeighbourhood), topNeigh)
	p := plot.New()
	p.X.Label.Text = "listings"
	if len(counts) == 0 {
		return p, nil
	}
	// largest bar at the top
	vals := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, e := range counts {
		j := len(counts) - 1 - i
		vals[j] = float64(e.Count)
		names[j] = e.Value
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	p.Add(bars)
	p.NominalY(names...)
	return p, nil
}

func geoScatter(f *b.Frame) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "longitude"
	p.Y.Label.Text = "latitude"
	p.X.Min, p.X.Max = listing.MinLongitude, listing.MaxLongitude
	p.Y.Min, p.Y.Max = listing.MinLatitude, listing.MaxLatitude

	lonCol, okLon := f.ColumnByName(listing.ColLongitude)
	latCol, okLat := f.ColumnByName(listing.ColLatitude)
	priceCol, okPrice := f.ColumnByName(listing.ColPrice)
	if !okLon || !okLat || !okPrice {
		return p, nil
	}
	lon, okLon := lonCol.(*b.FloatColumn)
	lat, okLat := latCol.(*b.FloatColumn)
	price, okPrice := priceCol.(*b.FloatColumn)
	if !okLon || !okLat || !okPrice {
		return p, nil
	}

	pts := make(plotter.XYs, 0, lon.Len())
	prices := make([]float64, 0, lon.Len())
	maxPrice := 0.0
	for i := 0; i < lon.Len(); i++ {
		x, ok1 := lon.Get(i)
		y, ok2 := lat.Get(i)
		if !ok1 || !ok2 {
			continue
		}
		v, _ := price.Get(i)
		pts = append(pts, plotter.XY{X: x, Y: y})
		prices = append(prices, v)
		if v > maxPrice {
			maxPrice = v
		}
	}
	if len(pts) == 0 {
		return p, nil
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	if maxPrice <= 0 {
		maxPrice = 1
	}
	cm.SetMax(maxPrice)
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cm.At(prices[i])
		if err != nil {
			c = color.Gray{Y: 0x80}
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(1), Shape: draw.CircleGlyph{}}
	}
	p.Add(sc)
	// Add expands axis ranges to the data; pin the view to the NYC box so
	// raw-data outliers do not stretch the map.
	p.X.Min, p.X.Max = listing.MinLongitude, listing.MaxLongitude
	p.Y.Min, p.Y.Max = listing.MinLatitude, listing.MaxLatitude
	return p, nil
}
