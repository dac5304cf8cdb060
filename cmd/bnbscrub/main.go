package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
	"github.com/rentalytics/bnbscrub/pkg/io/csvio"
	"github.com/rentalytics/bnbscrub/pkg/io/jsonlio"
	"github.com/rentalytics/bnbscrub/pkg/io/parquetio"
	"github.com/rentalytics/bnbscrub/pkg/listing"
	"github.com/rentalytics/bnbscrub/pkg/profile"
	"github.com/rentalytics/bnbscrub/pkg/report"
	"github.com/rentalytics/bnbscrub/pkg/transform/validate"
)

var version = "0.1.0-dev"

const profileTopK = 10

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to run config (JSON, TOML, or YAML)")
	inputPath := flag.String("input", "", "Input CSV path (overrides config)")
	outDir := flag.String("outdir", "", "Directory for cleaned data (overrides config)")
	reportDir := flag.String("reportdir", "", "Directory for charts and quality reports (overrides config)")
	flag.Parse()

	if *showVersion {
		fmt.Println("bnbscrub", version)
		return
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fatal(err)
		}
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *reportDir != "" {
		cfg.Reports.Dir = *reportDir
	}

	if err := run(context.Background(), cfg); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "bnbscrub:", err)
	os.Exit(1)
}

func run(ctx context.Context, cfg Config) error {
	for _, dir := range []string{cfg.Output.Dir, cfg.Reports.Dir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	opts := csvio.ReaderOptions{}
	if cfg.Input.Delimiter != "" {
		opts.Delimiter = rune(cfg.Input.Delimiter[0])
	}
	raw, err := csvio.Read(cfg.Input.Path, listing.FullSchema(), opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Input.Path, err)
	}
	// a schema error must fail the run before any artifact hits disk
	if _, err := (&validate.Required{Columns: listing.RequiredColumns()}).Apply(ctx, raw); err != nil {
		return err
	}

	if err := writeQualityReport(raw, filepath.Join(cfg.Reports.Dir, "raw_quality_report.txt")); err != nil {
		return err
	}
	if err := report.Render(raw, "Before Cleaning", filepath.Join(cfg.Reports.Dir, "raw_data_visualization.png")); err != nil {
		return fmt.Errorf("render raw charts: %w", err)
	}

	res, err := listing.Clean(ctx, raw)
	if err != nil {
		return err
	}

	cleanedCSV := filepath.Join(cfg.Output.Dir, "cleaned_airbnb_data.csv")
	if err := csvio.WriteAll(cleanedCSV, res.Filtered, csvio.WriterOptions{TimeLayout: listing.ReviewDateLayout}); err != nil {
		return fmt.Errorf("write %s: %w", cleanedCSV, err)
	}
	if cfg.Output.JSONL {
		if err := jsonlio.WriteAll(filepath.Join(cfg.Output.Dir, "cleaned_airbnb_data.jsonl"), res.Filtered); err != nil {
			return err
		}
	}
	if cfg.Output.Parquet {
		if err := parquetio.WriteAll(filepath.Join(cfg.Output.Dir, "cleaned_airbnb_data.parquet"), res.Filtered); err != nil {
			return err
		}
	}

	if err := writeQualityReport(res.Filtered, filepath.Join(cfg.Reports.Dir, "cleaned_quality_report.txt")); err != nil {
		return err
	}
	if err := report.Render(res.Filtered, "After Cleaning", filepath.Join(cfg.Reports.Dir, "cleaned_data_visualization.png")); err != nil {
		return fmt.Errorf("render cleaned charts: %w", err)
	}

	fmt.Printf("original entries: %d\n", raw.Rows())
	fmt.Printf("cleaned entries:  %d\n", res.Filtered.Rows())
	fmt.Printf("rows removed:     %d\n", raw.Rows()-res.Filtered.Rows())
	fmt.Printf("cleaned data saved to %s\n", cleanedCSV)
	fmt.Printf("reports saved to %s\n", cfg.Reports.Dir)
	return nil
}

func writeQualityReport(f *b.Frame, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	if err := listing.Audit(f).Report(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return profile.Collect(f, profileTopK).WriteText(out)
}
