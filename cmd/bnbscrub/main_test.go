package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rentalytics/bnbscrub/pkg/transform/validate"
)

func TestRunSchemaErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(input, []byte("name,price\nApt,50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.Input.Path = input
	cfg.Output.Dir = filepath.Join(dir, "out")
	cfg.Reports.Dir = filepath.Join(dir, "reports")

	err := run(context.Background(), cfg)
	if !errors.Is(err, validate.ErrMissingColumn) {
		t.Fatalf("expected schema error, got %v", err)
	}
	for _, d := range []string{cfg.Output.Dir, cfg.Reports.Dir} {
		entries, err := os.ReadDir(d)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Fatalf("failed run left artifacts in %s: %v", d, entries)
		}
	}
}
