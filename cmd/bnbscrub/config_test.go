package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFormats(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"run.json", `{"input":{"path":"data.csv"},"output":{"dir":"out","parquet":true}}`},
		{"run.toml", "[input]\npath = \"data.csv\"\n[output]\ndir = \"out\"\nparquet = true\n"},
		{"run.yaml", "input:\n  path: data.csv\noutput:\n  dir: out\n  parquet: true\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadConfig(writeTemp(t, tc.name, tc.content))
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Input.Path != "data.csv" {
				t.Fatalf("input path: %q", cfg.Input.Path)
			}
			if cfg.Output.Dir != "out" || !cfg.Output.Parquet {
				t.Fatalf("output: %+v", cfg.Output)
			}
			// untouched fields keep their defaults
			if cfg.Reports.Dir != "reports" {
				t.Fatalf("reports dir default lost: %q", cfg.Reports.Dir)
			}
		})
	}
}

func TestLoadConfigUnknownExtension(t *testing.T) {
	if _, err := loadConfig(writeTemp(t, "run.ini", "x=1")); err == nil {
		t.Fatal("expected an error for unsupported format")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for missing file")
	}
}
