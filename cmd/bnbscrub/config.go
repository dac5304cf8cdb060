package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Config drives one cleaning run. Every field has a default mirroring the
// standard AB-NYC layout, so an empty config is a valid run.
type Config struct {
	Input struct {
		Path      string `json:"path" toml:"path" yaml:"path"`
		Delimiter string `json:"delimiter" toml:"delimiter" yaml:"delimiter"`
	} `json:"input" toml:"input" yaml:"input"`
	Output struct {
		Dir     string `json:"dir" toml:"dir" yaml:"dir"`
		JSONL   bool   `json:"jsonl" toml:"jsonl" yaml:"jsonl"`
		Parquet bool   `json:"parquet" toml:"parquet" yaml:"parquet"`
	} `json:"output" toml:"output" yaml:"output"`
	Reports struct {
		Dir string `json:"dir" toml:"dir" yaml:"dir"`
	} `json:"reports" toml:"reports" yaml:"reports"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Input.Path = "AB_NYC_2019.csv"
	cfg.Output.Dir = "processed_data"
	cfg.Reports.Dir = "reports"
	return cfg
}

// loadConfig reads a config file, choosing the decoder by extension:
// .toml, .yaml/.yml, or .json.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(raw, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	case ".json", "":
		err = json.Unmarshal(raw, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
