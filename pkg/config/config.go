// Package config loads dupefind's run configuration from a JSON file,
// falling back to the region package's documented defaults for any key
// left unset, with environment variables taking the final say.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dupefind/dupefind/pkg/region"
)

// envPrefix is stripped from an environment variable's name (after
// lower-casing the remainder) to produce the koanf key it overrides,
// e.g. DUPEFIND_REGION_LENGTH -> region_length.
const envPrefix = "DUPEFIND_"

// Config is the on-disk shape of a dupefind config file:
//
//	{
//	  "region_length": 10,
//	  "candidate_threshold": 0.6,
//	  "line_threshold": 0.8
//	}
type Config struct {
	RegionLength       int     `koanf:"region_length"`
	CandidateThreshold float64 `koanf:"candidate_threshold"`
	LineThreshold      float64 `koanf:"line_threshold"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		RegionLength:       region.DefaultRegionLength,
		CandidateThreshold: region.DefaultCandidateThreshold,
		LineThreshold:      region.DefaultLineThreshold,
	}
}

// Load builds the effective configuration by layering three sources,
// each overriding the last: the documented defaults (via
// confmap.Provider), an optional JSON file at path, and any
// DUPEFIND_-prefixed environment variable (via env.Provider). A missing
// file is not an error — Load falls through to defaults plus any
// environment overrides, matching the CLI's "works with zero config"
// contract.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"region_length":       def.RegionLength,
		"candidate_threshold": def.CandidateThreshold,
		"line_threshold":      def.LineThreshold,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("seed config defaults: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(env.Opt{
		Prefix: envPrefix,
		Delim:  ".",
		TransformFunc: func(envKey, v string) (string, interface{}) {
			key := strings.ToLower(strings.TrimPrefix(envKey, envPrefix))
			return key, v
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment overrides: %w", err)
	}

	cfg := Config{
		RegionLength:       k.Int("region_length"),
		CandidateThreshold: k.Float64("candidate_threshold"),
		LineThreshold:      k.Float64("line_threshold"),
	}

	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	if cfg.RegionLength < 1 {
		return region.Fatal(fmt.Errorf("region_length must be >= 1, got %d: %w", cfg.RegionLength, region.ErrConfig))
	}
	if cfg.CandidateThreshold < 0 || cfg.CandidateThreshold > 1 {
		return region.Fatal(fmt.Errorf("candidate_threshold must be in [0,1], got %g: %w", cfg.CandidateThreshold, region.ErrConfig))
	}
	if cfg.LineThreshold < 0 || cfg.LineThreshold > 1 {
		return region.Fatal(fmt.Errorf("line_threshold must be in [0,1], got %g: %w", cfg.LineThreshold, region.ErrConfig))
	}
	return nil
}

// ToRegionConfig builds a region.Config from the loaded thresholds, leaving
// the internal MinHash/LSH constants (signature length, band count, shingle
// size, seed) at their package defaults.
func (c Config) ToRegionConfig(files []string) region.Config {
	return region.Config{
		Files:              files,
		RegionLength:       c.RegionLength,
		CandidateThreshold: c.CandidateThreshold,
		LineThreshold:      c.LineThreshold,
	}
}
