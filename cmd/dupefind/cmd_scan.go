package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dupefind/dupefind/pkg/config"
	"github.com/dupefind/dupefind/pkg/ignore"
	"github.com/dupefind/dupefind/pkg/region"
	"github.com/dupefind/dupefind/pkg/report"
	"github.com/dupefind/dupefind/pkg/walker"
)

// cmdScan runs the full scan → detect → report pipeline.
//
// Usage: dupefind scan [paths...] [--region-length=N] [--candidate-threshold=F]
//
//	[--line-threshold=F] [--table]
//
// Output is the plain-text run summary, followed by the region table when
// --table is given; there is no JSON output mode.
func cmdScan(projectRoot, configPath string, args []string) error {
	paths := positionalArgs(args)
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := parseIntFlag(args, "--region-length=", 0); v > 0 {
		cfg.RegionLength = v
	}
	if v := parseFloatFlag(args, "--candidate-threshold=", 0); v > 0 {
		cfg.CandidateThreshold = v
	}
	if v := parseFloatFlag(args, "--line-threshold=", 0); v > 0 {
		cfg.LineThreshold = v
	}

	ig, err := ignore.New(projectRoot)
	if err != nil {
		return fmt.Errorf("load ignore patterns: %w", err)
	}

	files, err := walker.Collect(walker.Config{Roots: paths, Ignore: ig})
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "dupefind: no files matched")
		return nil
	}

	regionCfg := cfg.ToRegionConfig(files)
	regionCfg.Progress = progressLogger(os.Stderr)
	regions, result, err := region.Detect(regionCfg)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}

	fmt.Print(report.Summary(result))
	if hasFlag(args, "--table") && len(regions) > 0 {
		fmt.Println()
		report.Table(os.Stdout, regions)
	}

	return nil
}

// progressLogger returns a region.ProgressFunc that logs each call to w,
// the batch-progress logging the source implementation performed during
// region expansion (see DESIGN.md).
func progressLogger(w io.Writer) region.ProgressFunc {
	return func(phase string, done, total int) {
		fmt.Fprintf(w, "dupefind: %s %d/%d\n", phase, done, total)
	}
}
