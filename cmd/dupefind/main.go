// Package main provides the CLI for dupefind.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dupefind/dupefind/internal/version"
	"github.com/dupefind/dupefind/pkg/region"
)

const defaultConfigName = "dupefind.json"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	projectRoot := findProjectRoot()

	configPath := getEnvOrDefault("DUPEFIND_CONFIG", "")
	if configPath == "" {
		configPath = filepath.Join(projectRoot, defaultConfigName)
	}

	if err := runCommand(cmd, projectRoot, configPath, args); err != nil {
		// Fatal kinds (ConfigError, InvariantViolation) get a distinct exit
		// code from ordinary CLI-usage errors, decided via the Fataler
		// marker rather than matching on error text.
		if region.IsFatal(err) {
			fatalCode(2, "%v", err)
		}
		fatal("%v", err)
	}
}

func runCommand(cmd, projectRoot, configPath string, args []string) error {
	switch cmd {
	case "scan":
		return cmdScan(projectRoot, configPath, args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	case "version", "-v", "--version":
		return cmdVersion(args)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func cmdVersion(args []string) error {
	for _, arg := range args {
		if arg == "--json" {
			fmt.Println(version.JSON())
			return nil
		}
	}
	fmt.Println(version.String())
	return nil
}

func printUsage() {
	fmt.Printf(`dupefind %s - near-duplicate code region detector

Usage:
  dupefind <command> [arguments]

Commands:
  scan       Scan one or more paths for duplicate code regions
  version    Show version information

Environment:
  DUPEFIND_CONFIG   Config file path (default: <project root>/dupefind.json)

Examples:
  dupefind scan .
  dupefind scan --region-length=20 --table src/ lib/
  dupefind version --json
`, version.Short())
}

// findProjectRoot finds the git root directory, or falls back to cwd.
func findProjectRoot() string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err == nil {
		return strings.TrimSpace(string(output))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
