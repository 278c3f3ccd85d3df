package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// fatal prints an error message and exits with code 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// fatalCode prints an error message and exits with the given code.
func fatalCode(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// getEnvOrDefault returns the named environment variable, or def if unset.
func getEnvOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// parseFlag extracts a flag value from args (e.g., "--key=value").
func parseFlag(args []string, prefix string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return strings.TrimPrefix(arg, prefix)
		}
	}
	return ""
}

// parseIntFlag extracts an integer flag value, or def if absent/unparsable.
func parseIntFlag(args []string, prefix string, def int) int {
	raw := parseFlag(args, prefix)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// parseFloatFlag extracts a float64 flag value, or def if absent/unparsable.
func parseFloatFlag(args []string, prefix string, def float64) float64 {
	raw := parseFlag(args, prefix)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// hasFlag checks if a flag is present in args.
func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

// positionalArgs returns args with all "--flag" / "--flag=value" entries
// removed, leaving only bare paths.
func positionalArgs(args []string) []string {
	var out []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		out = append(out, a)
	}
	return out
}
