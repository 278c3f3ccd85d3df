package region

import (
	"fmt"
	"os"
	"strings"
)

// fillCode reads, for each region, the original file text spanning
// a_start..a_end and b_start..b_end (inclusive, 1-based) and populates
// CodeA/CodeB. Each distinct file is read from disk at most once.
func fillCode(regions []Region) ([]Region, error) {
	cache := make(map[string][]string)

	linesOf := func(path string) ([]string, error) {
		if ls, ok := cache[path]; ok {
			return ls, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, ErrIO)
		}
		ls := strings.Split(string(data), "\n")
		cache[path] = ls
		return ls, nil
	}

	out := make([]Region, len(regions))
	for i, r := range regions {
		linesA, err := linesOf(r.FileA)
		if err != nil {
			return nil, err
		}
		linesB, err := linesOf(r.FileB)
		if err != nil {
			return nil, err
		}
		r.CodeA = sliceLines(linesA, r.AStart, r.AEnd)
		r.CodeB = sliceLines(linesB, r.BStart, r.BEnd)
		out[i] = r
	}
	return out, nil
}

// sliceLines returns the inclusive 1-based line range [start, end]
// joined with newlines, clamped to the available line count.
func sliceLines(lines []string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(lines[start-1:end], "\n")
}
