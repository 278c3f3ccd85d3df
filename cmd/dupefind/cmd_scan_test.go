package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressLogger_FormatsPhaseAndCounts(t *testing.T) {
	var buf bytes.Buffer
	logger := progressLogger(&buf)

	logger("signature", 250, 1000)
	logger("expand", 1000, 1000)

	out := buf.String()
	for _, want := range []string{
		"dupefind: signature 250/1000",
		"dupefind: expand 1000/1000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output = %q, want to contain %q", out, want)
		}
	}
}
