package region

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.py")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestNormalize_DiscardsNonCodeLines(t *testing.T) {
	content := `import os
from foo import bar

# a comment
@decorator
def process():
    """
    a docstring block
    spanning lines
    """
    return 1
`
	path := writeTempFile(t, content)

	nf, err := Normalize(path)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := []string{"def process():", "return 1"}
	if len(nf.CodeLines) != len(want) {
		t.Fatalf("CodeLines = %v, want %v", nf.CodeLines, want)
	}
	for i, w := range want {
		if nf.CodeLines[i] != w {
			t.Errorf("CodeLines[%d] = %q, want %q", i, nf.CodeLines[i], w)
		}
	}

	wantLines := []int{6, 11}
	for i, w := range wantLines {
		if nf.OriginalLineNums[i] != w {
			t.Errorf("OriginalLineNums[%d] = %d, want %d", i, nf.OriginalLineNums[i], w)
		}
	}
}

func TestNormalize_StripsLeadingWhitespaceOnly(t *testing.T) {
	content := "def f():\n    x = compute_something(a, b)   \n"
	path := writeTempFile(t, content)

	nf, err := Normalize(path)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(nf.CodeLines) != 2 {
		t.Fatalf("got %d code lines, want 2: %v", len(nf.CodeLines), nf.CodeLines)
	}
	if nf.CodeLines[1] != "x = compute_something(a, b)   " {
		t.Errorf("trailing whitespace should be preserved, got %q", nf.CodeLines[1])
	}
}

func TestNormalize_MissingFileIsNormalizationWarning(t *testing.T) {
	_, err := Normalize(filepath.Join(t.TempDir(), "does-not-exist.py"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrNormalization) {
		t.Errorf("error = %v, want wrapping ErrNormalization", err)
	}
}
