package walker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/dupefind/dupefind/pkg/ignore"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect_FiltersByExtensionAndIgnore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "x = 1\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not code\n")
	writeFile(t, filepath.Join(dir, "vendor", "b.py"), "y = 2\n")

	files, err := Collect(Config{Roots: []string{dir}})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var bases []string
	for _, f := range files {
		bases = append(bases, filepath.Base(f))
	}
	sort.Strings(bases)

	if len(bases) != 1 || bases[0] != "a.py" {
		t.Errorf("got %v, want [a.py] (notes.txt filtered by extension, vendor/ by ignore)", bases)
	}
}

func TestCollect_EmptyIgnoreMatcherDoesNotSkipTestdata(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "testdata", "sample.py"), "x = 1\n")

	files, err := Collect(Config{Roots: []string{dir}, Ignore: ignore.NewEmpty()})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 (testdata/ should not be skipped with NewEmpty)", len(files))
	}
}

func TestCollect_RespectsMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "big.py"), "x = 1\n")

	files, err := Collect(Config{Roots: []string{dir}, MaxFileSize: 1})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0 (file exceeds MaxFileSize=1)", len(files))
	}
}

func TestCollect_CustomIncludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.rs"), "fn main() {}\n")

	files, err := Collect(Config{Roots: []string{dir}, IncludeGlobs: []string{"*.rs"}})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 (*.rs via custom include glob)", len(files))
	}
}
