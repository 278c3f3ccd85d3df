package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFromDefaults_IgnoresVendorAndGit(t *testing.T) {
	m := NewFromDefaults()

	cases := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{".git", true, true},
		{"vendor", true, true},
		{"vendor/github.com/foo/bar.go", false, true},
		{"main.go", false, false},
		{"pkg/region/detect.go", false, false},
	}
	for _, c := range cases {
		if got := m.ShouldIgnore(c.path, c.isDir); got != c.want {
			t.Errorf("ShouldIgnore(%q, %v) = %v, want %v", c.path, c.isDir, got, c.want)
		}
	}
}

func TestNewEmpty_IgnoresNothing(t *testing.T) {
	m := NewEmpty()
	if m.ShouldIgnore(".git", true) {
		t.Error("NewEmpty should not ignore anything, including .git")
	}
}

func TestNew_UserFileCanNegateBuiltinDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".dupefindignore"), []byte("!vendor/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.ShouldIgnore("vendor", true) {
		t.Error("expected !vendor/ in .dupefindignore to un-ignore vendor/")
	}
}

func TestNew_MissingIgnoreFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	m, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.ShouldIgnore(".git", true) {
		t.Error("expected builtin defaults to still apply with no .dupefindignore file")
	}
}
