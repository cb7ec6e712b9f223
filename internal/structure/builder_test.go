package structure

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/pyboot-labs/pyboot/internal/logger"
	"github.com/pyboot-labs/pyboot/internal/projectconfig"
)

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, false)
}

func dir(name string, children ...projectconfig.Entry) projectconfig.Entry {
	return projectconfig.Entry{Name: name, IsDir: true, Children: children}
}

func file(name string) projectconfig.Entry {
	return projectconfig.Entry{Name: name, IsDir: false}
}

// snapshot returns all paths under base, relative and sorted.
func snapshot(t *testing.T, base string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == base {
			return nil
		}
		rel, _ := filepath.Rel(base, p)
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", base, err)
	}
	sort.Strings(paths)
	return paths
}

func TestBuild_CreatesDirectoriesAndFiles(t *testing.T) {
	base := t.TempDir()
	entries := []projectconfig.Entry{
		dir("scripts"),
		dir("tests", file("test_app.py"), dir("fixtures", file("sample.json"))),
	}

	if err := Build(testLogger(), base, entries); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []string{
		"scripts",
		"tests",
		"tests/fixtures",
		"tests/fixtures/sample.json",
		"tests/test_app.py",
	}
	if got := snapshot(t, base); !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %v, want %v", got, want)
	}

	// Placeholder files are empty.
	info, err := os.Stat(filepath.Join(base, "tests", "test_app.py"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("placeholder size = %d, want 0", info.Size())
	}
}

func TestBuild_Idempotent(t *testing.T) {
	base := t.TempDir()
	entries := []projectconfig.Entry{
		dir("src", dir("app", file("placeholder.py"))),
		dir("tests", file("test_app.py")),
	}

	if err := Build(testLogger(), base, entries); err != nil {
		t.Fatalf("first Build() error: %v", err)
	}
	first := snapshot(t, base)

	// A second run must not fail and must not change the tree.
	if err := Build(testLogger(), base, entries); err != nil {
		t.Fatalf("second Build() error: %v", err)
	}
	second := snapshot(t, base)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second run changed the tree:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestBuild_ExistingFileLeftUntouched(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "tests"), 0755); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(base, "tests", "test_app.py")
	if err := os.WriteFile(existing, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	entries := []projectconfig.Entry{dir("tests", file("test_app.py"))}
	if err := Build(testLogger(), base, entries); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Errorf("existing file rewritten: %q", data)
	}
}

func TestBuild_SrcDirectoriesGetPackageMarkers(t *testing.T) {
	base := t.TempDir()
	entries := []projectconfig.Entry{
		dir("src", dir("app", dir("handlers"))),
		dir("tests"),
	}

	if err := Build(testLogger(), base, entries); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Every directory under a src segment carries exactly one marker.
	for _, rel := range []string{"src", "src/app", "src/app/handlers"} {
		marker := filepath.Join(base, filepath.FromSlash(rel), PackageMarker)
		if _, err := os.Stat(marker); err != nil {
			t.Errorf("missing package marker in %s: %v", rel, err)
		}
	}

	// Directories outside src do not.
	if _, err := os.Stat(filepath.Join(base, "tests", PackageMarker)); !os.IsNotExist(err) {
		t.Errorf("unexpected package marker in tests (err=%v)", err)
	}
}

func TestBuild_MultiSegmentNames(t *testing.T) {
	base := t.TempDir()
	entries := []projectconfig.Entry{
		{Name: "src/orbital", IsDir: true},
	}

	if err := Build(testLogger(), base, entries); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	marker := filepath.Join(base, "src", "orbital", PackageMarker)
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("missing package marker in src/orbital: %v", err)
	}
}
