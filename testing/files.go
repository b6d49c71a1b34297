package testing

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteFiles creates an empty file for each slash-separated path below root.
//
// Parent directories are created as needed.
//
// Example:
//
//	fs := afero.NewMemMapFs()
//	dctest.WriteFiles(t, fs, "/data", "A/file_1.csv", "B/other.csv")
func WriteFiles(t *testing.T, fsys afero.Fs, root string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := fsys.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", full, err)
		}
		if err := afero.WriteFile(fsys, full, nil, 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", full, err)
		}
	}
}
