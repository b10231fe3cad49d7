package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// SampleCurrent is a CURRENT.md body with a "Right Now" section
const SampleCurrent = `# Session: retry-logic

## Goal
Make uploads survive flaky networks.

## Right Now
Fix the retry bug

## Next
- backoff jitter
`

// FeatureDir creates and returns <root>/.session/feature
func FeatureDir(t *testing.T, root string) string {
	t.Helper()
	dir := filepath.Join(root, ".session", "feature")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create feature directory: %v", err)
	}
	return dir
}

// CreateSessionDir creates a session directory holding the given files.
// A non-zero mtime is applied to every file written.
func CreateSessionDir(t *testing.T, root, name string, files map[string]string, mtime time.Time) string {
	t.Helper()
	dir := filepath.Join(FeatureDir(t, root), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create session directory: %v", err)
	}

	for file, content := range files {
		path := filepath.Join(dir, file)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
		if !mtime.IsZero() {
			SetModTime(t, path, mtime)
		}
	}

	return dir
}

// SetModTime sets both access and modification time of path
func SetModTime(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}
}
