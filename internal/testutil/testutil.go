// Package testutil provides shared test helpers for setting up content projects.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/quill/internal/project"
)

// Default collection directories used by TestProject.
const (
	AuthorsDir  = "authors"
	ArticlesDir = "articles"
)

// TestProject creates a temporary project directory populated with files,
// keyed by path relative to the project root. It returns the project root
// and a layout pointing at AuthorsDir and ArticlesDir.
func TestProject(t *testing.T, files map[string]string) (string, project.Layout) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		WriteFile(t, root, rel, content)
	}
	return root, project.Layout{AuthorsDir: AuthorsDir, ArticlesDir: ArticlesDir}
}

// WriteFile writes content to root/rel, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// MkdirAll creates root/rel.
func MkdirAll(t *testing.T, root, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, rel), 0o755); err != nil {
		t.Fatal(err)
	}
}

// FileExists reports whether root/rel exists.
func FileExists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, rel))
	return err == nil
}
