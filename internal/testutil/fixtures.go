// Package testutil provides test helper utilities for eqtutor tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// ConfigProject returns file contents for a project with the given
// .eqtutor/config.yaml body.
func ConfigProject(configYAML string) map[string]string {
	return map[string]string{
		".eqtutor/config.yaml": configYAML,
	}
}

// DotEnvProject returns file contents for a project with only a .env file.
func DotEnvProject(lines ...string) map[string]string {
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	return map[string]string{".env": content}
}

// EmptyProject returns an empty file map.
func EmptyProject() map[string]string {
	return map[string]string{}
}
