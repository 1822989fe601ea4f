package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/templatize/pkg/filesystem"
	"github.com/arthur-debert/templatize/pkg/types"
	"github.com/spf13/afero"
)

// MemFS couples an in-memory afero filesystem with the types.FS wrapper the
// production code consumes, so tests can seed files directly.
type MemFS struct {
	Afero afero.Fs
	FS    types.FS
}

// NewMemFS creates a new in-memory filesystem for testing.
func NewMemFS() *MemFS {
	base := afero.NewMemMapFs()
	return &MemFS{Afero: base, FS: filesystem.NewAferoFS(base)}
}

// WriteFile writes content to path, creating parent directories.
func (m *MemFS) WriteFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()

	if err := m.Afero.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(m.Afero, path, []byte(content), perm); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

// ReadFile reads the content of a file and returns it as a string.
func (m *MemFS) ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := afero.ReadFile(m.Afero, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Exists reports whether path exists in the memory filesystem.
func (m *MemFS) Exists(path string) bool {
	ok, err := afero.Exists(m.Afero, path)
	return err == nil && ok
}
