package testutil

import (
	"os"
	"testing"

	"github.com/preston-bernstein/soccer-prophet/internal/catalog"
	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/fixture"
)

// WriteSampleDataset writes the bundled fixture dataset into a fresh temp dir and returns it.
func WriteSampleDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := catalog.NewWriter(dir).WriteDataset(fixture.Dataset()); err != nil {
		t.Fatalf("failed to write sample dataset: %v", err)
	}
	return dir
}

// ReadDocument returns the raw bytes of a resource document under dir.
func ReadDocument(t *testing.T, dir string, r domain.Resource) []byte {
	t.Helper()
	data, err := os.ReadFile(catalog.DocumentPath(dir, r))
	if err != nil {
		t.Fatalf("failed to read %s: %v", r, err)
	}
	return data
}

// CorruptDocument overwrites a resource document with invalid JSON.
func CorruptDocument(t *testing.T, dir string, r domain.Resource) {
	t.Helper()
	if err := os.WriteFile(catalog.DocumentPath(dir, r), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to corrupt %s: %v", r, err)
	}
}

// RemoveDocument deletes a resource document.
func RemoveDocument(t *testing.T, dir string, r domain.Resource) {
	t.Helper()
	if err := os.Remove(catalog.DocumentPath(dir, r)); err != nil {
		t.Fatalf("failed to remove %s: %v", r, err)
	}
}
