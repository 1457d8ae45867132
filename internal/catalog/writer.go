package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/dataset"
)

// Writer persists resource documents atomically and keeps the manifest current.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, now: time.Now}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDataset writes all four resources.
func (w *Writer) WriteDataset(d dataset.Dataset) error {
	payloads := map[domain.Resource]any{
		domain.ResourceMatches:   d.Matches,
		domain.ResourceLeagues:   d.Leagues,
		domain.ResourceStandings: d.Standings,
		domain.ResourcePlayers:   d.Players,
	}
	for _, r := range domain.Resources {
		if err := w.Write(r, payloads[r]); err != nil {
			return fmt.Errorf("write %s: %w", r, err)
		}
	}
	return nil
}

// Write encodes payload as an indented JSON array and stores it as the resource document.
// The payload must satisfy the resource schema; unchanged content is not rewritten.
func (w *Writer) Write(resource domain.Resource, payload any) error {
	if w == nil {
		return fmt.Errorf("catalog writer not configured")
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if bytes.Equal(data, []byte("null")) {
		data = []byte("[]")
	}
	return w.WriteRaw(resource, data)
}

// WriteRaw stores data verbatim after validating it against the resource schema.
func (w *Writer) WriteRaw(resource domain.Resource, data []byte) error {
	if w == nil {
		return fmt.Errorf("catalog writer not configured")
	}
	count, err := dataset.Validate(resource, data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return err
	}

	target := DocumentPath(w.basePath, resource)
	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}
	return w.updateManifest(resource, count)
}

func (w *Writer) updateManifest(resource domain.Resource, count int) error {
	m, _ := ReadManifest(w.basePath)
	m.Resources[string(resource)] = ResourceEntry{
		File:        resource.FileName(),
		Records:     count,
		LastWritten: w.now().UTC(),
	}
	return writeManifest(w.basePath, m)
}

func writeAtomic(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
