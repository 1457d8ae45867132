package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks what the writer last persisted.
type Manifest struct {
	Version     int                      `json:"version"`
	GeneratedAt time.Time                `json:"generatedAt"`
	Resources   map[string]ResourceEntry `json:"resources"`
}

// ResourceEntry describes one written document.
type ResourceEntry struct {
	File        string    `json:"file"`
	Records     int       `json:"records"`
	LastWritten time.Time `json:"lastWritten"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Resources:   map[string]ResourceEntry{},
	}
}

// ReadManifest loads the manifest under basePath, returning an empty one when absent or unreadable.
func ReadManifest(basePath string) (Manifest, error) {
	f, err := os.Open(filepath.Join(basePath, manifestFile))
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Resources == nil {
		m.Resources = map[string]ResourceEntry{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, manifestFile)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}
