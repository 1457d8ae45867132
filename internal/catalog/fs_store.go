package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
)

var (
	// ErrNotConfigured is returned by a nil store.
	ErrNotConfigured = errors.New("catalog store not configured")
	// ErrInvalidJSON is returned when a document is not well-formed JSON.
	ErrInvalidJSON = errors.New("document is not valid JSON")
)

// Document is a well-formed resource document exactly as stored on disk.
// Count is the number of top-level elements when the document is an array.
type Document struct {
	Resource domain.Resource
	Body     []byte
	Count    int
}

// Store defines how resource documents are loaded.
type Store interface {
	Load(ctx context.Context, resource domain.Resource) (Document, error)
}

// FSStore loads resource documents from the filesystem on every call.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// BasePath exposes the store root.
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Load reads {basePath}/{resource}.json and checks that it is well-formed JSON.
// Record shapes are not enforced here; the returned body is the unmodified file content.
func (s *FSStore) Load(ctx context.Context, resource domain.Resource) (Document, error) {
	if s == nil {
		return Document{}, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if _, ok := domain.ParseResource(string(resource)); !ok {
		return Document{}, fmt.Errorf("unknown resource %q", resource)
	}

	body, err := os.ReadFile(DocumentPath(s.basePath, resource))
	if err != nil {
		return Document{}, err
	}
	count, err := countElements(body)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", resource, err)
	}
	return Document{Resource: resource, Body: body, Count: count}, nil
}

func countElements(body []byte) (int, error) {
	if !json.Valid(body) {
		return 0, ErrInvalidJSON
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return 0, err
	}
	return len(elems), nil
}

// Check loads every resource and reports the failure, if any, per resource.
func Check(ctx context.Context, store Store) map[domain.Resource]error {
	out := make(map[domain.Resource]error, len(domain.Resources))
	for _, r := range domain.Resources {
		_, err := store.Load(ctx, r)
		out[r] = err
	}
	return out
}
