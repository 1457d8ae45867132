package catalog

import (
	"path/filepath"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
)

const manifestFile = "manifest.json"

// DocumentPath builds the path to a resource document under basePath.
func DocumentPath(basePath string, resource domain.Resource) string {
	return filepath.Join(basePath, resource.FileName())
}
