package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// readJobFile loads a job document from disk as JSON. YAML files are
// converted with key order preserved; anything else is read as JSON.
func readJobFile(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrJobFileRead)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w [%s]: %w", ErrJobFileRead, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		converted, err := yaml.YAMLToJSON(content)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode file [%s] as YAML: %w", ErrJobFileRead, path, err)
		}

		return converted, nil
	default:
		return content, nil
	}
}
