package svgmerge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-svgmerge/internal/yamlutil"
)

// LoadLayout reads and parses a layout file. The format is decided by
// extension: .yaml/.yml via the strict YAML parser, everything else as JSON
// (the contract format). Parse failures are fatal to the run.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- layout path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, path)
		}
		return nil, fmt.Errorf("reading layout file: %w", err)
	}
	return ParseLayout(data, filepath.Ext(path))
}

// ParseLayout parses layout bytes. ext selects the format as in LoadLayout.
func ParseLayout(data []byte, ext string) (*Layout, error) {
	var layout Layout
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yamlutil.UnmarshalStrict(data, &layout); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLayoutParse, err)
		}
	default:
		if err := json.Unmarshal(data, &layout); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLayoutParse, err)
		}
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}
