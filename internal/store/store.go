// Package store persists template records as a single JSON array file. The
// file is read fully into memory, mutated by the caller, and written back
// in full at the end of a batch; there are no incremental writes.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amitkr54/svgtemplate/internal/svg"
)

// Template is one storefront template record. Width and Height are the
// physical signboard dimensions, not pixels.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SVGPath     string          `json:"svgPath"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	PreviewPath string          `json:"previewPath,omitempty"`
	Components  *svg.Components `json:"components,omitempty"`
}

// Load reads every template record from a JSON array file.
func Load(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template store: %w", err)
	}
	var templates []Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template store: %w", err)
	}
	return templates, nil
}

// Save writes the full record collection back in one write.
func Save(path string, templates []Template) error {
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode template store: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write template store: %w", err)
	}
	return nil
}
