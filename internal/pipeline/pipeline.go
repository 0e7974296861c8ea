// Package pipeline runs batch maintenance passes over the template store:
// component resync from the SVG assets and preview thumbnail generation.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/amitkr54/svgtemplate/internal/store"
	"github.com/amitkr54/svgtemplate/internal/svg"
)

// ResyncOptions holds options for a resync run.
type ResyncOptions struct {
	StorePath string
	AssetDir  string
	Extract   svg.Options
}

// Resync re-extracts components for every template in the store.
type Resync struct {
	Options ResyncOptions
}

// NewResync creates a resync pass.
func NewResync(opts ResyncOptions) *Resync {
	return &Resync{Options: opts}
}

// Run executes the pass and returns the number of templates updated. A
// template whose SVG is missing or unreadable is skipped with a warning;
// one template's failure never aborts the batch. The store is written once,
// after the whole batch.
func (r *Resync) Run() (int, error) {
	templates, err := store.Load(r.Options.StorePath)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range templates {
		t := &templates[i]
		if t.SVGPath == "" {
			log.Printf("warning: template %q has no svg path, skipping", t.ID)
			continue
		}

		markup, err := os.ReadFile(filepath.Join(r.Options.AssetDir, t.SVGPath))
		if err != nil {
			log.Printf("warning: template %q: %v, skipping", t.ID, err)
			continue
		}

		components := svg.Extract(string(markup), r.Options.Extract)
		t.Components = &components
		updated++
		log.Printf("resynced %q: %d texts, %d shapes", t.ID,
			len(components.Text), len(components.BackgroundObjects))
	}

	if updated == 0 {
		return 0, fmt.Errorf("no templates could be resynced")
	}

	if err := store.Save(r.Options.StorePath, templates); err != nil {
		return 0, err
	}
	return updated, nil
}
