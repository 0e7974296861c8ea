package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amitkr54/svgtemplate/internal/svg"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	components := svg.Extract(`<svg viewBox="0 0 100 50"><text x="5" y="30" font-size="20">Shop</text></svg>`, svg.MigrateOptions())
	in := []Template{
		{
			ID:          "tpl-001",
			Name:        "Classic Board",
			SVGPath:     "templates/classic.svg",
			Width:       3,
			Height:      2,
			PreviewPath: "previews/classic.png",
			Components:  &components,
		},
		{ID: "tpl-002", Name: "Bare", SVGPath: "templates/bare.svg", Width: 1, Height: 1},
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("loaded %d templates, want 2", len(out))
	}
	if out[0].ID != "tpl-001" || out[0].Components == nil {
		t.Fatalf("first template = %+v", out[0])
	}
	if len(out[0].Components.Text) != 1 || out[0].Components.Text[0].Text != "Shop" {
		t.Fatalf("components did not survive the round trip: %+v", out[0].Components)
	}
	if out[1].Components != nil {
		t.Fatalf("second template should have no components, got %+v", out[1].Components)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read template store") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	if err := os.WriteFile(path, []byte(`{"not": "an array"`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "failed to parse template store") {
		t.Fatalf("error = %v", err)
	}
}
