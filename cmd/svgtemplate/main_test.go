package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"extract", "resync", "normalize", "thumbnails"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("subcommand %q not registered: %v", name, err)
		}
	}
}

func TestExtractCmd_PrintsComponents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	markup := `<svg viewBox="0 0 300 200"><text x="20" y="80" font-size="36">Sharma Traders</text></svg>`
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	out, err := runCommand(t, "extract", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var components struct {
		Text []struct {
			Text     string  `json:"text"`
			FontSize float64 `json:"fontSize"`
		} `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &components); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(components.Text) != 1 || components.Text[0].Text != "Sharma Traders" {
		t.Fatalf("unexpected components: %s", out)
	}
	if components.Text[0].FontSize != 36 {
		t.Fatalf("fontSize = %v, want 36", components.Text[0].FontSize)
	}
}

func TestExtractCmd_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "board.svg")
	outPath := filepath.Join(dir, "components.json")
	if err := os.WriteFile(svgPath, []byte(`<svg viewBox="0 0 10 10"></svg>`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := runCommand(t, "extract", svgPath, "-o", outPath); err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), `"originalViewBox"`) {
		t.Fatalf("unexpected output: %s", data)
	}
}

func TestExtractCmd_MissingFile(t *testing.T) {
	_, err := runCommand(t, "extract", filepath.Join(t.TempDir(), "nope.svg"))
	if err == nil || !strings.Contains(err.Error(), "failed to read SVG") {
		t.Fatalf("error = %v", err)
	}
}

func TestNormalizeCmd_RequiresDimensions(t *testing.T) {
	_, err := runCommand(t, "normalize", "snapshot.json")
	if err == nil || !strings.Contains(err.Error(), "--width") {
		t.Fatalf("expected dimension validation error, got %v", err)
	}
}

func TestNormalizeCmd_RewritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	snapshot := `[{"name":"background","type":"rect","left":0,"top":0,"width":900,"height":600,"scaleX":1,"scaleY":1},
{"name":"title","type":"text","left":90,"top":60,"width":100,"height":30,"scaleX":1,"scaleY":1}]`
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := runCommand(t, "normalize", path, "--width", "3", "--height", "2"); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot not rewritten: %v", err)
	}
	var objects []struct {
		Name   string  `json:"name"`
		Left   float64 `json:"left"`
		Width  float64 `json:"width"`
		ScaleX float64 `json:"scaleX"`
	}
	if err := json.Unmarshal(data, &objects); err != nil {
		t.Fatalf("rewritten snapshot invalid: %v", err)
	}
	if objects[0].Width != 1800 {
		t.Fatalf("background width = %v, want 1800", objects[0].Width)
	}
	if objects[1].Left != 180 || objects[1].ScaleX != 2 {
		t.Fatalf("title = %+v, want left 180 scaleX 2", objects[1])
	}
}
