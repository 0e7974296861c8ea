// Test program for the SVG component extractor.
//
// Usage:
//   go run ./cmd/test/extract_dump/main.go <svg-file-path>
//
// This program will:
// - Read the SVG file
// - Run the extractor with migration options (merged tspans)
// - Display the viewport, text entries, and background shapes

package main

import (
	"fmt"
	"os"

	"github.com/amitkr54/svgtemplate/internal/svg"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <svg-file-path>\n", os.Args[0])
		os.Exit(1)
	}

	markup, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading SVG: %v\n", err)
		os.Exit(1)
	}

	components := svg.Extract(string(markup), svg.MigrateOptions())

	fmt.Println("=== SVG Extraction Test ===")
	fmt.Printf("File: %s\n\n", os.Args[1])

	vb := components.OriginalViewBox
	fmt.Printf("ViewBox: [%.2f %.2f %.2f %.2f]\n\n", vb[0], vb[1], vb[2], vb[3])

	fmt.Printf("--- Text (%d) ---\n", len(components.Text))
	for i, t := range components.Text {
		fmt.Printf("  %d. %q at (%.1f, %.1f), size %.1f, fill %s\n",
			i+1, t.Text, t.Left, t.Top, t.FontSize, t.Fill)
	}

	fmt.Printf("\n--- Background objects (%d) ---\n", len(components.BackgroundObjects))
	for i, obj := range components.BackgroundObjects {
		fmt.Printf("  %d. %s (%d style properties)\n", i+1, obj.Type, len(obj.Styles))
	}
}
