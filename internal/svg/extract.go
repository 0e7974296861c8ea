// Package svg extracts a neutral component description from raw SVG
// template markup: text runs with position and font metadata, background
// vector shapes, and a content-derived viewport. The description is what
// the storefront's design editor loads as its initial object graph.
package svg

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract parses template markup into its component description. It never
// fails: malformed markup degrades to documented defaults (empty component
// lists, the 1000x1000 viewport) rather than an error. Identical input
// always yields identical output.
func Extract(markup string, opts Options) Components {
	components := Components{
		Text:              []TextComponent{},
		BackgroundObjects: []BackgroundObject{},
		OriginalViewBox:   defaultViewBox,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return components
	}

	styles := buildStyleMap(doc)
	components.OriginalViewBox = parseViewBox(doc)

	if texts := extractText(doc, styles, opts); len(texts) > 0 {
		components.Text = texts
	}
	if shapes := extractShapes(doc, styles, opts); len(shapes) > 0 {
		components.BackgroundObjects = shapes
	}

	if len(components.Text) > 0 || len(components.BackgroundObjects) > 0 {
		components.OriginalViewBox = contentViewBox(
			components.Text, components.BackgroundObjects, components.OriginalViewBox)
	}
	return components
}
